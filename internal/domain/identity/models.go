package identity

import "time"

const (
	RoleEmployee = "employee"
	RoleAdmin    = "admin"
)

type Employee struct {
	ID            int        `json:"id"`
	Username      string     `json:"username"`
	Email         string     `json:"email"`
	Password      string     `json:"-"`
	FirstName     string     `json:"firstName"`
	LastName      string     `json:"lastName"`
	Department    string     `json:"department,omitempty"`
	Position      string     `json:"position,omitempty"`
	Role          string     `json:"role"`
	Phone         string     `json:"phone,omitempty"`
	Address       string     `json:"address,omitempty"`
	LinkedinURL   string     `json:"linkedinUrl,omitempty"`
	GithubURL     string     `json:"githubUrl,omitempty"`
	AadhaarNumber string     `json:"aadhaarNumber,omitempty"`
	PanNumber     string     `json:"panNumber,omitempty"`
	BankName      string     `json:"bankName,omitempty"`
	BankAccount   string     `json:"bankAccount,omitempty"`
	IFSCCode      string     `json:"ifscCode,omitempty"`
	JoinDate      *time.Time `json:"joinDate,omitempty"`
	EndDate       *time.Time `json:"endDate,omitempty"`
	LastLogin     time.Time  `json:"lastLogin"`
}

// EmployeeUpdate carries the fields a partial update may set. Nil fields are
// left untouched on the stored record.
type EmployeeUpdate struct {
	Username      *string    `json:"username,omitempty"`
	Email         *string    `json:"email,omitempty"`
	Password      *string    `json:"password,omitempty"`
	FirstName     *string    `json:"firstName,omitempty"`
	LastName      *string    `json:"lastName,omitempty"`
	Department    *string    `json:"department,omitempty"`
	Position      *string    `json:"position,omitempty"`
	Role          *string    `json:"role,omitempty"`
	Phone         *string    `json:"phone,omitempty"`
	Address       *string    `json:"address,omitempty"`
	LinkedinURL   *string    `json:"linkedinUrl,omitempty"`
	GithubURL     *string    `json:"githubUrl,omitempty"`
	AadhaarNumber *string    `json:"aadhaarNumber,omitempty"`
	PanNumber     *string    `json:"panNumber,omitempty"`
	BankName      *string    `json:"bankName,omitempty"`
	BankAccount   *string    `json:"bankAccount,omitempty"`
	IFSCCode      *string    `json:"ifscCode,omitempty"`
	JoinDate      *time.Time `json:"joinDate,omitempty"`
	EndDate       *time.Time `json:"endDate,omitempty"`
	LastLogin     *time.Time `json:"lastLogin,omitempty"`
}

func (e *Employee) apply(update EmployeeUpdate) {
	if update.Username != nil {
		e.Username = *update.Username
	}
	if update.Email != nil {
		e.Email = *update.Email
	}
	if update.Password != nil {
		e.Password = *update.Password
	}
	if update.FirstName != nil {
		e.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		e.LastName = *update.LastName
	}
	if update.Department != nil {
		e.Department = *update.Department
	}
	if update.Position != nil {
		e.Position = *update.Position
	}
	if update.Role != nil {
		e.Role = *update.Role
	}
	if update.Phone != nil {
		e.Phone = *update.Phone
	}
	if update.Address != nil {
		e.Address = *update.Address
	}
	if update.LinkedinURL != nil {
		e.LinkedinURL = *update.LinkedinURL
	}
	if update.GithubURL != nil {
		e.GithubURL = *update.GithubURL
	}
	if update.AadhaarNumber != nil {
		e.AadhaarNumber = *update.AadhaarNumber
	}
	if update.PanNumber != nil {
		e.PanNumber = *update.PanNumber
	}
	if update.BankName != nil {
		e.BankName = *update.BankName
	}
	if update.BankAccount != nil {
		e.BankAccount = *update.BankAccount
	}
	if update.IFSCCode != nil {
		e.IFSCCode = *update.IFSCCode
	}
	if update.JoinDate != nil {
		e.JoinDate = update.JoinDate
	}
	if update.EndDate != nil {
		e.EndDate = update.EndDate
	}
	if update.LastLogin != nil {
		e.LastLogin = *update.LastLogin
	}
}

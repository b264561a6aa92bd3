package identity

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ Store = (*PGStore)(nil)

type PGStore struct {
	DB *pgxpool.Pool
}

func NewPGStore(db *pgxpool.Pool) *PGStore {
	return &PGStore{DB: db}
}

const employeeColumns = `
    id, username, email, password, first_name, last_name,
    COALESCE(department, ''), COALESCE(position, ''), role,
    COALESCE(phone, ''), COALESCE(address, ''),
    COALESCE(linkedin_url, ''), COALESCE(github_url, ''),
    COALESCE(aadhaar_number, ''), COALESCE(pan_number, ''),
    COALESCE(bank_name, ''), COALESCE(bank_account, ''), COALESCE(ifsc_code, ''),
    join_date, end_date, last_login`

func scanEmployee(row pgx.Row) (*Employee, error) {
	var emp Employee
	err := row.Scan(
		&emp.ID, &emp.Username, &emp.Email, &emp.Password, &emp.FirstName, &emp.LastName,
		&emp.Department, &emp.Position, &emp.Role,
		&emp.Phone, &emp.Address,
		&emp.LinkedinURL, &emp.GithubURL,
		&emp.AadhaarNumber, &emp.PanNumber,
		&emp.BankName, &emp.BankAccount, &emp.IFSCCode,
		&emp.JoinDate, &emp.EndDate, &emp.LastLogin,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &emp, nil
}

func (s *PGStore) List(ctx context.Context) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `SELECT `+employeeColumns+` FROM employees ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *emp)
	}
	return out, rows.Err()
}

func (s *PGStore) GetByID(ctx context.Context, id int) (*Employee, error) {
	return scanEmployee(s.DB.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id))
}

func (s *PGStore) GetByUsername(ctx context.Context, username string) (*Employee, error) {
	return scanEmployee(s.DB.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE username = $1`, username))
}

func (s *PGStore) GetByEmail(ctx context.Context, email string) (*Employee, error) {
	return scanEmployee(s.DB.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE email = $1`, email))
}

func (s *PGStore) Create(ctx context.Context, emp Employee) (*Employee, error) {
	if emp.Role == "" {
		emp.Role = RoleEmployee
	}
	row := s.DB.QueryRow(ctx, `
    INSERT INTO employees (username, email, password, first_name, last_name,
      department, position, role, phone, address, linkedin_url, github_url,
      aadhaar_number, pan_number, bank_name, bank_account, ifsc_code,
      join_date, end_date, last_login)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,now())
    RETURNING `+employeeColumns,
		emp.Username, emp.Email, emp.Password, emp.FirstName, emp.LastName,
		nullIfEmpty(emp.Department), nullIfEmpty(emp.Position), emp.Role,
		nullIfEmpty(emp.Phone), nullIfEmpty(emp.Address),
		nullIfEmpty(emp.LinkedinURL), nullIfEmpty(emp.GithubURL),
		nullIfEmpty(emp.AadhaarNumber), nullIfEmpty(emp.PanNumber),
		nullIfEmpty(emp.BankName), nullIfEmpty(emp.BankAccount), nullIfEmpty(emp.IFSCCode),
		emp.JoinDate, emp.EndDate,
	)
	created, err := scanEmployee(row)
	if err != nil {
		return nil, mapUniqueViolation(err)
	}
	return created, nil
}

func (s *PGStore) Update(ctx context.Context, id int, update EmployeeUpdate) (*Employee, error) {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	emp, err := scanEmployee(tx.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		return nil, err
	}
	emp.apply(update)

	_, err = tx.Exec(ctx, `
    UPDATE employees
    SET username = $1, email = $2, password = $3, first_name = $4, last_name = $5,
        department = $6, position = $7, role = $8, phone = $9, address = $10,
        linkedin_url = $11, github_url = $12, aadhaar_number = $13, pan_number = $14,
        bank_name = $15, bank_account = $16, ifsc_code = $17,
        join_date = $18, end_date = $19, last_login = $20
    WHERE id = $21`,
		emp.Username, emp.Email, emp.Password, emp.FirstName, emp.LastName,
		nullIfEmpty(emp.Department), nullIfEmpty(emp.Position), emp.Role,
		nullIfEmpty(emp.Phone), nullIfEmpty(emp.Address),
		nullIfEmpty(emp.LinkedinURL), nullIfEmpty(emp.GithubURL),
		nullIfEmpty(emp.AadhaarNumber), nullIfEmpty(emp.PanNumber),
		nullIfEmpty(emp.BankName), nullIfEmpty(emp.BankAccount), nullIfEmpty(emp.IFSCCode),
		emp.JoinDate, emp.EndDate, emp.LastLogin, id,
	)
	if err != nil {
		return nil, mapUniqueViolation(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return emp, nil
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "employees_username_key":
			return ErrUsernameTaken
		case "employees_email_key":
			return ErrEmailTaken
		}
	}
	return err
}

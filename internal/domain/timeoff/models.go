package timeoff

// Balance tracks leave entitlement and usage for one employee. Exactly one
// balance exists per employee, created at provisioning time.
type Balance struct {
	ID            int     `json:"id"`
	EmployeeID    int     `json:"employeeId"`
	VacationTotal float64 `json:"vacationTotal"`
	VacationUsed  float64 `json:"vacationUsed"`
	SickTotal     float64 `json:"sickTotal"`
	SickUsed      float64 `json:"sickUsed"`
	PersonalTotal float64 `json:"personalTotal"`
	PersonalUsed  float64 `json:"personalUsed"`
}

// BalanceUpdate carries counters a partial update may set; nil fields keep
// their stored values.
type BalanceUpdate struct {
	VacationTotal *float64 `json:"vacationTotal,omitempty"`
	VacationUsed  *float64 `json:"vacationUsed,omitempty"`
	SickTotal     *float64 `json:"sickTotal,omitempty"`
	SickUsed      *float64 `json:"sickUsed,omitempty"`
	PersonalTotal *float64 `json:"personalTotal,omitempty"`
	PersonalUsed  *float64 `json:"personalUsed,omitempty"`
}

func (b *Balance) apply(update BalanceUpdate) {
	if update.VacationTotal != nil {
		b.VacationTotal = *update.VacationTotal
	}
	if update.VacationUsed != nil {
		b.VacationUsed = *update.VacationUsed
	}
	if update.SickTotal != nil {
		b.SickTotal = *update.SickTotal
	}
	if update.SickUsed != nil {
		b.SickUsed = *update.SickUsed
	}
	if update.PersonalTotal != nil {
		b.PersonalTotal = *update.PersonalTotal
	}
	if update.PersonalUsed != nil {
		b.PersonalUsed = *update.PersonalUsed
	}
}

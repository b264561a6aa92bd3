package timeoff

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

const balanceColumns = `
    id, employee_id, vacation_total, vacation_used,
    sick_total, sick_used, personal_total, personal_used`

func scanBalance(row pgx.Row) (*Balance, error) {
	var balance Balance
	err := row.Scan(
		&balance.ID, &balance.EmployeeID,
		&balance.VacationTotal, &balance.VacationUsed,
		&balance.SickTotal, &balance.SickUsed,
		&balance.PersonalTotal, &balance.PersonalUsed,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &balance, nil
}

func (s *PGStore) GetByEmployee(ctx context.Context, employeeID int) (*Balance, error) {
	return scanBalance(s.DB.QueryRow(ctx, `
    SELECT `+balanceColumns+`
    FROM time_off_balances
    WHERE employee_id = $1`, employeeID))
}

func (s *PGStore) Create(ctx context.Context, balance Balance) (*Balance, error) {
	err := s.DB.QueryRow(ctx, `
    INSERT INTO time_off_balances (employee_id, vacation_total, vacation_used,
      sick_total, sick_used, personal_total, personal_used)
    VALUES ($1,$2,$3,$4,$5,$6,$7)
    RETURNING id`,
		balance.EmployeeID, balance.VacationTotal, balance.VacationUsed,
		balance.SickTotal, balance.SickUsed, balance.PersonalTotal, balance.PersonalUsed,
	).Scan(&balance.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrBalanceExists
		}
		return nil, err
	}
	return &balance, nil
}

func (s *PGStore) Update(ctx context.Context, employeeID int, update BalanceUpdate) (*Balance, error) {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	balance, err := scanBalance(tx.QueryRow(ctx, `
    SELECT `+balanceColumns+`
    FROM time_off_balances
    WHERE employee_id = $1
    FOR UPDATE`, employeeID))
	if err != nil {
		return nil, err
	}
	balance.apply(update)

	_, err = tx.Exec(ctx, `
    UPDATE time_off_balances
    SET vacation_total = $1, vacation_used = $2,
        sick_total = $3, sick_used = $4,
        personal_total = $5, personal_used = $6
    WHERE employee_id = $7`,
		balance.VacationTotal, balance.VacationUsed,
		balance.SickTotal, balance.SickUsed,
		balance.PersonalTotal, balance.PersonalUsed, employeeID,
	)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return balance, nil
}

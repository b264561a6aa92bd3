package dashboards

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ Store = (*PGStore)(nil)

type PGStore struct {
	DB *pgxpool.Pool
}

func NewPGStore(db *pgxpool.Pool) *PGStore {
	return &PGStore{DB: db}
}

const dashboardColumns = `id, employee_id, name, layout, is_default`

func scanDashboard(row pgx.Row) (*Dashboard, error) {
	var dashboard Dashboard
	err := row.Scan(
		&dashboard.ID, &dashboard.EmployeeID, &dashboard.Name,
		&dashboard.Layout, &dashboard.IsDefault,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &dashboard, nil
}

func (s *PGStore) ListByEmployee(ctx context.Context, employeeID int) ([]Dashboard, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+dashboardColumns+`
    FROM report_dashboards
    WHERE employee_id = $1
    ORDER BY id`, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Dashboard
	for rows.Next() {
		dashboard, err := scanDashboard(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *dashboard)
	}
	return out, rows.Err()
}

func (s *PGStore) GetByID(ctx context.Context, id int) (*Dashboard, error) {
	return scanDashboard(s.DB.QueryRow(ctx, `
    SELECT `+dashboardColumns+`
    FROM report_dashboards
    WHERE id = $1`, id))
}

func (s *PGStore) GetDefault(ctx context.Context, employeeID int) (*Dashboard, error) {
	return scanDashboard(s.DB.QueryRow(ctx, `
    SELECT `+dashboardColumns+`
    FROM report_dashboards
    WHERE employee_id = $1 AND is_default
    ORDER BY id
    LIMIT 1`, employeeID))
}

func (s *PGStore) Create(ctx context.Context, dashboard Dashboard) (*Dashboard, error) {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if dashboard.IsDefault {
		_, err = tx.Exec(ctx, `
      UPDATE report_dashboards SET is_default = false
      WHERE employee_id = $1 AND is_default`, dashboard.EmployeeID)
		if err != nil {
			return nil, err
		}
	}

	err = tx.QueryRow(ctx, `
    INSERT INTO report_dashboards (employee_id, name, layout, is_default)
    VALUES ($1,$2,$3,$4)
    RETURNING id`,
		dashboard.EmployeeID, dashboard.Name, dashboard.Layout, dashboard.IsDefault,
	).Scan(&dashboard.ID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &dashboard, nil
}

func (s *PGStore) Update(ctx context.Context, id int, update DashboardUpdate) (*Dashboard, error) {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	dashboard, err := scanDashboard(tx.QueryRow(ctx, `
    SELECT `+dashboardColumns+`
    FROM report_dashboards
    WHERE id = $1
    FOR UPDATE`, id))
	if err != nil {
		return nil, err
	}
	dashboard.apply(update)

	if dashboard.IsDefault {
		_, err = tx.Exec(ctx, `
      UPDATE report_dashboards SET is_default = false
      WHERE employee_id = $1 AND id <> $2 AND is_default`, dashboard.EmployeeID, id)
		if err != nil {
			return nil, err
		}
	}

	_, err = tx.Exec(ctx, `
    UPDATE report_dashboards
    SET name = $1, layout = $2, is_default = $3
    WHERE id = $4`,
		dashboard.Name, dashboard.Layout, dashboard.IsDefault, id,
	)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return dashboard, nil
}

func (s *PGStore) Delete(ctx context.Context, id int) error {
	cmd, err := s.DB.Exec(ctx, `DELETE FROM report_dashboards WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

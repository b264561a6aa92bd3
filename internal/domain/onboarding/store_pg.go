package onboarding

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	_ StepStore     = (*PGStepStore)(nil)
	_ ProgressStore = (*PGProgressStore)(nil)
)

type PGStepStore struct {
	DB *pgxpool.Pool
}

func NewPGStepStore(db *pgxpool.Pool) *PGStepStore {
	return &PGStepStore{DB: db}
}

func (s *PGStepStore) List(ctx context.Context) ([]Step, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, COALESCE(description, ''), step_order
    FROM onboarding_steps
    ORDER BY step_order, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Step
	for rows.Next() {
		var step Step
		if err := rows.Scan(&step.ID, &step.Name, &step.Description, &step.Order); err != nil {
			return nil, err
		}
		out = append(out, step)
	}
	return out, rows.Err()
}

func (s *PGStepStore) GetByID(ctx context.Context, id int) (*Step, error) {
	var step Step
	err := s.DB.QueryRow(ctx, `
    SELECT id, name, COALESCE(description, ''), step_order
    FROM onboarding_steps
    WHERE id = $1`, id).Scan(&step.ID, &step.Name, &step.Description, &step.Order)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStepNotFound
		}
		return nil, err
	}
	return &step, nil
}

func (s *PGStepStore) Create(ctx context.Context, step Step) (*Step, error) {
	err := s.DB.QueryRow(ctx, `
    INSERT INTO onboarding_steps (name, description, step_order)
    VALUES ($1, $2, $3)
    RETURNING id`, step.Name, step.Description, step.Order).Scan(&step.ID)
	if err != nil {
		return nil, err
	}
	return &step, nil
}

type PGProgressStore struct {
	DB *pgxpool.Pool
}

func NewPGProgressStore(db *pgxpool.Pool) *PGProgressStore {
	return &PGProgressStore{DB: db}
}

func (s *PGProgressStore) ListByEmployee(ctx context.Context, employeeID int) ([]EmployeeStep, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT r.id, r.employee_id, r.step_id, r.status, r.completed_at,
           s.id, s.name, COALESCE(s.description, ''), s.step_order
    FROM employee_onboarding r
    JOIN onboarding_steps s ON r.step_id = s.id
    WHERE r.employee_id = $1
    ORDER BY s.step_order, r.id`, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []EmployeeStep
	for rows.Next() {
		var es EmployeeStep
		if err := rows.Scan(
			&es.ID, &es.EmployeeID, &es.StepID, &es.Status, &es.CompletedAt,
			&es.Step.ID, &es.Step.Name, &es.Step.Description, &es.Step.Order,
		); err != nil {
			return nil, err
		}
		out = append(out, es)
	}
	return out, rows.Err()
}

func (s *PGProgressStore) Create(ctx context.Context, record ProgressRecord) (*ProgressRecord, error) {
	if record.Status == "" {
		record.Status = StatusNotStarted
	}
	err := s.DB.QueryRow(ctx, `
    INSERT INTO employee_onboarding (employee_id, step_id, status, completed_at)
    VALUES ($1, $2, $3,
      CASE WHEN $3 = 'completed' THEN COALESCE($4::timestamptz, now()) ELSE $4::timestamptz END)
    RETURNING id, completed_at`,
		record.EmployeeID, record.StepID, record.Status, record.CompletedAt,
	).Scan(&record.ID, &record.CompletedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrStepRecorded
		}
		return nil, err
	}
	return &record, nil
}

func (s *PGProgressStore) SetStatus(ctx context.Context, recordID int, status string, completedAt *time.Time) (*ProgressRecord, error) {
	var record ProgressRecord
	err := s.DB.QueryRow(ctx, `
    UPDATE employee_onboarding
    SET status = $2,
        completed_at = CASE WHEN $2 = 'completed' THEN COALESCE($3::timestamptz, now()) ELSE completed_at END
    WHERE id = $1
    RETURNING id, employee_id, step_id, status, completed_at`,
		recordID, status, completedAt,
	).Scan(&record.ID, &record.EmployeeID, &record.StepID, &record.Status, &record.CompletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (s *PGProgressStore) PercentComplete(ctx context.Context, employeeID int) (int, error) {
	var total, completed int
	err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1), COUNT(1) FILTER (WHERE status = 'completed')
    FROM employee_onboarding
    WHERE employee_id = $1`, employeeID).Scan(&total, &completed)
	if err != nil {
		return 0, err
	}
	if total == 0 {
		return 0, nil
	}
	return int(math.Round(100 * float64(completed) / float64(total))), nil
}

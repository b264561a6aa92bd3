package events

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

func (s *PGStore) List(ctx context.Context) ([]Event, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, title, COALESCE(description, ''), start_date, end_date,
           COALESCE(location, ''), COALESCE(category, ''), created_by
    FROM events
    ORDER BY start_date, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		var event Event
		if err := rows.Scan(
			&event.ID, &event.Title, &event.Description, &event.StartDate, &event.EndDate,
			&event.Location, &event.Category, &event.CreatedBy,
		); err != nil {
			return nil, err
		}
		out = append(out, event)
	}
	return out, rows.Err()
}

func (s *PGStore) ListByUser(ctx context.Context, employeeID int) ([]Event, error) {
	return s.List(ctx)
}

func (s *PGStore) GetByID(ctx context.Context, id int) (*Event, error) {
	var event Event
	err := s.DB.QueryRow(ctx, `
    SELECT id, title, COALESCE(description, ''), start_date, end_date,
           COALESCE(location, ''), COALESCE(category, ''), created_by
    FROM events
    WHERE id = $1`, id).Scan(
		&event.ID, &event.Title, &event.Description, &event.StartDate, &event.EndDate,
		&event.Location, &event.Category, &event.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &event, nil
}

func (s *PGStore) Create(ctx context.Context, event Event) (*Event, error) {
	err := s.DB.QueryRow(ctx, `
    INSERT INTO events (title, description, start_date, end_date, location, category, created_by)
    VALUES ($1,$2,$3,$4,$5,$6,$7)
    RETURNING id`,
		event.Title, event.Description, event.StartDate, event.EndDate,
		event.Location, event.Category, event.CreatedBy,
	).Scan(&event.ID)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

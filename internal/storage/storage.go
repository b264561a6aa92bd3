// Package storage bundles the portal's stores behind one explicitly
// constructed object. Callers inject a Storage value instead of reaching for
// package-level state, so tests can build isolated instances and the memory
// and postgres backends stay interchangeable.
package storage

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"portal/internal/domain/dashboards"
	"portal/internal/domain/documents"
	"portal/internal/domain/events"
	"portal/internal/domain/identity"
	"portal/internal/domain/onboarding"
	"portal/internal/domain/timeoff"
)

type Storage struct {
	Employees  identity.Store
	Steps      onboarding.StepStore
	Progress   onboarding.ProgressStore
	Categories documents.CategoryStore
	Documents  documents.Store
	Events     events.Store
	TimeOff    timeoff.Store
	Dashboards dashboards.Store
}

// NewMemory builds the in-memory backend and seeds the shared reference data
// (onboarding steps and document categories), matching what a provisioned
// database contains.
func NewMemory() (*Storage, error) {
	ctx := context.Background()

	steps := onboarding.NewMemStepStore()
	for _, step := range onboarding.DefaultSteps {
		if _, err := steps.Create(ctx, step); err != nil {
			return nil, err
		}
	}

	categories := documents.NewMemCategoryStore()
	for _, category := range documents.DefaultCategories {
		if _, err := categories.Create(ctx, category); err != nil {
			return nil, err
		}
	}

	return &Storage{
		Employees:  identity.NewMemStore(),
		Steps:      steps,
		Progress:   onboarding.NewMemProgressStore(steps),
		Categories: categories,
		Documents:  documents.NewMemStore(),
		Events:     events.NewMemStore(),
		TimeOff:    timeoff.NewMemStore(),
		Dashboards: dashboards.NewMemStore(),
	}, nil
}

// NewPostgres wires every store to the given pool. The schema is expected to
// exist already (see db.EnsureSchema) and reference data to be seeded.
func NewPostgres(pool *pgxpool.Pool) *Storage {
	return &Storage{
		Employees:  identity.NewPGStore(pool),
		Steps:      onboarding.NewPGStepStore(pool),
		Progress:   onboarding.NewPGProgressStore(pool),
		Categories: documents.NewPGCategoryStore(pool),
		Documents:  documents.NewPGStore(pool),
		Events:     events.NewPGStore(pool),
		TimeOff:    timeoff.NewPGStore(pool),
		Dashboards: dashboards.NewPGStore(pool),
	}
}

// Provision creates the initial records a new employee needs: one progress
// record per known step and an empty time-off balance. It mirrors what the
// portal does when an account is registered.
func (s *Storage) Provision(ctx context.Context, employeeID int) error {
	steps, err := s.Steps.List(ctx)
	if err != nil {
		return err
	}
	for _, step := range steps {
		_, err := s.Progress.Create(ctx, onboarding.ProgressRecord{
			EmployeeID: employeeID,
			StepID:     step.ID,
			Status:     onboarding.StatusNotStarted,
		})
		if err != nil {
			return err
		}
	}

	_, err = s.TimeOff.Create(ctx, timeoff.Balance{
		EmployeeID:    employeeID,
		VacationTotal: 18,
		SickTotal:     12,
		PersonalTotal: 6,
	})
	return err
}

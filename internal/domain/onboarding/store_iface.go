package onboarding

import (
	"context"
	"time"
)

type StepStore interface {
	List(ctx context.Context) ([]Step, error)
	GetByID(ctx context.Context, id int) (*Step, error)
	Create(ctx context.Context, step Step) (*Step, error)
}

type ProgressStore interface {
	ListByEmployee(ctx context.Context, employeeID int) ([]EmployeeStep, error)
	Create(ctx context.Context, record ProgressRecord) (*ProgressRecord, error)
	SetStatus(ctx context.Context, recordID int, status string, completedAt *time.Time) (*ProgressRecord, error)
	PercentComplete(ctx context.Context, employeeID int) (int, error)
}

package onboarding

import "time"

const (
	StatusNotStarted = "not_started"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// Step is a globally shared checklist item every employee progresses through.
type Step struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

// ProgressRecord is the status of one step for one employee. CompletedAt is
// set on the transition into completed and kept even if the status later
// regresses.
type ProgressRecord struct {
	ID          int        `json:"id"`
	EmployeeID  int        `json:"employeeId"`
	StepID      int        `json:"stepId"`
	Status      string     `json:"status"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// EmployeeStep is a progress record joined with its step definition.
type EmployeeStep struct {
	ProgressRecord
	Step Step `json:"step"`
}

package onboarding

import (
	"context"
	"errors"
	"testing"
	"time"
)

func seedSteps(t *testing.T, store *MemStepStore, orders []int) []Step {
	t.Helper()
	ctx := context.Background()
	out := make([]Step, 0, len(orders))
	for i, order := range orders {
		step, err := store.Create(ctx, Step{Name: "Step " + string(rune('A'+i)), Order: order})
		if err != nil {
			t.Fatalf("create step error: %v", err)
		}
		out = append(out, *step)
	}
	return out
}

func TestStepListStableSort(t *testing.T) {
	store := NewMemStepStore()
	seedSteps(t, store, []int{3, 1, 2, 1})

	steps, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("list error: %v", err)
	}

	for i := 1; i < len(steps); i++ {
		if steps[i].Order < steps[i-1].Order {
			t.Fatalf("order decreased at position %d: %+v", i, steps)
		}
	}
	// Both order-1 steps: the one inserted first (id 2) comes first.
	if steps[0].ID != 2 || steps[1].ID != 4 {
		t.Fatalf("ties must keep insertion order: %+v", steps)
	}
}

func TestProgressCreateDefaultsAndDuplicates(t *testing.T) {
	stepStore := NewMemStepStore()
	steps := seedSteps(t, stepStore, []int{1})
	store := NewMemProgressStore(stepStore)
	ctx := context.Background()

	record, err := store.Create(ctx, ProgressRecord{EmployeeID: 7, StepID: steps[0].ID})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if record.Status != StatusNotStarted {
		t.Fatalf("expected default status, got %q", record.Status)
	}
	if record.CompletedAt != nil {
		t.Fatal("completedAt must be unset for a fresh record")
	}

	if _, err := store.Create(ctx, ProgressRecord{EmployeeID: 7, StepID: steps[0].ID}); !errors.Is(err, ErrStepRecorded) {
		t.Fatalf("expected ErrStepRecorded, got %v", err)
	}
}

func TestProgressCreateCompletedStampsTime(t *testing.T) {
	stepStore := NewMemStepStore()
	steps := seedSteps(t, stepStore, []int{1})
	store := NewMemProgressStore(stepStore)
	now := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	record, err := store.Create(context.Background(), ProgressRecord{
		EmployeeID: 7,
		StepID:     steps[0].ID,
		Status:     StatusCompleted,
	})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if record.CompletedAt == nil || !record.CompletedAt.Equal(now) {
		t.Fatalf("expected completedAt %v, got %v", now, record.CompletedAt)
	}
}

func TestSetStatusCompletedTimestamp(t *testing.T) {
	stepStore := NewMemStepStore()
	steps := seedSteps(t, stepStore, []int{1})
	store := NewMemProgressStore(stepStore)
	ctx := context.Background()

	record, err := store.Create(ctx, ProgressRecord{EmployeeID: 7, StepID: steps[0].ID})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}

	supplied := time.Date(2026, 2, 11, 8, 0, 0, 0, time.UTC)
	completed, err := store.SetStatus(ctx, record.ID, StatusCompleted, &supplied)
	if err != nil {
		t.Fatalf("set status error: %v", err)
	}
	if completed.CompletedAt == nil || !completed.CompletedAt.Equal(supplied) {
		t.Fatalf("expected supplied timestamp, got %v", completed.CompletedAt)
	}

	// Regressing keeps the timestamp.
	regressed, err := store.SetStatus(ctx, record.ID, StatusInProgress, nil)
	if err != nil {
		t.Fatalf("set status error: %v", err)
	}
	if regressed.Status != StatusInProgress {
		t.Fatalf("expected in_progress, got %q", regressed.Status)
	}
	if regressed.CompletedAt == nil || !regressed.CompletedAt.Equal(supplied) {
		t.Fatalf("regression must keep completedAt, got %v", regressed.CompletedAt)
	}

	if _, err := store.SetStatus(ctx, 99, StatusCompleted, nil); !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestListByEmployeeJoinsAndSorts(t *testing.T) {
	stepStore := NewMemStepStore()
	steps := seedSteps(t, stepStore, []int{2, 1, 3})
	store := NewMemProgressStore(stepStore)
	ctx := context.Background()

	for _, step := range steps {
		if _, err := store.Create(ctx, ProgressRecord{EmployeeID: 7, StepID: step.ID}); err != nil {
			t.Fatalf("create error: %v", err)
		}
	}
	if _, err := store.Create(ctx, ProgressRecord{EmployeeID: 8, StepID: steps[0].ID}); err != nil {
		t.Fatalf("create error: %v", err)
	}

	joined, err := store.ListByEmployee(ctx, 7)
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(joined) != 3 {
		t.Fatalf("expected 3 records, got %d", len(joined))
	}
	for i := 1; i < len(joined); i++ {
		if joined[i].Step.Order < joined[i-1].Step.Order {
			t.Fatalf("step order decreased: %+v", joined)
		}
	}
	for _, es := range joined {
		if es.Step.ID != es.StepID {
			t.Fatalf("joined wrong step: %+v", es)
		}
	}
}

func TestListByEmployeeMissingStepIsFatal(t *testing.T) {
	stepStore := NewMemStepStore()
	store := NewMemProgressStore(stepStore)
	ctx := context.Background()

	// Bypass Create's checks to build the inconsistent state a buggy caller
	// could produce.
	store.records[1] = ProgressRecord{ID: 1, EmployeeID: 7, StepID: 42, Status: StatusNotStarted}
	store.order = append(store.order, 1)

	if _, err := store.ListByEmployee(ctx, 7); err == nil {
		t.Fatal("expected error for record referencing a missing step")
	}
}

func TestPercentComplete(t *testing.T) {
	stepStore := NewMemStepStore()
	steps := seedSteps(t, stepStore, []int{1, 2, 3, 4, 5})
	store := NewMemProgressStore(stepStore)
	ctx := context.Background()

	statuses := []string{StatusCompleted, StatusCompleted, StatusCompleted, StatusNotStarted, StatusNotStarted}
	for i, step := range steps {
		if _, err := store.Create(ctx, ProgressRecord{EmployeeID: 7, StepID: step.ID, Status: statuses[i]}); err != nil {
			t.Fatalf("create error: %v", err)
		}
	}

	percent, err := store.PercentComplete(ctx, 7)
	if err != nil {
		t.Fatalf("percent error: %v", err)
	}
	if percent != 60 {
		t.Fatalf("expected 60, got %d", percent)
	}

	// No records means zero, not a division by zero.
	empty, err := store.PercentComplete(ctx, 8)
	if err != nil {
		t.Fatalf("percent error: %v", err)
	}
	if empty != 0 {
		t.Fatalf("expected 0 for employee without records, got %d", empty)
	}
}

func TestPercentCompleteRounds(t *testing.T) {
	stepStore := NewMemStepStore()
	steps := seedSteps(t, stepStore, []int{1, 2, 3})
	store := NewMemProgressStore(stepStore)
	ctx := context.Background()

	statuses := []string{StatusCompleted, StatusNotStarted, StatusNotStarted}
	for i, step := range steps {
		if _, err := store.Create(ctx, ProgressRecord{EmployeeID: 7, StepID: step.ID, Status: statuses[i]}); err != nil {
			t.Fatalf("create error: %v", err)
		}
	}

	percent, err := store.PercentComplete(ctx, 7)
	if err != nil {
		t.Fatalf("percent error: %v", err)
	}
	// 100/3 rounds to 33.
	if percent != 33 {
		t.Fatalf("expected 33, got %d", percent)
	}
}

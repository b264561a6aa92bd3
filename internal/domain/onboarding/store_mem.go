package onboarding

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"
	"time"
)

var (
	_ StepStore     = (*MemStepStore)(nil)
	_ ProgressStore = (*MemProgressStore)(nil)
)

// MemStepStore holds the shared step definitions. Steps are seeded once at
// startup and read-only afterwards in normal operation.
type MemStepStore struct {
	mu     sync.Mutex
	nextID int
	steps  map[int]Step
	order  []int
}

func NewMemStepStore() *MemStepStore {
	return &MemStepStore{nextID: 1, steps: make(map[int]Step)}
}

func (s *MemStepStore) List(ctx context.Context) ([]Step, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Step, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.steps[id])
	}
	// Ties on Order keep insertion order.
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (s *MemStepStore) GetByID(ctx context.Context, id int) (*Step, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	step, ok := s.steps[id]
	if !ok {
		return nil, ErrStepNotFound
	}
	return &step, nil
}

func (s *MemStepStore) Create(ctx context.Context, step Step) (*Step, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	step.ID = s.nextID
	s.nextID++
	s.steps[step.ID] = step
	s.order = append(s.order, step.ID)
	return &step, nil
}

// MemProgressStore holds one record per (employee, step) pair. The pair is
// enforced as unique at create time.
type MemProgressStore struct {
	mu      sync.Mutex
	nextID  int
	records map[int]ProgressRecord
	order   []int
	byPair  map[[2]int]int
	steps   *MemStepStore
	now     func() time.Time
}

func NewMemProgressStore(steps *MemStepStore) *MemProgressStore {
	return &MemProgressStore{
		nextID:  1,
		records: make(map[int]ProgressRecord),
		byPair:  make(map[[2]int]int),
		steps:   steps,
		now:     time.Now,
	}
}

func (s *MemProgressStore) ListByEmployee(ctx context.Context, employeeID int) ([]EmployeeStep, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []EmployeeStep
	for _, id := range s.order {
		record := s.records[id]
		if record.EmployeeID != employeeID {
			continue
		}
		step, err := s.steps.GetByID(ctx, record.StepID)
		if err != nil {
			// A record pointing at a missing step is a caller bug, not a
			// normal absence.
			return nil, fmt.Errorf("onboarding record %d references missing step %d", record.ID, record.StepID)
		}
		out = append(out, EmployeeStep{ProgressRecord: record, Step: *step})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Step.Order < out[j].Step.Order })
	return out, nil
}

func (s *MemProgressStore) Create(ctx context.Context, record ProgressRecord) (*ProgressRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pair := [2]int{record.EmployeeID, record.StepID}
	if _, exists := s.byPair[pair]; exists {
		return nil, ErrStepRecorded
	}

	record.ID = s.nextID
	s.nextID++
	if record.Status == "" {
		record.Status = StatusNotStarted
	}
	if record.Status == StatusCompleted && record.CompletedAt == nil {
		now := s.now()
		record.CompletedAt = &now
	}

	s.records[record.ID] = record
	s.order = append(s.order, record.ID)
	s.byPair[pair] = record.ID
	return &record, nil
}

func (s *MemProgressStore) SetStatus(ctx context.Context, recordID int, status string, completedAt *time.Time) (*ProgressRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[recordID]
	if !ok {
		return nil, ErrRecordNotFound
	}

	record.Status = status
	if status == StatusCompleted {
		if completedAt != nil {
			record.CompletedAt = completedAt
		} else {
			now := s.now()
			record.CompletedAt = &now
		}
	}
	// A regression out of completed keeps the old timestamp.

	s.records[recordID] = record
	return &record, nil
}

func (s *MemProgressStore) PercentComplete(ctx context.Context, employeeID int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	total, completed := 0, 0
	for _, record := range s.records {
		if record.EmployeeID != employeeID {
			continue
		}
		total++
		if record.Status == StatusCompleted {
			completed++
		}
	}
	if total == 0 {
		return 0, nil
	}
	return int(math.Round(100 * float64(completed) / float64(total))), nil
}

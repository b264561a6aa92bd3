package events

import (
	"context"
	"sort"
	"sync"
)

var _ Store = (*MemStore)(nil)

type MemStore struct {
	mu     sync.Mutex
	nextID int
	events map[int]Event
	order  []int
}

func NewMemStore() *MemStore {
	return &MemStore{nextID: 1, events: make(map[int]Event)}
}

func (s *MemStore) List(ctx context.Context) ([]Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Event, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.events[id])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartDate.Before(out[j].StartDate) })
	return out, nil
}

func (s *MemStore) ListByUser(ctx context.Context, employeeID int) ([]Event, error) {
	return s.List(ctx)
}

func (s *MemStore) GetByID(ctx context.Context, id int) (*Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	event, ok := s.events[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &event, nil
}

func (s *MemStore) Create(ctx context.Context, event Event) (*Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	event.ID = s.nextID
	s.nextID++
	s.events[event.ID] = event
	s.order = append(s.order, event.ID)
	return &event, nil
}

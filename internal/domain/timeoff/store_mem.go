package timeoff

import (
	"context"
	"sync"
)

var _ Store = (*MemStore)(nil)

type MemStore struct {
	mu         sync.Mutex
	nextID     int
	balances   map[int]Balance
	byEmployee map[int]int
}

func NewMemStore() *MemStore {
	return &MemStore{
		nextID:     1,
		balances:   make(map[int]Balance),
		byEmployee: make(map[int]int),
	}
}

func (s *MemStore) GetByEmployee(ctx context.Context, employeeID int) (*Balance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byEmployee[employeeID]
	if !ok {
		return nil, ErrNotFound
	}
	balance := s.balances[id]
	return &balance, nil
}

func (s *MemStore) Create(ctx context.Context, balance Balance) (*Balance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmployee[balance.EmployeeID]; exists {
		return nil, ErrBalanceExists
	}

	balance.ID = s.nextID
	s.nextID++
	s.balances[balance.ID] = balance
	s.byEmployee[balance.EmployeeID] = balance.ID
	return &balance, nil
}

func (s *MemStore) Update(ctx context.Context, employeeID int, update BalanceUpdate) (*Balance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byEmployee[employeeID]
	if !ok {
		return nil, ErrNotFound
	}
	balance := s.balances[id]
	balance.apply(update)
	s.balances[id] = balance
	return &balance, nil
}

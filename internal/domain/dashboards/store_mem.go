package dashboards

import (
	"context"
	"sync"
)

var _ Store = (*MemStore)(nil)

type MemStore struct {
	mu         sync.Mutex
	nextID     int
	dashboards map[int]Dashboard
	order      []int
}

func NewMemStore() *MemStore {
	return &MemStore{nextID: 1, dashboards: make(map[int]Dashboard)}
}

func (s *MemStore) ListByEmployee(ctx context.Context, employeeID int) ([]Dashboard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Dashboard
	for _, id := range s.order {
		dashboard, ok := s.dashboards[id]
		if ok && dashboard.EmployeeID == employeeID {
			out = append(out, dashboard)
		}
	}
	return out, nil
}

func (s *MemStore) GetByID(ctx context.Context, id int) (*Dashboard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dashboard, ok := s.dashboards[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &dashboard, nil
}

func (s *MemStore) GetDefault(ctx context.Context, employeeID int) (*Dashboard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.order {
		dashboard, ok := s.dashboards[id]
		if ok && dashboard.EmployeeID == employeeID && dashboard.IsDefault {
			return &dashboard, nil
		}
	}
	return nil, ErrNotFound
}

// demoteOthers clears the default flag on every other dashboard of the
// employee. Callers must hold s.mu.
func (s *MemStore) demoteOthers(employeeID, keepID int) {
	for id, dashboard := range s.dashboards {
		if id != keepID && dashboard.EmployeeID == employeeID && dashboard.IsDefault {
			dashboard.IsDefault = false
			s.dashboards[id] = dashboard
		}
	}
}

func (s *MemStore) Create(ctx context.Context, dashboard Dashboard) (*Dashboard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dashboard.ID = s.nextID
	s.nextID++
	if dashboard.IsDefault {
		s.demoteOthers(dashboard.EmployeeID, dashboard.ID)
	}
	s.dashboards[dashboard.ID] = dashboard
	s.order = append(s.order, dashboard.ID)
	return &dashboard, nil
}

func (s *MemStore) Update(ctx context.Context, id int, update DashboardUpdate) (*Dashboard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dashboard, ok := s.dashboards[id]
	if !ok {
		return nil, ErrNotFound
	}
	dashboard.apply(update)
	if dashboard.IsDefault {
		s.demoteOthers(dashboard.EmployeeID, id)
	}
	s.dashboards[id] = dashboard
	return &dashboard, nil
}

func (s *MemStore) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.dashboards[id]; !ok {
		return ErrNotFound
	}
	delete(s.dashboards, id)
	return nil
}

package identity

import (
	"context"
	"sort"
	"sync"
	"time"
)

var _ Store = (*MemStore)(nil)

// MemStore keeps employees in process memory. Ids are assigned from a
// monotonic counter and never reused. Username and email are kept unique
// through secondary indexes maintained under the same lock as the records.
type MemStore struct {
	mu         sync.Mutex
	nextID     int
	records    map[int]Employee
	byUsername map[string]int
	byEmail    map[string]int
	now        func() time.Time
}

func NewMemStore() *MemStore {
	return &MemStore{
		nextID:     1,
		records:    make(map[int]Employee),
		byUsername: make(map[string]int),
		byEmail:    make(map[string]int),
		now:        time.Now,
	}
}

func (s *MemStore) List(ctx context.Context) ([]Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Employee, 0, len(s.records))
	for _, emp := range s.records {
		out = append(out, emp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemStore) GetByID(ctx context.Context, id int) (*Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	emp, ok := s.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &emp, nil
}

func (s *MemStore) GetByUsername(ctx context.Context, username string) (*Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byUsername[username]
	if !ok {
		return nil, ErrNotFound
	}
	emp := s.records[id]
	return &emp, nil
}

func (s *MemStore) GetByEmail(ctx context.Context, email string) (*Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	emp := s.records[id]
	return &emp, nil
}

func (s *MemStore) Create(ctx context.Context, emp Employee) (*Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byUsername[emp.Username]; taken {
		return nil, ErrUsernameTaken
	}
	if _, taken := s.byEmail[emp.Email]; taken {
		return nil, ErrEmailTaken
	}

	emp.ID = s.nextID
	s.nextID++
	if emp.Role == "" {
		emp.Role = RoleEmployee
	}
	emp.LastLogin = s.now()

	s.records[emp.ID] = emp
	s.byUsername[emp.Username] = emp.ID
	s.byEmail[emp.Email] = emp.ID
	return &emp, nil
}

func (s *MemStore) Update(ctx context.Context, id int, update EmployeeUpdate) (*Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	emp, ok := s.records[id]
	if !ok {
		return nil, ErrNotFound
	}

	if update.Username != nil && *update.Username != emp.Username {
		if _, taken := s.byUsername[*update.Username]; taken {
			return nil, ErrUsernameTaken
		}
	}
	if update.Email != nil && *update.Email != emp.Email {
		if _, taken := s.byEmail[*update.Email]; taken {
			return nil, ErrEmailTaken
		}
	}

	oldUsername, oldEmail := emp.Username, emp.Email
	emp.apply(update)

	if emp.Username != oldUsername {
		delete(s.byUsername, oldUsername)
		s.byUsername[emp.Username] = id
	}
	if emp.Email != oldEmail {
		delete(s.byEmail, oldEmail)
		s.byEmail[emp.Email] = id
	}

	s.records[id] = emp
	return &emp, nil
}

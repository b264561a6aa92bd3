package documents

import (
	"context"
	"sort"
	"sync"
	"time"
)

var (
	_ CategoryStore = (*MemCategoryStore)(nil)
	_ Store         = (*MemStore)(nil)
)

type MemCategoryStore struct {
	mu         sync.Mutex
	nextID     int
	categories map[int]Category
	order      []int
}

func NewMemCategoryStore() *MemCategoryStore {
	return &MemCategoryStore{nextID: 1, categories: make(map[int]Category)}
}

func (s *MemCategoryStore) List(ctx context.Context) ([]Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Category, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.categories[id])
	}
	return out, nil
}

func (s *MemCategoryStore) GetByID(ctx context.Context, id int) (*Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	category, ok := s.categories[id]
	if !ok {
		return nil, ErrCategoryNotFound
	}
	return &category, nil
}

func (s *MemCategoryStore) Create(ctx context.Context, category Category) (*Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	category.ID = s.nextID
	s.nextID++
	s.categories[category.ID] = category
	s.order = append(s.order, category.ID)
	return &category, nil
}

// MemStore keeps document metadata in memory. Deleting a document frees its
// id slot but the counter never moves backwards, so ids are never reused.
type MemStore struct {
	mu      sync.Mutex
	nextID  int
	records map[int]Document
	now     func() time.Time
}

func NewMemStore() *MemStore {
	return &MemStore{nextID: 1, records: make(map[int]Document), now: time.Now}
}

func (s *MemStore) list(match func(Document) bool) []Document {
	var out []Document
	for _, doc := range s.records {
		if match(doc) {
			out = append(out, doc)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].UploadedAt.Equal(out[j].UploadedAt) {
			return out[i].UploadedAt.After(out[j].UploadedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

func (s *MemStore) List(ctx context.Context) ([]Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.list(func(Document) bool { return true }), nil
}

func (s *MemStore) ListVisibleTo(ctx context.Context, employeeID int) ([]Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.list(func(doc Document) bool {
		return doc.UploadedBy == employeeID || doc.IsPublic
	}), nil
}

func (s *MemStore) ListByCategory(ctx context.Context, categoryID int) ([]Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.list(func(doc Document) bool {
		return doc.CategoryID != nil && *doc.CategoryID == categoryID
	}), nil
}

func (s *MemStore) GetByID(ctx context.Context, id int) (*Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &doc, nil
}

func (s *MemStore) Create(ctx context.Context, doc Document) (*Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc.ID = s.nextID
	s.nextID++
	doc.UploadedAt = s.now()
	s.records[doc.ID] = doc
	return &doc, nil
}

func (s *MemStore) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return ErrNotFound
	}
	delete(s.records, id)
	return nil
}

package documents

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func testClock(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		current = current.Add(time.Minute)
		return current
	}
}

func TestCreateStampsUploadedAt(t *testing.T) {
	store := NewMemStore()
	store.now = func() time.Time { return time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC) }

	doc, err := store.Create(context.Background(), Document{Name: "resume.pdf", Filename: "abc.pdf", UploadedBy: 1})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if !doc.UploadedAt.Equal(time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected stamped upload time, got %v", doc.UploadedAt)
	}
}

func TestListNewestFirst(t *testing.T) {
	store := NewMemStore()
	store.now = testClock(time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC))
	ctx := context.Background()

	for _, name := range []string{"first.pdf", "second.pdf", "third.pdf"} {
		if _, err := store.Create(ctx, Document{Name: name, Filename: name, UploadedBy: 1}); err != nil {
			t.Fatalf("create error: %v", err)
		}
	}

	all, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 documents, got %d", len(all))
	}
	if all[0].Name != "third.pdf" || all[2].Name != "first.pdf" {
		t.Fatalf("expected newest first, got %+v", all)
	}
}

func TestVisibilityFilter(t *testing.T) {
	store := NewMemStore()
	store.now = testClock(time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC))
	ctx := context.Background()

	own, err := store.Create(ctx, Document{Name: "own.pdf", Filename: "own.pdf", UploadedBy: 1})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	public, err := store.Create(ctx, Document{Name: "handbook.pdf", Filename: "handbook.pdf", UploadedBy: 2, IsPublic: true})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if _, err := store.Create(ctx, Document{Name: "private.pdf", Filename: "private.pdf", UploadedBy: 2}); err != nil {
		t.Fatalf("create error: %v", err)
	}

	visible, err := store.ListVisibleTo(ctx, 1)
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(visible) != 2 {
		t.Fatalf("expected exactly 2 visible documents, got %d", len(visible))
	}
	seen := map[int]bool{}
	for _, doc := range visible {
		seen[doc.ID] = true
	}
	if !seen[own.ID] || !seen[public.ID] {
		t.Fatalf("wrong visible set: %+v", visible)
	}
}

func TestListByCategory(t *testing.T) {
	store := NewMemStore()
	ctx := context.Background()

	identityCat := 1
	if _, err := store.Create(ctx, Document{Name: "aadhaar.jpg", Filename: "a.jpg", UploadedBy: 1, CategoryID: &identityCat}); err != nil {
		t.Fatalf("create error: %v", err)
	}
	if _, err := store.Create(ctx, Document{Name: "degree.pdf", Filename: "d.pdf", UploadedBy: 1}); err != nil {
		t.Fatalf("create error: %v", err)
	}

	inCategory, err := store.ListByCategory(ctx, identityCat)
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(inCategory) != 1 || inCategory[0].Name != "aadhaar.jpg" {
		t.Fatalf("wrong category filter result: %+v", inCategory)
	}
}

func TestDeleteDoesNotReuseIDs(t *testing.T) {
	store := NewMemStore()
	ctx := context.Background()

	first, err := store.Create(ctx, Document{Name: "one.pdf", Filename: "one.pdf", UploadedBy: 1})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if err := store.Delete(ctx, first.ID); err != nil {
		t.Fatalf("delete error: %v", err)
	}
	if _, err := store.GetByID(ctx, first.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := store.Delete(ctx, first.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}

	second, err := store.Create(ctx, Document{Name: "two.pdf", Filename: "two.pdf", UploadedBy: 1})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if second.ID <= first.ID {
		t.Fatalf("id reused: first %d, second %d", first.ID, second.ID)
	}
}

func TestCategoryStore(t *testing.T) {
	store := NewMemCategoryStore()
	ctx := context.Background()

	created, err := store.Create(ctx, Category{Name: "Identity", Description: "Government ids"})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}

	found, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get error: %v", err)
	}
	if found.Name != "Identity" {
		t.Fatalf("wrong category: %+v", found)
	}

	if _, err := store.GetByID(ctx, 99); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestNewStoredFilename(t *testing.T) {
	name := NewStoredFilename("aadhaar-card.jpg")
	if !strings.HasSuffix(name, ".jpg") {
		t.Fatalf("expected extension kept, got %q", name)
	}
	if name == NewStoredFilename("aadhaar-card.jpg") {
		t.Fatal("expected unique names per call")
	}
}

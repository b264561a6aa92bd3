package timeoff

import (
	"context"
	"errors"
	"testing"
)

func TestCreateAndGet(t *testing.T) {
	store := NewMemStore()
	ctx := context.Background()

	created, err := store.Create(ctx, Balance{EmployeeID: 7, VacationTotal: 18, SickTotal: 12, PersonalTotal: 6})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if created.ID != 1 {
		t.Fatalf("expected id 1, got %d", created.ID)
	}

	found, err := store.GetByEmployee(ctx, 7)
	if err != nil {
		t.Fatalf("get error: %v", err)
	}
	if found.VacationTotal != 18 {
		t.Fatalf("wrong balance: %+v", found)
	}

	if _, err := store.GetByEmployee(ctx, 8); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestOneBalancePerEmployee(t *testing.T) {
	store := NewMemStore()
	ctx := context.Background()

	if _, err := store.Create(ctx, Balance{EmployeeID: 7}); err != nil {
		t.Fatalf("create error: %v", err)
	}
	if _, err := store.Create(ctx, Balance{EmployeeID: 7}); !errors.Is(err, ErrBalanceExists) {
		t.Fatalf("expected ErrBalanceExists, got %v", err)
	}
}

func TestUpdateMergesPartial(t *testing.T) {
	store := NewMemStore()
	ctx := context.Background()

	if _, err := store.Create(ctx, Balance{EmployeeID: 7, VacationTotal: 18, SickTotal: 12}); err != nil {
		t.Fatalf("create error: %v", err)
	}

	used := 3.5
	updated, err := store.Update(ctx, 7, BalanceUpdate{VacationUsed: &used})
	if err != nil {
		t.Fatalf("update error: %v", err)
	}
	if updated.VacationUsed != 3.5 {
		t.Fatalf("expected vacation used 3.5, got %v", updated.VacationUsed)
	}
	if updated.VacationTotal != 18 || updated.SickTotal != 12 {
		t.Fatalf("merge clobbered totals: %+v", updated)
	}

	if _, err := store.Update(ctx, 8, BalanceUpdate{VacationUsed: &used}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

package dashboards

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestCreateDemotesPreviousDefault(t *testing.T) {
	store := NewMemStore()
	ctx := context.Background()

	first, err := store.Create(ctx, Dashboard{EmployeeID: 7, Name: "Overview", IsDefault: true})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	second, err := store.Create(ctx, Dashboard{EmployeeID: 7, Name: "Leave Focus", IsDefault: true})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}

	def, err := store.GetDefault(ctx, 7)
	if err != nil {
		t.Fatalf("get default error: %v", err)
	}
	if def.ID != second.ID {
		t.Fatalf("expected dashboard %d as default, got %d", second.ID, def.ID)
	}

	all, err := store.ListByEmployee(ctx, 7)
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	defaults := 0
	for _, dashboard := range all {
		if dashboard.IsDefault {
			defaults++
		}
	}
	if defaults != 1 {
		t.Fatalf("expected exactly one default, got %d", defaults)
	}

	demoted, err := store.GetByID(ctx, first.ID)
	if err != nil {
		t.Fatalf("get error: %v", err)
	}
	if demoted.IsDefault {
		t.Fatal("first dashboard must have been demoted")
	}
}

func TestDefaultIsPerEmployee(t *testing.T) {
	store := NewMemStore()
	ctx := context.Background()

	mine, err := store.Create(ctx, Dashboard{EmployeeID: 7, Name: "Mine", IsDefault: true})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if _, err := store.Create(ctx, Dashboard{EmployeeID: 8, Name: "Theirs", IsDefault: true}); err != nil {
		t.Fatalf("create error: %v", err)
	}

	def, err := store.GetDefault(ctx, 7)
	if err != nil {
		t.Fatalf("get default error: %v", err)
	}
	if def.ID != mine.ID {
		t.Fatalf("another employee's default leaked: %+v", def)
	}
}

func TestUpdateMergesAndDemotes(t *testing.T) {
	store := NewMemStore()
	ctx := context.Background()

	first, err := store.Create(ctx, Dashboard{EmployeeID: 7, Name: "Overview", IsDefault: true})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	second, err := store.Create(ctx, Dashboard{EmployeeID: 7, Name: "Secondary"})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}

	layout := json.RawMessage(`{"widgets":["timeoff","progress"]}`)
	makeDefault := true
	updated, err := store.Update(ctx, second.ID, DashboardUpdate{Layout: layout, IsDefault: &makeDefault})
	if err != nil {
		t.Fatalf("update error: %v", err)
	}
	if updated.Name != "Secondary" {
		t.Fatalf("merge clobbered name: %+v", updated)
	}
	if string(updated.Layout) != string(layout) {
		t.Fatalf("layout not applied: %s", updated.Layout)
	}

	previous, err := store.GetByID(ctx, first.ID)
	if err != nil {
		t.Fatalf("get error: %v", err)
	}
	if previous.IsDefault {
		t.Fatal("previous default must have been demoted by the update")
	}

	if _, err := store.Update(ctx, 99, DashboardUpdate{IsDefault: &makeDefault}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteDoesNotReuseIDs(t *testing.T) {
	store := NewMemStore()
	ctx := context.Background()

	first, err := store.Create(ctx, Dashboard{EmployeeID: 7, Name: "Overview"})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if err := store.Delete(ctx, first.ID); err != nil {
		t.Fatalf("delete error: %v", err)
	}
	if err := store.Delete(ctx, first.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}

	second, err := store.Create(ctx, Dashboard{EmployeeID: 7, Name: "Replacement"})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if second.ID <= first.ID {
		t.Fatalf("id reused: first %d, second %d", first.ID, second.ID)
	}
}

func TestGetDefaultAbsent(t *testing.T) {
	store := NewMemStore()

	if _, err := store.GetDefault(context.Background(), 7); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

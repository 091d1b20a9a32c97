package catalog

import (
	"context"
	"errors"
	"testing"

	"snackpos/internal/core"
	"snackpos/internal/store"
)

func newService() *Service {
	return NewService(store.NewTables(store.NewMemory()))
}

func TestListSeedsEmptyCatalog(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	items, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 4 {
		t.Fatalf("expected 4 seeded items, got %d", len(items))
	}

	wantNames := []string{"Mixture", "Nippat", "Murukku", "Popcorn"}
	wantPaise := []int64{5000, 4000, 6000, 3000}
	for i, it := range items {
		if it.ID != i+1 {
			t.Fatalf("item %d expected id %d, got %d", i, i+1, it.ID)
		}
		if it.Name != wantNames[i] {
			t.Fatalf("item %d expected name %q, got %q", i, wantNames[i], it.Name)
		}
		if it.Price.Paise != wantPaise[i] {
			t.Fatalf("item %d expected %d paise, got %d", i, wantPaise[i], it.Price.Paise)
		}
		if it.Image == "" {
			t.Fatalf("item %d missing seed image", i)
		}
	}

	// Seeding happens once, not on every listing
	again, err := svc.List(ctx)
	if err != nil || len(again) != 4 {
		t.Fatalf("second list: %v (%d items)", err, len(again))
	}
}

func TestCreateAssignsMaxPlusOne(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	if _, err := svc.List(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}

	created, err := svc.Create(ctx, "Chakli", core.Money{Paise: 4500}, "img")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != 5 {
		t.Fatalf("expected id 5, got %d", created.ID)
	}

	// Gaps don't cause reuse: delete id 5, next create still gets max+1
	if err := svc.Delete(ctx, 2); err != nil {
		t.Fatalf("delete: %v", err)
	}
	next, err := svc.Create(ctx, "Sev", core.Money{Paise: 3500}, "img")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if next.ID != 6 {
		t.Fatalf("expected id 6, got %d", next.ID)
	}
}

func TestCreateOnEmptyCatalogStartsAtOne(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	// No List call first, so no seed has happened
	created, err := svc.Create(ctx, "Chakli", core.Money{Paise: 4500}, "img")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != 1 {
		t.Fatalf("expected id 1, got %d", created.ID)
	}
}

func TestCreateValidation(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	if _, err := svc.Create(ctx, "  ", core.Money{Paise: 100}, ""); !errors.Is(err, core.ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}
	if _, err := svc.Create(ctx, "Chakli", core.Money{Paise: -5}, ""); !errors.Is(err, core.ErrInvalidPrice) {
		t.Fatalf("expected ErrInvalidPrice, got %v", err)
	}
}

func TestUpdateRetainsImageWhenOmitted(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	if _, err := svc.List(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}

	updated, err := svc.Update(ctx, 1, "Spicy Mixture", core.Money{Paise: 5500}, "")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Spicy Mixture" || updated.Price.Paise != 5500 {
		t.Fatalf("fields not updated: %+v", updated)
	}
	if updated.Image == "" {
		t.Fatalf("image should have been retained")
	}

	replaced, err := svc.Update(ctx, 1, "Spicy Mixture", core.Money{Paise: 5500}, "newimg")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if replaced.Image != "newimg" {
		t.Fatalf("image should have been replaced, got %q", replaced.Image)
	}
}

func TestUpdateNotFound(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	if _, err := svc.Update(ctx, 99, "Ghost", core.Money{Paise: 100}, ""); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteAbsentIsNoOp(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	if _, err := svc.List(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := svc.Delete(ctx, 99); err != nil {
		t.Fatalf("delete absent id should be a no-op, got %v", err)
	}
	items, _ := svc.List(ctx)
	if len(items) != 4 {
		t.Fatalf("catalog length changed: %d", len(items))
	}
}

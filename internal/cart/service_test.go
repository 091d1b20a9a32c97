package cart

import (
	"context"
	"errors"
	"testing"

	"snackpos/internal/core"
	"snackpos/internal/store"
)

var (
	mixture = core.MenuItem{ID: 1, Name: "Mixture", Price: core.Money{Paise: 5000}, Image: "img1"}
	popcorn = core.MenuItem{ID: 4, Name: "Popcorn", Price: core.Money{Paise: 3000}, Image: "img4"}
)

func newService() (*Service, *store.Tables) {
	tables := store.NewTables(store.NewMemory())
	return NewService(tables), tables
}

func TestAddUpsertsByID(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()

	for i := 0; i < 3; i++ {
		if _, err := svc.Add(ctx, mixture); err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
	}

	lines := svc.Lines(ctx)
	if len(lines) != 1 {
		t.Fatalf("expected one line per id, got %d", len(lines))
	}
	if lines[0].Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", lines[0].Quantity)
	}
}

func TestAddSnapshotsPrice(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()

	if _, err := svc.Add(ctx, mixture); err != nil {
		t.Fatalf("add: %v", err)
	}

	// A later catalog price change never reaches the open line
	changed := mixture
	changed.Price = core.Money{Paise: 9900}
	if _, err := svc.Add(ctx, changed); err != nil {
		t.Fatalf("add: %v", err)
	}

	lines := svc.Lines(ctx)
	if lines[0].Price.Paise != 5000 {
		t.Fatalf("price snapshot lost: %d", lines[0].Price.Paise)
	}
	if lines[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", lines[0].Quantity)
	}
}

func TestUpdateQuantity(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()

	if _, err := svc.Add(ctx, mixture); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.UpdateQuantity(ctx, mixture.ID, 2); err != nil {
		t.Fatalf("update: %v", err)
	}
	if lines := svc.Lines(ctx); lines[0].Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", lines[0].Quantity)
	}

	// Decrement by the full quantity removes the line
	if _, err := svc.UpdateQuantity(ctx, mixture.ID, -3); err != nil {
		t.Fatalf("update: %v", err)
	}
	if lines := svc.Lines(ctx); len(lines) != 0 {
		t.Fatalf("expected line removed, got %v", lines)
	}

	// Absent id is a no-op
	lines, err := svc.UpdateQuantity(ctx, 42, 1)
	if err != nil {
		t.Fatalf("update absent: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("no-op expected, got %v", lines)
	}
}

func TestQuantityNeverBelowOne(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()

	if _, err := svc.Add(ctx, mixture); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.UpdateQuantity(ctx, mixture.ID, -5); err != nil {
		t.Fatalf("update: %v", err)
	}
	for _, l := range svc.Lines(ctx) {
		if l.Quantity <= 0 {
			t.Fatalf("cart holds a line with quantity %d", l.Quantity)
		}
	}
}

func TestTotal(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()

	if got := svc.Total(ctx); got.Paise != 0 {
		t.Fatalf("empty cart should total 0, got %d", got.Paise)
	}

	// Mixture x2 + Popcorn x1 = 130.00
	svc.Add(ctx, mixture)
	svc.Add(ctx, mixture)
	svc.Add(ctx, popcorn)

	if got := svc.Total(ctx); got.Paise != 13000 {
		t.Fatalf("expected ₹130.00 (13000 paise), got %d", got.Paise)
	}
}

func TestTotalOfIsOrderInvariant(t *testing.T) {
	a := core.CartLine{ID: 1, Price: core.Money{Paise: 5000}, Quantity: 2}
	b := core.CartLine{ID: 4, Price: core.Money{Paise: 3000}, Quantity: 1}
	c := core.CartLine{ID: 3, Price: core.Money{Paise: 6000}, Quantity: 5}

	want := TotalOf([]core.CartLine{a, b, c}).Paise
	perms := [][]core.CartLine{
		{a, c, b}, {b, a, c}, {b, c, a}, {c, a, b}, {c, b, a},
	}
	for i, p := range perms {
		if got := TotalOf(p).Paise; got != want {
			t.Fatalf("perm %d: got %d, want %d", i, got, want)
		}
	}
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	svc, tables := newService()

	if err := svc.Clear(ctx); !errors.Is(err, core.ErrCartAlreadyEmpty) {
		t.Fatalf("expected ErrCartAlreadyEmpty, got %v", err)
	}

	svc.Add(ctx, mixture)
	if err := svc.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if lines := tables.Cart(ctx); len(lines) != 0 {
		t.Fatalf("cart not cleared in store: %v", lines)
	}
}

func TestMutationsPersistImmediately(t *testing.T) {
	ctx := context.Background()
	tables := store.NewTables(store.NewMemory())
	svc := NewService(tables)

	svc.Add(ctx, mixture)

	// A second service over the same store sees the write
	other := NewService(tables)
	if lines := other.Lines(ctx); len(lines) != 1 || lines[0].Name != "Mixture" {
		t.Fatalf("mutation not persisted: %v", lines)
	}
}

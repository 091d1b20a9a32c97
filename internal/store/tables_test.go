package store

import (
	"context"
	"testing"

	"snackpos/internal/core"
)

func TestTablesRoundTrip(t *testing.T) {
	ctx := context.Background()
	tables := NewTables(NewMemory())

	items := []core.MenuItem{
		{ID: 1, Name: "Mixture", Price: core.Money{Paise: 5000}},
		{ID: 2, Name: "Nippat", Price: core.Money{Paise: 4000}},
	}
	if err := tables.SaveMenu(ctx, items); err != nil {
		t.Fatalf("save menu: %v", err)
	}

	got := tables.Menu(ctx)
	if len(got) != 2 || got[0].Name != "Mixture" || got[1].Price.Paise != 4000 {
		t.Fatalf("unexpected menu after round trip: %v", got)
	}
}

func TestTablesMissingKeyIsEmpty(t *testing.T) {
	ctx := context.Background()
	tables := NewTables(NewMemory())

	if got := tables.Sales(ctx); len(got) != 0 {
		t.Fatalf("expected empty sales, got %v", got)
	}
	if got := tables.Cart(ctx); len(got) != 0 {
		t.Fatalf("expected empty cart, got %v", got)
	}
}

func TestTablesFailOpenOnCorruptJSON(t *testing.T) {
	ctx := context.Background()
	backend := NewMemory()
	if err := backend.Set(ctx, core.TableMenuItems, "{not json"); err != nil {
		t.Fatalf("set: %v", err)
	}

	tables := NewTables(backend)
	if got := tables.Menu(ctx); len(got) != 0 {
		t.Fatalf("corrupt table should read as empty, got %v", got)
	}
}

func TestSaveNilPersistsEmptyArray(t *testing.T) {
	ctx := context.Background()
	backend := NewMemory()
	tables := NewTables(backend)

	if err := tables.SaveCart(ctx, nil); err != nil {
		t.Fatalf("save: %v", err)
	}
	raw, ok, err := backend.Get(ctx, core.TableCart)
	if err != nil || !ok {
		t.Fatalf("expected stored value, ok=%v err=%v", ok, err)
	}
	if raw != "[]" {
		t.Fatalf("nil should persist as empty array, got %q", raw)
	}
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	if _, err := Open(Config{Driver: "postgres"}); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
	b, err := Open(Config{})
	if err != nil || b == nil {
		t.Fatalf("default driver should open memory backend, err=%v", err)
	}
}

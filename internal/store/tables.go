package store

import (
	"context"
	"encoding/json"
	"log/slog"

	"snackpos/internal/core"
)

// Tables is the typed accessor over a Backend. Each table is one
// JSON-encoded array under a string key. Reads fail open: an absent key,
// a backend error, or unparsable JSON all come back as an empty slice,
// because every caller falls back to a default anyway.
type Tables struct {
	backend Backend
}

func NewTables(backend Backend) *Tables {
	return &Tables{backend: backend}
}

func (t *Tables) Menu(ctx context.Context) []core.MenuItem {
	return load[core.MenuItem](ctx, t.backend, core.TableMenuItems)
}

func (t *Tables) SaveMenu(ctx context.Context, items []core.MenuItem) error {
	return save(ctx, t.backend, core.TableMenuItems, items)
}

func (t *Tables) Cart(ctx context.Context) []core.CartLine {
	return load[core.CartLine](ctx, t.backend, core.TableCart)
}

func (t *Tables) SaveCart(ctx context.Context, lines []core.CartLine) error {
	return save(ctx, t.backend, core.TableCart, lines)
}

func (t *Tables) Sales(ctx context.Context) []core.Sale {
	return load[core.Sale](ctx, t.backend, core.TableSales)
}

func (t *Tables) SaveSales(ctx context.Context, sales []core.Sale) error {
	return save(ctx, t.backend, core.TableSales, sales)
}

func (t *Tables) Close() error {
	return t.backend.Close()
}

func load[T any](ctx context.Context, b Backend, key string) []T {
	raw, ok, err := b.Get(ctx, key)
	if err != nil {
		slog.WarnContext(ctx, "Table read failed, treating as empty",
			"table", key, "error", err)
		return []T{}
	}
	if !ok || raw == "" {
		return []T{}
	}
	var records []T
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		slog.WarnContext(ctx, "Table contains invalid JSON, treating as empty",
			"table", key, "error", err)
		return []T{}
	}
	return records
}

func save[T any](ctx context.Context, b Backend, key string, records []T) error {
	if records == nil {
		records = []T{}
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return b.Set(ctx, key, string(raw))
}

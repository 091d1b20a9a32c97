// Package catalog implements CRUD over the menu.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"snackpos/internal/core"
	"snackpos/internal/store"
)

type Service struct {
	tables *store.Tables
}

func NewService(tables *store.Tables) *Service {
	return &Service{tables: tables}
}

// List returns all menu items in stored order. An empty catalog is
// seeded with the four default items before the first listing.
func (s *Service) List(ctx context.Context) ([]core.MenuItem, error) {
	items := s.tables.Menu(ctx)
	if len(items) == 0 {
		items = defaultMenu()
		if err := s.tables.SaveMenu(ctx, items); err != nil {
			return nil, fmt.Errorf("seed menu: %w", err)
		}
		slog.InfoContext(ctx, "Seeded default menu", "count", len(items))
	}
	return items, nil
}

// Create appends a new item with id = max existing + 1 (1 for an empty
// catalog) and persists the catalog.
func (s *Service) Create(ctx context.Context, name string, price core.Money, image string) (core.MenuItem, error) {
	item := core.MenuItem{
		Name:  strings.TrimSpace(name),
		Price: price,
		Image: image,
	}
	if err := item.Validate(); err != nil {
		return core.MenuItem{}, err
	}

	items := s.tables.Menu(ctx)
	item.ID = nextID(items)
	items = append(items, item)
	if err := s.tables.SaveMenu(ctx, items); err != nil {
		return core.MenuItem{}, fmt.Errorf("save menu: %w", err)
	}

	slog.InfoContext(ctx, "Menu item created",
		"id", item.ID, "name", item.Name, "price_paise", item.Price.Paise)
	return item, nil
}

// Update edits an item in place. An empty image keeps the existing one.
// Returns core.ErrNotFound if the id is absent.
func (s *Service) Update(ctx context.Context, id int, name string, price core.Money, image string) (core.MenuItem, error) {
	updated := core.MenuItem{
		ID:    id,
		Name:  strings.TrimSpace(name),
		Price: price,
	}
	if err := updated.Validate(); err != nil {
		return core.MenuItem{}, err
	}

	items := s.tables.Menu(ctx)
	for i := range items {
		if items[i].ID != id {
			continue
		}
		items[i].Name = updated.Name
		items[i].Price = updated.Price
		if image != "" {
			items[i].Image = image
		}
		if err := s.tables.SaveMenu(ctx, items); err != nil {
			return core.MenuItem{}, fmt.Errorf("save menu: %w", err)
		}
		slog.InfoContext(ctx, "Menu item updated", "id", id, "name", items[i].Name)
		return items[i], nil
	}
	return core.MenuItem{}, core.ErrNotFound
}

// Delete removes the item with the given id. Absent ids are a no-op.
func (s *Service) Delete(ctx context.Context, id int) error {
	items := s.tables.Menu(ctx)
	kept := make([]core.MenuItem, 0, len(items))
	for _, it := range items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(items) {
		return nil
	}
	if err := s.tables.SaveMenu(ctx, kept); err != nil {
		return fmt.Errorf("save menu: %w", err)
	}
	slog.InfoContext(ctx, "Menu item deleted", "id", id)
	return nil
}

// Find returns the item with the given id or core.ErrNotFound.
func (s *Service) Find(ctx context.Context, id int) (core.MenuItem, error) {
	for _, it := range s.tables.Menu(ctx) {
		if it.ID == id {
			return it, nil
		}
	}
	return core.MenuItem{}, core.ErrNotFound
}

func nextID(items []core.MenuItem) int {
	next := 1
	for _, it := range items {
		if it.ID >= next {
			next = it.ID + 1
		}
	}
	return next
}

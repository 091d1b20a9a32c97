// Package cart implements the id-keyed cart with its upsert and total
// arithmetic. Every mutation persists the cart synchronously before
// returning; the caller re-renders afterwards.
package cart

import (
	"context"
	"fmt"
	"log/slog"

	"snackpos/internal/core"
	"snackpos/internal/store"
)

type Service struct {
	tables *store.Tables
}

func NewService(tables *store.Tables) *Service {
	return &Service{tables: tables}
}

// Lines returns the current cart contents.
func (s *Service) Lines(ctx context.Context) []core.CartLine {
	return s.tables.Cart(ctx)
}

// Add upserts the menu item into the cart: an existing line gains one
// quantity, otherwise a new line is appended with a price snapshot taken
// from the item now. Catalog price edits never touch open lines.
func (s *Service) Add(ctx context.Context, item core.MenuItem) ([]core.CartLine, error) {
	lines := s.tables.Cart(ctx)
	found := false
	for i := range lines {
		if lines[i].ID == item.ID {
			lines[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		lines = append(lines, core.CartLine{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: 1,
			Image:    item.Image,
		})
	}
	if err := s.tables.SaveCart(ctx, lines); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}
	slog.InfoContext(ctx, "Item added to cart", "id", item.ID, "name", item.Name)
	return lines, nil
}

// Remove drops the line with the given id. Absent ids are a no-op.
func (s *Service) Remove(ctx context.Context, id int) ([]core.CartLine, error) {
	lines := s.tables.Cart(ctx)
	kept := make([]core.CartLine, 0, len(lines))
	for _, l := range lines {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	if err := s.tables.SaveCart(ctx, kept); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}
	return kept, nil
}

// UpdateQuantity adds delta to the line's quantity. A result of zero or
// below removes the line entirely. Absent ids are a no-op.
func (s *Service) UpdateQuantity(ctx context.Context, id, delta int) ([]core.CartLine, error) {
	lines := s.tables.Cart(ctx)
	for i := range lines {
		if lines[i].ID != id {
			continue
		}
		lines[i].Quantity += delta
		if lines[i].Quantity <= 0 {
			return s.Remove(ctx, id)
		}
		if err := s.tables.SaveCart(ctx, lines); err != nil {
			return nil, fmt.Errorf("save cart: %w", err)
		}
		return lines, nil
	}
	return lines, nil
}

// Total sums price*quantity over all lines in paise. Empty cart totals
// zero.
func (s *Service) Total(ctx context.Context) core.Money {
	return TotalOf(s.tables.Cart(ctx))
}

// TotalOf computes the total of the given lines without touching the
// store.
func TotalOf(lines []core.CartLine) core.Money {
	var paise int64
	for _, l := range lines {
		paise += l.Price.Paise * int64(l.Quantity)
	}
	return core.Money{Paise: paise}
}

// Clear empties the cart. Clearing an already-empty cart reports
// core.ErrCartAlreadyEmpty; state is unchanged either way in that case.
func (s *Service) Clear(ctx context.Context) error {
	lines := s.tables.Cart(ctx)
	if len(lines) == 0 {
		return core.ErrCartAlreadyEmpty
	}
	if err := s.tables.SaveCart(ctx, nil); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	slog.InfoContext(ctx, "Cart cleared", "removed_lines", len(lines))
	return nil
}

// Package sales records, edits, and searches completed transactions.
package sales

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"snackpos/internal/core"
	"snackpos/internal/events"
	"snackpos/internal/store"
)

// displayDateLayout is the one documented rendering of a sale date,
// used for the searchable date string.
const displayDateLayout = "1/2/2006, 3:04:05 PM"

type Service struct {
	tables *store.Tables
	events *events.Client
	txn    txnSource
	now    func() time.Time
}

func NewService(tables *store.Tables, eventsClient *events.Client) *Service {
	return &Service{
		tables: tables,
		events: eventsClient,
		now:    time.Now,
	}
}

// Confirm turns the current cart into an immutable sale record: a fresh
// transaction id, the current timestamp, deep-copied line items with
// image references stripped, and the cart total. The sale is appended
// to the sales table and the cart is cleared. An empty cart is rejected
// with core.ErrEmptyCart and no state change.
func (s *Service) Confirm(ctx context.Context) (core.Sale, error) {
	lines := s.tables.Cart(ctx)
	if len(lines) == 0 {
		return core.Sale{}, core.ErrEmptyCart
	}

	items := make([]core.SaleItem, len(lines))
	var total int64
	for i, l := range lines {
		items[i] = core.SaleItem{
			Name:     l.Name,
			Price:    l.Price,
			Quantity: l.Quantity,
		}
		total += l.Price.Paise * int64(l.Quantity)
	}

	sale := core.Sale{
		ID:    s.txn.Next(s.now()),
		Date:  s.now(),
		Items: items,
		Total: core.Money{Paise: total},
	}

	all := append(s.tables.Sales(ctx), sale)
	if err := s.tables.SaveSales(ctx, all); err != nil {
		return core.Sale{}, fmt.Errorf("save sales: %w", err)
	}
	if err := s.tables.SaveCart(ctx, nil); err != nil {
		return core.Sale{}, fmt.Errorf("clear cart: %w", err)
	}

	slog.InfoContext(ctx, "Sale recorded",
		"sale_id", sale.ID, "total_paise", sale.Total.Paise, "items", len(sale.Items))

	// Event publishing is best-effort; the sale is already persisted.
	if s.events != nil {
		if err := s.events.PublishSaleRecorded(ctx, sale.ID, sale.Total.Paise); err != nil {
			slog.ErrorContext(ctx, "Failed to publish sale.recorded",
				"sale_id", sale.ID, "error", err)
		}
	}

	return sale, nil
}

// Edit overwrites date, items, and total of the sale wholesale. The
// submitted items are filtered of blank-name and non-positive entries
// and must leave at least one; otherwise core.ErrNoValidItems is
// returned with no state change. The total is stored exactly as
// submitted, not re-derived from the items.
func (s *Service) Edit(ctx context.Context, id string, date time.Time, items []core.SaleItem, total core.Money) (core.Sale, error) {
	valid := core.FilterItems(items)
	if len(valid) == 0 {
		return core.Sale{}, core.ErrNoValidItems
	}

	all := s.tables.Sales(ctx)
	for i := range all {
		if all[i].ID != id {
			continue
		}
		all[i].Date = date
		all[i].Items = valid
		all[i].Total = total
		if err := s.tables.SaveSales(ctx, all); err != nil {
			return core.Sale{}, fmt.Errorf("save sales: %w", err)
		}
		slog.InfoContext(ctx, "Sale edited",
			"sale_id", id, "items", len(valid), "total_paise", total.Paise)
		return all[i], nil
	}
	return core.Sale{}, core.ErrNotFound
}

// Delete removes the sale with the given id. Absent ids are a no-op.
func (s *Service) Delete(ctx context.Context, id string) error {
	all := s.tables.Sales(ctx)
	kept := make([]core.Sale, 0, len(all))
	for _, sale := range all {
		if sale.ID != id {
			kept = append(kept, sale)
		}
	}
	if len(kept) == len(all) {
		return nil
	}
	if err := s.tables.SaveSales(ctx, kept); err != nil {
		return fmt.Errorf("save sales: %w", err)
	}
	slog.InfoContext(ctx, "Sale deleted", "sale_id", id)

	if s.events != nil {
		if err := s.events.PublishSaleDeleted(ctx, id); err != nil {
			slog.ErrorContext(ctx, "Failed to publish sale.deleted",
				"sale_id", id, "error", err)
		}
	}
	return nil
}

// List returns all recorded sales in stored order.
func (s *Service) List(ctx context.Context) []core.Sale {
	return s.tables.Sales(ctx)
}

// Search returns sales whose transaction id, formatted date, or item
// names contain term, case-insensitively. An empty term returns all.
func (s *Service) Search(ctx context.Context, term string) []core.Sale {
	all := s.tables.Sales(ctx)
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return all
	}

	matched := make([]core.Sale, 0, len(all))
	for _, sale := range all {
		if matches(sale, term) {
			matched = append(matched, sale)
		}
	}
	return matched
}

func matches(sale core.Sale, term string) bool {
	if strings.Contains(strings.ToLower(sale.ID), term) {
		return true
	}
	if strings.Contains(strings.ToLower(sale.Date.Format(displayDateLayout)), term) {
		return true
	}
	names := make([]string, len(sale.Items))
	for i, it := range sale.Items {
		names[i] = strings.ToLower(it.Name)
	}
	return strings.Contains(strings.Join(names, " "), term)
}

package core

import (
	"errors"
	"strings"
	"time"
)

// Table names in the persistent store.
const (
	TableMenuItems = "menuItems"
	TableCart      = "cart"
	TableSales     = "sales"
)

type (
	// MenuItem is a catalog entry. IDs are assigned monotonically
	// (max existing + 1) starting at 1.
	MenuItem struct {
		ID    int    `json:"id"`
		Name  string `json:"name"`
		Price Money  `json:"price"`
		Image string `json:"image"`
	}

	// CartLine is one menu item in the cart. Price is a snapshot taken
	// when the line was added; later catalog edits never touch it.
	// Quantity is always >= 1 — a decrement to zero removes the line.
	CartLine struct {
		ID       int    `json:"id"`
		Name     string `json:"name"`
		Price    Money  `json:"price"`
		Quantity int    `json:"quantity"`
		Image    string `json:"image"`
	}

	// SaleItem is a line snapshot inside a recorded sale. It carries no
	// image reference.
	SaleItem struct {
		Name     string `json:"name"`
		Price    Money  `json:"price"`
		Quantity int    `json:"quantity"`
	}

	// Sale is a recorded transaction. Immutable except through the
	// explicit edit path, which overwrites date/items/total wholesale.
	Sale struct {
		ID    string     `json:"id"`
		Date  time.Time  `json:"date"`
		Items []SaleItem `json:"items"`
		Total Money      `json:"total"`
	}
)

var (
	ErrNotFound         = errors.New("record not found")
	ErrEmptyName        = errors.New("empty name")
	ErrInvalidPrice     = errors.New("invalid price")
	ErrInvalidQuantity  = errors.New("invalid quantity")
	ErrEmptyCart        = errors.New("cart is empty")
	ErrCartAlreadyEmpty = errors.New("cart is already empty")
	ErrNoValidItems     = errors.New("at least one valid item is required")
)

func (m MenuItem) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return ErrEmptyName
	}
	if m.Price.Paise < 0 {
		return ErrInvalidPrice
	}
	return nil
}

// Valid reports whether the item survives the sale-edit filter: blank
// names and non-positive prices or quantities are discarded.
func (it SaleItem) Valid() bool {
	if strings.TrimSpace(it.Name) == "" {
		return false
	}
	if it.Price.Paise <= 0 {
		return false
	}
	return it.Quantity > 0
}

// FilterItems drops invalid entries from a submitted item list,
// preserving order.
func FilterItems(items []SaleItem) []SaleItem {
	out := make([]SaleItem, 0, len(items))
	for _, it := range items {
		if it.Valid() {
			out = append(out, it)
		}
	}
	return out
}

// ItemsTotal sums price*quantity over the given items.
func ItemsTotal(items []SaleItem) Money {
	var paise int64
	for _, it := range items {
		paise += it.Price.Paise * int64(it.Quantity)
	}
	return Money{Paise: paise}
}

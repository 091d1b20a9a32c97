package core

import "testing"

func TestMenuItemValidate(t *testing.T) {
	if err := (MenuItem{Name: "Mixture", Price: Money{Paise: 5000}}).Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (MenuItem{Name: "Free sample", Price: Money{Paise: 0}}).Validate(); err != nil {
		t.Fatalf("zero price should be valid, got %v", err)
	}

	bads := []MenuItem{
		{Name: "", Price: Money{Paise: 100}},
		{Name: "   ", Price: Money{Paise: 100}},
		{Name: "Mixture", Price: Money{Paise: -1}},
	}
	for i, m := range bads {
		if err := m.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestFilterItems(t *testing.T) {
	in := []SaleItem{
		{Name: "Mixture", Price: Money{Paise: 5000}, Quantity: 2},
		{Name: "", Price: Money{Paise: 5000}, Quantity: 1},         // blank name
		{Name: "Nippat", Price: Money{Paise: 0}, Quantity: 1},      // zero price
		{Name: "Murukku", Price: Money{Paise: 6000}, Quantity: 0},  // zero qty
		{Name: "Popcorn", Price: Money{Paise: 3000}, Quantity: -1}, // negative qty
		{Name: "Popcorn", Price: Money{Paise: 3000}, Quantity: 1},
	}
	out := FilterItems(in)
	if len(out) != 2 {
		t.Fatalf("expected 2 valid items, got %d: %v", len(out), out)
	}
	if out[0].Name != "Mixture" || out[1].Name != "Popcorn" {
		t.Fatalf("order not preserved: %v", out)
	}
}

func TestItemsTotal(t *testing.T) {
	items := []SaleItem{
		{Name: "Mixture", Price: Money{Paise: 5000}, Quantity: 2},
		{Name: "Popcorn", Price: Money{Paise: 3000}, Quantity: 1},
	}
	if got := ItemsTotal(items); got.Paise != 13000 {
		t.Fatalf("expected 13000 paise, got %d", got.Paise)
	}
	if got := ItemsTotal(nil); got.Paise != 0 {
		t.Fatalf("empty items should total 0, got %d", got.Paise)
	}
}

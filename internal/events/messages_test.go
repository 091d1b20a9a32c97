package events

import (
	"bytes"
	"testing"
)

func TestSaleRecordedRoundTrip(t *testing.T) {
	e := NewSaleRecorded("TXN1705300000001", 13000)

	data, err := e.ToJSON()
	if err != nil {
		t.Fatalf("to json: %v", err)
	}
	got, err := SaleEventFromJSON(data)
	if err != nil {
		t.Fatalf("from json: %v", err)
	}

	if got.Kind != KindSaleRecorded {
		t.Errorf("Kind = %q, want %q", got.Kind, KindSaleRecorded)
	}
	if got.SaleID != "TXN1705300000001" {
		t.Errorf("SaleID = %q", got.SaleID)
	}
	if got.TotalPaise != 13000 {
		t.Errorf("TotalPaise = %d, want 13000", got.TotalPaise)
	}
	if got.Timestamp.IsZero() {
		t.Error("Timestamp not set")
	}
}

func TestSaleDeletedOmitsTotal(t *testing.T) {
	e := NewSaleDeleted("TXN1")

	data, err := e.ToJSON()
	if err != nil {
		t.Fatalf("to json: %v", err)
	}
	if bytes.Contains(data, []byte(`"total_paise"`)) {
		t.Errorf("deletion event should omit total: %s", data)
	}

	got, err := SaleEventFromJSON(data)
	if err != nil {
		t.Fatalf("from json: %v", err)
	}
	if got.Kind != KindSaleDeleted || got.SaleID != "TXN1" {
		t.Errorf("unexpected event: %+v", got)
	}
}

func TestFromJSONRejectsGarbage(t *testing.T) {
	if _, err := SaleEventFromJSON([]byte("not json")); err == nil {
		t.Fatal("expected error for malformed payload")
	}
}

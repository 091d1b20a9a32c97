package events

import (
	"encoding/json"
	"time"
)

// Event kinds carried on the sale events queue.
const (
	KindSaleRecorded = "sale.recorded"
	KindSaleDeleted  = "sale.deleted"
)

// SaleEvent is the lightweight message published after a sale mutation.
// Consumers fetch the full record from the store by transaction id.
type SaleEvent struct {
	Kind       string    `json:"kind"`
	SaleID     string    `json:"sale_id"`
	TotalPaise int64     `json:"total_paise,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

func NewSaleRecorded(saleID string, totalPaise int64) *SaleEvent {
	return &SaleEvent{
		Kind:       KindSaleRecorded,
		SaleID:     saleID,
		TotalPaise: totalPaise,
		Timestamp:  time.Now(),
	}
}

func NewSaleDeleted(saleID string) *SaleEvent {
	return &SaleEvent{
		Kind:      KindSaleDeleted,
		SaleID:    saleID,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the event to JSON bytes.
func (e *SaleEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// SaleEventFromJSON creates an event from JSON bytes.
func SaleEventFromJSON(data []byte) (*SaleEvent, error) {
	var e SaleEvent
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

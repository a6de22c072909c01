package types

import (
	"database/sql/driver"

	"github.com/google/uuid"
)

// BookingItem is a point-in-time snapshot of a purchased catalog item.
// Prices are copied at checkout so later catalog edits cannot rewrite
// what a booking was charged.
type BookingItem struct {
	ItemID    uuid.UUID `json:"item_id"`
	Kind      string    `json:"kind"`
	Name      string    `json:"name"`
	UnitPrice int64     `json:"unit_price"`
	PaidPrice int64     `json:"paid_price"`
}

// BookingItems is the snapshot list stored as a JSON column.
type BookingItems []BookingItem

func (b BookingItems) Value() (driver.Value, error) {
	if b == nil {
		return jsonValue(BookingItems{})
	}
	return jsonValue(b)
}

func (b *BookingItems) Scan(value any) error {
	if value == nil {
		*b = BookingItems{}
		return nil
	}
	return jsonScan(value, b)
}

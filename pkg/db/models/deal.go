package models

import (
	"time"

	"github.com/google/uuid"
)

// Deal is a time-boxed package offer. PercentageOff is recomputed from
// the two prices on every write, never accepted from the client.
type Deal struct {
	ID            uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	Title         string     `gorm:"column:title;not null"`
	Description   string     `gorm:"column:description;not null;default:''"`
	OriginalPrice int64      `gorm:"column:original_price;not null"`
	OfferPrice    int64      `gorm:"column:offer_price;not null"`
	PercentageOff int        `gorm:"column:percentage_off;not null;default:0"`
	Image         string     `gorm:"column:image;not null;default:''"`
	ValidUntil    *time.Time `gorm:"column:valid_until"`
	CreatedAt     time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

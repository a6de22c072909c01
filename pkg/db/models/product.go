package models

import (
	"time"

	"github.com/google/uuid"
)

// Product is a retail catalog item. DiscountPrice, when set, is the
// effective unit price at checkout; Price remains the strike-through
// display value.
type Product struct {
	ID            uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Name          string    `gorm:"column:name;not null"`
	Price         int64     `gorm:"column:price;not null"`
	DiscountPrice *int64    `gorm:"column:discount_price"`
	Description   string    `gorm:"column:description;not null;default:''"`
	Category      string    `gorm:"column:category;not null;index"`
	Image         string    `gorm:"column:image;not null;default:''"`
	Rating        float64   `gorm:"column:rating;not null;default:0"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// EffectivePrice is the unit price a buyer actually pays.
func (p Product) EffectivePrice() int64 {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.Price
}

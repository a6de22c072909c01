package models

import (
	"time"

	"github.com/google/uuid"
)

// Service is a bookable salon service (threading, facial, makeup...).
// Price is whole rupees.
type Service struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Name        string    `gorm:"column:name;not null"`
	Price       int64     `gorm:"column:price;not null"`
	Description string    `gorm:"column:description;not null;default:''"`
	Image       string    `gorm:"column:image;not null;default:''"`
	Category    string    `gorm:"column:category;not null;index"`
	Offer       *string   `gorm:"column:offer"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

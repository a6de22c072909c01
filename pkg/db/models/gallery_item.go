package models

import (
	"time"

	"github.com/google/uuid"
)

type GalleryItem struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Image     string    `gorm:"column:image;not null"`
	Caption   string    `gorm:"column:caption;not null;default:''"`
	Category  string    `gorm:"column:category;not null;default:''"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

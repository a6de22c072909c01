package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/radhanandani03-png/Lotoria/pkg/enums"
)

// HomeWidget is a positioned tile on the storefront home screen.
type HomeWidget struct {
	ID         uuid.UUID          `gorm:"column:id;type:uuid;primaryKey"`
	Type       enums.WidgetType   `gorm:"column:type;not null"`
	Content    string             `gorm:"column:content;not null;default:''"`
	LinkURL    *string            `gorm:"column:link_url"`
	Caption    *string            `gorm:"column:caption"`
	Title      *string            `gorm:"column:title"`
	Subtitle   *string            `gorm:"column:subtitle"`
	ButtonText *string            `gorm:"column:button_text"`
	Layout     enums.WidgetLayout `gorm:"column:layout;not null;default:full"`
	Price      *int64             `gorm:"column:price"`
	Discount   *string            `gorm:"column:discount"`
	Position   int                `gorm:"column:position;not null;default:0"`
	CreatedAt  time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}

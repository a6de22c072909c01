package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/radhanandani03-png/Lotoria/pkg/types"
)

// CustomPage is an admin-authored content page rendered from an
// ordered list of typed blocks.
type CustomPage struct {
	ID        uuid.UUID        `gorm:"column:id;type:uuid;primaryKey"`
	Title     string           `gorm:"column:title;not null"`
	Slug      string           `gorm:"column:slug;not null;uniqueIndex"`
	Blocks    types.PageBlocks `gorm:"column:blocks;type:text"`
	Published bool             `gorm:"column:published;not null;default:true"`
	CreatedAt time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}

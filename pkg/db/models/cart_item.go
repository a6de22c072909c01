package models

import (
	"time"

	"github.com/google/uuid"
)

// CartItem is one slot in a user's cart. The same product may occupy
// several slots; Position preserves insertion order and is how a single
// occurrence is removed.
type CartItem struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;index"`
	ProductID uuid.UUID `gorm:"column:product_id;type:uuid;not null"`
	Position  int       `gorm:"column:position;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

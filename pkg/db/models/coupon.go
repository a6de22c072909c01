package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/radhanandani03-png/Lotoria/pkg/enums"
)

// Coupon codes match case-sensitively and exactly as stored.
type Coupon struct {
	ID           uuid.UUID          `gorm:"column:id;type:uuid;primaryKey"`
	Code         string             `gorm:"column:code;not null;uniqueIndex"`
	DiscountType enums.DiscountType `gorm:"column:discount_type;not null"`
	Value        int64              `gorm:"column:value;not null"`
	ApplicableTo enums.CouponScope  `gorm:"column:applicable_to;not null;default:all"`
	TargetID     *uuid.UUID         `gorm:"column:target_id;type:uuid"`
	TargetName   *string            `gorm:"column:target_name"`
	CreatedAt    time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}

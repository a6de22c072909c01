package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/radhanandani03-png/Lotoria/pkg/enums"
	"github.com/radhanandani03-png/Lotoria/pkg/types"
)

// Booking records a checkout. Amounts and item prices are snapshots
// taken at checkout time; later catalog edits never change them.
type Booking struct {
	ID                uuid.UUID           `gorm:"column:id;type:uuid;primaryKey"`
	UserID            uuid.UUID           `gorm:"column:user_id;type:uuid;not null;index"`
	CustomerName      string              `gorm:"column:customer_name;not null"`
	Mobile            string              `gorm:"column:mobile;not null"`
	Address           string              `gorm:"column:address;not null"`
	Date              string              `gorm:"column:date;not null;default:''"`
	TimeSlot          string              `gorm:"column:time_slot;not null;default:''"`
	Type              enums.BookingType   `gorm:"column:type;not null"`
	ServiceID         *uuid.UUID          `gorm:"column:service_id;type:uuid"`
	DealID            *uuid.UUID          `gorm:"column:deal_id;type:uuid"`
	Status            enums.BookingStatus `gorm:"column:status;not null;default:pending"`
	BaseAmount        int64               `gorm:"column:base_amount;not null"`
	Discount          int64               `gorm:"column:discount;not null;default:0"`
	TotalAmount       int64               `gorm:"column:total_amount;not null"`
	CouponCode        *string             `gorm:"column:coupon_code"`
	PaymentMethod     enums.PaymentMethod `gorm:"column:payment_method;not null"`
	Items             types.BookingItems  `gorm:"column:items;type:text"`
	AdminNotification *string             `gorm:"column:admin_notification"`
	CreatedAt         time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}

package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/radhanandani03-png/Lotoria/pkg/enums"
)

// User is a storefront customer or console admin account.
type User struct {
	ID              uuid.UUID      `gorm:"column:id;type:uuid;primaryKey"`
	Name            string         `gorm:"column:name;not null"`
	Email           string         `gorm:"column:email;not null;uniqueIndex"`
	Mobile          string         `gorm:"column:mobile;not null;default:''"`
	Address         string         `gorm:"column:address;not null;default:''"`
	FavoriteService *string        `gorm:"column:favorite_service"`
	PasswordHash    string         `gorm:"column:password_hash;not null"`
	Role            enums.UserRole `gorm:"column:role;not null;default:customer"`
	CreatedAt       time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

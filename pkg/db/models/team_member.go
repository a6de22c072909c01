package models

import (
	"time"

	"github.com/google/uuid"
)

type TeamMember struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Name        string    `gorm:"column:name;not null"`
	Role        string    `gorm:"column:role;not null;default:''"`
	Image       string    `gorm:"column:image;not null;default:''"`
	IsFounder   bool      `gorm:"column:is_founder;not null;default:false"`
	Bio         *string   `gorm:"column:bio"`
	Certificate *string   `gorm:"column:certificate"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

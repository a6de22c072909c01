package models

import "time"

// Setting is a named JSON document. Theme, payment, contact and admin
// settings each live in one row keyed by name.
type Setting struct {
	Name      string    `gorm:"column:name;primaryKey"`
	Value     string    `gorm:"column:value;type:text;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

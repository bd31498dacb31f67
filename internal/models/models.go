package models

import (
	"time"

	"gorm.io/gorm"
)

// Palette is a named base palette saved for reuse
type Palette struct {
	ID          uint           `gorm:"primaryKey"`
	Name        string         `gorm:"uniqueIndex;not null"`
	Description string         `gorm:"type:text"`
	Data        string         `gorm:"type:text;not null"` // JSON document, key order preserved
	Format      string         `gorm:"default:hex"`        // "hex" or "channels"
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// Setting is a key-value pair, used for the persisted color mode
type Setting struct {
	ID        uint   `gorm:"primaryKey"`
	Key       string `gorm:"uniqueIndex;not null"`
	Value     string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// APIToken records an issued API token so it can be listed and revoked
type APIToken struct {
	ID        uint   `gorm:"primaryKey"`
	TokenID   string `gorm:"uniqueIndex;not null"` // jti claim
	Name      string `gorm:"not null"`             // who or what the token was issued to
	Revoked   bool   `gorm:"default:false"`
	ExpiresAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides for consistent naming
func (Palette) TableName() string {
	return "palettes"
}

func (Setting) TableName() string {
	return "settings"
}

func (APIToken) TableName() string {
	return "api_tokens"
}

// All lists every model for migration
func All() []any {
	return []any{&Palette{}, &Setting{}, &APIToken{}}
}

// Package model holds the GORM-specific structs for the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserLocationModel is the GORM-specific struct for the 'user_locations' table.
// One row per user, overwritten on every location tick. The geohash column is
// btree-indexed so lexical range queries serve the proximity scan.
type UserLocationModel struct {
	UserID         uuid.UUID `gorm:"type:uuid;primary_key"`
	Latitude       float64   `gorm:"not null"`
	Longitude      float64   `gorm:"not null"`
	AccuracyMeters float64   `gorm:"type:decimal(10,2);not null;default:0"`
	Geohash        string    `gorm:"type:varchar(12);not null;index"`
	IsVisible      bool      `gorm:"not null;default:true"`
	AppState       string    `gorm:"type:varchar(16);not null;default:'foreground'"`
	RecordedAt     time.Time `gorm:"not null"`
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserLocationModel) TableName() string {
	return "user_locations"
}

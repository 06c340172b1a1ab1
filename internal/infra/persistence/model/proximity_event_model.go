package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ProximityEventModel is the GORM-specific struct for the 'proximity_events'
// table. The partial unique index over the sorted pair enforces the
// one-active-event-per-pair invariant at the store level; concurrent
// creators lose with a unique-constraint violation.
type ProximityEventModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserAID          uuid.UUID `gorm:"type:uuid;not null;index:idx_proximity_events_active_pair,unique,where:status = 'active'"`
	UserBID          uuid.UUID `gorm:"type:uuid;not null;index:idx_proximity_events_active_pair,unique,where:status = 'active'"`
	DistanceMeters   float64   `gorm:"type:decimal(10,2);not null"`
	LocationGeohash  string    `gorm:"type:varchar(6);not null"`
	PlaceName        string    `gorm:"type:varchar(255)"`
	Status           string    `gorm:"type:varchar(16);not null;index"`
	NotificationSent bool      `gorm:"not null;default:false"`
	ViewedBy         datatypes.JSON
	StartedAt        time.Time `gorm:"not null"`
	LastSeenAt       time.Time `gorm:"not null;index"`
	EndedAt          *time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProximityEventModel) TableName() string {
	return "proximity_events"
}

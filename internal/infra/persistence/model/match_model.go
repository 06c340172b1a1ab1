package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MatchModel is the GORM-specific struct for the 'matches' table. The pair
// columns are unique regardless of status, so a second create attempt for
// the same pair collides and falls back to the update path.
type MatchModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserAID           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_matches_pair"`
	UserBID           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_matches_pair"`
	ProximityEventID  uuid.UUID `gorm:"type:uuid;not null"`
	Status            string    `gorm:"type:varchar(16);not null;default:'active'"`
	InstagramShared   datatypes.JSON
	LastMessage       datatypes.JSON
	LastInteractionAt time.Time `gorm:"not null;index"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (MatchModel) TableName() string {
	return "matches"
}

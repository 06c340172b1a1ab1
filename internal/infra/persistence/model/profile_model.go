package model

import (
	"time"

	"github.com/google/uuid"
)

// UserProfileModel is the GORM-specific struct for the 'user_profiles'
// table. The profile service owns writes; this service only reads the
// columns needed for notifications.
type UserProfileModel struct {
	UserID          uuid.UUID `gorm:"type:uuid;primary_key"`
	DisplayName     string    `gorm:"type:varchar(64);not null"`
	InstagramHandle string    `gorm:"type:varchar(64)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserProfileModel) TableName() string {
	return "user_profiles"
}

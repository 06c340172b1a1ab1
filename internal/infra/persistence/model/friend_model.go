package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// FriendRequestModel is the GORM-specific struct for the 'friend_requests'
// table. One record per pair; rejection keeps the row so a later re-request
// reopens it instead of duplicating.
type FriendRequestModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserAID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_friend_requests_pair"`
	UserBID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_friend_requests_pair"`
	RequesterID      uuid.UUID `gorm:"type:uuid;not null"`
	ProximityEventID uuid.UUID `gorm:"type:uuid;not null"`
	Status           string    `gorm:"type:varchar(16);not null;default:'pending';index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (FriendRequestModel) TableName() string {
	return "friend_requests"
}

// FriendModel is the GORM-specific struct for the 'friends' table.
// Existence of a row is the friendship.
type FriendModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserAID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_friends_pair"`
	UserBID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_friends_pair"`
	ProximityEventID uuid.UUID `gorm:"type:uuid;not null"`
	InstagramShared  datatypes.JSON
	LastMessage      datatypes.JSON
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (FriendModel) TableName() string {
	return "friends"
}

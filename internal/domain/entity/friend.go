package entity

import (
	"time"

	"github.com/google/uuid"
)

// FriendRequestStatus is the lifecycle state of a friend request.
// accepted and rejected are terminal.
type FriendRequestStatus string

const (
	FriendRequestPending  FriendRequestStatus = "pending"
	FriendRequestAccepted FriendRequestStatus = "accepted"
	FriendRequestRejected FriendRequestStatus = "rejected"
)

// FriendRequest is a one-sided connection attempt created from a proximity
// event, keyed by the unordered pair like matches are.
type FriendRequest struct {
	ID               uuid.UUID           `json:"id"`                 // The Global Unique Identifier (GUID) for the request.
	Pair             Pair                `json:"pair"`               // The unordered user pair, normalized.
	RequesterID      uuid.UUID           `json:"requester_id"`       // Which of the pair initiated the request.
	ProximityEventID uuid.UUID           `json:"proximity_event_id"` // The event this request originated from.
	Status           FriendRequestStatus `json:"status"`             // pending, accepted or rejected.
	CreatedAt        time.Time           `json:"created_at"`         // When the request was created.
	UpdatedAt        time.Time           `json:"updated_at"`         // Timestamp of the last modification.
}

// Addressee returns the user the request is directed at.
func (r *FriendRequest) Addressee() uuid.UUID {
	other, _ := r.Pair.Other(r.RequesterID)

	return other
}

// Friend is a durable friendship. Existence of the record is the
// relationship; there is no status field.
type Friend struct {
	ID               uuid.UUID          `json:"id"`                     // The Global Unique Identifier (GUID) for the friendship.
	Pair             Pair               `json:"pair"`                   // The unordered user pair, normalized.
	ProximityEventID uuid.UUID          `json:"proximity_event_id"`     // The event the friendship originated from.
	InstagramShared  map[uuid.UUID]bool `json:"instagram_shared"`       // Per-user Instagram sharing consent.
	LastMessage      *MessagePreview    `json:"last_message,omitempty"` // Denormalized chat preview.
	CreatedAt        time.Time          `json:"created_at"`             // When the friendship was created.
	UpdatedAt        time.Time          `json:"updated_at"`             // Timestamp of the last modification.
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// MatchStatus is the lifecycle state of a match.
type MatchStatus string

const (
	MatchStatusActive  MatchStatus = "active"
	MatchStatusDeleted MatchStatus = "deleted"
)

// MessagePreview is the denormalized last-message snippet kept on pair
// records. It is written by the messaging collaborator, not by this engine.
type MessagePreview struct {
	Text     string    `json:"text"`      // Truncated message text.
	SenderID uuid.UUID `json:"sender_id"` // Who sent the message.
	SentAt   time.Time `json:"sent_at"`   // When it was sent.
}

// Match is a durable mutual connection created from a proximity event.
// Creation is idempotent on the pair key: a second create attempt updates
// the existing record instead of duplicating it.
type Match struct {
	ID                uuid.UUID          `json:"id"`                     // The Global Unique Identifier (GUID) for the match.
	Pair              Pair               `json:"pair"`                   // The unordered user pair, normalized.
	ProximityEventID  uuid.UUID          `json:"proximity_event_id"`     // The event this match originated from.
	Status            MatchStatus        `json:"status"`                 // active or deleted.
	InstagramShared   map[uuid.UUID]bool `json:"instagram_shared"`       // Per-user Instagram sharing consent.
	LastMessage       *MessagePreview    `json:"last_message,omitempty"` // Denormalized chat preview.
	LastInteractionAt time.Time          `json:"last_interaction_at"`    // Refreshed on every create-or-update.
	CreatedAt         time.Time          `json:"created_at"`             // When the match was first created.
	UpdatedAt         time.Time          `json:"updated_at"`             // Timestamp of the last modification.
}

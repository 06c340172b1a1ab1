package entity

import (
	"time"

	"github.com/google/uuid"
)

// EventStatus is the lifecycle state of a proximity event.
type EventStatus string

const (
	// EventStatusActive means the pair is currently considered near each other.
	EventStatusActive EventStatus = "active"
	// EventStatusEnded means proximity lapsed before either user acted.
	EventStatusEnded EventStatus = "ended"
	// EventStatusMatched means one of the users chose to connect.
	EventStatusMatched EventStatus = "matched"
	// EventStatusIgnored means one of the users skipped the encounter.
	EventStatusIgnored EventStatus = "ignored"
)

// Terminal reports whether the status ends the event instance. A new active
// event may be created for the same pair once the prior one is terminal.
func (s EventStatus) Terminal() bool {
	return s == EventStatusEnded || s == EventStatusMatched || s == EventStatusIgnored
}

// EventLocation is the privacy-reduced place a proximity event happened at.
// Geohash is truncated to 6 characters (~600 m cell); the full-precision fix
// never leaves the location store.
type EventLocation struct {
	Geohash   string `json:"geohash"`              // 6-char geohash of the detecting user's position.
	PlaceName string `json:"place_name,omitempty"` // Optional human-readable place label.
}

// ProximityEvent records that two users were near each other. At most one
// active event exists per unordered pair at any time.
type ProximityEvent struct {
	ID               uuid.UUID     `json:"id"`                 // The Global Unique Identifier (GUID) for the event.
	Pair             Pair          `json:"pair"`               // The unordered user pair, normalized.
	DistanceMeters   float64       `json:"distance_meters"`    // Exact great-circle distance at last detection.
	Location         EventLocation `json:"location"`           // Privacy-reduced detection location.
	Status           EventStatus   `json:"status"`             // Current lifecycle state.
	NotificationSent bool          `json:"notification_sent"`  // Whether the one-time detection notification fired.
	ViewedBy         []uuid.UUID   `json:"viewed_by"`          // Users who have seen the event in the app.
	StartedAt        time.Time     `json:"started_at"`         // When proximity was first detected.
	LastSeenAt       time.Time     `json:"last_seen_at"`       // When proximity was last confirmed by a scan.
	EndedAt          *time.Time    `json:"ended_at,omitempty"` // When the event left the active state, if it has.
}

// ViewedByUser reports whether the given user already viewed the event.
func (e *ProximityEvent) ViewedByUser(id uuid.UUID) bool {
	for _, v := range e.ViewedBy {
		if v == id {
			return true
		}
	}

	return false
}

package service

import (
	"context"
)

// Encounter event kinds carried on the outbox.
const (
	EncounterKindProximity = "proximity"
	EncounterKindMatch     = "match"
)

// EncounterEvent is the payload published when a proximity event or match
// needs a push notification fanned out. Recipients, display names and
// distance are resolved by the publisher side so the worker stays a dumb
// pipe to FCM.
type EncounterEvent struct {
	RequestID        string   `json:"request_id,omitempty"` // For distributed tracing
	Kind             string   `json:"kind"`                 // proximity or match
	ProximityEventID string   `json:"proximity_event_id"`
	MatchID          string   `json:"match_id,omitempty"`
	RecipientIDs     []string `json:"recipient_ids"` // Users to notify (both sides of the pair)
	DisplayNames     []string `json:"display_names"` // Counterpart display name per recipient, same order
	DistanceMeters   float64  `json:"distance_meters,omitempty"`
	LocationGeohash  string   `json:"location_geohash,omitempty"` // Reduced-precision hash only
}

// EventPublisher defines the interface for publishing events to a message queue.
// Publishing is best effort: a failed publish must never roll back the state
// transition that produced the event.
type EventPublisher interface {
	// PublishEncounterEvent publishes an encounter event for async fan-out.
	PublishEncounterEvent(ctx context.Context, event *EncounterEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

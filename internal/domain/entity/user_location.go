package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppState describes the client application state when a location fix was
// recorded. Background fixes tend to be less accurate and less fresh.
type AppState string

const (
	AppStateForeground AppState = "foreground"
	AppStateBackground AppState = "background"
	AppStateInactive   AppState = "inactive"
)

// Valid reports whether s is one of the known app states.
func (s AppState) Valid() bool {
	switch s {
	case AppStateForeground, AppStateBackground, AppStateInactive:
		return true
	}

	return false
}

// UserLocation is the single live location record kept per user. It is
// overwritten on every location tick; no history is retained.
type UserLocation struct {
	UserID         uuid.UUID `json:"user_id"`         // The user this fix belongs to.
	Latitude       float64   `json:"latitude"`        // The geographic latitude of the fix.
	Longitude      float64   `json:"longitude"`       // The geographic longitude of the fix.
	AccuracyMeters float64   `json:"accuracy_meters"` // Reported GPS accuracy in meters.
	Geohash        string    `json:"geohash"`         // Full-precision (9 char) geohash of the fix.
	IsVisible      bool      `json:"is_visible"`      // Whether the user is discoverable by proximity scans.
	AppState       AppState  `json:"app_state"`       // Client app state at record time.
	RecordedAt     time.Time `json:"recorded_at"`     // Timestamp of the fix.
}

// Coordinate returns the fix as a coordinate value.
func (l *UserLocation) Coordinate() Coordinate {
	return Coordinate{Latitude: l.Latitude, Longitude: l.Longitude}
}

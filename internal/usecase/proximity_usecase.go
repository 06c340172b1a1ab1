package usecase

import (
	"context"

	"crosspath/internal/domain/entity"

	"github.com/google/uuid"
)

// NearbyUser is one scan hit: another visible user currently within the
// search radius of the scanning user.
type NearbyUser struct {
	UserID         uuid.UUID `json:"user_id"`
	DistanceMeters float64   `json:"distance_meters"`
}

// ScanSummary reports what a proximity scan did.
type ScanSummary struct {
	NearbyCount     int `json:"nearby_count"`
	EventsCreated   int `json:"events_created"`
	EventsRefreshed int `json:"events_refreshed"`
	EventsNotified  int `json:"events_notified"`
}

// ProximityUsecase defines the interface for the proximity scan and event
// engine use cases
type ProximityUsecase interface {
	// ScanNearby finds all visible users with a fresh fix within the search
	// radius of the given user, by exact great-circle distance.
	ScanNearby(ctx context.Context, userID uuid.UUID) ([]*NearbyUser, error)

	// DetectEncounters runs a scan for the user and drives the event state
	// machine: a new active event per newly-near pair, a refresh for pairs
	// already active, and a one-time notification publish per new event.
	DetectEncounters(ctx context.Context, userID uuid.UUID) (*ScanSummary, error)

	// GetEvent retrieves a single event the user participates in.
	GetEvent(ctx context.Context, userID, eventID uuid.UUID) (*entity.ProximityEvent, error)

	// ListEvents retrieves the user's events, newest first, optionally
	// filtered by status.
	ListEvents(ctx context.Context, userID uuid.UUID, statuses []entity.EventStatus, limit, offset int) ([]*entity.ProximityEvent, error)

	// MarkEventViewed records that the user saw the event in the app.
	MarkEventViewed(ctx context.Context, userID, eventID uuid.UUID) error

	// EndStaleEvents sweeps active events whose proximity was not
	// re-confirmed within the staleness window. Returns how many ended.
	EndStaleEvents(ctx context.Context) (int64, error)
}

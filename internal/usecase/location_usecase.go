// Package usecase defines the application-layer interfaces and their
// input/output types.
package usecase

import (
	"context"
	"time"

	"crosspath/internal/domain/entity"

	"github.com/google/uuid"
)

// RecordLocationInput represents the input for a location tick
type RecordLocationInput struct {
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	AccuracyMeters float64   `json:"accuracy_meters"`
	AppState       string    `json:"app_state"`
	IsVisible      *bool     `json:"is_visible,omitempty"`
	RecordedAt     time.Time `json:"recorded_at"`
}

// LocationTick is the result of recording a location fix. A scan only runs
// when the user moved past the minimum-movement threshold (or had no prior
// fix), so stationary clients pinging every few seconds stay cheap.
type LocationTick struct {
	Location      *entity.UserLocation `json:"location"`
	Moved         bool                 `json:"moved"`
	ScanTriggered bool                 `json:"scan_triggered"`
	Scan          *ScanSummary         `json:"scan,omitempty"`
}

// LocationUsecase defines the interface for live location management use cases
type LocationUsecase interface {
	// RecordLocation writes the user's latest fix and triggers a proximity
	// scan when the movement threshold is crossed.
	RecordLocation(ctx context.Context, userID uuid.UUID, input *RecordLocationInput) (*LocationTick, error)

	// GetLocation retrieves the user's live location fix.
	GetLocation(ctx context.Context, userID uuid.UUID) (*entity.UserLocation, error)

	// SetVisibility toggles whether the user is discoverable by scans.
	SetVisibility(ctx context.Context, userID uuid.UUID, visible bool) (*entity.UserLocation, error)

	// DeleteLocation removes the user's live location entirely.
	DeleteLocation(ctx context.Context, userID uuid.UUID) error
}

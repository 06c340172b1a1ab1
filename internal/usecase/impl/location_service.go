// Package impl contains the concrete implementations of the application use cases.
package impl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crosspath/config"
	"crosspath/internal/domain/entity"
	"crosspath/internal/domain/repository"
	"crosspath/internal/geohash"
	"crosspath/internal/usecase"

	"github.com/google/uuid"
)

var (
	// ErrNoLocation is returned when the user has no live location on file
	ErrNoLocation = errors.New("no live location on file")
	// ErrInvalidAppState is returned when the reported app state is unknown
	ErrInvalidAppState = errors.New("invalid app state")
)

type locationService struct {
	locationRepo repository.LocationRepository
	proximitySvc usecase.ProximityUsecase
	config       *config.Config
}

// NewLocationService creates a new location service instance
func NewLocationService(
	locationRepo repository.LocationRepository,
	proximitySvc usecase.ProximityUsecase,
	cfg *config.Config,
) usecase.LocationUsecase {
	// If Proximity is not configured, provide the default tunables
	if cfg.Proximity == nil {
		cfg.Proximity = config.DefaultProximity()
	}

	return &locationService{
		locationRepo: locationRepo,
		proximitySvc: proximitySvc,
		config:       cfg,
	}
}

// RecordLocation writes the user's latest fix and triggers a proximity scan
// when the movement threshold is crossed. Stationary ticks refresh the
// stored fix without scanning.
func (s *locationService) RecordLocation(ctx context.Context, userID uuid.UUID, input *usecase.RecordLocationInput) (*usecase.LocationTick, error) {
	if err := geohash.ValidateCoordinate(input.Latitude, input.Longitude); err != nil {
		return nil, err
	}

	appState := entity.AppState(input.AppState)
	if input.AppState == "" {
		appState = entity.AppStateForeground
	}
	if !appState.Valid() {
		return nil, ErrInvalidAppState
	}

	recordedAt := input.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = time.Now()
	}

	hash, err := geohash.Encode(input.Latitude, input.Longitude, s.config.Proximity.LocationPrecision)
	if err != nil {
		return nil, err
	}

	// Movement gate: compare against the previous fix, if any.
	moved := true
	isVisible := true

	previous, err := s.locationRepo.FindLocationByUser(ctx, userID)
	switch {
	case err == nil:
		isVisible = previous.IsVisible
		distance := geohash.Distance(previous.Latitude, previous.Longitude, input.Latitude, input.Longitude)
		moved = distance >= s.config.Proximity.MinMoveMeters
	case errors.Is(err, repository.ErrLocationNotFound):
		// First fix always counts as movement.
	default:
		return nil, fmt.Errorf("failed to load previous fix: %w", err)
	}

	if input.IsVisible != nil {
		isVisible = *input.IsVisible
	}

	location := &entity.UserLocation{
		UserID:         userID,
		Latitude:       input.Latitude,
		Longitude:      input.Longitude,
		AccuracyMeters: input.AccuracyMeters,
		Geohash:        hash,
		IsVisible:      isVisible,
		AppState:       appState,
		RecordedAt:     recordedAt,
	}

	if err := s.locationRepo.UpsertLocation(ctx, location); err != nil {
		return nil, fmt.Errorf("failed to upsert location: %w", err)
	}

	tick := &usecase.LocationTick{
		Location: location,
		Moved:    moved,
	}

	// Invisible users neither discover nor get discovered; skip the scan.
	if !moved || !isVisible {
		return tick, nil
	}

	scan, err := s.proximitySvc.DetectEncounters(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to detect encounters: %w", err)
	}

	tick.ScanTriggered = true
	tick.Scan = scan

	return tick, nil
}

// GetLocation retrieves the user's live location fix.
func (s *locationService) GetLocation(ctx context.Context, userID uuid.UUID) (*entity.UserLocation, error) {
	location, err := s.locationRepo.FindLocationByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, ErrNoLocation
		}

		return nil, fmt.Errorf("failed to find location by user: %w", err)
	}

	return location, nil
}

// SetVisibility toggles whether the user is discoverable by scans.
func (s *locationService) SetVisibility(ctx context.Context, userID uuid.UUID, visible bool) (*entity.UserLocation, error) {
	location, err := s.locationRepo.FindLocationByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, ErrNoLocation
		}

		return nil, fmt.Errorf("failed to find location by user: %w", err)
	}

	location.IsVisible = visible

	if err := s.locationRepo.UpsertLocation(ctx, location); err != nil {
		return nil, fmt.Errorf("failed to update visibility: %w", err)
	}

	return location, nil
}

// DeleteLocation removes the user's live location entirely.
func (s *locationService) DeleteLocation(ctx context.Context, userID uuid.UUID) error {
	if err := s.locationRepo.DeleteLocation(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return ErrNoLocation
		}

		return fmt.Errorf("failed to delete location: %w", err)
	}

	return nil
}

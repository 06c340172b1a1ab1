package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"crosspath/config"
	"crosspath/internal/domain/entity"
	"crosspath/internal/domain/repository"
	"crosspath/internal/domain/service"
	"crosspath/internal/geohash"
	"crosspath/internal/usecase"

	"github.com/google/uuid"
)

var (
	// ErrEventNotFound is returned when a proximity event does not exist
	ErrEventNotFound = errors.New("proximity event not found")
	// ErrNotEventParticipant is returned when a user acts on an event they
	// are not part of
	ErrNotEventParticipant = errors.New("user is not a participant of this proximity event")
)

const defaultEventPageSize = 50

type proximityService struct {
	locationRepo repository.LocationRepository
	eventRepo    repository.ProximityEventRepository
	profileRepo  repository.ProfileRepository
	publisher    service.EventPublisher
	config       *config.Config
	logger       *slog.Logger
}

// NewProximityService creates a new proximity service instance
func NewProximityService(
	locationRepo repository.LocationRepository,
	eventRepo repository.ProximityEventRepository,
	profileRepo repository.ProfileRepository,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ProximityUsecase {
	if cfg.Proximity == nil {
		cfg.Proximity = config.DefaultProximity()
	}

	return &proximityService{
		locationRepo: locationRepo,
		eventRepo:    eventRepo,
		profileRepo:  profileRepo,
		publisher:    publisher,
		config:       cfg,
		logger:       logger,
	}
}

// ScanNearby finds all visible users with a fresh fix within the search
// radius of the given user.
func (s *proximityService) ScanNearby(ctx context.Context, userID uuid.UUID) ([]*usecase.NearbyUser, error) {
	fix, err := s.locationRepo.FindLocationByUser(ctx, userID)
	if err != nil {
		// No fix on file means we cannot scan; an empty result, not an error.
		if errors.Is(err, repository.ErrLocationNotFound) {
			return []*usecase.NearbyUser{}, nil
		}

		return nil, fmt.Errorf("failed to find location by user: %w", err)
	}

	return s.scan(ctx, fix)
}

// scan runs the geohash range queries around the fix and filters candidates
// down to exact-distance hits.
func (s *proximityService) scan(ctx context.Context, fix *entity.UserLocation) ([]*usecase.NearbyUser, error) {
	cfg := s.config.Proximity

	// A stale fix of our own means we do not know where the user is.
	if time.Since(fix.RecordedAt) > cfg.MaxFixAge {
		return []*usecase.NearbyUser{}, nil
	}

	bounds, err := geohash.QueryBounds(fix.Latitude, fix.Longitude, cfg.RadiusMeters)
	if err != nil {
		return nil, err
	}

	// Range queries are independent; any failure fails the whole scan
	// rather than returning a partial picture.
	seen := make(map[uuid.UUID]struct{})
	nearby := make([]*usecase.NearbyUser, 0)

	for _, bound := range bounds {
		candidates, err := s.locationRepo.FindLocationsInGeohashRange(ctx, bound.StartHash, bound.EndHash)
		if err != nil {
			return nil, fmt.Errorf("failed to query geohash range: %w", err)
		}

		for _, candidate := range candidates {
			if candidate.UserID == fix.UserID {
				continue
			}
			if _, dup := seen[candidate.UserID]; dup {
				continue
			}
			seen[candidate.UserID] = struct{}{}

			if !candidate.IsVisible {
				continue
			}
			if time.Since(candidate.RecordedAt) > cfg.MaxFixAge {
				continue
			}

			// Geohash cells over-approximate the circle; the exact
			// great-circle distance is the final filter.
			distance := geohash.Distance(fix.Latitude, fix.Longitude, candidate.Latitude, candidate.Longitude)
			if distance > cfg.RadiusMeters {
				continue
			}

			nearby = append(nearby, &usecase.NearbyUser{
				UserID:         candidate.UserID,
				DistanceMeters: distance,
			})
		}
	}

	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].DistanceMeters < nearby[j].DistanceMeters
	})

	return nearby, nil
}

// DetectEncounters runs a scan for the user and drives the event state
// machine for every hit.
func (s *proximityService) DetectEncounters(ctx context.Context, userID uuid.UUID) (*usecase.ScanSummary, error) {
	fix, err := s.locationRepo.FindLocationByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return &usecase.ScanSummary{}, nil
		}

		return nil, fmt.Errorf("failed to find location by user: %w", err)
	}

	nearby, err := s.scan(ctx, fix)
	if err != nil {
		return nil, err
	}

	summary := &usecase.ScanSummary{NearbyCount: len(nearby)}
	now := time.Now()
	eventHash := geohash.Truncate(fix.Geohash, s.config.Proximity.EventPrecision)

	for _, hit := range nearby {
		pair := entity.NewPair(userID, hit.UserID)

		created, err := s.upsertEncounter(ctx, pair, hit.DistanceMeters, eventHash, now, summary)
		if err != nil {
			return nil, err
		}

		if created != nil {
			summary.EventsCreated++
			if s.notifyEncounter(ctx, created) {
				summary.EventsNotified++
			}
		}
	}

	return summary, nil
}

// upsertEncounter refreshes the pair's active event or creates one. The
// returned event is non-nil only when this call created it.
func (s *proximityService) upsertEncounter(ctx context.Context, pair entity.Pair, distanceMeters float64, eventHash string, now time.Time, summary *usecase.ScanSummary) (*entity.ProximityEvent, error) {
	active, err := s.eventRepo.FindActiveEventByPair(ctx, pair)
	switch {
	case err == nil:
		if err := s.eventRepo.RefreshEvent(ctx, active.ID, distanceMeters, now); err != nil {
			// The event may have just been ended or acted on; that is
			// not a scan failure.
			if errors.Is(err, repository.ErrEventNotFound) {
				return nil, nil
			}

			return nil, fmt.Errorf("failed to refresh proximity event: %w", err)
		}
		summary.EventsRefreshed++

		return nil, nil

	case errors.Is(err, repository.ErrEventNotFound):
		event := &entity.ProximityEvent{
			Pair:           pair,
			DistanceMeters: distanceMeters,
			Location:       entity.EventLocation{Geohash: eventHash},
			Status:         entity.EventStatusActive,
			StartedAt:      now,
			LastSeenAt:     now,
		}

		if err := s.eventRepo.CreateActiveEvent(ctx, event); err != nil {
			// Lost the create race against the other user's scan; their
			// event wins and ours becomes a refresh.
			if errors.Is(err, repository.ErrDuplicateActiveEvent) {
				winner, findErr := s.eventRepo.FindActiveEventByPair(ctx, pair)
				if findErr != nil {
					if errors.Is(findErr, repository.ErrEventNotFound) {
						return nil, nil
					}

					return nil, fmt.Errorf("failed to find winning proximity event: %w", findErr)
				}

				if refreshErr := s.eventRepo.RefreshEvent(ctx, winner.ID, distanceMeters, now); refreshErr != nil && !errors.Is(refreshErr, repository.ErrEventNotFound) {
					return nil, fmt.Errorf("failed to refresh winning proximity event: %w", refreshErr)
				}
				summary.EventsRefreshed++

				return nil, nil
			}

			return nil, fmt.Errorf("failed to create proximity event: %w", err)
		}

		return event, nil

	default:
		return nil, fmt.Errorf("failed to find active proximity event: %w", err)
	}
}

// notifyEncounter publishes the one-time detection notification for a newly
// created event. The conditional flip on the store guarantees at most one
// publish per event; a failed publish is logged and dropped rather than
// failing the scan. Returns whether this call won the flip.
func (s *proximityService) notifyEncounter(ctx context.Context, event *entity.ProximityEvent) bool {
	flipped, err := s.eventRepo.MarkNotificationSent(ctx, event.ID)
	if err != nil {
		s.logger.Error("failed to mark notification sent",
			slog.String("event_id", event.ID.String()),
			slog.Any("error", err),
		)

		return false
	}
	if !flipped {
		return false
	}

	users := event.Pair.Users()
	profiles, err := s.profileRepo.FindProfilesByUsers(ctx, users[:])
	if err != nil {
		s.logger.Warn("failed to load profiles for encounter notification",
			slog.String("event_id", event.ID.String()),
			slog.Any("error", err),
		)
		profiles = map[uuid.UUID]*entity.UserProfile{}
	}

	// Each recipient sees the counterpart's display name.
	recipientIDs := make([]string, 0, 2)
	displayNames := make([]string, 0, 2)
	for _, user := range users {
		other, _ := event.Pair.Other(user)
		name := ""
		if profile, ok := profiles[other]; ok {
			name = profile.DisplayName
		}
		recipientIDs = append(recipientIDs, user.String())
		displayNames = append(displayNames, name)
	}

	encounter := &service.EncounterEvent{
		Kind:             service.EncounterKindProximity,
		ProximityEventID: event.ID.String(),
		RecipientIDs:     recipientIDs,
		DisplayNames:     displayNames,
		DistanceMeters:   event.DistanceMeters,
		LocationGeohash:  event.Location.Geohash,
	}

	if err := s.publisher.PublishEncounterEvent(ctx, encounter); err != nil {
		s.logger.Error("failed to publish encounter event",
			slog.String("event_id", event.ID.String()),
			slog.Any("error", err),
		)
	}

	return true
}

// GetEvent retrieves a single event the user participates in.
func (s *proximityService) GetEvent(ctx context.Context, userID, eventID uuid.UUID) (*entity.ProximityEvent, error) {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}

		return nil, fmt.Errorf("failed to find proximity event: %w", err)
	}

	if !event.Pair.Contains(userID) {
		return nil, ErrNotEventParticipant
	}

	return event, nil
}

// ListEvents retrieves the user's events, newest first.
func (s *proximityService) ListEvents(ctx context.Context, userID uuid.UUID, statuses []entity.EventStatus, limit, offset int) ([]*entity.ProximityEvent, error) {
	if limit <= 0 {
		limit = defaultEventPageSize
	}

	events, err := s.eventRepo.FindEventsForUser(ctx, userID, statuses, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to find proximity events for user: %w", err)
	}

	return events, nil
}

// MarkEventViewed records that the user saw the event in the app.
func (s *proximityService) MarkEventViewed(ctx context.Context, userID, eventID uuid.UUID) error {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return ErrEventNotFound
		}

		return fmt.Errorf("failed to find proximity event: %w", err)
	}

	if !event.Pair.Contains(userID) {
		return ErrNotEventParticipant
	}

	if err := s.eventRepo.MarkViewed(ctx, eventID, userID); err != nil {
		return fmt.Errorf("failed to mark proximity event viewed: %w", err)
	}

	return nil
}

// EndStaleEvents sweeps active events whose proximity was not re-confirmed
// within the staleness window.
func (s *proximityService) EndStaleEvents(ctx context.Context) (int64, error) {
	cutoff := time.Now().Add(-s.config.Proximity.StaleAfter)

	ended, err := s.eventRepo.EndStaleEvents(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to end stale proximity events: %w", err)
	}

	return ended, nil
}

package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"crosspath/internal/domain/entity"
	"crosspath/internal/domain/repository"
	"crosspath/internal/domain/service"
	"crosspath/internal/usecase"

	"github.com/google/uuid"
)

var (
	// ErrEventNotActionable is returned when a decision is made on an event
	// that already left the active state
	ErrEventNotActionable = errors.New("proximity event is not actionable")
	// ErrMatchNotFound is returned when a match does not exist
	ErrMatchNotFound = errors.New("match not found")
	// ErrNotMatchParticipant is returned when a user acts on a match they
	// are not part of
	ErrNotMatchParticipant = errors.New("user is not a participant of this match")
)

const defaultMatchPageSize = 50

type matchService struct {
	txManager   repository.TransactionManager
	eventRepo   repository.ProximityEventRepository
	matchRepo   repository.MatchRepository
	profileRepo repository.ProfileRepository
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// NewMatchService creates a new match service instance
func NewMatchService(
	txManager repository.TransactionManager,
	eventRepo repository.ProximityEventRepository,
	matchRepo repository.MatchRepository,
	profileRepo repository.ProfileRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.MatchUsecase {
	return &matchService{
		txManager:   txManager,
		eventRepo:   eventRepo,
		matchRepo:   matchRepo,
		profileRepo: profileRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

// Connect acts on an active proximity event: the event transitions to
// matched and a durable match is created or reactivated, atomically.
func (s *matchService) Connect(ctx context.Context, userID, eventID uuid.UUID) (*entity.Match, error) {
	event, err := s.loadEventForDecision(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}

	// Connecting twice, or after the counterpart already connected, just
	// returns the match the pair ended up with.
	if event.Status == entity.EventStatusMatched {
		return s.findPairMatch(ctx, event.Pair)
	}
	if event.Status != entity.EventStatusActive {
		return nil, ErrEventNotActionable
	}

	now := time.Now()
	var match *entity.Match
	var created bool

	txErr := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.NewProximityEventRepository().TransitionStatus(ctx, eventID, entity.EventStatusActive, entity.EventStatusMatched); err != nil {
			return err
		}

		result, wasCreated, err := createOrReactivateMatch(ctx, f.NewMatchRepository(), event.Pair, eventID, now)
		if err != nil {
			return err
		}
		match = result
		created = wasCreated

		return nil
	})

	if txErr != nil {
		// Another decision won the status race; re-read to see what the
		// pair ended up with.
		if errors.Is(txErr, repository.ErrEventStatusConflict) {
			current, err := s.eventRepo.FindEventByID(ctx, eventID)
			if err == nil && current.Status == entity.EventStatusMatched {
				return s.findPairMatch(ctx, current.Pair)
			}

			return nil, ErrEventNotActionable
		}

		return nil, fmt.Errorf("failed to connect: %w", txErr)
	}

	// Reactivating a prior match is an update, not a new match; only a
	// freshly created one gets announced.
	if created {
		s.notifyMatch(ctx, event, match)
	}

	return match, nil
}

// Skip dismisses an active proximity event without creating a match.
func (s *matchService) Skip(ctx context.Context, userID, eventID uuid.UUID) error {
	event, err := s.loadEventForDecision(ctx, userID, eventID)
	if err != nil {
		return err
	}

	if event.Status == entity.EventStatusIgnored {
		return nil
	}
	if event.Status != entity.EventStatusActive {
		return ErrEventNotActionable
	}

	if err := s.eventRepo.TransitionStatus(ctx, eventID, entity.EventStatusActive, entity.EventStatusIgnored); err != nil {
		if errors.Is(err, repository.ErrEventStatusConflict) {
			current, findErr := s.eventRepo.FindEventByID(ctx, eventID)
			if findErr == nil && current.Status == entity.EventStatusIgnored {
				return nil
			}

			return ErrEventNotActionable
		}

		return fmt.Errorf("failed to skip proximity event: %w", err)
	}

	return nil
}

// GetMatch retrieves a single match the user participates in.
func (s *matchService) GetMatch(ctx context.Context, userID, matchID uuid.UUID) (*entity.Match, error) {
	match, err := s.matchRepo.FindMatchByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, repository.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}

		return nil, fmt.Errorf("failed to find match: %w", err)
	}

	if !match.Pair.Contains(userID) {
		return nil, ErrNotMatchParticipant
	}

	return match, nil
}

// ListMatches retrieves the user's active matches, most recently interacted
// first.
func (s *matchService) ListMatches(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Match, error) {
	if limit <= 0 {
		limit = defaultMatchPageSize
	}

	matches, err := s.matchRepo.FindMatchesByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to find matches by user: %w", err)
	}

	return matches, nil
}

// ShareInstagram records the user's consent to reveal their Instagram handle
// on the match.
func (s *matchService) ShareInstagram(ctx context.Context, userID, matchID uuid.UUID, shared bool) (*entity.Match, error) {
	match, err := s.GetMatch(ctx, userID, matchID)
	if err != nil {
		return nil, err
	}

	if err := s.matchRepo.SetInstagramShared(ctx, match.ID, userID, shared); err != nil {
		return nil, fmt.Errorf("failed to set instagram shared: %w", err)
	}

	if match.InstagramShared == nil {
		match.InstagramShared = make(map[uuid.UUID]bool)
	}
	match.InstagramShared[userID] = shared

	return match, nil
}

// RecordLastMessage refreshes the denormalized chat preview on behalf of the
// messaging collaborator.
func (s *matchService) RecordLastMessage(ctx context.Context, matchID uuid.UUID, preview *entity.MessagePreview) error {
	if preview == nil {
		return errors.New("message preview must be provided")
	}

	match, err := s.matchRepo.FindMatchByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, repository.ErrMatchNotFound) {
			return ErrMatchNotFound
		}

		return fmt.Errorf("failed to find match: %w", err)
	}

	if !match.Pair.Contains(preview.SenderID) {
		return ErrNotMatchParticipant
	}

	if preview.SentAt.IsZero() {
		preview.SentAt = time.Now()
	}

	if err := s.matchRepo.UpdateLastMessage(ctx, matchID, preview); err != nil {
		return fmt.Errorf("failed to update last message: %w", err)
	}

	return nil
}

// Unmatch soft-deletes a match for the requesting user.
func (s *matchService) Unmatch(ctx context.Context, userID, matchID uuid.UUID) error {
	match, err := s.GetMatch(ctx, userID, matchID)
	if err != nil {
		return err
	}

	if err := s.matchRepo.DeleteMatch(ctx, match.ID); err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}

	return nil
}

// loadEventForDecision fetches an event and verifies the acting user is one
// of the pair.
func (s *matchService) loadEventForDecision(ctx context.Context, userID, eventID uuid.UUID) (*entity.ProximityEvent, error) {
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

// findPairMatch loads the match for a pair, mapping absence to the
// actionability error since a matched event without a match record means the
// write is still settling or was cleaned up.
func (s *matchService) findPairMatch(ctx context.Context, pair entity.Pair) (*entity.Match, error) {
	match, err := s.matchRepo.FindMatchByPair(ctx, pair)
	if err != nil {
		if errors.Is(err, repository.ErrMatchNotFound) {
			return nil, ErrEventNotActionable
		}

		return nil, fmt.Errorf("failed to find match by pair: %w", err)
	}

	return match, nil
}

// notifyMatch publishes the match notification to both pair members, each
// labeled with the counterpart's display name. Called on match creation only;
// best effort, a publish failure never unwinds the committed match.
func (s *matchService) notifyMatch(ctx context.Context, event *entity.ProximityEvent, match *entity.Match) {
	users := event.Pair.Users()
	profiles, err := s.profileRepo.FindProfilesByUsers(ctx, users[:])
	if err != nil {
		s.logger.Warn("failed to load profiles for match notification",
			slog.String("match_id", match.ID.String()),
			slog.Any("error", err),
		)
		profiles = map[uuid.UUID]*entity.UserProfile{}
	}

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
		Kind:             service.EncounterKindMatch,
		ProximityEventID: event.ID.String(),
		MatchID:          match.ID.String(),
		RecipientIDs:     recipientIDs,
		DisplayNames:     displayNames,
	}

	if err := s.publisher.PublishEncounterEvent(ctx, encounter); err != nil {
		s.logger.Error("failed to publish match event",
			slog.String("match_id", match.ID.String()),
			slog.Any("error", err),
		)
	}
}

// createOrReactivateMatch creates the pair's match record or, when the pair
// matched before, reactivates the existing one. The second return reports
// whether a new record was created. Runs inside the decision transaction.
func createOrReactivateMatch(ctx context.Context, matchRepo repository.MatchRepository, pair entity.Pair, eventID uuid.UUID, now time.Time) (*entity.Match, bool, error) {
	users := pair.Users()
	match := &entity.Match{
		Pair:             pair,
		ProximityEventID: eventID,
		Status:           entity.MatchStatusActive,
		InstagramShared: map[uuid.UUID]bool{
			users[0]: false,
			users[1]: false,
		},
		LastInteractionAt: now,
	}

	err := matchRepo.CreateMatch(ctx, match)
	if err == nil {
		return match, true, nil
	}
	if !errors.Is(err, repository.ErrDuplicateMatch) {
		return nil, false, err
	}

	existing, err := matchRepo.FindMatchByPair(ctx, pair)
	if err != nil {
		return nil, false, err
	}

	if err := matchRepo.ReactivateMatch(ctx, existing.ID, eventID, now); err != nil {
		return nil, false, err
	}

	existing.Status = entity.MatchStatusActive
	existing.ProximityEventID = eventID
	existing.LastInteractionAt = now

	return existing, false, nil
}

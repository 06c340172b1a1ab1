package repository

import (
	"context"
	"time"

	"crosspath/internal/domain/entity"
	"crosspath/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for match persistence.
var (
	// ErrMatchNotFound is returned when a match is not found.
	ErrMatchNotFound = errors.New("match not found")
	// ErrDuplicateMatch is returned when a match already exists for the
	// pair. Callers must fall back to the update path.
	ErrDuplicateMatch = errors.New("match already exists for pair")
)

// MatchRepository persists durable matches keyed by the unordered user pair.
type MatchRepository interface {
	// CreateMatch persists a new match. Returns ErrDuplicateMatch when the
	// pair already has one; the pair key is unique regardless of status.
	CreateMatch(ctx context.Context, match *entity.Match) error

	// FindMatchByID retrieves a match by its unique ID.
	FindMatchByID(ctx context.Context, id uuid.UUID) (*entity.Match, error)

	// FindMatchByPair retrieves the match for a pair, in either argument
	// order. Returns ErrMatchNotFound when none exists.
	FindMatchByPair(ctx context.Context, pair entity.Pair) (*entity.Match, error)

	// FindMatchesByUser retrieves a user's matches, most recently
	// interacted first.
	FindMatchesByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Match, error)

	// ReactivateMatch sets the match active and refreshes its
	// last-interaction time. Idempotent.
	ReactivateMatch(ctx context.Context, id uuid.UUID, eventID uuid.UUID, at time.Time) error

	// SetInstagramShared records one user's Instagram sharing consent.
	SetInstagramShared(ctx context.Context, id, userID uuid.UUID, shared bool) error

	// UpdateLastMessage refreshes the denormalized chat preview. Called on
	// behalf of the messaging collaborator.
	UpdateLastMessage(ctx context.Context, id uuid.UUID, preview *entity.MessagePreview) error

	// DeleteMatch soft-deletes a match (status=deleted).
	DeleteMatch(ctx context.Context, id uuid.UUID) error
}

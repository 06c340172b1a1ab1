package repository

import (
	"context"

	"crosspath/internal/domain/entity"
	"crosspath/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for profile persistence.
var (
	// ErrProfileNotFound is returned when a profile is not found.
	ErrProfileNotFound = errors.New("profile not found")
)

// ProfileRepository is a read-only view over the profile data owned by the
// profile service; the engine only needs display names for notifications.
type ProfileRepository interface {
	// FindProfileByUser retrieves a single user's profile.
	// Returns ErrProfileNotFound when the user has none.
	FindProfileByUser(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error)

	// FindProfilesByUsers retrieves profiles for the given users, keyed by
	// user ID. Missing profiles are simply absent from the map.
	FindProfilesByUsers(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]*entity.UserProfile, error)
}

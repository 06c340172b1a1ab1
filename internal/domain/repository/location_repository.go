// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"crosspath/internal/domain/entity"
	"crosspath/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for location persistence.
var (
	// ErrLocationNotFound is returned when no live location exists for a user.
	ErrLocationNotFound = errors.New("location not found")
)

// LocationRepository is the location store adapter: one live record per
// user, keyed by user and indexed by geohash for lexical range queries.
// The engine never assumes transactional semantics across multiple range
// queries; results are merged by the caller.
type LocationRepository interface {
	// UpsertLocation writes the user's live location, overwriting any
	// previous fix.
	UpsertLocation(ctx context.Context, location *entity.UserLocation) error

	// FindLocationByUser retrieves the live location for a user.
	// Returns ErrLocationNotFound if the user has no fix on file.
	FindLocationByUser(ctx context.Context, userID uuid.UUID) (*entity.UserLocation, error)

	// FindLocationsInGeohashRange retrieves all live locations whose geohash
	// falls within [startHash, endHash], ordered lexically by geohash.
	FindLocationsInGeohashRange(ctx context.Context, startHash, endHash string) ([]*entity.UserLocation, error)

	// DeleteLocation removes a user's live location (account deletion).
	DeleteLocation(ctx context.Context, userID uuid.UUID) error
}

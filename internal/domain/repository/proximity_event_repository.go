package repository

import (
	"context"
	"time"

	"crosspath/internal/domain/entity"
	"crosspath/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for proximity event persistence.
var (
	// ErrEventNotFound is returned when a proximity event is not found.
	ErrEventNotFound = errors.New("proximity event not found")
	// ErrDuplicateActiveEvent is returned by CreateActiveEvent when an
	// active event already exists for the pair. Callers losing this race
	// must fall back to the refresh path.
	ErrDuplicateActiveEvent = errors.New("active proximity event already exists for pair")
	// ErrEventStatusConflict is returned when a conditional status
	// transition finds the event no longer in the expected state.
	ErrEventStatusConflict = errors.New("proximity event not in expected status")
)

// ProximityEventRepository persists the pair-keyed proximity event state
// machine. The store enforces the "at most one active event per unordered
// pair" invariant with a conditional insert.
type ProximityEventRepository interface {
	// CreateActiveEvent persists a new active event. Returns
	// ErrDuplicateActiveEvent when the pair already has an active event.
	CreateActiveEvent(ctx context.Context, event *entity.ProximityEvent) error

	// FindEventByID retrieves an event by its unique ID.
	FindEventByID(ctx context.Context, id uuid.UUID) (*entity.ProximityEvent, error)

	// FindActiveEventByPair retrieves the single active event for a pair, if any.
	// Returns ErrEventNotFound when the pair has no active event.
	FindActiveEventByPair(ctx context.Context, pair entity.Pair) (*entity.ProximityEvent, error)

	// RefreshEvent updates distance and last-seen time on a still-active
	// event. StartedAt and NotificationSent are untouched.
	RefreshEvent(ctx context.Context, id uuid.UUID, distanceMeters float64, seenAt time.Time) error

	// TransitionStatus conditionally moves an event from the expected status
	// to the next one, recording EndedAt when next is terminal. Returns
	// ErrEventStatusConflict when the event is not in the expected status.
	TransitionStatus(ctx context.Context, id uuid.UUID, expect, next entity.EventStatus) error

	// MarkNotificationSent flips NotificationSent from false to true.
	// Returns true only for the call that performed the flip, so a retry
	// never causes a second notification.
	MarkNotificationSent(ctx context.Context, id uuid.UUID) (bool, error)

	// MarkViewed appends a user to the event's viewed-by set. Idempotent;
	// never changes status.
	MarkViewed(ctx context.Context, id, userID uuid.UUID) error

	// FindEventsForUser retrieves events involving the user, newest first,
	// optionally filtered by status.
	FindEventsForUser(ctx context.Context, userID uuid.UUID, statuses []entity.EventStatus, limit, offset int) ([]*entity.ProximityEvent, error)

	// EndStaleEvents transitions every active event whose LastSeenAt is
	// before the cutoff to ended, and returns how many were ended.
	EndStaleEvents(ctx context.Context, cutoff time.Time) (int64, error)
}

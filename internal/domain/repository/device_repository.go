package repository

import (
	"context"

	"crosspath/internal/domain/entity"
	"crosspath/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
)

// DeviceRepository persists FCM device registrations used by the push
// fan-out worker.
type DeviceRepository interface {
	// UpsertDevice registers a device or refreshes its FCM token, keyed by
	// (user, client device ID).
	UpsertDevice(ctx context.Context, device *entity.UserDevice) error

	// FindActiveDevicesByUsers retrieves all active devices for the given
	// users. Used for batch notification sending.
	FindActiveDevicesByUsers(ctx context.Context, userIDs []uuid.UUID) ([]*entity.UserDevice, error)

	// DeactivateDevice marks a device inactive, typically after FCM reports
	// its token invalid or unregistered.
	DeactivateDevice(ctx context.Context, id uuid.UUID) error
}

package usecase

import (
	"context"

	"crosspath/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterDeviceInput represents the input for registering a push device
type RegisterDeviceInput struct {
	FCMToken string `json:"fcm_token"`
	DeviceID string `json:"device_id"`
	Platform string `json:"platform"`
}

// DeviceUsecase defines the interface for push device management use cases
type DeviceUsecase interface {
	// RegisterDevice registers a device or refreshes its FCM token.
	RegisterDevice(ctx context.Context, userID uuid.UUID, input *RegisterDeviceInput) (*entity.UserDevice, error)

	// RemoveDevice deactivates the user's device identified by the client
	// device ID.
	RemoveDevice(ctx context.Context, userID uuid.UUID, deviceID string) error
}

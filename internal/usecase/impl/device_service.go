package impl

import (
	"context"
	"errors"
	"fmt"

	"crosspath/internal/domain/entity"
	"crosspath/internal/domain/repository"
	"crosspath/internal/usecase"

	"github.com/google/uuid"
)

var (
	// ErrDeviceNotFound is returned when the user has no such device
	ErrDeviceNotFound = errors.New("device not found")
	// ErrInvalidDeviceInput is returned when required device fields are missing
	ErrInvalidDeviceInput = errors.New("fcm token and device id must be provided")
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
}

// NewDeviceService creates a new device service instance
func NewDeviceService(deviceRepo repository.DeviceRepository) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
	}
}

// RegisterDevice registers a device or refreshes its FCM token.
func (s *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, input *usecase.RegisterDeviceInput) (*entity.UserDevice, error) {
	if input.FCMToken == "" || input.DeviceID == "" {
		return nil, ErrInvalidDeviceInput
	}

	device := &entity.UserDevice{
		UserID:   userID,
		FCMToken: input.FCMToken,
		DeviceID: input.DeviceID,
		Platform: input.Platform,
		IsActive: true,
	}

	if err := s.deviceRepo.UpsertDevice(ctx, device); err != nil {
		return nil, fmt.Errorf("failed to upsert device: %w", err)
	}

	return device, nil
}

// RemoveDevice deactivates the user's device identified by the client
// device ID.
func (s *deviceService) RemoveDevice(ctx context.Context, userID uuid.UUID, deviceID string) error {
	devices, err := s.deviceRepo.FindActiveDevicesByUsers(ctx, []uuid.UUID{userID})
	if err != nil {
		return fmt.Errorf("failed to find devices for user: %w", err)
	}

	for _, device := range devices {
		if device.DeviceID == deviceID {
			if err := s.deviceRepo.DeactivateDevice(ctx, device.ID); err != nil {
				return fmt.Errorf("failed to deactivate device: %w", err)
			}

			return nil
		}
	}

	return ErrDeviceNotFound
}

package impl

import (
	"context"
	"testing"

	"crosspath/internal/domain/entity"
	mockRepo "crosspath/internal/mocks/repository"
	"crosspath/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeviceService_RegisterDevice_Success(t *testing.T) {
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(mockDeviceRepo)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.RegisterDeviceInput{
		FCMToken: "fcm-token-abc",
		DeviceID: "device-123",
		Platform: "ios",
	}

	mockDeviceRepo.EXPECT().
		UpsertDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Return(nil)

	device, err := service.RegisterDevice(ctx, userID, input)
	require.NoError(t, err)
	assert.Equal(t, userID, device.UserID)
	assert.Equal(t, input.FCMToken, device.FCMToken)
	assert.Equal(t, input.DeviceID, device.DeviceID)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_MissingFields(t *testing.T) {
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(mockDeviceRepo)

	ctx := context.Background()
	userID := uuid.New()

	device, err := service.RegisterDevice(ctx, userID, &usecase.RegisterDeviceInput{
		DeviceID: "device-123",
	})
	require.ErrorIs(t, err, ErrInvalidDeviceInput)
	assert.Nil(t, device)

	device, err = service.RegisterDevice(ctx, userID, &usecase.RegisterDeviceInput{
		FCMToken: "fcm-token-abc",
	})
	require.ErrorIs(t, err, ErrInvalidDeviceInput)
	assert.Nil(t, device)
}

func TestDeviceService_RemoveDevice_Success(t *testing.T) {
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(mockDeviceRepo)

	ctx := context.Background()
	userID := uuid.New()
	deviceRowID := uuid.New()

	mockDeviceRepo.EXPECT().
		FindActiveDevicesByUsers(ctx, []uuid.UUID{userID}).
		Return([]*entity.UserDevice{
			{ID: uuid.New(), UserID: userID, DeviceID: "other-device"},
			{ID: deviceRowID, UserID: userID, DeviceID: "device-123"},
		}, nil)

	mockDeviceRepo.EXPECT().
		DeactivateDevice(ctx, deviceRowID).
		Return(nil)

	err := service.RemoveDevice(ctx, userID, "device-123")
	require.NoError(t, err)
}

func TestDeviceService_RemoveDevice_NotFound(t *testing.T) {
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(mockDeviceRepo)

	ctx := context.Background()
	userID := uuid.New()

	mockDeviceRepo.EXPECT().
		FindActiveDevicesByUsers(ctx, []uuid.UUID{userID}).
		Return([]*entity.UserDevice{}, nil)

	err := service.RemoveDevice(ctx, userID, "device-123")
	require.ErrorIs(t, err, ErrDeviceNotFound)
}

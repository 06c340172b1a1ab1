package impl

import (
	"context"
	"testing"
	"time"

	"crosspath/config"
	"crosspath/internal/domain/entity"
	"crosspath/internal/domain/repository"
	"crosspath/internal/geohash"
	mockRepo "crosspath/internal/mocks/repository"
	mockUsecase "crosspath/internal/mocks/usecase"
	"crosspath/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLocationService_RecordLocation_FirstFixTriggersScan(t *testing.T) {
	mockLocationRepo := mockRepo.NewMockLocationRepository(t)
	mockProximityUC := mockUsecase.NewMockProximityUsecase(t)
	cfg := &config.Config{Proximity: config.DefaultProximity()}
	service := NewLocationService(mockLocationRepo, mockProximityUC, cfg)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.RecordLocationInput{
		Latitude:       25.0330,
		Longitude:      121.5654,
		AccuracyMeters: 12,
	}
	expectedScan := &usecase.ScanSummary{NearbyCount: 1, EventsCreated: 1, EventsNotified: 1}

	mockLocationRepo.EXPECT().
		FindLocationByUser(ctx, userID).
		Return(nil, repository.ErrLocationNotFound)

	mockLocationRepo.EXPECT().
		UpsertLocation(ctx, mock.AnythingOfType("*entity.UserLocation")).
		Return(nil)

	mockProximityUC.EXPECT().
		DetectEncounters(ctx, userID).
		Return(expectedScan, nil)

	tick, err := service.RecordLocation(ctx, userID, input)
	require.NoError(t, err)
	assert.True(t, tick.Moved)
	assert.True(t, tick.ScanTriggered)
	assert.Equal(t, expectedScan, tick.Scan)
	assert.Equal(t, userID, tick.Location.UserID)
	assert.True(t, tick.Location.IsVisible)
	assert.Equal(t, entity.AppStateForeground, tick.Location.AppState)
	assert.Len(t, tick.Location.Geohash, cfg.Proximity.LocationPrecision)
}

func TestLocationService_RecordLocation_StationaryTickSkipsScan(t *testing.T) {
	mockLocationRepo := mockRepo.NewMockLocationRepository(t)
	mockProximityUC := mockUsecase.NewMockProximityUsecase(t)
	cfg := &config.Config{Proximity: config.DefaultProximity()}
	service := NewLocationService(mockLocationRepo, mockProximityUC, cfg)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.RecordLocationInput{
		Latitude:  25.0330,
		Longitude: 121.5654,
	}
	previous := &entity.UserLocation{
		UserID:     userID,
		Latitude:   25.0330,
		Longitude:  121.5654,
		IsVisible:  true,
		RecordedAt: time.Now().Add(-30 * time.Second),
	}

	mockLocationRepo.EXPECT().
		FindLocationByUser(ctx, userID).
		Return(previous, nil)

	mockLocationRepo.EXPECT().
		UpsertLocation(ctx, mock.AnythingOfType("*entity.UserLocation")).
		Return(nil)

	tick, err := service.RecordLocation(ctx, userID, input)
	require.NoError(t, err)
	assert.False(t, tick.Moved)
	assert.False(t, tick.ScanTriggered)
	assert.Nil(t, tick.Scan)
}

func TestLocationService_RecordLocation_InvisibleUserSkipsScan(t *testing.T) {
	mockLocationRepo := mockRepo.NewMockLocationRepository(t)
	mockProximityUC := mockUsecase.NewMockProximityUsecase(t)
	cfg := &config.Config{Proximity: config.DefaultProximity()}
	service := NewLocationService(mockLocationRepo, mockProximityUC, cfg)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.RecordLocationInput{
		Latitude:  25.0430,
		Longitude: 121.5654,
	}
	// Well past the movement threshold, but the user opted out of discovery.
	previous := &entity.UserLocation{
		UserID:     userID,
		Latitude:   25.0330,
		Longitude:  121.5654,
		IsVisible:  false,
		RecordedAt: time.Now().Add(-time.Minute),
	}

	mockLocationRepo.EXPECT().
		FindLocationByUser(ctx, userID).
		Return(previous, nil)

	mockLocationRepo.EXPECT().
		UpsertLocation(ctx, mock.AnythingOfType("*entity.UserLocation")).
		Return(nil)

	tick, err := service.RecordLocation(ctx, userID, input)
	require.NoError(t, err)
	assert.True(t, tick.Moved)
	assert.False(t, tick.ScanTriggered)
	assert.False(t, tick.Location.IsVisible)
}

func TestLocationService_RecordLocation_VisibilityOverrideRestoresScan(t *testing.T) {
	mockLocationRepo := mockRepo.NewMockLocationRepository(t)
	mockProximityUC := mockUsecase.NewMockProximityUsecase(t)
	cfg := &config.Config{Proximity: config.DefaultProximity()}
	service := NewLocationService(mockLocationRepo, mockProximityUC, cfg)

	ctx := context.Background()
	userID := uuid.New()
	visible := true
	input := &usecase.RecordLocationInput{
		Latitude:  25.0430,
		Longitude: 121.5654,
		IsVisible: &visible,
	}
	previous := &entity.UserLocation{
		UserID:     userID,
		Latitude:   25.0330,
		Longitude:  121.5654,
		IsVisible:  false,
		RecordedAt: time.Now().Add(-time.Minute),
	}

	mockLocationRepo.EXPECT().
		FindLocationByUser(ctx, userID).
		Return(previous, nil)

	mockLocationRepo.EXPECT().
		UpsertLocation(ctx, mock.AnythingOfType("*entity.UserLocation")).
		Return(nil)

	mockProximityUC.EXPECT().
		DetectEncounters(ctx, userID).
		Return(&usecase.ScanSummary{}, nil)

	tick, err := service.RecordLocation(ctx, userID, input)
	require.NoError(t, err)
	assert.True(t, tick.ScanTriggered)
	assert.True(t, tick.Location.IsVisible)
}

func TestLocationService_RecordLocation_InvalidCoordinates(t *testing.T) {
	mockLocationRepo := mockRepo.NewMockLocationRepository(t)
	mockProximityUC := mockUsecase.NewMockProximityUsecase(t)
	cfg := &config.Config{Proximity: config.DefaultProximity()}
	service := NewLocationService(mockLocationRepo, mockProximityUC, cfg)

	ctx := context.Background()
	userID := uuid.New()

	tick, err := service.RecordLocation(ctx, userID, &usecase.RecordLocationInput{
		Latitude:  91,
		Longitude: 121.5654,
	})
	require.ErrorIs(t, err, geohash.ErrInvalidLatitude)
	assert.Nil(t, tick)

	tick, err = service.RecordLocation(ctx, userID, &usecase.RecordLocationInput{
		Latitude:  25.0330,
		Longitude: -181,
	})
	require.ErrorIs(t, err, geohash.ErrInvalidLongitude)
	assert.Nil(t, tick)
}

func TestLocationService_RecordLocation_InvalidAppState(t *testing.T) {
	mockLocationRepo := mockRepo.NewMockLocationRepository(t)
	mockProximityUC := mockUsecase.NewMockProximityUsecase(t)
	cfg := &config.Config{Proximity: config.DefaultProximity()}
	service := NewLocationService(mockLocationRepo, mockProximityUC, cfg)

	ctx := context.Background()
	userID := uuid.New()

	tick, err := service.RecordLocation(ctx, userID, &usecase.RecordLocationInput{
		Latitude:  25.0330,
		Longitude: 121.5654,
		AppState:  "hibernating",
	})
	require.ErrorIs(t, err, ErrInvalidAppState)
	assert.Nil(t, tick)
}

func TestLocationService_GetLocation_Success(t *testing.T) {
	mockLocationRepo := mockRepo.NewMockLocationRepository(t)
	mockProximityUC := mockUsecase.NewMockProximityUsecase(t)
	cfg := &config.Config{Proximity: config.DefaultProximity()}
	service := NewLocationService(mockLocationRepo, mockProximityUC, cfg)

	ctx := context.Background()
	userID := uuid.New()
	expected := &entity.UserLocation{UserID: userID, Latitude: 25.0330, Longitude: 121.5654}

	mockLocationRepo.EXPECT().
		FindLocationByUser(ctx, userID).
		Return(expected, nil)

	location, err := service.GetLocation(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, expected, location)
}

func TestLocationService_GetLocation_NotFound(t *testing.T) {
	mockLocationRepo := mockRepo.NewMockLocationRepository(t)
	mockProximityUC := mockUsecase.NewMockProximityUsecase(t)
	cfg := &config.Config{Proximity: config.DefaultProximity()}
	service := NewLocationService(mockLocationRepo, mockProximityUC, cfg)

	ctx := context.Background()
	userID := uuid.New()

	mockLocationRepo.EXPECT().
		FindLocationByUser(ctx, userID).
		Return(nil, repository.ErrLocationNotFound)

	location, err := service.GetLocation(ctx, userID)
	require.ErrorIs(t, err, ErrNoLocation)
	assert.Nil(t, location)
}

func TestLocationService_SetVisibility(t *testing.T) {
	mockLocationRepo := mockRepo.NewMockLocationRepository(t)
	mockProximityUC := mockUsecase.NewMockProximityUsecase(t)
	cfg := &config.Config{Proximity: config.DefaultProximity()}
	service := NewLocationService(mockLocationRepo, mockProximityUC, cfg)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.UserLocation{UserID: userID, IsVisible: true}

	mockLocationRepo.EXPECT().
		FindLocationByUser(ctx, userID).
		Return(existing, nil)

	mockLocationRepo.EXPECT().
		UpsertLocation(ctx, mock.AnythingOfType("*entity.UserLocation")).
		Return(nil)

	location, err := service.SetVisibility(ctx, userID, false)
	require.NoError(t, err)
	assert.False(t, location.IsVisible)
}

func TestLocationService_DeleteLocation_NotFound(t *testing.T) {
	mockLocationRepo := mockRepo.NewMockLocationRepository(t)
	mockProximityUC := mockUsecase.NewMockProximityUsecase(t)
	cfg := &config.Config{Proximity: config.DefaultProximity()}
	service := NewLocationService(mockLocationRepo, mockProximityUC, cfg)

	ctx := context.Background()
	userID := uuid.New()

	mockLocationRepo.EXPECT().
		DeleteLocation(ctx, userID).
		Return(repository.ErrLocationNotFound)

	err := service.DeleteLocation(ctx, userID)
	require.ErrorIs(t, err, ErrNoLocation)
}

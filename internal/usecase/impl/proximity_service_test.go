package impl

import (
	"context"
	"errors"
	"testing"
	"time"

	"crosspath/internal/domain/entity"
	"crosspath/internal/domain/repository"
	"crosspath/internal/domain/service"
	mockRepo "crosspath/internal/mocks/repository"
	mockSvc "crosspath/internal/mocks/service"
	"crosspath/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type proximityMocks struct {
	locationRepo *mockRepo.MockLocationRepository
	eventRepo    *mockRepo.MockProximityEventRepository
	profileRepo  *mockRepo.MockProfileRepository
	publisher    *mockSvc.MockEventPublisher
}

func newProximityService(t *testing.T) (usecase.ProximityUsecase, *proximityMocks) {
	t.Helper()

	mocks := &proximityMocks{
		locationRepo: mockRepo.NewMockLocationRepository(t),
		eventRepo:    mockRepo.NewMockProximityEventRepository(t),
		profileRepo:  mockRepo.NewMockProfileRepository(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
	}
	svc := NewProximityService(
		mocks.locationRepo,
		mocks.eventRepo,
		mocks.profileRepo,
		mocks.publisher,
		newProximityConfig(),
		newDiscardLogger(),
	)

	return svc, mocks
}

func TestProximityService_ScanNearby_FiltersAndSortsByDistance(t *testing.T) {
	svc, mocks := newProximityService(t)

	ctx := context.Background()
	userID := uuid.New()
	now := time.Now()

	fix := &entity.UserLocation{
		UserID:     userID,
		Latitude:   25.0330,
		Longitude:  121.5654,
		IsVisible:  true,
		RecordedAt: now,
	}

	nearID := uuid.New()
	fartherID := uuid.New()
	// At this latitude 0.0001 degrees of latitude is about 11 meters.
	candidates := []*entity.UserLocation{
		{UserID: userID, Latitude: 25.0330, Longitude: 121.5654, IsVisible: true, RecordedAt: now},
		{UserID: uuid.New(), Latitude: 25.0331, Longitude: 121.5654, IsVisible: false, RecordedAt: now},
		{UserID: uuid.New(), Latitude: 25.0331, Longitude: 121.5654, IsVisible: true, RecordedAt: now.Add(-time.Hour)},
		{UserID: uuid.New(), Latitude: 25.0430, Longitude: 121.5654, IsVisible: true, RecordedAt: now},
		{UserID: fartherID, Latitude: 25.0337, Longitude: 121.5654, IsVisible: true, RecordedAt: now},
		{UserID: nearID, Latitude: 25.0333, Longitude: 121.5654, IsVisible: true, RecordedAt: now},
	}

	mocks.locationRepo.EXPECT().
		FindLocationByUser(ctx, userID).
		Return(fix, nil)

	// Every covering cell returns the same candidate set; dedup keeps each
	// user counted once.
	mocks.locationRepo.EXPECT().
		FindLocationsInGeohashRange(ctx, mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return(candidates, nil)

	nearby, err := svc.ScanNearby(ctx, userID)
	require.NoError(t, err)
	require.Len(t, nearby, 2)
	assert.Equal(t, nearID, nearby[0].UserID)
	assert.Equal(t, fartherID, nearby[1].UserID)
	assert.Less(t, nearby[0].DistanceMeters, nearby[1].DistanceMeters)
	assert.LessOrEqual(t, nearby[1].DistanceMeters, 100.0)
}

func TestProximityService_ScanNearby_NoLocationIsEmpty(t *testing.T) {
	svc, mocks := newProximityService(t)

	ctx := context.Background()
	userID := uuid.New()

	mocks.locationRepo.EXPECT().
		FindLocationByUser(ctx, userID).
		Return(nil, repository.ErrLocationNotFound)

	// No fix on file is "cannot scan", not a failure.
	nearby, err := svc.ScanNearby(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, nearby)
}

func TestProximityService_ScanNearby_RangeQueryFailureFailsScan(t *testing.T) {
	svc, mocks := newProximityService(t)

	ctx := context.Background()
	userID := uuid.New()
	queryErr := errors.New("connection reset")

	mocks.locationRepo.EXPECT().
		FindLocationByUser(ctx, userID).
		Return(&entity.UserLocation{
			UserID:     userID,
			Latitude:   25.0330,
			Longitude:  121.5654,
			IsVisible:  true,
			RecordedAt: time.Now(),
		}, nil)

	// A failed range query fails the whole scan; a partial picture must
	// never be mistaken for "nobody nearby".
	mocks.locationRepo.EXPECT().
		FindLocationsInGeohashRange(ctx, mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return(nil, queryErr)

	nearby, err := svc.ScanNearby(ctx, userID)
	require.Error(t, err)
	assert.ErrorIs(t, err, queryErr)
	assert.Nil(t, nearby)
}

func TestProximityService_DetectEncounters_RangeQueryFailureFailsScan(t *testing.T) {
	svc, mocks := newProximityService(t)

	ctx := context.Background()
	userID := uuid.New()
	queryErr := errors.New("connection reset")

	mocks.locationRepo.EXPECT().
		FindLocationByUser(ctx, userID).
		Return(&entity.UserLocation{
			UserID:     userID,
			Latitude:   25.0330,
			Longitude:  121.5654,
			Geohash:    "wsqqqmkx8",
			IsVisible:  true,
			RecordedAt: time.Now(),
		}, nil)

	mocks.locationRepo.EXPECT().
		FindLocationsInGeohashRange(ctx, mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return(nil, queryErr)

	// No events are touched when the scan itself failed: the event repo
	// mock has no expectations.
	summary, err := svc.DetectEncounters(ctx, userID)
	require.Error(t, err)
	assert.ErrorIs(t, err, queryErr)
	assert.Nil(t, summary)
}

func TestProximityService_ScanNearby_OwnFixStale(t *testing.T) {
	svc, mocks := newProximityService(t)

	ctx := context.Background()
	userID := uuid.New()

	mocks.locationRepo.EXPECT().
		FindLocationByUser(ctx, userID).
		Return(&entity.UserLocation{
			UserID:     userID,
			Latitude:   25.0330,
			Longitude:  121.5654,
			IsVisible:  true,
			RecordedAt: time.Now().Add(-time.Hour),
		}, nil)

	nearby, err := svc.ScanNearby(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, nearby)
}

func TestProximityService_DetectEncounters_CreatesEventAndNotifies(t *testing.T) {
	svc, mocks := newProximityService(t)

	ctx := context.Background()
	userID := uuid.New()
	otherID := uuid.New()
	pair := entity.NewPair(userID, otherID)
	eventID := uuid.New()
	now := time.Now()

	mocks.locationRepo.EXPECT().
		FindLocationByUser(ctx, userID).
		Return(&entity.UserLocation{
			UserID:     userID,
			Latitude:   25.0330,
			Longitude:  121.5654,
			Geohash:    "wsqqqmkx8",
			IsVisible:  true,
			RecordedAt: now,
		}, nil)

	mocks.locationRepo.EXPECT().
		FindLocationsInGeohashRange(ctx, mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return([]*entity.UserLocation{
			{UserID: otherID, Latitude: 25.0333, Longitude: 121.5654, IsVisible: true, RecordedAt: now},
		}, nil)

	mocks.eventRepo.EXPECT().
		FindActiveEventByPair(ctx, pair).
		Return(nil, repository.ErrEventNotFound)

	mocks.eventRepo.EXPECT().
		CreateActiveEvent(ctx, mock.AnythingOfType("*entity.ProximityEvent")).
		RunAndReturn(func(_ context.Context, event *entity.ProximityEvent) error {
			event.ID = eventID
			assert.Equal(t, pair, event.Pair)
			assert.Equal(t, entity.EventStatusActive, event.Status)
			assert.Equal(t, "wsqqqm", event.Location.Geohash)

			return nil
		})

	mocks.eventRepo.EXPECT().
		MarkNotificationSent(ctx, eventID).
		Return(true, nil)

	mocks.profileRepo.EXPECT().
		FindProfilesByUsers(ctx, mock.AnythingOfType("[]uuid.UUID")).
		Return(map[uuid.UUID]*entity.UserProfile{
			userID:  {UserID: userID, DisplayName: "Alex"},
			otherID: {UserID: otherID, DisplayName: "Sam"},
		}, nil)

	var published *service.EncounterEvent
	mocks.publisher.EXPECT().
		PublishEncounterEvent(ctx, mock.AnythingOfType("*service.EncounterEvent")).
		RunAndReturn(func(_ context.Context, event *service.EncounterEvent) error {
			published = event

			return nil
		})

	summary, err := svc.DetectEncounters(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.NearbyCount)
	assert.Equal(t, 1, summary.EventsCreated)
	assert.Equal(t, 1, summary.EventsNotified)
	assert.Equal(t, 0, summary.EventsRefreshed)

	require.NotNil(t, published)
	assert.Equal(t, service.EncounterKindProximity, published.Kind)
	assert.Equal(t, eventID.String(), published.ProximityEventID)
	require.Len(t, published.RecipientIDs, 2)
	require.Len(t, published.DisplayNames, 2)

	// Each recipient is paired with the counterpart's display name.
	names := map[string]string{
		userID.String():  "Sam",
		otherID.String(): "Alex",
	}
	for i, recipient := range published.RecipientIDs {
		assert.Equal(t, names[recipient], published.DisplayNames[i])
	}
}

func TestProximityService_DetectEncounters_NotificationAlreadySent(t *testing.T) {
	svc, mocks := newProximityService(t)

	ctx := context.Background()
	userID := uuid.New()
	otherID := uuid.New()
	eventID := uuid.New()
	now := time.Now()

	mocks.locationRepo.EXPECT().
		FindLocationByUser(ctx, userID).
		Return(&entity.UserLocation{
			UserID:     userID,
			Latitude:   25.0330,
			Longitude:  121.5654,
			Geohash:    "wsqqqmkx8",
			IsVisible:  true,
			RecordedAt: now,
		}, nil)

	mocks.locationRepo.EXPECT().
		FindLocationsInGeohashRange(ctx, mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return([]*entity.UserLocation{
			{UserID: otherID, Latitude: 25.0333, Longitude: 121.5654, IsVisible: true, RecordedAt: now},
		}, nil)

	mocks.eventRepo.EXPECT().
		FindActiveEventByPair(ctx, entity.NewPair(userID, otherID)).
		Return(nil, repository.ErrEventNotFound)

	mocks.eventRepo.EXPECT().
		CreateActiveEvent(ctx, mock.AnythingOfType("*entity.ProximityEvent")).
		RunAndReturn(func(_ context.Context, event *entity.ProximityEvent) error {
			event.ID = eventID

			return nil
		})

	// Another scan won the flip; no publish happens on this side.
	mocks.eventRepo.EXPECT().
		MarkNotificationSent(ctx, eventID).
		Return(false, nil)

	summary, err := svc.DetectEncounters(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.EventsCreated)
	assert.Equal(t, 0, summary.EventsNotified)
}

func TestProximityService_DetectEncounters_RefreshesActiveEvent(t *testing.T) {
	svc, mocks := newProximityService(t)

	ctx := context.Background()
	userID := uuid.New()
	otherID := uuid.New()
	pair := entity.NewPair(userID, otherID)
	now := time.Now()
	active := &entity.ProximityEvent{
		ID:     uuid.New(),
		Pair:   pair,
		Status: entity.EventStatusActive,
	}

	mocks.locationRepo.EXPECT().
		FindLocationByUser(ctx, userID).
		Return(&entity.UserLocation{
			UserID:     userID,
			Latitude:   25.0330,
			Longitude:  121.5654,
			Geohash:    "wsqqqmkx8",
			IsVisible:  true,
			RecordedAt: now,
		}, nil)

	mocks.locationRepo.EXPECT().
		FindLocationsInGeohashRange(ctx, mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return([]*entity.UserLocation{
			{UserID: otherID, Latitude: 25.0333, Longitude: 121.5654, IsVisible: true, RecordedAt: now},
		}, nil)

	mocks.eventRepo.EXPECT().
		FindActiveEventByPair(ctx, pair).
		Return(active, nil)

	mocks.eventRepo.EXPECT().
		RefreshEvent(ctx, active.ID, mock.AnythingOfType("float64"), mock.AnythingOfType("time.Time")).
		Return(nil)

	summary, err := svc.DetectEncounters(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.EventsCreated)
	assert.Equal(t, 1, summary.EventsRefreshed)
	assert.Equal(t, 0, summary.EventsNotified)
}

func TestProximityService_DetectEncounters_LostCreateRace(t *testing.T) {
	svc, mocks := newProximityService(t)

	ctx := context.Background()
	userID := uuid.New()
	otherID := uuid.New()
	pair := entity.NewPair(userID, otherID)
	now := time.Now()
	winner := &entity.ProximityEvent{
		ID:     uuid.New(),
		Pair:   pair,
		Status: entity.EventStatusActive,
	}

	mocks.locationRepo.EXPECT().
		FindLocationByUser(ctx, userID).
		Return(&entity.UserLocation{
			UserID:     userID,
			Latitude:   25.0330,
			Longitude:  121.5654,
			Geohash:    "wsqqqmkx8",
			IsVisible:  true,
			RecordedAt: now,
		}, nil)

	mocks.locationRepo.EXPECT().
		FindLocationsInGeohashRange(ctx, mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return([]*entity.UserLocation{
			{UserID: otherID, Latitude: 25.0333, Longitude: 121.5654, IsVisible: true, RecordedAt: now},
		}, nil)

	mocks.eventRepo.EXPECT().
		FindActiveEventByPair(ctx, pair).
		Return(nil, repository.ErrEventNotFound).
		Once()

	mocks.eventRepo.EXPECT().
		CreateActiveEvent(ctx, mock.AnythingOfType("*entity.ProximityEvent")).
		Return(repository.ErrDuplicateActiveEvent)

	// The concurrent scan for the other user created the event first; this
	// side falls back to refreshing the winner.
	mocks.eventRepo.EXPECT().
		FindActiveEventByPair(ctx, pair).
		Return(winner, nil).
		Once()

	mocks.eventRepo.EXPECT().
		RefreshEvent(ctx, winner.ID, mock.AnythingOfType("float64"), mock.AnythingOfType("time.Time")).
		Return(nil)

	summary, err := svc.DetectEncounters(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.EventsCreated)
	assert.Equal(t, 1, summary.EventsRefreshed)
}

func TestProximityService_GetEvent_NotParticipant(t *testing.T) {
	svc, mocks := newProximityService(t)

	ctx := context.Background()
	eventID := uuid.New()
	event := &entity.ProximityEvent{
		ID:   eventID,
		Pair: entity.NewPair(uuid.New(), uuid.New()),
	}

	mocks.eventRepo.EXPECT().
		FindEventByID(ctx, eventID).
		Return(event, nil)

	got, err := svc.GetEvent(ctx, uuid.New(), eventID)
	require.ErrorIs(t, err, ErrNotEventParticipant)
	assert.Nil(t, got)
}

func TestProximityService_GetEvent_NotFound(t *testing.T) {
	svc, mocks := newProximityService(t)

	ctx := context.Background()
	eventID := uuid.New()

	mocks.eventRepo.EXPECT().
		FindEventByID(ctx, eventID).
		Return(nil, repository.ErrEventNotFound)

	got, err := svc.GetEvent(ctx, uuid.New(), eventID)
	require.ErrorIs(t, err, ErrEventNotFound)
	assert.Nil(t, got)
}

func TestProximityService_ListEvents_DefaultsLimit(t *testing.T) {
	svc, mocks := newProximityService(t)

	ctx := context.Background()
	userID := uuid.New()
	statuses := []entity.EventStatus{entity.EventStatusActive}
	expected := []*entity.ProximityEvent{{ID: uuid.New()}}

	mocks.eventRepo.EXPECT().
		FindEventsForUser(ctx, userID, statuses, defaultEventPageSize, 0).
		Return(expected, nil)

	events, err := svc.ListEvents(ctx, userID, statuses, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, expected, events)
}

func TestProximityService_MarkEventViewed(t *testing.T) {
	svc, mocks := newProximityService(t)

	ctx := context.Background()
	userID := uuid.New()
	eventID := uuid.New()
	event := &entity.ProximityEvent{
		ID:   eventID,
		Pair: entity.NewPair(userID, uuid.New()),
	}

	mocks.eventRepo.EXPECT().
		FindEventByID(ctx, eventID).
		Return(event, nil)

	mocks.eventRepo.EXPECT().
		MarkViewed(ctx, eventID, userID).
		Return(nil)

	err := svc.MarkEventViewed(ctx, userID, eventID)
	require.NoError(t, err)
}

func TestProximityService_EndStaleEvents(t *testing.T) {
	svc, mocks := newProximityService(t)

	ctx := context.Background()

	mocks.eventRepo.EXPECT().
		EndStaleEvents(ctx, mock.AnythingOfType("time.Time")).
		RunAndReturn(func(_ context.Context, cutoff time.Time) (int64, error) {
			assert.WithinDuration(t, time.Now().Add(-15*time.Minute), cutoff, 5*time.Second)

			return 3, nil
		})

	ended, err := svc.EndStaleEvents(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), ended)
}

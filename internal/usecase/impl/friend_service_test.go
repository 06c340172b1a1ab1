package impl

import (
	"context"
	"testing"

	"crosspath/internal/domain/entity"
	"crosspath/internal/domain/repository"
	mockRepo "crosspath/internal/mocks/repository"
	"crosspath/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type friendMocks struct {
	txManager  *mockRepo.MockTransactionManager
	eventRepo  *mockRepo.MockProximityEventRepository
	friendRepo *mockRepo.MockFriendRepository
}

func newFriendService(t *testing.T) (usecase.FriendUsecase, *friendMocks) {
	t.Helper()

	mocks := &friendMocks{
		txManager:  mockRepo.NewMockTransactionManager(t),
		eventRepo:  mockRepo.NewMockProximityEventRepository(t),
		friendRepo: mockRepo.NewMockFriendRepository(t),
	}
	svc := NewFriendService(mocks.txManager, mocks.eventRepo, mocks.friendRepo)

	return svc, mocks
}

// expectFriendTransaction wires the transaction manager to run the decision
// callback against transactional event and friend repositories.
func expectFriendTransaction(t *testing.T, mocks *friendMocks, txEventRepo repository.ProximityEventRepository, txFriendRepo repository.FriendRepository) {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	if txEventRepo != nil {
		factory.EXPECT().NewProximityEventRepository().Return(txEventRepo)
	}
	factory.EXPECT().NewFriendRepository().Return(txFriendRepo)

	mocks.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestFriendService_RequestFriend_CreatesPendingRequest(t *testing.T) {
	svc, mocks := newFriendService(t)

	ctx := context.Background()
	userID := uuid.New()
	otherID := uuid.New()
	pair := entity.NewPair(userID, otherID)
	eventID := uuid.New()
	requestID := uuid.New()

	mocks.eventRepo.EXPECT().
		FindEventByID(ctx, eventID).
		Return(&entity.ProximityEvent{
			ID:     eventID,
			Pair:   pair,
			Status: entity.EventStatusActive,
		}, nil)

	txEventRepo := mockRepo.NewMockProximityEventRepository(t)
	txEventRepo.EXPECT().
		TransitionStatus(ctx, eventID, entity.EventStatusActive, entity.EventStatusMatched).
		Return(nil)

	txFriendRepo := mockRepo.NewMockFriendRepository(t)
	txFriendRepo.EXPECT().
		CreateFriendRequest(ctx, mock.AnythingOfType("*entity.FriendRequest")).
		RunAndReturn(func(_ context.Context, request *entity.FriendRequest) error {
			request.ID = requestID
			assert.Equal(t, pair, request.Pair)
			assert.Equal(t, userID, request.RequesterID)
			assert.Equal(t, entity.FriendRequestPending, request.Status)

			return nil
		})

	expectFriendTransaction(t, mocks, txEventRepo, txFriendRepo)

	request, err := svc.RequestFriend(ctx, userID, eventID)
	require.NoError(t, err)
	assert.Equal(t, requestID, request.ID)
	assert.Equal(t, otherID, request.Addressee())
}

func TestFriendService_RequestFriend_ReopensRejectedRequest(t *testing.T) {
	svc, mocks := newFriendService(t)

	ctx := context.Background()
	userID := uuid.New()
	pair := entity.NewPair(userID, uuid.New())
	eventID := uuid.New()
	rejected := &entity.FriendRequest{
		ID:          uuid.New(),
		Pair:        pair,
		RequesterID: pair.UserB,
		Status:      entity.FriendRequestRejected,
	}

	mocks.eventRepo.EXPECT().
		FindEventByID(ctx, eventID).
		Return(&entity.ProximityEvent{
			ID:     eventID,
			Pair:   pair,
			Status: entity.EventStatusActive,
		}, nil)

	txEventRepo := mockRepo.NewMockProximityEventRepository(t)
	txEventRepo.EXPECT().
		TransitionStatus(ctx, eventID, entity.EventStatusActive, entity.EventStatusMatched).
		Return(nil)

	txFriendRepo := mockRepo.NewMockFriendRepository(t)
	txFriendRepo.EXPECT().
		CreateFriendRequest(ctx, mock.AnythingOfType("*entity.FriendRequest")).
		Return(repository.ErrDuplicateFriendRequest)
	txFriendRepo.EXPECT().
		FindFriendRequestByPair(ctx, pair).
		Return(rejected, nil)
	txFriendRepo.EXPECT().
		ReopenFriendRequest(ctx, rejected.ID, userID, eventID, mock.AnythingOfType("time.Time")).
		Return(nil)

	expectFriendTransaction(t, mocks, txEventRepo, txFriendRepo)

	request, err := svc.RequestFriend(ctx, userID, eventID)
	require.NoError(t, err)
	assert.Equal(t, rejected.ID, request.ID)
	assert.Equal(t, entity.FriendRequestPending, request.Status)
	assert.Equal(t, userID, request.RequesterID)
}

func TestFriendService_RequestFriend_AlreadyFriends(t *testing.T) {
	svc, mocks := newFriendService(t)

	ctx := context.Background()
	userID := uuid.New()
	pair := entity.NewPair(userID, uuid.New())
	eventID := uuid.New()

	mocks.eventRepo.EXPECT().
		FindEventByID(ctx, eventID).
		Return(&entity.ProximityEvent{
			ID:     eventID,
			Pair:   pair,
			Status: entity.EventStatusActive,
		}, nil)

	txEventRepo := mockRepo.NewMockProximityEventRepository(t)
	txEventRepo.EXPECT().
		TransitionStatus(ctx, eventID, entity.EventStatusActive, entity.EventStatusMatched).
		Return(nil)

	txFriendRepo := mockRepo.NewMockFriendRepository(t)
	txFriendRepo.EXPECT().
		CreateFriendRequest(ctx, mock.AnythingOfType("*entity.FriendRequest")).
		Return(repository.ErrDuplicateFriendRequest)
	txFriendRepo.EXPECT().
		FindFriendRequestByPair(ctx, pair).
		Return(&entity.FriendRequest{
			ID:     uuid.New(),
			Pair:   pair,
			Status: entity.FriendRequestAccepted,
		}, nil)

	expectFriendTransaction(t, mocks, txEventRepo, txFriendRepo)

	request, err := svc.RequestFriend(ctx, userID, eventID)
	require.ErrorIs(t, err, ErrAlreadyFriends)
	assert.Nil(t, request)
}

func TestFriendService_RequestFriend_MatchedEventReturnsExisting(t *testing.T) {
	svc, mocks := newFriendService(t)

	ctx := context.Background()
	userID := uuid.New()
	pair := entity.NewPair(userID, uuid.New())
	eventID := uuid.New()
	existing := &entity.FriendRequest{ID: uuid.New(), Pair: pair, Status: entity.FriendRequestPending}

	mocks.eventRepo.EXPECT().
		FindEventByID(ctx, eventID).
		Return(&entity.ProximityEvent{
			ID:     eventID,
			Pair:   pair,
			Status: entity.EventStatusMatched,
		}, nil)

	mocks.friendRepo.EXPECT().
		FindFriendRequestByPair(ctx, pair).
		Return(existing, nil)

	request, err := svc.RequestFriend(ctx, userID, eventID)
	require.NoError(t, err)
	assert.Equal(t, existing, request)
}

func TestFriendService_RespondToRequest_AcceptCreatesFriendship(t *testing.T) {
	svc, mocks := newFriendService(t)

	ctx := context.Background()
	requesterID := uuid.New()
	addresseeID := uuid.New()
	pair := entity.NewPair(requesterID, addresseeID)
	requestID := uuid.New()
	eventID := uuid.New()
	friendID := uuid.New()

	mocks.friendRepo.EXPECT().
		FindFriendRequestByID(ctx, requestID).
		Return(&entity.FriendRequest{
			ID:               requestID,
			Pair:             pair,
			RequesterID:      requesterID,
			ProximityEventID: eventID,
			Status:           entity.FriendRequestPending,
		}, nil)

	txFriendRepo := mockRepo.NewMockFriendRepository(t)
	txFriendRepo.EXPECT().
		TransitionFriendRequest(ctx, requestID, entity.FriendRequestPending, entity.FriendRequestAccepted).
		Return(nil)
	txFriendRepo.EXPECT().
		CreateFriendship(ctx, mock.AnythingOfType("*entity.Friend")).
		RunAndReturn(func(_ context.Context, friend *entity.Friend) error {
			friend.ID = friendID
			assert.Equal(t, pair, friend.Pair)
			assert.Equal(t, eventID, friend.ProximityEventID)

			return nil
		})

	expectFriendTransaction(t, mocks, nil, txFriendRepo)

	friend, err := svc.RespondToRequest(ctx, addresseeID, requestID, true)
	require.NoError(t, err)
	assert.Equal(t, friendID, friend.ID)
}

func TestFriendService_RespondToRequest_RejectReturnsNoFriend(t *testing.T) {
	svc, mocks := newFriendService(t)

	ctx := context.Background()
	requesterID := uuid.New()
	addresseeID := uuid.New()
	requestID := uuid.New()

	mocks.friendRepo.EXPECT().
		FindFriendRequestByID(ctx, requestID).
		Return(&entity.FriendRequest{
			ID:          requestID,
			Pair:        entity.NewPair(requesterID, addresseeID),
			RequesterID: requesterID,
			Status:      entity.FriendRequestPending,
		}, nil)

	txFriendRepo := mockRepo.NewMockFriendRepository(t)
	txFriendRepo.EXPECT().
		TransitionFriendRequest(ctx, requestID, entity.FriendRequestPending, entity.FriendRequestRejected).
		Return(nil)

	expectFriendTransaction(t, mocks, nil, txFriendRepo)

	friend, err := svc.RespondToRequest(ctx, addresseeID, requestID, false)
	require.NoError(t, err)
	assert.Nil(t, friend)
}

func TestFriendService_RespondToRequest_OnlyAddresseeMayRespond(t *testing.T) {
	svc, mocks := newFriendService(t)

	ctx := context.Background()
	requesterID := uuid.New()
	requestID := uuid.New()

	mocks.friendRepo.EXPECT().
		FindFriendRequestByID(ctx, requestID).
		Return(&entity.FriendRequest{
			ID:          requestID,
			Pair:        entity.NewPair(requesterID, uuid.New()),
			RequesterID: requesterID,
			Status:      entity.FriendRequestPending,
		}, nil)

	// The requester cannot accept their own request.
	friend, err := svc.RespondToRequest(ctx, requesterID, requestID, true)
	require.ErrorIs(t, err, ErrNotRequestAddressee)
	assert.Nil(t, friend)
}

func TestFriendService_RespondToRequest_NotPending(t *testing.T) {
	svc, mocks := newFriendService(t)

	ctx := context.Background()
	requesterID := uuid.New()
	addresseeID := uuid.New()
	requestID := uuid.New()

	mocks.friendRepo.EXPECT().
		FindFriendRequestByID(ctx, requestID).
		Return(&entity.FriendRequest{
			ID:          requestID,
			Pair:        entity.NewPair(requesterID, addresseeID),
			RequesterID: requesterID,
			Status:      entity.FriendRequestAccepted,
		}, nil)

	friend, err := svc.RespondToRequest(ctx, addresseeID, requestID, true)
	require.ErrorIs(t, err, ErrRequestNotActionable)
	assert.Nil(t, friend)
}

func TestFriendService_ListIncomingRequests_Defaults(t *testing.T) {
	svc, mocks := newFriendService(t)

	ctx := context.Background()
	userID := uuid.New()
	expected := []*entity.FriendRequest{{ID: uuid.New()}}

	mocks.friendRepo.EXPECT().
		FindFriendRequestsForUser(ctx, userID, entity.FriendRequestPending, defaultRequestPageSize, 0).
		Return(expected, nil)

	requests, err := svc.ListIncomingRequests(ctx, userID, "", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, expected, requests)
}

func TestFriendService_ListFriends(t *testing.T) {
	svc, mocks := newFriendService(t)

	ctx := context.Background()
	userID := uuid.New()
	expected := []*entity.Friend{{ID: uuid.New()}}

	mocks.friendRepo.EXPECT().
		FindFriendsOfUser(ctx, userID).
		Return(expected, nil)

	friends, err := svc.ListFriends(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, expected, friends)
}

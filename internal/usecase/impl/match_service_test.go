package impl

import (
	"context"
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

type matchMocks struct {
	txManager   *mockRepo.MockTransactionManager
	eventRepo   *mockRepo.MockProximityEventRepository
	matchRepo   *mockRepo.MockMatchRepository
	profileRepo *mockRepo.MockProfileRepository
	publisher   *mockSvc.MockEventPublisher
}

func newMatchService(t *testing.T) (usecase.MatchUsecase, *matchMocks) {
	t.Helper()

	mocks := &matchMocks{
		txManager:   mockRepo.NewMockTransactionManager(t),
		eventRepo:   mockRepo.NewMockProximityEventRepository(t),
		matchRepo:   mockRepo.NewMockMatchRepository(t),
		profileRepo: mockRepo.NewMockProfileRepository(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
	}
	svc := NewMatchService(
		mocks.txManager,
		mocks.eventRepo,
		mocks.matchRepo,
		mocks.profileRepo,
		mocks.publisher,
		newDiscardLogger(),
	)

	return svc, mocks
}

// expectTransaction wires the transaction manager to run the decision
// callback against a factory bound to the given transactional repositories.
func expectTransaction(t *testing.T, mocks *matchMocks, txEventRepo repository.ProximityEventRepository, txMatchRepo repository.MatchRepository) {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewProximityEventRepository().Return(txEventRepo)
	factory.EXPECT().NewMatchRepository().Return(txMatchRepo)

	mocks.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestMatchService_Connect_CreatesMatch(t *testing.T) {
	svc, mocks := newMatchService(t)

	ctx := context.Background()
	userID := uuid.New()
	otherID := uuid.New()
	pair := entity.NewPair(userID, otherID)
	eventID := uuid.New()
	matchID := uuid.New()

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

	txMatchRepo := mockRepo.NewMockMatchRepository(t)
	txMatchRepo.EXPECT().
		CreateMatch(ctx, mock.AnythingOfType("*entity.Match")).
		RunAndReturn(func(_ context.Context, match *entity.Match) error {
			match.ID = matchID
			assert.Equal(t, pair, match.Pair)
			assert.Equal(t, eventID, match.ProximityEventID)
			assert.Equal(t, entity.MatchStatusActive, match.Status)
			assert.False(t, match.InstagramShared[userID])
			assert.False(t, match.InstagramShared[otherID])

			return nil
		})

	expectTransaction(t, mocks, txEventRepo, txMatchRepo)

	mocks.profileRepo.EXPECT().
		FindProfilesByUsers(ctx, mock.AnythingOfType("[]uuid.UUID")).
		Return(map[uuid.UUID]*entity.UserProfile{
			userID:  {UserID: userID, DisplayName: "Alex"},
			otherID: {UserID: otherID, DisplayName: "Sam"},
		}, nil)

	names := map[uuid.UUID]string{userID: "Alex", otherID: "Sam"}

	mocks.publisher.EXPECT().
		PublishEncounterEvent(ctx, mock.AnythingOfType("*service.EncounterEvent")).
		RunAndReturn(func(_ context.Context, event *service.EncounterEvent) error {
			assert.Equal(t, service.EncounterKindMatch, event.Kind)
			assert.Equal(t, matchID.String(), event.MatchID)

			// Both pair members are notified, each seeing the
			// counterpart's display name.
			users := pair.Users()
			assert.Equal(t, []string{users[0].String(), users[1].String()}, event.RecipientIDs)
			assert.Equal(t, []string{names[users[1]], names[users[0]]}, event.DisplayNames)

			return nil
		})

	match, err := svc.Connect(ctx, userID, eventID)
	require.NoError(t, err)
	assert.Equal(t, matchID, match.ID)
	assert.Equal(t, entity.MatchStatusActive, match.Status)
}

func TestMatchService_Connect_AlreadyMatchedReturnsExisting(t *testing.T) {
	svc, mocks := newMatchService(t)

	ctx := context.Background()
	userID := uuid.New()
	pair := entity.NewPair(userID, uuid.New())
	eventID := uuid.New()
	existing := &entity.Match{ID: uuid.New(), Pair: pair, Status: entity.MatchStatusActive}

	mocks.eventRepo.EXPECT().
		FindEventByID(ctx, eventID).
		Return(&entity.ProximityEvent{
			ID:     eventID,
			Pair:   pair,
			Status: entity.EventStatusMatched,
		}, nil)

	mocks.matchRepo.EXPECT().
		FindMatchByPair(ctx, pair).
		Return(existing, nil)

	match, err := svc.Connect(ctx, userID, eventID)
	require.NoError(t, err)
	assert.Equal(t, existing, match)
}

func TestMatchService_Connect_ReactivatesPriorMatch(t *testing.T) {
	svc, mocks := newMatchService(t)

	ctx := context.Background()
	userID := uuid.New()
	pair := entity.NewPair(userID, uuid.New())
	eventID := uuid.New()
	prior := &entity.Match{
		ID:     uuid.New(),
		Pair:   pair,
		Status: entity.MatchStatusDeleted,
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

	txMatchRepo := mockRepo.NewMockMatchRepository(t)
	txMatchRepo.EXPECT().
		CreateMatch(ctx, mock.AnythingOfType("*entity.Match")).
		Return(repository.ErrDuplicateMatch)
	txMatchRepo.EXPECT().
		FindMatchByPair(ctx, pair).
		Return(prior, nil)
	txMatchRepo.EXPECT().
		ReactivateMatch(ctx, prior.ID, eventID, mock.AnythingOfType("time.Time")).
		Return(nil)

	expectTransaction(t, mocks, txEventRepo, txMatchRepo)

	// Reactivation is an update, not a new match: no notification goes
	// out. The publisher and profile mocks have no expectations, so any
	// publish would fail the test.
	match, err := svc.Connect(ctx, userID, eventID)
	require.NoError(t, err)
	assert.Equal(t, prior.ID, match.ID)
	assert.Equal(t, entity.MatchStatusActive, match.Status)
	assert.Equal(t, eventID, match.ProximityEventID)
}

func TestMatchService_Connect_LostStatusRace(t *testing.T) {
	svc, mocks := newMatchService(t)

	ctx := context.Background()
	userID := uuid.New()
	pair := entity.NewPair(userID, uuid.New())
	eventID := uuid.New()
	existing := &entity.Match{ID: uuid.New(), Pair: pair, Status: entity.MatchStatusActive}

	mocks.eventRepo.EXPECT().
		FindEventByID(ctx, eventID).
		Return(&entity.ProximityEvent{
			ID:     eventID,
			Pair:   pair,
			Status: entity.EventStatusActive,
		}, nil).
		Once()

	txEventRepo := mockRepo.NewMockProximityEventRepository(t)
	txEventRepo.EXPECT().
		TransitionStatus(ctx, eventID, entity.EventStatusActive, entity.EventStatusMatched).
		Return(repository.ErrEventStatusConflict)

	txMatchRepo := mockRepo.NewMockMatchRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewProximityEventRepository().Return(txEventRepo)
	factory.EXPECT().NewMatchRepository().Return(txMatchRepo).Maybe()
	mocks.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	// The counterpart connected first; the re-read shows matched and the
	// pair's match is returned as if this call had succeeded.
	mocks.eventRepo.EXPECT().
		FindEventByID(ctx, eventID).
		Return(&entity.ProximityEvent{
			ID:     eventID,
			Pair:   pair,
			Status: entity.EventStatusMatched,
		}, nil).
		Once()

	mocks.matchRepo.EXPECT().
		FindMatchByPair(ctx, pair).
		Return(existing, nil)

	match, err := svc.Connect(ctx, userID, eventID)
	require.NoError(t, err)
	assert.Equal(t, existing, match)
}

func TestMatchService_Connect_EndedEventNotActionable(t *testing.T) {
	svc, mocks := newMatchService(t)

	ctx := context.Background()
	userID := uuid.New()
	eventID := uuid.New()

	mocks.eventRepo.EXPECT().
		FindEventByID(ctx, eventID).
		Return(&entity.ProximityEvent{
			ID:     eventID,
			Pair:   entity.NewPair(userID, uuid.New()),
			Status: entity.EventStatusEnded,
		}, nil)

	match, err := svc.Connect(ctx, userID, eventID)
	require.ErrorIs(t, err, ErrEventNotActionable)
	assert.Nil(t, match)
}

func TestMatchService_Connect_NotParticipant(t *testing.T) {
	svc, mocks := newMatchService(t)

	ctx := context.Background()
	eventID := uuid.New()

	mocks.eventRepo.EXPECT().
		FindEventByID(ctx, eventID).
		Return(&entity.ProximityEvent{
			ID:     eventID,
			Pair:   entity.NewPair(uuid.New(), uuid.New()),
			Status: entity.EventStatusActive,
		}, nil)

	match, err := svc.Connect(ctx, uuid.New(), eventID)
	require.ErrorIs(t, err, ErrNotEventParticipant)
	assert.Nil(t, match)
}

func TestMatchService_Skip_TransitionsToIgnored(t *testing.T) {
	svc, mocks := newMatchService(t)

	ctx := context.Background()
	userID := uuid.New()
	eventID := uuid.New()

	mocks.eventRepo.EXPECT().
		FindEventByID(ctx, eventID).
		Return(&entity.ProximityEvent{
			ID:     eventID,
			Pair:   entity.NewPair(userID, uuid.New()),
			Status: entity.EventStatusActive,
		}, nil)

	mocks.eventRepo.EXPECT().
		TransitionStatus(ctx, eventID, entity.EventStatusActive, entity.EventStatusIgnored).
		Return(nil)

	err := svc.Skip(ctx, userID, eventID)
	require.NoError(t, err)
}

func TestMatchService_Skip_IdempotentOnIgnored(t *testing.T) {
	svc, mocks := newMatchService(t)

	ctx := context.Background()
	userID := uuid.New()
	eventID := uuid.New()

	mocks.eventRepo.EXPECT().
		FindEventByID(ctx, eventID).
		Return(&entity.ProximityEvent{
			ID:     eventID,
			Pair:   entity.NewPair(userID, uuid.New()),
			Status: entity.EventStatusIgnored,
		}, nil)

	err := svc.Skip(ctx, userID, eventID)
	require.NoError(t, err)
}

func TestMatchService_Skip_MatchedEventNotActionable(t *testing.T) {
	svc, mocks := newMatchService(t)

	ctx := context.Background()
	userID := uuid.New()
	eventID := uuid.New()

	mocks.eventRepo.EXPECT().
		FindEventByID(ctx, eventID).
		Return(&entity.ProximityEvent{
			ID:     eventID,
			Pair:   entity.NewPair(userID, uuid.New()),
			Status: entity.EventStatusMatched,
		}, nil)

	err := svc.Skip(ctx, userID, eventID)
	require.ErrorIs(t, err, ErrEventNotActionable)
}

func TestMatchService_GetMatch_NotParticipant(t *testing.T) {
	svc, mocks := newMatchService(t)

	ctx := context.Background()
	matchID := uuid.New()

	mocks.matchRepo.EXPECT().
		FindMatchByID(ctx, matchID).
		Return(&entity.Match{
			ID:   matchID,
			Pair: entity.NewPair(uuid.New(), uuid.New()),
		}, nil)

	match, err := svc.GetMatch(ctx, uuid.New(), matchID)
	require.ErrorIs(t, err, ErrNotMatchParticipant)
	assert.Nil(t, match)
}

func TestMatchService_ListMatches_DefaultsLimit(t *testing.T) {
	svc, mocks := newMatchService(t)

	ctx := context.Background()
	userID := uuid.New()
	expected := []*entity.Match{{ID: uuid.New()}}

	mocks.matchRepo.EXPECT().
		FindMatchesByUser(ctx, userID, defaultMatchPageSize, 0).
		Return(expected, nil)

	matches, err := svc.ListMatches(ctx, userID, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, expected, matches)
}

func TestMatchService_ShareInstagram(t *testing.T) {
	svc, mocks := newMatchService(t)

	ctx := context.Background()
	userID := uuid.New()
	matchID := uuid.New()

	mocks.matchRepo.EXPECT().
		FindMatchByID(ctx, matchID).
		Return(&entity.Match{
			ID:   matchID,
			Pair: entity.NewPair(userID, uuid.New()),
		}, nil)

	mocks.matchRepo.EXPECT().
		SetInstagramShared(ctx, matchID, userID, true).
		Return(nil)

	match, err := svc.ShareInstagram(ctx, userID, matchID, true)
	require.NoError(t, err)
	assert.True(t, match.InstagramShared[userID])
}

func TestMatchService_RecordLastMessage_SenderMustParticipate(t *testing.T) {
	svc, mocks := newMatchService(t)

	ctx := context.Background()
	matchID := uuid.New()

	mocks.matchRepo.EXPECT().
		FindMatchByID(ctx, matchID).
		Return(&entity.Match{
			ID:   matchID,
			Pair: entity.NewPair(uuid.New(), uuid.New()),
		}, nil)

	err := svc.RecordLastMessage(ctx, matchID, &entity.MessagePreview{
		Text:     "hey!",
		SenderID: uuid.New(),
	})
	require.ErrorIs(t, err, ErrNotMatchParticipant)
}

func TestMatchService_RecordLastMessage_Success(t *testing.T) {
	svc, mocks := newMatchService(t)

	ctx := context.Background()
	matchID := uuid.New()
	senderID := uuid.New()

	mocks.matchRepo.EXPECT().
		FindMatchByID(ctx, matchID).
		Return(&entity.Match{
			ID:   matchID,
			Pair: entity.NewPair(senderID, uuid.New()),
		}, nil)

	mocks.matchRepo.EXPECT().
		UpdateLastMessage(ctx, matchID, mock.AnythingOfType("*entity.MessagePreview")).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, preview *entity.MessagePreview) error {
			assert.Equal(t, "hey!", preview.Text)
			assert.WithinDuration(t, time.Now(), preview.SentAt, 5*time.Second)

			return nil
		})

	err := svc.RecordLastMessage(ctx, matchID, &entity.MessagePreview{
		Text:     "hey!",
		SenderID: senderID,
	})
	require.NoError(t, err)
}

func TestMatchService_Unmatch(t *testing.T) {
	svc, mocks := newMatchService(t)

	ctx := context.Background()
	userID := uuid.New()
	matchID := uuid.New()

	mocks.matchRepo.EXPECT().
		FindMatchByID(ctx, matchID).
		Return(&entity.Match{
			ID:   matchID,
			Pair: entity.NewPair(userID, uuid.New()),
		}, nil)

	mocks.matchRepo.EXPECT().
		DeleteMatch(ctx, matchID).
		Return(nil)

	err := svc.Unmatch(ctx, userID, matchID)
	require.NoError(t, err)
}

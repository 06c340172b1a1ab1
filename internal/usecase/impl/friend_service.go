package impl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crosspath/internal/domain/entity"
	"crosspath/internal/domain/repository"
	"crosspath/internal/usecase"

	"github.com/google/uuid"
)

var (
	// ErrRequestNotFound is returned when a friend request does not exist
	ErrRequestNotFound = errors.New("friend request not found")
	// ErrNotRequestAddressee is returned when a user responds to a request
	// not addressed to them
	ErrNotRequestAddressee = errors.New("user is not the addressee of this friend request")
	// ErrRequestNotActionable is returned when responding to a request that
	// is no longer pending
	ErrRequestNotActionable = errors.New("friend request is not pending")
	// ErrAlreadyFriends is returned when requesting friendship with an
	// existing friend
	ErrAlreadyFriends = errors.New("users are already friends")
)

const defaultRequestPageSize = 50

type friendService struct {
	txManager  repository.TransactionManager
	eventRepo  repository.ProximityEventRepository
	friendRepo repository.FriendRepository
}

// NewFriendService creates a new friend service instance
func NewFriendService(
	txManager repository.TransactionManager,
	eventRepo repository.ProximityEventRepository,
	friendRepo repository.FriendRepository,
) usecase.FriendUsecase {
	return &friendService{
		txManager:  txManager,
		eventRepo:  eventRepo,
		friendRepo: friendRepo,
	}
}

// RequestFriend acts on an active proximity event: the event transitions to
// matched and a pending request is created for the other user.
func (s *friendService) RequestFriend(ctx context.Context, userID, eventID uuid.UUID) (*entity.FriendRequest, error) {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}

		return nil, fmt.Errorf("failed to find proximity event: %w", err)
	}

	if !event.Pair.Contains(userID) {
		return nil, ErrNotEventParticipant
	}

	// Requesting again after the event already left active just returns
	// the pair's request, if one exists.
	if event.Status == entity.EventStatusMatched {
		return s.pairRequest(ctx, event.Pair)
	}
	if event.Status != entity.EventStatusActive {
		return nil, ErrEventNotActionable
	}

	now := time.Now()
	var request *entity.FriendRequest

	txErr := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.NewProximityEventRepository().TransitionStatus(ctx, eventID, entity.EventStatusActive, entity.EventStatusMatched); err != nil {
			return err
		}

		created, err := s.createOrReopenRequest(ctx, f.NewFriendRepository(), event.Pair, userID, eventID, now)
		if err != nil {
			return err
		}
		request = created

		return nil
	})

	if txErr != nil {
		if errors.Is(txErr, repository.ErrEventStatusConflict) {
			current, err := s.eventRepo.FindEventByID(ctx, eventID)
			if err == nil && current.Status == entity.EventStatusMatched {
				return s.pairRequest(ctx, current.Pair)
			}

			return nil, ErrEventNotActionable
		}

		return nil, fmt.Errorf("failed to request friend: %w", txErr)
	}

	return request, nil
}

// RespondToRequest accepts or rejects a pending request addressed to the
// user. On accept the friendship is created in the same transaction.
func (s *friendService) RespondToRequest(ctx context.Context, userID, requestID uuid.UUID, accept bool) (*entity.Friend, error) {
	request, err := s.friendRepo.FindFriendRequestByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrFriendRequestNotFound) {
			return nil, ErrRequestNotFound
		}

		return nil, fmt.Errorf("failed to find friend request: %w", err)
	}

	if request.Addressee() != userID {
		return nil, ErrNotRequestAddressee
	}
	if request.Status != entity.FriendRequestPending {
		return nil, ErrRequestNotActionable
	}

	next := entity.FriendRequestRejected
	if accept {
		next = entity.FriendRequestAccepted
	}

	var friend *entity.Friend

	txErr := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		friendRepo := f.NewFriendRepository()

		if err := friendRepo.TransitionFriendRequest(ctx, requestID, entity.FriendRequestPending, next); err != nil {
			return err
		}

		if !accept {
			return nil
		}

		users := request.Pair.Users()
		created := &entity.Friend{
			Pair:             request.Pair,
			ProximityEventID: request.ProximityEventID,
			InstagramShared: map[uuid.UUID]bool{
				users[0]: false,
				users[1]: false,
			},
		}

		err := friendRepo.CreateFriendship(ctx, created)
		if err == nil {
			friend = created

			return nil
		}
		if !errors.Is(err, repository.ErrDuplicateFriendship) {
			return err
		}

		existing, err := friendRepo.FindFriendshipByPair(ctx, request.Pair)
		if err != nil {
			return err
		}
		friend = existing

		return nil
	})

	if txErr != nil {
		if errors.Is(txErr, repository.ErrFriendRequestNotFound) {
			return nil, ErrRequestNotActionable
		}

		return nil, fmt.Errorf("failed to respond to friend request: %w", txErr)
	}

	return friend, nil
}

// ListIncomingRequests retrieves requests addressed to the user with the
// given status, newest first.
func (s *friendService) ListIncomingRequests(ctx context.Context, userID uuid.UUID, status entity.FriendRequestStatus, limit, offset int) ([]*entity.FriendRequest, error) {
	if limit <= 0 {
		limit = defaultRequestPageSize
	}
	if status == "" {
		status = entity.FriendRequestPending
	}

	requests, err := s.friendRepo.FindFriendRequestsForUser(ctx, userID, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to find friend requests for user: %w", err)
	}

	return requests, nil
}

// ListFriends retrieves all of the user's friendships.
func (s *friendService) ListFriends(ctx context.Context, userID uuid.UUID) ([]*entity.Friend, error) {
	friends, err := s.friendRepo.FindFriendsOfUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find friends of user: %w", err)
	}

	return friends, nil
}

// pairRequest loads the request for a pair, mapping absence to the
// actionability error.
func (s *friendService) pairRequest(ctx context.Context, pair entity.Pair) (*entity.FriendRequest, error) {
	request, err := s.friendRepo.FindFriendRequestByPair(ctx, pair)
	if err != nil {
		if errors.Is(err, repository.ErrFriendRequestNotFound) {
			return nil, ErrEventNotActionable
		}

		return nil, fmt.Errorf("failed to find friend request by pair: %w", err)
	}

	return request, nil
}

// createOrReopenRequest creates the pair's request record, or reopens one
// that was rejected earlier. An accepted request means the pair is already
// friends.
func (s *friendService) createOrReopenRequest(ctx context.Context, friendRepo repository.FriendRepository, pair entity.Pair, requesterID, eventID uuid.UUID, now time.Time) (*entity.FriendRequest, error) {
	request := &entity.FriendRequest{
		Pair:             pair,
		RequesterID:      requesterID,
		ProximityEventID: eventID,
		Status:           entity.FriendRequestPending,
	}

	err := friendRepo.CreateFriendRequest(ctx, request)
	if err == nil {
		return request, nil
	}
	if !errors.Is(err, repository.ErrDuplicateFriendRequest) {
		return nil, err
	}

	existing, err := friendRepo.FindFriendRequestByPair(ctx, pair)
	if err != nil {
		return nil, err
	}

	switch existing.Status {
	case entity.FriendRequestPending:
		return existing, nil

	case entity.FriendRequestAccepted:
		return nil, ErrAlreadyFriends

	case entity.FriendRequestRejected:
		if err := friendRepo.ReopenFriendRequest(ctx, existing.ID, requesterID, eventID, now); err != nil {
			return nil, err
		}
		existing.Status = entity.FriendRequestPending
		existing.RequesterID = requesterID
		existing.ProximityEventID = eventID

		return existing, nil
	}

	return existing, nil
}

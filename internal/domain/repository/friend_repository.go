package repository

import (
	"context"
	"time"

	"crosspath/internal/domain/entity"
	"crosspath/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for friend persistence.
var (
	// ErrFriendRequestNotFound is returned when a friend request is not found.
	ErrFriendRequestNotFound = errors.New("friend request not found")
	// ErrDuplicateFriendRequest is returned when the pair already has a
	// friend request record.
	ErrDuplicateFriendRequest = errors.New("friend request already exists for pair")
	// ErrFriendshipNotFound is returned when a friendship is not found.
	ErrFriendshipNotFound = errors.New("friendship not found")
	// ErrDuplicateFriendship is returned when the pair is already friends.
	ErrDuplicateFriendship = errors.New("friendship already exists for pair")
)

// FriendRepository persists friend requests and friendships, both keyed by
// the unordered user pair.
type FriendRepository interface {
	// CreateFriendRequest persists a new pending request. Returns
	// ErrDuplicateFriendRequest when the pair already has one.
	CreateFriendRequest(ctx context.Context, request *entity.FriendRequest) error

	// FindFriendRequestByID retrieves a request by its unique ID.
	FindFriendRequestByID(ctx context.Context, id uuid.UUID) (*entity.FriendRequest, error)

	// FindFriendRequestByPair retrieves the request for a pair, in either
	// argument order. Returns ErrFriendRequestNotFound when none exists.
	FindFriendRequestByPair(ctx context.Context, pair entity.Pair) (*entity.FriendRequest, error)

	// FindFriendRequestsForUser retrieves requests addressed to the user
	// with the given status, newest first.
	FindFriendRequestsForUser(ctx context.Context, userID uuid.UUID, status entity.FriendRequestStatus, limit, offset int) ([]*entity.FriendRequest, error)

	// TransitionFriendRequest conditionally moves a request from the
	// expected status to the next one. Returns ErrFriendRequestNotFound
	// when the request is not in the expected status.
	TransitionFriendRequest(ctx context.Context, id uuid.UUID, expect, next entity.FriendRequestStatus) error

	// ReopenFriendRequest resets a rejected request to pending with a new
	// requester and originating event.
	ReopenFriendRequest(ctx context.Context, id, requesterID, eventID uuid.UUID, at time.Time) error

	// CreateFriendship persists a new friendship. Returns
	// ErrDuplicateFriendship when the pair is already friends.
	CreateFriendship(ctx context.Context, friend *entity.Friend) error

	// FindFriendshipByPair retrieves the friendship for a pair, in either
	// argument order. Returns ErrFriendshipNotFound when none exists.
	FindFriendshipByPair(ctx context.Context, pair entity.Pair) (*entity.Friend, error)

	// FindFriendsOfUser retrieves all friendships involving the user.
	FindFriendsOfUser(ctx context.Context, userID uuid.UUID) ([]*entity.Friend, error)
}

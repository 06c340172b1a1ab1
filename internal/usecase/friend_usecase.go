package usecase

import (
	"context"

	"crosspath/internal/domain/entity"

	"github.com/google/uuid"
)

// FriendUsecase defines the interface for the friend decision use cases
type FriendUsecase interface {
	// RequestFriend acts on an active proximity event: the event
	// transitions to matched and a pending friend request is created for
	// the other user. A previously rejected request for the pair is
	// reopened instead of duplicated.
	RequestFriend(ctx context.Context, userID, eventID uuid.UUID) (*entity.FriendRequest, error)

	// RespondToRequest accepts or rejects a pending request addressed to
	// the user. On accept the friendship is created in the same
	// transaction; the returned Friend is nil on reject.
	RespondToRequest(ctx context.Context, userID, requestID uuid.UUID, accept bool) (*entity.Friend, error)

	// ListIncomingRequests retrieves requests addressed to the user with
	// the given status, newest first.
	ListIncomingRequests(ctx context.Context, userID uuid.UUID, status entity.FriendRequestStatus, limit, offset int) ([]*entity.FriendRequest, error)

	// ListFriends retrieves all of the user's friendships.
	ListFriends(ctx context.Context, userID uuid.UUID) ([]*entity.Friend, error)
}

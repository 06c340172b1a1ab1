// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"crosspath/internal/domain/entity"
	"crosspath/internal/domain/repository"
	"crosspath/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// friendRepository implements the repository.FriendRepository interface.
type friendRepository struct {
	db *gorm.DB
}

// NewFriendRepository is the constructor for friendRepository.
func NewFriendRepository(db *gorm.DB) repository.FriendRepository {
	return &friendRepository{
		db: db,
	}
}

// CreateFriendRequest persists a new pending request. The pair key is unique
// across all statuses; a rejected request is reopened, not duplicated.
func (repo *friendRepository) CreateFriendRequest(ctx context.Context, request *entity.FriendRequest) error {
	request.Status = entity.FriendRequestPending
	requestM := fromFriendRequestDomain(request)

	if err := repo.db.WithContext(ctx).Create(requestM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateFriendRequest
		}

		return errors.Wrap(err, "failed to create friend request")
	}

	// Update the entity with generated values
	request.ID = requestM.ID
	request.CreatedAt = requestM.CreatedAt
	request.UpdatedAt = requestM.UpdatedAt

	return nil
}

// FindFriendRequestByID retrieves a request by its unique ID.
func (repo *friendRepository) FindFriendRequestByID(ctx context.Context, id uuid.UUID) (*entity.FriendRequest, error) {
	var requestM model.FriendRequestModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFriendRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find friend request by ID")
	}

	return toFriendRequestDomain(&requestM), nil
}

// FindFriendRequestByPair retrieves the request for a pair.
func (repo *friendRepository) FindFriendRequestByPair(ctx context.Context, pair entity.Pair) (*entity.FriendRequest, error) {
	var requestM model.FriendRequestModel

	if err := repo.db.WithContext(ctx).
		Where("user_a_id = ? AND user_b_id = ?", pair.UserA, pair.UserB).
		First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFriendRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find friend request by pair")
	}

	return toFriendRequestDomain(&requestM), nil
}

// FindFriendRequestsForUser retrieves requests addressed to the user with the
// given status, newest first. Requests the user sent are excluded.
func (repo *friendRepository) FindFriendRequestsForUser(ctx context.Context, userID uuid.UUID, status entity.FriendRequestStatus, limit, offset int) ([]*entity.FriendRequest, error) {
	var requestModels []*model.FriendRequestModel

	if err := repo.db.WithContext(ctx).
		Where("(user_a_id = ? OR user_b_id = ?) AND requester_id <> ? AND status = ?", userID, userID, userID, status).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find friend requests for user")
	}

	requests := make([]*entity.FriendRequest, 0, len(requestModels))
	for _, requestM := range requestModels {
		requests = append(requests, toFriendRequestDomain(requestM))
	}

	return requests, nil
}

// TransitionFriendRequest conditionally moves a request from the expected
// status to the next one.
func (repo *friendRepository) TransitionFriendRequest(ctx context.Context, id uuid.UUID, expect, next entity.FriendRequestStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.FriendRequestModel{}).
		Where("id = ? AND status = ?", id, expect).
		Update("status", next)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to transition friend request")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFriendRequestNotFound
	}

	return nil
}

// ReopenFriendRequest resets a rejected request to pending with a new
// requester and originating event.
func (repo *friendRepository) ReopenFriendRequest(ctx context.Context, id, requesterID, eventID uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.FriendRequestModel{}).
		Where("id = ? AND status = ?", id, entity.FriendRequestRejected).
		Updates(map[string]any{
			"status":             entity.FriendRequestPending,
			"requester_id":       requesterID,
			"proximity_event_id": eventID,
			"updated_at":         at,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to reopen friend request")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFriendRequestNotFound
	}

	return nil
}

// CreateFriendship persists a new friendship.
func (repo *friendRepository) CreateFriendship(ctx context.Context, friend *entity.Friend) error {
	friendM, err := fromFriendDomain(friend)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(friendM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateFriendship
		}

		return errors.Wrap(err, "failed to create friendship")
	}

	// Update the entity with generated values
	friend.ID = friendM.ID
	friend.CreatedAt = friendM.CreatedAt
	friend.UpdatedAt = friendM.UpdatedAt

	return nil
}

// FindFriendshipByPair retrieves the friendship for a pair.
func (repo *friendRepository) FindFriendshipByPair(ctx context.Context, pair entity.Pair) (*entity.Friend, error) {
	var friendM model.FriendModel

	if err := repo.db.WithContext(ctx).
		Where("user_a_id = ? AND user_b_id = ?", pair.UserA, pair.UserB).
		First(&friendM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFriendshipNotFound
		}

		return nil, errors.Wrap(err, "failed to find friendship by pair")
	}

	return toFriendDomain(&friendM)
}

// FindFriendsOfUser retrieves all friendships involving the user.
func (repo *friendRepository) FindFriendsOfUser(ctx context.Context, userID uuid.UUID) ([]*entity.Friend, error) {
	var friendModels []*model.FriendModel

	if err := repo.db.WithContext(ctx).
		Where("user_a_id = ? OR user_b_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&friendModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find friends of user")
	}

	friends := make([]*entity.Friend, 0, len(friendModels))
	for _, friendM := range friendModels {
		friend, err := toFriendDomain(friendM)
		if err != nil {
			return nil, err
		}
		friends = append(friends, friend)
	}

	return friends, nil
}

// --- Mapper Functions ---

// toFriendRequestDomain converts a GORM FriendRequestModel to a domain FriendRequest entity.
func toFriendRequestDomain(data *model.FriendRequestModel) *entity.FriendRequest {
	if data == nil {
		return nil
	}

	return &entity.FriendRequest{
		ID:               data.ID,
		Pair:             entity.NewPair(data.UserAID, data.UserBID),
		RequesterID:      data.RequesterID,
		ProximityEventID: data.ProximityEventID,
		Status:           entity.FriendRequestStatus(data.Status),
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

// fromFriendRequestDomain converts a domain FriendRequest entity to a GORM FriendRequestModel.
func fromFriendRequestDomain(data *entity.FriendRequest) *model.FriendRequestModel {
	if data == nil {
		return nil
	}

	return &model.FriendRequestModel{
		ID:               data.ID,
		UserAID:          data.Pair.UserA,
		UserBID:          data.Pair.UserB,
		RequesterID:      data.RequesterID,
		ProximityEventID: data.ProximityEventID,
		Status:           string(data.Status),
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

// toFriendDomain converts a GORM FriendModel to a domain Friend entity.
func toFriendDomain(data *model.FriendModel) (*entity.Friend, error) {
	if data == nil {
		return nil, nil
	}

	shared, err := unmarshalInstagramShared(data.InstagramShared)
	if err != nil {
		return nil, err
	}

	preview, err := unmarshalMessagePreview(data.LastMessage)
	if err != nil {
		return nil, err
	}

	return &entity.Friend{
		ID:               data.ID,
		Pair:             entity.NewPair(data.UserAID, data.UserBID),
		ProximityEventID: data.ProximityEventID,
		InstagramShared:  shared,
		LastMessage:      preview,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}, nil
}

// fromFriendDomain converts a domain Friend entity to a GORM FriendModel.
func fromFriendDomain(data *entity.Friend) (*model.FriendModel, error) {
	if data == nil {
		return nil, nil
	}

	sharedJSON, err := marshalInstagramShared(data.InstagramShared)
	if err != nil {
		return nil, err
	}

	previewJSON, err := marshalMessagePreview(data.LastMessage)
	if err != nil {
		return nil, err
	}

	return &model.FriendModel{
		ID:               data.ID,
		UserAID:          data.Pair.UserA,
		UserBID:          data.Pair.UserB,
		ProximityEventID: data.ProximityEventID,
		InstagramShared:  sharedJSON,
		LastMessage:      previewJSON,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}, nil
}

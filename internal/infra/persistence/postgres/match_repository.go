// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"
	"time"

	"crosspath/internal/domain/entity"
	"crosspath/internal/domain/repository"
	"crosspath/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// matchRepository implements the repository.MatchRepository interface.
type matchRepository struct {
	db *gorm.DB
}

// NewMatchRepository is the constructor for matchRepository.
func NewMatchRepository(db *gorm.DB) repository.MatchRepository {
	return &matchRepository{
		db: db,
	}
}

// CreateMatch persists a new match. The unique pair index covers every
// status, so a concurrent or repeat create collides and the caller falls
// back to ReactivateMatch.
func (repo *matchRepository) CreateMatch(ctx context.Context, match *entity.Match) error {
	matchM, err := fromMatchDomain(match)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(matchM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateMatch
		}

		return errors.Wrap(err, "failed to create match")
	}

	// Update the entity with generated values
	match.ID = matchM.ID
	match.CreatedAt = matchM.CreatedAt
	match.UpdatedAt = matchM.UpdatedAt

	return nil
}

// FindMatchByID retrieves a match by its unique ID.
func (repo *matchRepository) FindMatchByID(ctx context.Context, id uuid.UUID) (*entity.Match, error) {
	var matchM model.MatchModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&matchM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMatchNotFound
		}

		return nil, errors.Wrap(err, "failed to find match by ID")
	}

	return toMatchDomain(&matchM)
}

// FindMatchByPair retrieves the match for a pair.
func (repo *matchRepository) FindMatchByPair(ctx context.Context, pair entity.Pair) (*entity.Match, error) {
	var matchM model.MatchModel

	if err := repo.db.WithContext(ctx).
		Where("user_a_id = ? AND user_b_id = ?", pair.UserA, pair.UserB).
		First(&matchM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMatchNotFound
		}

		return nil, errors.Wrap(err, "failed to find match by pair")
	}

	return toMatchDomain(&matchM)
}

// FindMatchesByUser retrieves a user's active matches, most recently
// interacted first.
func (repo *matchRepository) FindMatchesByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Match, error) {
	var matchModels []*model.MatchModel

	if err := repo.db.WithContext(ctx).
		Where("(user_a_id = ? OR user_b_id = ?) AND status = ?", userID, userID, entity.MatchStatusActive).
		Order("last_interaction_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&matchModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find matches by user")
	}

	matches := make([]*entity.Match, 0, len(matchModels))
	for _, matchM := range matchModels {
		match, err := toMatchDomain(matchM)
		if err != nil {
			return nil, err
		}
		matches = append(matches, match)
	}

	return matches, nil
}

// ReactivateMatch sets the match active and refreshes its last-interaction
// time and originating event. Idempotent.
func (repo *matchRepository) ReactivateMatch(ctx context.Context, id uuid.UUID, eventID uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MatchModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":              entity.MatchStatusActive,
			"proximity_event_id":  eventID,
			"last_interaction_at": at,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to reactivate match")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMatchNotFound
	}

	return nil
}

// SetInstagramShared records one user's Instagram sharing consent.
func (repo *matchRepository) SetInstagramShared(ctx context.Context, id, userID uuid.UUID, shared bool) error {
	match, err := repo.FindMatchByID(ctx, id)
	if err != nil {
		return err
	}

	if match.InstagramShared == nil {
		match.InstagramShared = make(map[uuid.UUID]bool)
	}
	match.InstagramShared[userID] = shared

	sharedJSON, err := marshalInstagramShared(match.InstagramShared)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.MatchModel{}).
		Where("id = ?", id).
		Update("instagram_shared", sharedJSON).Error; err != nil {
		return errors.Wrap(err, "failed to set instagram shared")
	}

	return nil
}

// UpdateLastMessage refreshes the denormalized chat preview and the
// last-interaction time.
func (repo *matchRepository) UpdateLastMessage(ctx context.Context, id uuid.UUID, preview *entity.MessagePreview) error {
	previewJSON, err := marshalMessagePreview(preview)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.MatchModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"last_message":        previewJSON,
			"last_interaction_at": preview.SentAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update last message")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMatchNotFound
	}

	return nil
}

// DeleteMatch soft-deletes a match. The row stays so the pair key keeps
// colliding and a later re-match reactivates it.
func (repo *matchRepository) DeleteMatch(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MatchModel{}).
		Where("id = ?", id).
		Update("status", entity.MatchStatusDeleted)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete match")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMatchNotFound
	}

	return nil
}

// --- JSON column helpers (shared with the friend repository) ---

func marshalInstagramShared(shared map[uuid.UUID]bool) (datatypes.JSON, error) {
	if shared == nil {
		shared = make(map[uuid.UUID]bool)
	}

	data, err := json.Marshal(shared)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal instagram-shared map")
	}

	return datatypes.JSON(data), nil
}

func unmarshalInstagramShared(data datatypes.JSON) (map[uuid.UUID]bool, error) {
	shared := make(map[uuid.UUID]bool)
	if len(data) == 0 {
		return shared, nil
	}

	if err := json.Unmarshal(data, &shared); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal instagram-shared map")
	}

	return shared, nil
}

func marshalMessagePreview(preview *entity.MessagePreview) (datatypes.JSON, error) {
	if preview == nil {
		return nil, nil
	}

	data, err := json.Marshal(preview)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal message preview")
	}

	return datatypes.JSON(data), nil
}

func unmarshalMessagePreview(data datatypes.JSON) (*entity.MessagePreview, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var preview entity.MessagePreview
	if err := json.Unmarshal(data, &preview); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal message preview")
	}

	return &preview, nil
}

// --- Mapper Functions ---

// toMatchDomain converts a GORM MatchModel to a domain Match entity.
func toMatchDomain(data *model.MatchModel) (*entity.Match, error) {
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

	return &entity.Match{
		ID:                data.ID,
		Pair:              entity.NewPair(data.UserAID, data.UserBID),
		ProximityEventID:  data.ProximityEventID,
		Status:            entity.MatchStatus(data.Status),
		InstagramShared:   shared,
		LastMessage:       preview,
		LastInteractionAt: data.LastInteractionAt,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}, nil
}

// fromMatchDomain converts a domain Match entity to a GORM MatchModel.
func fromMatchDomain(data *entity.Match) (*model.MatchModel, error) {
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

	return &model.MatchModel{
		ID:                data.ID,
		UserAID:           data.Pair.UserA,
		UserBID:           data.Pair.UserB,
		ProximityEventID:  data.ProximityEventID,
		Status:            string(data.Status),
		InstagramShared:   sharedJSON,
		LastMessage:       previewJSON,
		LastInteractionAt: data.LastInteractionAt,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}, nil
}

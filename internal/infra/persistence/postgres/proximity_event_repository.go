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

// proximityEventRepository implements the repository.ProximityEventRepository interface.
type proximityEventRepository struct {
	db *gorm.DB
}

// NewProximityEventRepository is the constructor for proximityEventRepository.
func NewProximityEventRepository(db *gorm.DB) repository.ProximityEventRepository {
	return &proximityEventRepository{
		db: db,
	}
}

// CreateActiveEvent persists a new active event for the pair. The partial
// unique index over (user_a_id, user_b_id) WHERE status = 'active' makes the
// insert conditional: a concurrent creator loses with a unique violation and
// must fall back to the refresh path.
func (repo *proximityEventRepository) CreateActiveEvent(ctx context.Context, event *entity.ProximityEvent) error {
	event.Status = entity.EventStatusActive

	eventM, err := fromEventDomain(event)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateActiveEvent
		}

		return errors.Wrap(err, "failed to create proximity event")
	}

	// Update the entity with generated values
	event.ID = eventM.ID

	return nil
}

// FindEventByID retrieves an event by its unique ID.
func (repo *proximityEventRepository) FindEventByID(ctx context.Context, id uuid.UUID) (*entity.ProximityEvent, error) {
	var eventM model.ProximityEventModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&eventM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEventNotFound
		}

		return nil, errors.Wrap(err, "failed to find proximity event by ID")
	}

	return toEventDomain(&eventM)
}

// FindActiveEventByPair retrieves the single active event for a pair, if any.
func (repo *proximityEventRepository) FindActiveEventByPair(ctx context.Context, pair entity.Pair) (*entity.ProximityEvent, error) {
	var eventM model.ProximityEventModel

	if err := repo.db.WithContext(ctx).
		Where("user_a_id = ? AND user_b_id = ? AND status = ?", pair.UserA, pair.UserB, entity.EventStatusActive).
		First(&eventM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEventNotFound
		}

		return nil, errors.Wrap(err, "failed to find active proximity event by pair")
	}

	return toEventDomain(&eventM)
}

// RefreshEvent updates distance and last-seen time on a still-active event.
func (repo *proximityEventRepository) RefreshEvent(ctx context.Context, id uuid.UUID, distanceMeters float64, seenAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProximityEventModel{}).
		Where("id = ? AND status = ?", id, entity.EventStatusActive).
		Updates(map[string]any{
			"distance_meters": distanceMeters,
			"last_seen_at":    seenAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to refresh proximity event")
	}

	if result.RowsAffected == 0 {
		return repository.ErrEventNotFound
	}

	return nil
}

// TransitionStatus conditionally moves an event from the expected status to
// the next one. The WHERE clause carries the expected status, so concurrent
// transitions race safely: exactly one wins, the rest see a conflict.
func (repo *proximityEventRepository) TransitionStatus(ctx context.Context, id uuid.UUID, expect, next entity.EventStatus) error {
	updates := map[string]any{"status": next}
	if next.Terminal() {
		updates["ended_at"] = time.Now()
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ProximityEventModel{}).
		Where("id = ? AND status = ?", id, expect).
		Updates(updates)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to transition proximity event status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrEventStatusConflict
	}

	return nil
}

// MarkNotificationSent flips NotificationSent from false to true and reports
// whether this call performed the flip. The conditional update makes the
// detection notification exactly-once even under concurrent scan ticks.
func (repo *proximityEventRepository) MarkNotificationSent(ctx context.Context, id uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ProximityEventModel{}).
		Where("id = ? AND notification_sent = ?", id, false).
		Update("notification_sent", true)

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to mark notification sent")
	}

	return result.RowsAffected > 0, nil
}

// MarkViewed appends a user to the event's viewed-by set. Idempotent. The
// append and the containment guard run in one UPDATE so concurrent viewers
// cannot overwrite each other's entry.
func (repo *proximityEventRepository) MarkViewed(ctx context.Context, id, userID uuid.UUID) error {
	viewer, err := json.Marshal([]uuid.UUID{userID})
	if err != nil {
		return errors.Wrap(err, "failed to marshal viewer")
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ProximityEventModel{}).
		Where("id = ? AND NOT COALESCE(viewed_by, '[]') @> ?", id, datatypes.JSON(viewer)).
		Update("viewed_by", gorm.Expr("COALESCE(viewed_by, '[]') || ?", datatypes.JSON(viewer)))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark proximity event viewed")
	}

	// Zero rows means either an unknown event or a repeat view; only the
	// former is an error.
	if result.RowsAffected == 0 {
		if _, err := repo.FindEventByID(ctx, id); err != nil {
			return err
		}
	}

	return nil
}

// FindEventsForUser retrieves events involving the user, newest first,
// optionally filtered by status.
func (repo *proximityEventRepository) FindEventsForUser(ctx context.Context, userID uuid.UUID, statuses []entity.EventStatus, limit, offset int) ([]*entity.ProximityEvent, error) {
	var eventModels []*model.ProximityEventModel

	query := repo.db.WithContext(ctx).
		Where("user_a_id = ? OR user_b_id = ?", userID, userID)

	if len(statuses) > 0 {
		query = query.Where("status IN ?", statuses)
	}

	if err := query.
		Order("started_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find proximity events for user")
	}

	events := make([]*entity.ProximityEvent, 0, len(eventModels))
	for _, eventM := range eventModels {
		event, err := toEventDomain(eventM)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, nil
}

// EndStaleEvents transitions every active event whose last-seen time is
// before the cutoff to ended, and returns how many were ended.
func (repo *proximityEventRepository) EndStaleEvents(ctx context.Context, cutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ProximityEventModel{}).
		Where("status = ? AND last_seen_at < ?", entity.EventStatusActive, cutoff).
		Updates(map[string]any{
			"status":   entity.EventStatusEnded,
			"ended_at": time.Now(),
		})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to end stale proximity events")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toEventDomain converts a GORM ProximityEventModel to a domain ProximityEvent entity.
func toEventDomain(data *model.ProximityEventModel) (*entity.ProximityEvent, error) {
	if data == nil {
		return nil, nil
	}

	var viewedBy []uuid.UUID
	if len(data.ViewedBy) > 0 {
		if err := json.Unmarshal(data.ViewedBy, &viewedBy); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal viewed-by set")
		}
	}

	return &entity.ProximityEvent{
		ID:             data.ID,
		Pair:           entity.NewPair(data.UserAID, data.UserBID),
		DistanceMeters: data.DistanceMeters,
		Location: entity.EventLocation{
			Geohash:   data.LocationGeohash,
			PlaceName: data.PlaceName,
		},
		Status:           entity.EventStatus(data.Status),
		NotificationSent: data.NotificationSent,
		ViewedBy:         viewedBy,
		StartedAt:        data.StartedAt,
		LastSeenAt:       data.LastSeenAt,
		EndedAt:          data.EndedAt,
	}, nil
}

// fromEventDomain converts a domain ProximityEvent entity to a GORM ProximityEventModel.
func fromEventDomain(data *entity.ProximityEvent) (*model.ProximityEventModel, error) {
	if data == nil {
		return nil, nil
	}

	viewedBy := data.ViewedBy
	if viewedBy == nil {
		viewedBy = []uuid.UUID{}
	}

	viewedByJSON, err := json.Marshal(viewedBy)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal viewed-by set")
	}

	return &model.ProximityEventModel{
		ID:               data.ID,
		UserAID:          data.Pair.UserA,
		UserBID:          data.Pair.UserB,
		DistanceMeters:   data.DistanceMeters,
		LocationGeohash:  data.Location.Geohash,
		PlaceName:        data.Location.PlaceName,
		Status:           string(data.Status),
		NotificationSent: data.NotificationSent,
		ViewedBy:         datatypes.JSON(viewedByJSON),
		StartedAt:        data.StartedAt,
		LastSeenAt:       data.LastSeenAt,
		EndedAt:          data.EndedAt,
	}, nil
}

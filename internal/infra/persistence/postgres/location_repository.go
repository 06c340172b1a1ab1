// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"crosspath/internal/domain/entity"
	"crosspath/internal/domain/repository"
	"crosspath/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// locationRepository implements the repository.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{
		db: db,
	}
}

// UpsertLocation writes the user's live location, overwriting any previous fix.
func (repo *locationRepository) UpsertLocation(ctx context.Context, location *entity.UserLocation) error {
	locationM := fromLocationDomain(location)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"latitude", "longitude", "accuracy_meters", "geohash",
				"is_visible", "app_state", "recorded_at", "updated_at",
			}),
		}).
		Create(locationM).Error; err != nil {
		return errors.Wrap(err, "failed to upsert location")
	}

	return nil
}

// FindLocationByUser retrieves the live location for a user.
func (repo *locationRepository) FindLocationByUser(ctx context.Context, userID uuid.UUID) (*entity.UserLocation, error) {
	var locationM model.UserLocationModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&locationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location by user")
	}

	return toLocationDomain(&locationM), nil
}

// FindLocationsInGeohashRange retrieves all live locations whose geohash falls
// within [startHash, endHash]. The geohash column is btree-indexed, so this is
// an ordinary index range scan.
func (repo *locationRepository) FindLocationsInGeohashRange(ctx context.Context, startHash, endHash string) ([]*entity.UserLocation, error) {
	var locationModels []*model.UserLocationModel

	if err := repo.db.WithContext(ctx).
		Where("geohash >= ? AND geohash <= ?", startHash, endHash).
		Order("geohash ASC").
		Find(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find locations in geohash range")
	}

	locations := make([]*entity.UserLocation, 0, len(locationModels))
	for _, locationM := range locationModels {
		locations = append(locations, toLocationDomain(locationM))
	}

	return locations, nil
}

// DeleteLocation removes a user's live location.
func (repo *locationRepository) DeleteLocation(ctx context.Context, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.UserLocationModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete location")
	}

	if result.RowsAffected == 0 {
		return repository.ErrLocationNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toLocationDomain converts a GORM UserLocationModel to a domain UserLocation entity.
func toLocationDomain(data *model.UserLocationModel) *entity.UserLocation {
	if data == nil {
		return nil
	}

	return &entity.UserLocation{
		UserID:         data.UserID,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		AccuracyMeters: data.AccuracyMeters,
		Geohash:        data.Geohash,
		IsVisible:      data.IsVisible,
		AppState:       entity.AppState(data.AppState),
		RecordedAt:     data.RecordedAt,
	}
}

// fromLocationDomain converts a domain UserLocation entity to a GORM UserLocationModel.
func fromLocationDomain(data *entity.UserLocation) *model.UserLocationModel {
	if data == nil {
		return nil
	}

	return &model.UserLocationModel{
		UserID:         data.UserID,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		AccuracyMeters: data.AccuracyMeters,
		Geohash:        data.Geohash,
		IsVisible:      data.IsVisible,
		AppState:       string(data.AppState),
		RecordedAt:     data.RecordedAt,
	}
}

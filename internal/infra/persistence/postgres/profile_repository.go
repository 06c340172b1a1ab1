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
)

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// FindProfileByUser retrieves a single user's profile.
func (repo *profileRepository) FindProfileByUser(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error) {
	var profileM model.UserProfileModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by user")
	}

	return toProfileDomain(&profileM), nil
}

// FindProfilesByUsers retrieves profiles for the given users, keyed by user
// ID. Missing profiles are simply absent from the map.
func (repo *profileRepository) FindProfilesByUsers(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]*entity.UserProfile, error) {
	profiles := make(map[uuid.UUID]*entity.UserProfile, len(userIDs))
	if len(userIDs) == 0 {
		return profiles, nil
	}

	var profileModels []*model.UserProfileModel

	if err := repo.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find profiles by users")
	}

	for _, profileM := range profileModels {
		profiles[profileM.UserID] = toProfileDomain(profileM)
	}

	return profiles, nil
}

// --- Mapper Functions ---

// toProfileDomain converts a GORM UserProfileModel to a domain UserProfile entity.
func toProfileDomain(data *model.UserProfileModel) *entity.UserProfile {
	if data == nil {
		return nil
	}

	return &entity.UserProfile{
		UserID:          data.UserID,
		DisplayName:     data.DisplayName,
		InstagramHandle: data.InstagramHandle,
	}
}

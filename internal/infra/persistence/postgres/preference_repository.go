// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"expitrack/internal/domain/entity"
	domainerrors "expitrack/internal/domain/errors"
	"expitrack/internal/domain/repository"
	"expitrack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// preferenceRepository implements the repository.PreferenceRepository interface.
type preferenceRepository struct {
	db *gorm.DB
}

// NewPreferenceRepository is the constructor for preferenceRepository.
func NewPreferenceRepository(db *gorm.DB) repository.PreferenceRepository {
	return &preferenceRepository{
		db: db,
	}
}

// FindByUser retrieves a user's notification preferences.
func (repo *preferenceRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.NotificationPreference, error) {
	var prefM model.NotificationPreferenceModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&prefM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPreferenceNotFound
		}

		return nil, errors.Wrap(err, "failed to find preference by user")
	}

	return toPreferenceDomain(&prefM), nil
}

// Create persists a new preference record.
func (repo *preferenceRepository) Create(ctx context.Context, pref *entity.NotificationPreference) error {
	prefM := fromPreferenceDomain(pref)

	if err := repo.db.WithContext(ctx).Create(prefM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create preference")
	}

	// Update the entity with generated values
	pref.ID = prefM.ID
	pref.CreatedAt = prefM.CreatedAt
	pref.UpdatedAt = prefM.UpdatedAt

	return nil
}

// Update modifies an existing preference record.
func (repo *preferenceRepository) Update(ctx context.Context, pref *entity.NotificationPreference) error {
	prefM := fromPreferenceDomain(pref)

	result := repo.db.WithContext(ctx).
		Model(&model.NotificationPreferenceModel{}).
		Where("user_id = ?", pref.UserID).
		Select("Enabled", "FoodEnabled", "DocumentEnabled", "Intervals",
			"QuietHoursEnabled", "QuietHoursStart", "QuietHoursEnd", "PreferredTime").
		Updates(prefM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update preference")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPreferenceNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPreferenceDomain converts a GORM NotificationPreferenceModel to a domain entity.
func toPreferenceDomain(data *model.NotificationPreferenceModel) *entity.NotificationPreference {
	if data == nil {
		return nil
	}

	return &entity.NotificationPreference{
		ID:                data.ID,
		UserID:            data.UserID,
		Enabled:           data.Enabled,
		FoodEnabled:       data.FoodEnabled,
		DocumentEnabled:   data.DocumentEnabled,
		Intervals:         data.Intervals,
		QuietHoursEnabled: data.QuietHoursEnabled,
		QuietHoursStart:   data.QuietHoursStart,
		QuietHoursEnd:     data.QuietHoursEnd,
		PreferredTime:     data.PreferredTime,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

// fromPreferenceDomain converts a domain entity to a GORM NotificationPreferenceModel.
func fromPreferenceDomain(data *entity.NotificationPreference) *model.NotificationPreferenceModel {
	if data == nil {
		return nil
	}

	return &model.NotificationPreferenceModel{
		ID:                data.ID,
		UserID:            data.UserID,
		Enabled:           data.Enabled,
		FoodEnabled:       data.FoodEnabled,
		DocumentEnabled:   data.DocumentEnabled,
		Intervals:         datatypes.NewJSONSlice(data.Intervals),
		QuietHoursEnabled: data.QuietHoursEnabled,
		QuietHoursStart:   data.QuietHoursStart,
		QuietHoursEnd:     data.QuietHoursEnd,
		PreferredTime:     data.PreferredTime,
	}
}

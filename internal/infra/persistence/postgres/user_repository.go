// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"expitrack/internal/domain/entity"
	domainerrors "expitrack/internal/domain/errors"
	"expitrack/internal/domain/repository"
	"expitrack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const defaultUserPageSize = 20

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a single user with their subscription by unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("Subscription").
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user with their subscription by email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("Subscription").
		Where("email = ?", email).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// FindByResetToken retrieves the user holding the given password reset token.
func (repo *userRepository) FindByResetToken(ctx context.Context, token string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("password_reset_token = ?", token).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by reset token")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user entity, including its subscription association.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmail
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the entity with generated values
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt
	if user.Subscription != nil && userM.Subscription != nil {
		user.Subscription.ID = userM.Subscription.ID
		user.Subscription.UserID = userM.ID
	}

	return nil
}

// Update modifies an existing user entity in the storage.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Select("Email", "PasswordHash", "FirstName", "LastName", "IsActive",
			"PasswordResetToken", "PasswordResetExpiry").
		Updates(userM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateEmail
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// UpdateLastLogin stamps the user's last successful login time.
func (repo *userRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("last_login_at", at)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update last login")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// List returns a page of users for the admin surface, newest first.
// Pagination is keyset-based on the UUIDv7 primary key.
func (repo *userRepository) List(ctx context.Context, filter repository.UserListFilter) ([]*entity.User, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.UserModel{})

	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("email ILIKE ? OR first_name ILIKE ? OR last_name ILIKE ?", pattern, pattern, pattern)
	}
	if filter.Plan != nil {
		query = query.Where(
			"id IN (?)",
			repo.db.Model(&model.SubscriptionModel{}).Select("user_id").Where("plan = ?", string(*filter.Plan)),
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count users")
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultUserPageSize
	}
	if filter.Cursor != nil {
		query = query.Where("id < ?", *filter.Cursor)
	}

	var userModels []*model.UserModel
	if err := query.
		Preload("Subscription").
		Order("id DESC").
		Limit(limit).
		Find(&userModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, total, nil
}

// Stats aggregates user counts for the admin dashboard.
func (repo *userRepository) Stats(ctx context.Context, now time.Time) (*repository.UserStats, error) {
	stats := &repository.UserStats{}
	base := func() *gorm.DB { return repo.db.WithContext(ctx).Model(&model.UserModel{}) }

	if err := base().Count(&stats.Total).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}
	if err := base().Where("is_active = ?", true).Count(&stats.Active).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count active users")
	}
	if err := repo.db.WithContext(ctx).
		Model(&model.SubscriptionModel{}).
		Where("plan = ? AND status = ?", string(entity.PlanPremium), string(entity.SubscriptionActive)).
		Count(&stats.Premium).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count premium users")
	}

	weekStart := now.AddDate(0, 0, -7)
	if err := base().Where("created_at >= ?", weekStart).Count(&stats.NewThisWeek).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count new users this week")
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	if err := base().Where("created_at >= ?", monthStart).Count(&stats.NewThisMonth).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count new users this month")
	}

	return stats, nil
}

// FindActiveUserIDs returns the IDs of all active users.
func (repo *userRepository) FindActiveUserIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("is_active = ?", true).
		Pluck("id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active user IDs")
	}

	return ids, nil
}

// FindUserIDsByPlan returns the IDs of active users on the given plan.
func (repo *userRepository) FindUserIDsByPlan(ctx context.Context, plan entity.SubscriptionPlan) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("is_active = ?", true).
		Where(
			"id IN (?)",
			repo.db.Model(&model.SubscriptionModel{}).Select("user_id").
				Where("plan = ? AND status = ?", string(plan), string(entity.SubscriptionActive)),
		).
		Pluck("id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find user IDs by plan")
	}

	return ids, nil
}

// FindInactiveUserIDs returns the IDs of users who have not logged in since the given time.
func (repo *userRepository) FindInactiveUserIDs(ctx context.Context, lastLoginBefore time.Time) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("last_login_at IS NULL OR last_login_at < ?", lastLoginBefore).
		Pluck("id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find inactive user IDs")
	}

	return ids, nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:                  data.ID,
		Email:               data.Email,
		PasswordHash:        data.PasswordHash,
		FirstName:           data.FirstName,
		LastName:            data.LastName,
		IsActive:            data.IsActive,
		IsAdmin:             data.IsAdmin,
		LastLoginAt:         data.LastLoginAt,
		PasswordResetToken:  data.PasswordResetToken,
		PasswordResetExpiry: data.PasswordResetExpiry,
		Subscription:        toSubscriptionDomain(data.Subscription),
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:                  data.ID,
		Email:               data.Email,
		PasswordHash:        data.PasswordHash,
		FirstName:           data.FirstName,
		LastName:            data.LastName,
		IsActive:            data.IsActive,
		IsAdmin:             data.IsAdmin,
		LastLoginAt:         data.LastLoginAt,
		PasswordResetToken:  data.PasswordResetToken,
		PasswordResetExpiry: data.PasswordResetExpiry,
		Subscription:        fromSubscriptionDomain(data.Subscription),
	}
}

// toSubscriptionDomain converts a GORM SubscriptionModel to a domain Subscription entity.
func toSubscriptionDomain(data *model.SubscriptionModel) *entity.Subscription {
	if data == nil {
		return nil
	}

	return &entity.Subscription{
		ID:        data.ID,
		UserID:    data.UserID,
		Plan:      entity.SubscriptionPlan(data.Plan),
		Status:    entity.SubscriptionStatus(data.Status),
		StartDate: data.StartDate,
		EndDate:   data.EndDate,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromSubscriptionDomain converts a domain Subscription entity to a GORM SubscriptionModel.
func fromSubscriptionDomain(data *entity.Subscription) *model.SubscriptionModel {
	if data == nil {
		return nil
	}

	return &model.SubscriptionModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Plan:      string(data.Plan),
		Status:    string(data.Status),
		StartDate: data.StartDate,
		EndDate:   data.EndDate,
	}
}

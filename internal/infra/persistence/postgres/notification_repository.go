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

const (
	notificationBatchSize       = 100
	defaultNotificationPageSize = 20
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// Create persists a new notification record.
func (repo *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	// Update the entity with generated values
	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt
	notification.UpdatedAt = notificationM.UpdatedAt

	return nil
}

// BatchCreate persists multiple notification records in batches.
func (repo *notificationRepository) BatchCreate(ctx context.Context, notifications []*entity.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	notificationModels := make([]*model.NotificationModel, 0, len(notifications))
	for _, notification := range notifications {
		notificationModels = append(notificationModels, fromNotificationDomain(notification))
	}

	if err := repo.db.WithContext(ctx).
		CreateInBatches(notificationModels, notificationBatchSize).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to batch create notifications")
	}

	for i, notificationM := range notificationModels {
		notifications[i].ID = notificationM.ID
		notifications[i].CreatedAt = notificationM.CreatedAt
		notifications[i].UpdatedAt = notificationM.UpdatedAt
	}

	return nil
}

// FindByID retrieves a notification by its unique ID.
func (repo *notificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	var notificationM model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&notificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification by ID")
	}

	return toNotificationDomain(&notificationM), nil
}

// FindActiveReminder returns the PENDING or SENT reminder for the given
// item and offset, or nil when none exists.
func (repo *notificationRepository) FindActiveReminder(ctx context.Context, itemID uuid.UUID, offsetDays int) (*entity.Notification, error) {
	var notificationM model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("item_id = ? AND offset_days = ?", itemID, offsetDays).
		Where("status IN ?", []string{
			string(entity.NotificationPending),
			string(entity.NotificationSent),
		}).
		First(&notificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find active reminder")
	}

	return toNotificationDomain(&notificationM), nil
}

// MarkSent transitions a PENDING notification to SENT.
func (repo *notificationRepository) MarkSent(ctx context.Context, id uuid.UUID, fcmMessageID string, sentAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ? AND status = ?", id, string(entity.NotificationPending)).
		Updates(map[string]any{
			"status":         string(entity.NotificationSent),
			"fcm_message_id": fcmMessageID,
			"sent_at":        sentAt,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark notification sent")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// MarkFailed transitions a PENDING notification to FAILED with the failure reason.
func (repo *notificationRepository) MarkFailed(ctx context.Context, id uuid.UUID, errorMessage string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ? AND status = ?", id, string(entity.NotificationPending)).
		Updates(map[string]any{
			"status":        string(entity.NotificationFailed),
			"error_message": errorMessage,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark notification failed")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// CancelPendingByItem transitions all PENDING notifications of an item to CANCELLED.
func (repo *notificationRepository) CancelPendingByItem(ctx context.Context, itemID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("item_id = ? AND status = ?", itemID, string(entity.NotificationPending)).
		Update("status", string(entity.NotificationCancelled))
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to cancel pending notifications")
	}

	return result.RowsAffected, nil
}

// ListByUser returns a page of the user's notifications, newest first,
// optionally filtered by status, plus the total count.
func (repo *notificationRepository) ListByUser(ctx context.Context, userID uuid.UUID, status *entity.NotificationStatus, page, limit int) ([]*entity.Notification, int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("user_id = ?", userID)

	if status != nil {
		query = query.Where("status = ?", string(*status))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count notifications")
	}

	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultNotificationPageSize
	}

	var notificationModels []*model.NotificationModel
	if err := query.
		Order("scheduled_for DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&notificationModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list notifications")
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications, total, nil
}

// Stats aggregates delivery counts for the admin dashboard.
func (repo *notificationRepository) Stats(ctx context.Context) (*repository.NotificationStats, error) {
	stats := &repository.NotificationStats{}
	base := func() *gorm.DB { return repo.db.WithContext(ctx).Model(&model.NotificationModel{}) }

	if err := base().Count(&stats.Total).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count notifications")
	}
	if err := base().Where("status = ?", string(entity.NotificationSent)).Count(&stats.Sent).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count sent notifications")
	}
	if err := base().Where("status = ?", string(entity.NotificationFailed)).Count(&stats.Failed).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count failed notifications")
	}
	if err := base().Where("status = ?", string(entity.NotificationPending)).Count(&stats.Pending).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count pending notifications")
	}

	return stats, nil
}

// --- Mapper Functions ---

// toNotificationDomain converts a GORM NotificationModel to a domain Notification entity.
func toNotificationDomain(data *model.NotificationModel) *entity.Notification {
	if data == nil {
		return nil
	}

	return &entity.Notification{
		ID:           data.ID,
		UserID:       data.UserID,
		ItemID:       data.ItemID,
		ItemType:     entity.ItemType(data.ItemType),
		OffsetDays:   data.OffsetDays,
		Title:        data.Title,
		Body:         data.Body,
		ScheduledFor: data.ScheduledFor,
		Status:       entity.NotificationStatus(data.Status),
		ErrorMessage: data.ErrorMessage,
		SentAt:       data.SentAt,
		FCMMessageID: data.FCMMessageID,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromNotificationDomain converts a domain Notification entity to a GORM NotificationModel.
func fromNotificationDomain(data *entity.Notification) *model.NotificationModel {
	if data == nil {
		return nil
	}

	return &model.NotificationModel{
		ID:           data.ID,
		UserID:       data.UserID,
		ItemID:       data.ItemID,
		ItemType:     string(data.ItemType),
		OffsetDays:   data.OffsetDays,
		Title:        data.Title,
		Body:         data.Body,
		ScheduledFor: data.ScheduledFor,
		Status:       string(data.Status),
		ErrorMessage: data.ErrorMessage,
		SentAt:       data.SentAt,
		FCMMessageID: data.FCMMessageID,
	}
}

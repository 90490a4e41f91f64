package impl

import (
	"context"
	"log/slog"
	"strconv"

	"expitrack/internal/domain/entity"
	domainerrors "expitrack/internal/domain/errors"
	"expitrack/internal/domain/repository"
	"expitrack/internal/domain/service"
	"expitrack/internal/errors"
	"expitrack/internal/usecase"

	"github.com/google/uuid"
)

const (
	testNotificationTitle = "Test notification"
	testNotificationBody  = "Push notifications are working correctly"
)

type notificationService struct {
	logger           *slog.Logger
	prefRepo         repository.PreferenceRepository
	notificationRepo repository.NotificationRepository
	deviceRepo       repository.DeviceRepository
	push             service.PushService
}

// NewNotificationService creates a new notification preference service instance.
func NewNotificationService(
	logger *slog.Logger,
	prefRepo repository.PreferenceRepository,
	notificationRepo repository.NotificationRepository,
	deviceRepo repository.DeviceRepository,
	push service.PushService,
) usecase.NotificationUsecase {
	return &notificationService{
		logger:           logger,
		prefRepo:         prefRepo,
		notificationRepo: notificationRepo,
		deviceRepo:       deviceRepo,
		push:             push,
	}
}

// GetPreferences returns the user's preferences, creating a default
// record on first access.
func (s *notificationService) GetPreferences(ctx context.Context, userID uuid.UUID) (*entity.NotificationPreference, error) {
	pref, err := s.prefRepo.FindByUser(ctx, userID)
	if err == nil {
		return pref, nil
	}
	if !errors.Is(err, repository.ErrPreferenceNotFound) {
		return nil, errors.Wrap(err, "failed to load preferences")
	}

	pref = entity.NewDefaultPreference(userID)
	if err := s.prefRepo.Create(ctx, pref); err != nil {
		return nil, errors.Wrap(err, "failed to create default preferences")
	}

	return pref, nil
}

// UpdatePreferences applies a partial update to the user's preferences.
func (s *notificationService) UpdatePreferences(ctx context.Context, userID uuid.UUID, input *usecase.UpdatePreferencesInput) (*entity.NotificationPreference, error) {
	pref, err := s.GetPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Intervals != nil {
		for _, days := range input.Intervals {
			if days <= 0 {
				return nil, domainerrors.ErrValidationFailed.WrapMessage(
					"reminder interval must be positive, got " + strconv.Itoa(days))
			}
		}
		pref.Intervals = input.Intervals
	}
	if input.Enabled != nil {
		pref.Enabled = *input.Enabled
	}
	if input.FoodEnabled != nil {
		pref.FoodEnabled = *input.FoodEnabled
	}
	if input.DocumentEnabled != nil {
		pref.DocumentEnabled = *input.DocumentEnabled
	}
	if input.QuietHoursEnabled != nil {
		pref.QuietHoursEnabled = *input.QuietHoursEnabled
	}
	if input.QuietHoursStart != nil {
		pref.QuietHoursStart = *input.QuietHoursStart
	}
	if input.QuietHoursEnd != nil {
		pref.QuietHoursEnd = *input.QuietHoursEnd
	}
	if input.PreferredTime != nil {
		pref.PreferredTime = *input.PreferredTime
	}

	if err := s.prefRepo.Update(ctx, pref); err != nil {
		return nil, errors.Wrap(err, "failed to update preferences")
	}

	return pref, nil
}

// GetHistory returns a page of the user's notifications, newest first.
func (s *notificationService) GetHistory(ctx context.Context, userID uuid.UUID, status *entity.NotificationStatus, page, limit int) ([]*entity.Notification, int64, error) {
	notifications, total, err := s.notificationRepo.ListByUser(ctx, userID, status, page, limit)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list notifications")
	}

	return notifications, total, nil
}

// SendTest pushes a test notification to all of the user's active devices.
func (s *notificationService) SendTest(ctx context.Context, userID uuid.UUID) error {
	devices, err := s.deviceRepo.FindActiveByUser(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to list devices")
	}
	if len(devices) == 0 {
		return domainerrors.ErrNoActiveDevices
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	data := map[string]string{"kind": "test"}
	successCount, _, invalidTokens, err := s.push.SendToMany(ctx, tokens, testNotificationTitle, testNotificationBody, data)
	if err != nil {
		return domainerrors.ErrPushDeliveryFailed.WrapMessage(err.Error())
	}

	if len(invalidTokens) > 0 {
		if err := s.deviceRepo.DeactivateTokens(ctx, invalidTokens); err != nil {
			s.logger.WarnContext(ctx, "failed to deactivate invalid tokens",
				slog.Int("count", len(invalidTokens)),
				slog.String("error", err.Error()),
			)
		}
	}

	if successCount == 0 {
		return domainerrors.ErrPushDeliveryFailed
	}

	return nil
}

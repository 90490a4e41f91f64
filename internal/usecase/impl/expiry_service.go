// Package impl contains the concrete implementations of the application use cases.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"expitrack/config"
	"expitrack/internal/domain/entity"
	"expitrack/internal/domain/repository"
	"expitrack/internal/domain/schedule"
	"expitrack/internal/domain/service"
	"expitrack/internal/errors"
	"expitrack/internal/usecase"

	"github.com/google/uuid"
)

// noActiveDevicesMessage is recorded on reminders that had nowhere to go.
// Delivery without a destination is not retried.
const noActiveDevicesMessage = "no active devices registered"

type expiryService struct {
	logger           *slog.Logger
	notificationCfg  *config.NotificationConfig
	queue            service.JobQueue
	push             service.PushService
	itemRepo         repository.ItemRepository
	userRepo         repository.UserRepository
	prefRepo         repository.PreferenceRepository
	notificationRepo repository.NotificationRepository
	deviceRepo       repository.DeviceRepository
}

// NewExpiryService creates a new expiry reminder service instance.
func NewExpiryService(
	logger *slog.Logger,
	cfg *config.Config,
	queue service.JobQueue,
	push service.PushService,
	itemRepo repository.ItemRepository,
	userRepo repository.UserRepository,
	prefRepo repository.PreferenceRepository,
	notificationRepo repository.NotificationRepository,
	deviceRepo repository.DeviceRepository,
) usecase.ExpiryUsecase {
	return &expiryService{
		logger:           logger,
		notificationCfg:  cfg.Notification,
		queue:            queue,
		push:             push,
		itemRepo:         itemRepo,
		userRepo:         userRepo,
		prefRepo:         prefRepo,
		notificationRepo: notificationRepo,
		deviceRepo:       deviceRepo,
	}
}

// ScheduleForItem plans reminders for a newly created item.
func (s *expiryService) ScheduleForItem(ctx context.Context, item *entity.Item) error {
	pref, err := s.loadPreferences(ctx, item.UserID)
	if err != nil {
		return err
	}

	return s.scheduleWithPreferences(ctx, item, pref)
}

// RescheduleForItem cancels all planned reminders for an edited item and
// schedules a fresh set from its current expiry date.
func (s *expiryService) RescheduleForItem(ctx context.Context, item *entity.Item) error {
	if err := s.CancelAllForItem(ctx, item.ID); err != nil {
		return err
	}

	return s.ScheduleForItem(ctx, item)
}

// CancelAllForItem removes queued jobs and cancels pending reminders for an item.
func (s *expiryService) CancelAllForItem(ctx context.Context, itemID uuid.UUID) error {
	removed, err := s.queue.CancelByItem(ctx, itemID)
	if err != nil {
		return errors.Wrap(err, "failed to cancel queued jobs")
	}

	cancelled, err := s.notificationRepo.CancelPendingByItem(ctx, itemID)
	if err != nil {
		return errors.Wrap(err, "failed to cancel pending reminders")
	}

	s.logger.DebugContext(ctx, "cancelled reminders for item",
		slog.String("itemId", itemID.String()),
		slog.Int64("jobsRemoved", removed),
		slog.Int64("remindersCancelled", cancelled),
	)

	return nil
}

// ReconcileAll re-derives the reminder set for every active user and
// schedules anything missing. Per-user and per-item failures are logged
// and skipped so one bad record cannot abort the run.
func (s *expiryService) ReconcileAll(ctx context.Context) error {
	userIDs, err := s.userRepo.FindActiveUserIDs(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to list active users")
	}

	now := time.Now()
	var scheduled int

	for _, userID := range userIDs {
		pref, err := s.loadPreferences(ctx, userID)
		if err != nil {
			s.logger.WarnContext(ctx, "reconcile: failed to load preferences",
				slog.String("userId", userID.String()),
				slog.String("error", err.Error()),
			)

			continue
		}
		if !pref.Enabled {
			continue
		}

		items, err := s.itemRepo.FindWithFutureExpiry(ctx, userID, now)
		if err != nil {
			s.logger.WarnContext(ctx, "reconcile: failed to load items",
				slog.String("userId", userID.String()),
				slog.String("error", err.Error()),
			)

			continue
		}

		for _, item := range items {
			if err := s.scheduleWithPreferences(ctx, item, pref); err != nil {
				s.logger.WarnContext(ctx, "reconcile: failed to schedule item",
					slog.String("itemId", item.ID.String()),
					slog.String("error", err.Error()),
				)

				continue
			}
			scheduled++
		}
	}

	s.logger.InfoContext(ctx, "reconciliation completed",
		slog.Int("users", len(userIDs)),
		slog.Int("itemsScheduled", scheduled),
	)

	return nil
}

// ProcessDueJobs claims jobs due at now and delivers them.
func (s *expiryService) ProcessDueJobs(ctx context.Context, now time.Time, limit int) (int, error) {
	jobs, err := s.queue.ClaimDue(ctx, now, limit)
	if err != nil {
		return 0, errors.Wrap(err, "failed to claim due jobs")
	}

	for _, job := range jobs {
		if err := s.deliver(ctx, job); err != nil {
			s.logger.ErrorContext(ctx, "failed to deliver job",
				slog.String("jobKey", job.Key),
				slog.String("error", err.Error()),
			)
		}
	}

	return len(jobs), nil
}

// scheduleWithPreferences plans reminders for an item under the given
// preferences. Existing reminders (queued or already fired) are left alone.
func (s *expiryService) scheduleWithPreferences(ctx context.Context, item *entity.Item, pref *entity.NotificationPreference) error {
	if !pref.AllowsType(item.Type) {
		return nil
	}

	sendHour := 9
	if s.notificationCfg != nil && s.notificationCfg.SendHour > 0 {
		sendHour = s.notificationCfg.SendHour
	}

	reminders := schedule.ComputeReminderTimes(item.ExpiryDate, pref.EffectiveIntervals(), sendHour, time.Now())
	for _, reminder := range reminders {
		if err := s.scheduleOne(ctx, item, reminder); err != nil {
			return err
		}
	}

	return nil
}

// scheduleOne creates the reminder record and enqueues its delivery job.
// The deterministic job key makes double submission harmless.
func (s *expiryService) scheduleOne(ctx context.Context, item *entity.Item, reminder schedule.ReminderTime) error {
	existing, err := s.notificationRepo.FindActiveReminder(ctx, item.ID, reminder.OffsetDays)
	if err != nil {
		return errors.Wrap(err, "failed to check existing reminder")
	}
	if existing != nil && existing.Status == entity.NotificationSent {
		return nil
	}

	itemID := item.ID
	notification := existing
	if notification == nil {
		notification = &entity.Notification{
			UserID:       item.UserID,
			ItemID:       &itemID,
			ItemType:     item.Type,
			OffsetDays:   reminder.OffsetDays,
			Title:        reminderTitle(item.Name, reminder.OffsetDays),
			Body:         reminderBody(item.Type),
			ScheduledFor: reminder.FireAt,
			Status:       entity.NotificationPending,
		}
		if err := s.notificationRepo.Create(ctx, notification); err != nil {
			return errors.Wrap(err, "failed to create reminder record")
		}
	}

	// A PENDING row always gets its job submitted, even when the row
	// already existed: after a queue wipe the entry is gone and this
	// re-fills it, while a live entry resolves to ErrDuplicateJob below.
	job := &service.Job{
		Key:            service.ExpiryJobKey(item.ID, reminder.OffsetDays),
		Kind:           service.JobExpiryReminder,
		NotificationID: notification.ID,
		UserID:         item.UserID,
		ItemID:         &itemID,
		FireAt:         notification.ScheduledFor,
	}
	if err := s.queue.Submit(ctx, job); err != nil {
		if errors.Is(err, service.ErrDuplicateJob) {
			// Already queued under the same key; the reminder is planned.
			s.logger.DebugContext(ctx, "duplicate reminder job suppressed",
				slog.String("jobKey", job.Key),
			)

			return nil
		}

		return errors.Wrap(err, "failed to enqueue reminder job")
	}

	return nil
}

// deliver pushes one claimed job to the user's devices and records the outcome.
func (s *expiryService) deliver(ctx context.Context, job *service.Job) error {
	notification, err := s.notificationRepo.FindByID(ctx, job.NotificationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to load notification")
	}
	if notification.IsTerminal() {
		// Cancelled or already handled between enqueue and fire.
		return nil
	}

	devices, err := s.deviceRepo.FindActiveByUser(ctx, notification.UserID)
	if err != nil {
		return errors.Wrap(err, "failed to load devices")
	}
	if len(devices) == 0 {
		// No destination: terminal failure, never retried.
		return s.notificationRepo.MarkFailed(ctx, notification.ID, noActiveDevicesMessage)
	}

	data := map[string]string{
		"notificationId": notification.ID.String(),
		"kind":           string(job.Kind),
	}
	if notification.ItemID != nil {
		data["itemId"] = notification.ItemID.String()
		data["itemType"] = string(notification.ItemType)
	}

	messageID, sendErr := s.send(ctx, devices, notification, data)
	if sendErr != nil {
		return s.handleSendFailure(ctx, job, notification, sendErr)
	}

	if err := s.notificationRepo.MarkSent(ctx, notification.ID, messageID, time.Now()); err != nil {
		return errors.Wrap(err, "failed to mark notification sent")
	}

	return nil
}

// send dispatches to one device directly or multicasts to several,
// deactivating tokens the provider rejects.
func (s *expiryService) send(ctx context.Context, devices []*entity.UserDevice, notification *entity.Notification, data map[string]string) (string, error) {
	if len(devices) == 1 {
		return s.push.SendToOne(ctx, devices[0].FCMToken, notification.Title, notification.Body, data)
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	successCount, _, invalidTokens, err := s.push.SendToMany(ctx, tokens, notification.Title, notification.Body, data)
	if err != nil {
		return "", err
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
		return "", errors.New("all multicast sends failed")
	}

	// Multicast has no single message ID; keep whatever tag the record
	// already carries (the broadcast ID for broadcast rows).
	return notification.FCMMessageID, nil
}

// handleSendFailure retries transient failures with exponential backoff
// until the attempt budget is exhausted, then records the failure.
func (s *expiryService) handleSendFailure(ctx context.Context, job *service.Job, notification *entity.Notification, sendErr error) error {
	maxAttempts := 3
	backoff := 2 * time.Second
	if s.notificationCfg != nil {
		if s.notificationCfg.MaxAttempts > 0 {
			maxAttempts = s.notificationCfg.MaxAttempts
		}
		if s.notificationCfg.RetryBackoff > 0 {
			backoff = s.notificationCfg.RetryBackoff
		}
	}

	if job.Attempts+1 >= maxAttempts {
		if err := s.notificationRepo.MarkFailed(ctx, notification.ID, sendErr.Error()); err != nil {
			return errors.Wrap(err, "failed to mark notification failed")
		}

		return nil
	}

	delay := backoff << job.Attempts
	if err := s.queue.Retry(ctx, job, delay); err != nil {
		return errors.Wrap(err, "failed to re-enqueue job")
	}

	s.logger.WarnContext(ctx, "push send failed, retrying",
		slog.String("jobKey", job.Key),
		slog.Int("attempt", job.Attempts),
		slog.Duration("delay", delay),
		slog.String("error", sendErr.Error()),
	)

	return nil
}

// loadPreferences returns the user's stored preferences or the defaults
// when none exist. The default record is not persisted here.
func (s *expiryService) loadPreferences(ctx context.Context, userID uuid.UUID) (*entity.NotificationPreference, error) {
	pref, err := s.prefRepo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrPreferenceNotFound) {
			return entity.NewDefaultPreference(userID), nil
		}

		return nil, errors.Wrap(err, "failed to load preferences")
	}

	return pref, nil
}

// reminderTitle renders the push title for a reminder firing the given
// number of days before expiry.
func reminderTitle(itemName string, daysUntilExpiry int) string {
	switch {
	case daysUntilExpiry <= 0:
		return fmt.Sprintf("%s expires today!", itemName)
	case daysUntilExpiry == 1:
		return fmt.Sprintf("%s expires tomorrow", itemName)
	default:
		return fmt.Sprintf("%s expires in %d days", itemName, daysUntilExpiry)
	}
}

// reminderBody renders the push body for the item variant.
func reminderBody(itemType entity.ItemType) string {
	if itemType == entity.ItemTypeDocument {
		return "Renew your document before it expires"
	}

	return "Check your food items to avoid waste"
}

package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"expitrack/config"
	"expitrack/internal/domain/entity"
	"expitrack/internal/domain/repository"
	"expitrack/internal/domain/service"
	mockRepo "expitrack/internal/mocks/repository"
	mockSvc "expitrack/internal/mocks/service"
	"expitrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// expiryServiceFixtures holds all test dependencies for expiry service tests.
type expiryServiceFixtures struct {
	service          usecase.ExpiryUsecase
	queue            *mockSvc.MockJobQueue
	push             *mockSvc.MockPushService
	itemRepo         *mockRepo.MockItemRepository
	userRepo         *mockRepo.MockUserRepository
	prefRepo         *mockRepo.MockPreferenceRepository
	notificationRepo *mockRepo.MockNotificationRepository
	deviceRepo       *mockRepo.MockDeviceRepository
}

func createTestExpiryService(t *testing.T) expiryServiceFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		Notification: &config.NotificationConfig{
			SendHour:     9,
			MaxAttempts:  3,
			RetryBackoff: 2 * time.Second,
		},
	}

	queue := mockSvc.NewMockJobQueue(t)
	push := mockSvc.NewMockPushService(t)
	itemRepo := mockRepo.NewMockItemRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	prefRepo := mockRepo.NewMockPreferenceRepository(t)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)

	svc := NewExpiryService(logger, cfg, queue, push, itemRepo, userRepo, prefRepo, notificationRepo, deviceRepo)

	return expiryServiceFixtures{
		service:          svc,
		queue:            queue,
		push:             push,
		itemRepo:         itemRepo,
		userRepo:         userRepo,
		prefRepo:         prefRepo,
		notificationRepo: notificationRepo,
		deviceRepo:       deviceRepo,
	}
}

func futureItem(userID uuid.UUID, daysAhead int) *entity.Item {
	now := time.Now()
	expiry := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, daysAhead)

	return &entity.Item{
		ID:         uuid.New(),
		UserID:     userID,
		Type:       entity.ItemTypeFood,
		Name:       "Milk",
		ExpiryDate: expiry,
	}
}

func TestExpiryService_ScheduleForItem_DefaultPreferences(t *testing.T) {
	fx := createTestExpiryService(t)

	ctx := context.Background()
	userID := uuid.New()
	// Ten days out: only the 7-day and 1-day default offsets are still ahead.
	item := futureItem(userID, 10)

	fx.prefRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(nil, repository.ErrPreferenceNotFound)

	var createdOffsets []int
	fx.notificationRepo.EXPECT().
		FindActiveReminder(ctx, item.ID, mock.AnythingOfType("int")).
		Return(nil, nil).
		Twice()
	fx.notificationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Notification")).
		Run(func(ctx context.Context, notification *entity.Notification) {
			createdOffsets = append(createdOffsets, notification.OffsetDays)
			notification.ID = uuid.New()
		}).
		Return(nil).
		Twice()

	var submittedKeys []string
	fx.queue.EXPECT().
		Submit(ctx, mock.AnythingOfType("*service.Job")).
		Run(func(ctx context.Context, job *service.Job) {
			submittedKeys = append(submittedKeys, job.Key)
		}).
		Return(nil).
		Twice()

	err := fx.service.ScheduleForItem(ctx, item)
	require.NoError(t, err)
	assert.Equal(t, []int{7, 1}, createdOffsets)
	assert.Equal(t, []string{
		service.ExpiryJobKey(item.ID, 7),
		service.ExpiryJobKey(item.ID, 1),
	}, submittedKeys)
}

func TestExpiryService_ScheduleForItem_SkipsSentReminders(t *testing.T) {
	fx := createTestExpiryService(t)

	ctx := context.Background()
	userID := uuid.New()
	item := futureItem(userID, 10)

	fx.prefRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(nil, repository.ErrPreferenceNotFound)

	fx.notificationRepo.EXPECT().
		FindActiveReminder(ctx, item.ID, mock.AnythingOfType("int")).
		Return(&entity.Notification{
			ID:     uuid.New(),
			Status: entity.NotificationSent,
		}, nil).
		Twice()

	err := fx.service.ScheduleForItem(ctx, item)
	require.NoError(t, err)
}

func TestExpiryService_ScheduleForItem_ResubmitsPendingReminder(t *testing.T) {
	fx := createTestExpiryService(t)

	ctx := context.Background()
	userID := uuid.New()
	item := futureItem(userID, 4)

	pref := entity.NewDefaultPreference(userID)
	pref.Intervals = []int{1}
	fx.prefRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(pref, nil)

	// The row survived but its queue entry is gone, as after a Redis wipe.
	pending := &entity.Notification{
		ID:           uuid.New(),
		UserID:       userID,
		ItemID:       &item.ID,
		OffsetDays:   1,
		ScheduledFor: item.ExpiryDate.AddDate(0, 0, -1).Add(9 * time.Hour),
		Status:       entity.NotificationPending,
	}
	fx.notificationRepo.EXPECT().
		FindActiveReminder(ctx, item.ID, 1).
		Return(pending, nil)

	var submitted *service.Job
	fx.queue.EXPECT().
		Submit(ctx, mock.AnythingOfType("*service.Job")).
		Run(func(ctx context.Context, job *service.Job) {
			submitted = job
		}).
		Return(nil)

	err := fx.service.ScheduleForItem(ctx, item)
	require.NoError(t, err)

	// The job is rebuilt from the surviving row, not a fresh record.
	fx.notificationRepo.AssertNotCalled(t, "Create")
	require.NotNil(t, submitted)
	assert.Equal(t, pending.ID, submitted.NotificationID)
	assert.Equal(t, pending.ScheduledFor, submitted.FireAt)
	assert.Equal(t, service.ExpiryJobKey(item.ID, 1), submitted.Key)
}

func TestExpiryService_ScheduleForItem_EmptyIntervalsScheduleNothing(t *testing.T) {
	fx := createTestExpiryService(t)

	ctx := context.Background()
	userID := uuid.New()
	item := futureItem(userID, 10)

	// An explicitly cleared interval list silences reminders without
	// flipping the master switch.
	pref := entity.NewDefaultPreference(userID)
	pref.Intervals = []int{}
	fx.prefRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(pref, nil)

	err := fx.service.ScheduleForItem(ctx, item)
	require.NoError(t, err)

	fx.notificationRepo.AssertNotCalled(t, "Create")
	fx.queue.AssertNotCalled(t, "Submit")
}

func TestExpiryService_ScheduleForItem_DuplicateJobIsSuccess(t *testing.T) {
	fx := createTestExpiryService(t)

	ctx := context.Background()
	userID := uuid.New()
	// Half a day out: only the same-day offset remains, producing one reminder.
	item := futureItem(userID, 4)

	pref := entity.NewDefaultPreference(userID)
	pref.Intervals = []int{1}
	fx.prefRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(pref, nil)

	fx.notificationRepo.EXPECT().
		FindActiveReminder(ctx, item.ID, 1).
		Return(nil, nil)
	fx.notificationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(nil)

	fx.queue.EXPECT().
		Submit(ctx, mock.AnythingOfType("*service.Job")).
		Return(service.ErrDuplicateJob)

	err := fx.service.ScheduleForItem(ctx, item)
	require.NoError(t, err)
}

func TestExpiryService_ScheduleForItem_DisabledPreferences(t *testing.T) {
	fx := createTestExpiryService(t)

	ctx := context.Background()
	userID := uuid.New()
	item := futureItem(userID, 10)

	pref := entity.NewDefaultPreference(userID)
	pref.Enabled = false
	fx.prefRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(pref, nil)

	err := fx.service.ScheduleForItem(ctx, item)
	require.NoError(t, err)
}

func TestExpiryService_ScheduleForItem_FoodDisabled(t *testing.T) {
	fx := createTestExpiryService(t)

	ctx := context.Background()
	userID := uuid.New()
	item := futureItem(userID, 10)

	pref := entity.NewDefaultPreference(userID)
	pref.FoodEnabled = false
	fx.prefRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(pref, nil)

	err := fx.service.ScheduleForItem(ctx, item)
	require.NoError(t, err)
}

func TestExpiryService_CancelAllForItem(t *testing.T) {
	fx := createTestExpiryService(t)

	ctx := context.Background()
	itemID := uuid.New()

	fx.queue.EXPECT().
		CancelByItem(ctx, itemID).
		Return(int64(2), nil)
	fx.notificationRepo.EXPECT().
		CancelPendingByItem(ctx, itemID).
		Return(int64(2), nil)

	err := fx.service.CancelAllForItem(ctx, itemID)
	require.NoError(t, err)
}

func TestExpiryService_RescheduleForItem(t *testing.T) {
	fx := createTestExpiryService(t)

	ctx := context.Background()
	userID := uuid.New()
	item := futureItem(userID, 10)

	fx.queue.EXPECT().
		CancelByItem(ctx, item.ID).
		Return(int64(1), nil)
	fx.notificationRepo.EXPECT().
		CancelPendingByItem(ctx, item.ID).
		Return(int64(1), nil)

	fx.prefRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(nil, repository.ErrPreferenceNotFound)
	fx.notificationRepo.EXPECT().
		FindActiveReminder(ctx, item.ID, mock.AnythingOfType("int")).
		Return(nil, nil).
		Twice()
	fx.notificationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(nil).
		Twice()
	fx.queue.EXPECT().
		Submit(ctx, mock.AnythingOfType("*service.Job")).
		Return(nil).
		Twice()

	err := fx.service.RescheduleForItem(ctx, item)
	require.NoError(t, err)
}

func TestExpiryService_ReconcileAll_RefillsQueueForPendingReminders(t *testing.T) {
	fx := createTestExpiryService(t)

	ctx := context.Background()
	userID := uuid.New()
	item := futureItem(userID, 4)

	fx.userRepo.EXPECT().
		FindActiveUserIDs(ctx).
		Return([]uuid.UUID{userID}, nil)

	pref := entity.NewDefaultPreference(userID)
	pref.Intervals = []int{1}
	fx.prefRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(pref, nil)

	fx.itemRepo.EXPECT().
		FindWithFutureExpiry(ctx, userID, mock.AnythingOfType("time.Time")).
		Return([]*entity.Item{item}, nil)

	pending := &entity.Notification{
		ID:           uuid.New(),
		UserID:       userID,
		ItemID:       &item.ID,
		OffsetDays:   1,
		ScheduledFor: item.ExpiryDate.AddDate(0, 0, -1).Add(9 * time.Hour),
		Status:       entity.NotificationPending,
	}
	fx.notificationRepo.EXPECT().
		FindActiveReminder(ctx, item.ID, 1).
		Return(pending, nil)

	// The pass must submit even though the row already exists, so a lost
	// queue gets refilled; a still-queued job answers ErrDuplicateJob.
	fx.queue.EXPECT().
		Submit(ctx, mock.AnythingOfType("*service.Job")).
		Return(service.ErrDuplicateJob)

	err := fx.service.ReconcileAll(ctx)
	require.NoError(t, err)

	fx.notificationRepo.AssertNotCalled(t, "Create")
	fx.queue.AssertCalled(t, "Submit", ctx, mock.AnythingOfType("*service.Job"))
}

func TestExpiryService_ReconcileAll_SkipsDisabledUsers(t *testing.T) {
	fx := createTestExpiryService(t)

	ctx := context.Background()
	enabledUser := uuid.New()
	disabledUser := uuid.New()

	fx.userRepo.EXPECT().
		FindActiveUserIDs(ctx).
		Return([]uuid.UUID{enabledUser, disabledUser}, nil)

	fx.prefRepo.EXPECT().
		FindByUser(ctx, enabledUser).
		Return(nil, repository.ErrPreferenceNotFound)

	disabledPref := entity.NewDefaultPreference(disabledUser)
	disabledPref.Enabled = false
	fx.prefRepo.EXPECT().
		FindByUser(ctx, disabledUser).
		Return(disabledPref, nil)

	fx.itemRepo.EXPECT().
		FindWithFutureExpiry(ctx, enabledUser, mock.AnythingOfType("time.Time")).
		Return([]*entity.Item{}, nil)

	err := fx.service.ReconcileAll(ctx)
	require.NoError(t, err)
}

func TestExpiryService_ReconcileAll_ContinuesAfterUserError(t *testing.T) {
	fx := createTestExpiryService(t)

	ctx := context.Background()
	badUser := uuid.New()
	goodUser := uuid.New()

	fx.userRepo.EXPECT().
		FindActiveUserIDs(ctx).
		Return([]uuid.UUID{badUser, goodUser}, nil)

	fx.prefRepo.EXPECT().
		FindByUser(ctx, badUser).
		Return(nil, errors.New("database error"))
	fx.prefRepo.EXPECT().
		FindByUser(ctx, goodUser).
		Return(nil, repository.ErrPreferenceNotFound)

	fx.itemRepo.EXPECT().
		FindWithFutureExpiry(ctx, goodUser, mock.AnythingOfType("time.Time")).
		Return([]*entity.Item{}, nil)

	err := fx.service.ReconcileAll(ctx)
	require.NoError(t, err)
}

func TestExpiryService_ProcessDueJobs_DeliversToSingleDevice(t *testing.T) {
	fx := createTestExpiryService(t)

	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()
	notificationID := uuid.New()
	now := time.Now()

	job := &service.Job{
		Key:            service.ExpiryJobKey(itemID, 7),
		Kind:           service.JobExpiryReminder,
		NotificationID: notificationID,
		UserID:         userID,
		ItemID:         &itemID,
		FireAt:         now,
	}

	fx.queue.EXPECT().
		ClaimDue(ctx, now, 50).
		Return([]*service.Job{job}, nil)

	notification := &entity.Notification{
		ID:       notificationID,
		UserID:   userID,
		ItemID:   &itemID,
		ItemType: entity.ItemTypeFood,
		Title:    "Milk expires in 7 days",
		Body:     "Check your food items to avoid waste",
		Status:   entity.NotificationPending,
	}
	fx.notificationRepo.EXPECT().
		FindByID(ctx, notificationID).
		Return(notification, nil)

	fx.deviceRepo.EXPECT().
		FindActiveByUser(ctx, userID).
		Return([]*entity.UserDevice{
			{ID: uuid.New(), UserID: userID, FCMToken: "token-1", IsActive: true},
		}, nil)

	fx.push.EXPECT().
		SendToOne(ctx, "token-1", notification.Title, notification.Body, mock.Anything).
		Return("projects/test/messages/abc", nil)

	fx.notificationRepo.EXPECT().
		MarkSent(ctx, notificationID, "projects/test/messages/abc", mock.AnythingOfType("time.Time")).
		Return(nil)

	processed, err := fx.service.ProcessDueJobs(ctx, now, 50)
	require.NoError(t, err)
	assert.Equal(t, 1, processed)
}

func TestExpiryService_ProcessDueJobs_NoDevicesMarksFailed(t *testing.T) {
	fx := createTestExpiryService(t)

	ctx := context.Background()
	userID := uuid.New()
	notificationID := uuid.New()
	now := time.Now()

	job := &service.Job{
		Key:            "expiry-test-7",
		Kind:           service.JobExpiryReminder,
		NotificationID: notificationID,
		UserID:         userID,
	}

	fx.queue.EXPECT().
		ClaimDue(ctx, now, 10).
		Return([]*service.Job{job}, nil)

	fx.notificationRepo.EXPECT().
		FindByID(ctx, notificationID).
		Return(&entity.Notification{
			ID:     notificationID,
			UserID: userID,
			Status: entity.NotificationPending,
		}, nil)

	fx.deviceRepo.EXPECT().
		FindActiveByUser(ctx, userID).
		Return([]*entity.UserDevice{}, nil)

	fx.notificationRepo.EXPECT().
		MarkFailed(ctx, notificationID, noActiveDevicesMessage).
		Return(nil)

	processed, err := fx.service.ProcessDueJobs(ctx, now, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, processed)
}

func TestExpiryService_ProcessDueJobs_RetriesTransientFailure(t *testing.T) {
	fx := createTestExpiryService(t)

	ctx := context.Background()
	userID := uuid.New()
	notificationID := uuid.New()
	now := time.Now()

	job := &service.Job{
		Key:            "expiry-test-1",
		Kind:           service.JobExpiryReminder,
		NotificationID: notificationID,
		UserID:         userID,
		Attempts:       0,
	}

	fx.queue.EXPECT().
		ClaimDue(ctx, now, 10).
		Return([]*service.Job{job}, nil)

	fx.notificationRepo.EXPECT().
		FindByID(ctx, notificationID).
		Return(&entity.Notification{
			ID:     notificationID,
			UserID: userID,
			Status: entity.NotificationPending,
		}, nil)

	fx.deviceRepo.EXPECT().
		FindActiveByUser(ctx, userID).
		Return([]*entity.UserDevice{
			{ID: uuid.New(), UserID: userID, FCMToken: "token-1", IsActive: true},
		}, nil)

	fx.push.EXPECT().
		SendToOne(ctx, "token-1", mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("unavailable"))

	fx.queue.EXPECT().
		Retry(ctx, job, 2*time.Second).
		Return(nil)

	processed, err := fx.service.ProcessDueJobs(ctx, now, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, processed)
}

func TestExpiryService_ProcessDueJobs_ExhaustedAttemptsMarkFailed(t *testing.T) {
	fx := createTestExpiryService(t)

	ctx := context.Background()
	userID := uuid.New()
	notificationID := uuid.New()
	now := time.Now()

	job := &service.Job{
		Key:            "expiry-test-1",
		Kind:           service.JobExpiryReminder,
		NotificationID: notificationID,
		UserID:         userID,
		Attempts:       2,
	}

	fx.queue.EXPECT().
		ClaimDue(ctx, now, 10).
		Return([]*service.Job{job}, nil)

	fx.notificationRepo.EXPECT().
		FindByID(ctx, notificationID).
		Return(&entity.Notification{
			ID:     notificationID,
			UserID: userID,
			Status: entity.NotificationPending,
		}, nil)

	fx.deviceRepo.EXPECT().
		FindActiveByUser(ctx, userID).
		Return([]*entity.UserDevice{
			{ID: uuid.New(), UserID: userID, FCMToken: "token-1", IsActive: true},
		}, nil)

	fx.push.EXPECT().
		SendToOne(ctx, "token-1", mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("unavailable"))

	fx.notificationRepo.EXPECT().
		MarkFailed(ctx, notificationID, "unavailable").
		Return(nil)

	processed, err := fx.service.ProcessDueJobs(ctx, now, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, processed)
}

func TestExpiryService_ProcessDueJobs_SkipsTerminalNotification(t *testing.T) {
	fx := createTestExpiryService(t)

	ctx := context.Background()
	notificationID := uuid.New()
	now := time.Now()

	job := &service.Job{
		Key:            "expiry-test-7",
		Kind:           service.JobExpiryReminder,
		NotificationID: notificationID,
	}

	fx.queue.EXPECT().
		ClaimDue(ctx, now, 10).
		Return([]*service.Job{job}, nil)

	fx.notificationRepo.EXPECT().
		FindByID(ctx, notificationID).
		Return(&entity.Notification{
			ID:     notificationID,
			Status: entity.NotificationCancelled,
		}, nil)

	processed, err := fx.service.ProcessDueJobs(ctx, now, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, processed)
}

func TestExpiryService_ProcessDueJobs_MulticastDeactivatesInvalidTokens(t *testing.T) {
	fx := createTestExpiryService(t)

	ctx := context.Background()
	userID := uuid.New()
	notificationID := uuid.New()
	now := time.Now()

	job := &service.Job{
		Key:            "expiry-test-7",
		Kind:           service.JobExpiryReminder,
		NotificationID: notificationID,
		UserID:         userID,
	}

	fx.queue.EXPECT().
		ClaimDue(ctx, now, 10).
		Return([]*service.Job{job}, nil)

	fx.notificationRepo.EXPECT().
		FindByID(ctx, notificationID).
		Return(&entity.Notification{
			ID:     notificationID,
			UserID: userID,
			Status: entity.NotificationPending,
		}, nil)

	fx.deviceRepo.EXPECT().
		FindActiveByUser(ctx, userID).
		Return([]*entity.UserDevice{
			{ID: uuid.New(), UserID: userID, FCMToken: "token-1", IsActive: true},
			{ID: uuid.New(), UserID: userID, FCMToken: "token-2", IsActive: true},
		}, nil)

	fx.push.EXPECT().
		SendToMany(ctx, []string{"token-1", "token-2"}, mock.Anything, mock.Anything, mock.Anything).
		Return(1, 1, []string{"token-2"}, nil)

	fx.deviceRepo.EXPECT().
		DeactivateTokens(ctx, []string{"token-2"}).
		Return(nil)

	fx.notificationRepo.EXPECT().
		MarkSent(ctx, notificationID, "", mock.AnythingOfType("time.Time")).
		Return(nil)

	processed, err := fx.service.ProcessDueJobs(ctx, now, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, processed)
}

func TestReminderTitle(t *testing.T) {
	tests := []struct {
		name     string
		days     int
		expected string
	}{
		{name: "today", days: 0, expected: "Milk expires today!"},
		{name: "tomorrow", days: 1, expected: "Milk expires tomorrow"},
		{name: "a week out", days: 7, expected: "Milk expires in 7 days"},
		{name: "a month out", days: 30, expected: "Milk expires in 30 days"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, reminderTitle("Milk", tt.days))
		})
	}
}

func TestReminderBody(t *testing.T) {
	assert.Equal(t, "Check your food items to avoid waste", reminderBody(entity.ItemTypeFood))
	assert.Equal(t, "Renew your document before it expires", reminderBody(entity.ItemTypeDocument))
}

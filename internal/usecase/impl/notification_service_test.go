package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"expitrack/internal/domain/entity"
	domainerrors "expitrack/internal/domain/errors"
	"expitrack/internal/domain/repository"
	mockRepo "expitrack/internal/mocks/repository"
	mockSvc "expitrack/internal/mocks/service"
	"expitrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// notificationServiceFixtures holds all test dependencies for
// notification service tests.
type notificationServiceFixtures struct {
	service          usecase.NotificationUsecase
	prefRepo         *mockRepo.MockPreferenceRepository
	notificationRepo *mockRepo.MockNotificationRepository
	deviceRepo       *mockRepo.MockDeviceRepository
	push             *mockSvc.MockPushService
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	prefRepo := mockRepo.NewMockPreferenceRepository(t)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	push := mockSvc.NewMockPushService(t)

	svc := NewNotificationService(logger, prefRepo, notificationRepo, deviceRepo, push)

	return notificationServiceFixtures{
		service:          svc,
		prefRepo:         prefRepo,
		notificationRepo: notificationRepo,
		deviceRepo:       deviceRepo,
		push:             push,
	}
}

func TestNotificationService_GetPreferences_CreatesDefaultsOnFirstAccess(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.prefRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(nil, repository.ErrPreferenceNotFound)

	var created *entity.NotificationPreference
	fx.prefRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.NotificationPreference")).
		Run(func(ctx context.Context, pref *entity.NotificationPreference) {
			created = pref
		}).
		Return(nil)

	pref, err := fx.service.GetPreferences(ctx, userID)
	require.NoError(t, err)
	assert.Same(t, created, pref)
	assert.True(t, pref.Enabled)
	assert.True(t, pref.FoodEnabled)
	assert.True(t, pref.DocumentEnabled)
	assert.Equal(t, []int{30, 15, 7, 1}, pref.Intervals)
}

func TestNotificationService_GetPreferences_ReturnsExisting(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.NotificationPreference{
		ID:        uuid.New(),
		UserID:    userID,
		Enabled:   true,
		Intervals: []int{7, 1},
	}

	fx.prefRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(existing, nil)

	pref, err := fx.service.GetPreferences(ctx, userID)
	require.NoError(t, err)
	assert.Same(t, existing, pref)
}

func TestNotificationService_UpdatePreferences_Success(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := entity.NewDefaultPreference(userID)
	existing.ID = uuid.New()

	fx.prefRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(existing, nil)
	fx.prefRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.NotificationPreference")).
		Return(nil)

	foodEnabled := false
	pref, err := fx.service.UpdatePreferences(ctx, userID, &usecase.UpdatePreferencesInput{
		Intervals:   []int{14, 3},
		FoodEnabled: &foodEnabled,
	})
	require.NoError(t, err)
	assert.Equal(t, []int{14, 3}, pref.Intervals)
	assert.False(t, pref.FoodEnabled)
	assert.True(t, pref.DocumentEnabled)
}

func TestNotificationService_UpdatePreferences_RejectsNonPositiveInterval(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := entity.NewDefaultPreference(userID)

	fx.prefRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(existing, nil)

	_, err := fx.service.UpdatePreferences(ctx, userID, &usecase.UpdatePreferencesInput{
		Intervals: []int{7, 0},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reminder interval must be positive")
}

func TestNotificationService_GetHistory_Passthrough(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	status := entity.NotificationSent

	expected := []*entity.Notification{{ID: uuid.New(), UserID: userID}}
	fx.notificationRepo.EXPECT().
		ListByUser(ctx, userID, &status, 1, 20).
		Return(expected, int64(1), nil)

	notifications, total, err := fx.service.GetHistory(ctx, userID, &status, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, expected, notifications)
	assert.Equal(t, int64(1), total)
}

func TestNotificationService_SendTest_NoDevices(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindActiveByUser(ctx, userID).
		Return([]*entity.UserDevice{}, nil)

	err := fx.service.SendTest(ctx, userID)
	assert.ErrorIs(t, err, domainerrors.ErrNoActiveDevices)
}

func TestNotificationService_SendTest_Success(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindActiveByUser(ctx, userID).
		Return([]*entity.UserDevice{
			{ID: uuid.New(), UserID: userID, FCMToken: "token-1", IsActive: true},
			{ID: uuid.New(), UserID: userID, FCMToken: "token-2", IsActive: true},
		}, nil)

	fx.push.EXPECT().
		SendToMany(ctx, []string{"token-1", "token-2"}, testNotificationTitle, testNotificationBody, map[string]string{"kind": "test"}).
		Return(2, 0, nil, nil)

	err := fx.service.SendTest(ctx, userID)
	require.NoError(t, err)
}

func TestNotificationService_SendTest_DeactivatesInvalidTokens(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindActiveByUser(ctx, userID).
		Return([]*entity.UserDevice{
			{ID: uuid.New(), UserID: userID, FCMToken: "token-1", IsActive: true},
			{ID: uuid.New(), UserID: userID, FCMToken: "token-2", IsActive: true},
		}, nil)

	fx.push.EXPECT().
		SendToMany(ctx, []string{"token-1", "token-2"}, testNotificationTitle, testNotificationBody, map[string]string{"kind": "test"}).
		Return(1, 1, []string{"token-2"}, nil)

	fx.deviceRepo.EXPECT().
		DeactivateTokens(ctx, []string{"token-2"}).
		Return(nil)

	err := fx.service.SendTest(ctx, userID)
	require.NoError(t, err)
}

func TestNotificationService_SendTest_AllSendsFailed(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindActiveByUser(ctx, userID).
		Return([]*entity.UserDevice{
			{ID: uuid.New(), UserID: userID, FCMToken: "token-1", IsActive: true},
		}, nil)

	fx.push.EXPECT().
		SendToMany(ctx, []string{"token-1"}, testNotificationTitle, testNotificationBody, map[string]string{"kind": "test"}).
		Return(0, 1, nil, nil)

	err := fx.service.SendTest(ctx, userID)
	assert.ErrorIs(t, err, domainerrors.ErrPushDeliveryFailed)
}

func TestNotificationService_SendTest_PushError(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindActiveByUser(ctx, userID).
		Return([]*entity.UserDevice{
			{ID: uuid.New(), UserID: userID, FCMToken: "token-1", IsActive: true},
		}, nil)

	fx.push.EXPECT().
		SendToMany(ctx, []string{"token-1"}, testNotificationTitle, testNotificationBody, map[string]string{"kind": "test"}).
		Return(0, 0, nil, errors.New("messaging service unavailable"))

	err := fx.service.SendTest(ctx, userID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "messaging service unavailable")
}

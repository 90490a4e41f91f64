package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"expitrack/internal/domain/entity"
	domainerrors "expitrack/internal/domain/errors"
	"expitrack/internal/domain/repository"
	"expitrack/internal/domain/service"
	mockRepo "expitrack/internal/mocks/repository"
	mockSvc "expitrack/internal/mocks/service"
	"expitrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// adminServiceFixtures holds all test dependencies for admin service tests.
type adminServiceFixtures struct {
	service          usecase.AdminUsecase
	userRepo         *mockRepo.MockUserRepository
	itemRepo         *mockRepo.MockItemRepository
	notificationRepo *mockRepo.MockNotificationRepository
	queue            *mockSvc.MockJobQueue
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	userRepo := mockRepo.NewMockUserRepository(t)
	itemRepo := mockRepo.NewMockItemRepository(t)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	queue := mockSvc.NewMockJobQueue(t)

	svc := NewAdminService(logger, userRepo, itemRepo, notificationRepo, queue)

	return adminServiceFixtures{
		service:          svc,
		userRepo:         userRepo,
		itemRepo:         itemRepo,
		notificationRepo: notificationRepo,
		queue:            queue,
	}
}

func TestAdminService_GetDashboardStats(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		Stats(ctx, mock.AnythingOfType("time.Time")).
		Return(&repository.UserStats{Total: 100, Active: 80, Premium: 10}, nil)
	fx.itemRepo.EXPECT().
		CountAll(ctx, mock.AnythingOfType("time.Time")).
		Return(int64(500), int64(40), nil)
	fx.notificationRepo.EXPECT().
		Stats(ctx).
		Return(&repository.NotificationStats{Total: 200, Sent: 150, Failed: 50}, nil)
	fx.queue.EXPECT().
		Counts(ctx).
		Return(&service.QueueCounts{Delayed: 12, Retry: 3}, nil)

	stats, err := fx.service.GetDashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(100), stats.Users.Total)
	assert.Equal(t, int64(500), stats.TotalItems)
	assert.Equal(t, int64(40), stats.RecentItems)
	assert.InDelta(t, 0.75, stats.DeliveryRate, 0.001)
	assert.Equal(t, int64(12), stats.Queue.Delayed)
}

func TestAdminService_GetDashboardStats_NoDeliveriesYet(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		Stats(ctx, mock.AnythingOfType("time.Time")).
		Return(&repository.UserStats{}, nil)
	fx.itemRepo.EXPECT().
		CountAll(ctx, mock.AnythingOfType("time.Time")).
		Return(int64(0), int64(0), nil)
	fx.notificationRepo.EXPECT().
		Stats(ctx).
		Return(&repository.NotificationStats{Pending: 5}, nil)
	fx.queue.EXPECT().
		Counts(ctx).
		Return(&service.QueueCounts{}, nil)

	stats, err := fx.service.GetDashboardStats(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.DeliveryRate)
}

func TestAdminService_ListUsers_FullPageReturnsCursor(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	users := []*entity.User{
		{ID: uuid.New()},
		{ID: uuid.New()},
	}

	fx.userRepo.EXPECT().
		List(ctx, repository.UserListFilter{Limit: 2}).
		Return(users, int64(5), nil)

	got, total, nextCursor, err := fx.service.ListUsers(ctx, repository.UserListFilter{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, users, got)
	assert.Equal(t, int64(5), total)
	require.NotNil(t, nextCursor)
	assert.Equal(t, users[1].ID, *nextCursor)
}

func TestAdminService_ListUsers_PartialPageHasNoCursor(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	users := []*entity.User{{ID: uuid.New()}}

	fx.userRepo.EXPECT().
		List(ctx, repository.UserListFilter{Limit: 20}).
		Return(users, int64(1), nil)

	// A zero limit falls back to the default page size.
	_, _, nextCursor, err := fx.service.ListUsers(ctx, repository.UserListFilter{})
	require.NoError(t, err)
	assert.Nil(t, nextCursor)
}

func TestAdminService_GetUser_NotFound(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, id).
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetUser(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAdminService_Broadcast_AllSegment(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	userIDs := []uuid.UUID{uuid.New(), uuid.New()}

	fx.userRepo.EXPECT().
		FindActiveUserIDs(ctx).
		Return(userIDs, nil)

	var created []*entity.Notification
	fx.notificationRepo.EXPECT().
		BatchCreate(ctx, mock.AnythingOfType("[]*entity.Notification")).
		Run(func(ctx context.Context, notifications []*entity.Notification) {
			created = notifications
			for _, notification := range notifications {
				notification.ID = uuid.New()
			}
		}).
		Return(nil)

	fx.queue.EXPECT().
		Submit(ctx, mock.AnythingOfType("*service.Job")).
		Return(nil).
		Twice()

	result, err := fx.service.Broadcast(ctx, &usecase.BroadcastInput{
		Title:   "Maintenance window",
		Body:    "Expect downtime tonight",
		Segment: usecase.SegmentAll,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.TargetUserCount)
	require.Len(t, created, 2)
	for _, notification := range created {
		assert.Equal(t, "Maintenance window", notification.Title)
		assert.Equal(t, entity.NotificationPending, notification.Status)
		// The broadcast tag rides in the FCM message ID column.
		assert.Equal(t, result.BroadcastID.String(), notification.FCMMessageID)
	}
}

func TestAdminService_Broadcast_EmptySegment(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindUserIDsByPlan(ctx, entity.PlanPremium).
		Return([]uuid.UUID{}, nil)

	result, err := fx.service.Broadcast(ctx, &usecase.BroadcastInput{
		Title:   "Premium perk",
		Body:    "New features for you",
		Segment: usecase.SegmentPremium,
	})
	require.NoError(t, err)
	assert.Zero(t, result.TargetUserCount)
}

func TestAdminService_Broadcast_InactiveSegment(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	userIDs := []uuid.UUID{uuid.New()}

	fx.userRepo.EXPECT().
		FindInactiveUserIDs(ctx, mock.AnythingOfType("time.Time")).
		Return(userIDs, nil)
	fx.notificationRepo.EXPECT().
		BatchCreate(ctx, mock.AnythingOfType("[]*entity.Notification")).
		Return(nil)
	fx.queue.EXPECT().
		Submit(ctx, mock.AnythingOfType("*service.Job")).
		Return(nil)

	result, err := fx.service.Broadcast(ctx, &usecase.BroadcastInput{
		Title:   "We miss you",
		Body:    "Come back and check your items",
		Segment: usecase.SegmentInactive,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.TargetUserCount)
}

func TestAdminService_Broadcast_DuplicateJobsAreSkipped(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	userIDs := []uuid.UUID{uuid.New(), uuid.New()}

	fx.userRepo.EXPECT().
		FindActiveUserIDs(ctx).
		Return(userIDs, nil)
	fx.notificationRepo.EXPECT().
		BatchCreate(ctx, mock.AnythingOfType("[]*entity.Notification")).
		Return(nil)
	fx.queue.EXPECT().
		Submit(ctx, mock.AnythingOfType("*service.Job")).
		Return(service.ErrDuplicateJob).
		Twice()

	result, err := fx.service.Broadcast(ctx, &usecase.BroadcastInput{
		Title:   "Hello",
		Body:    "World",
		Segment: usecase.SegmentAll,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.TargetUserCount)
}

func TestAdminService_Broadcast_InvalidSegment(t *testing.T) {
	fx := createTestAdminService(t)

	_, err := fx.service.Broadcast(context.Background(), &usecase.BroadcastInput{
		Title:   "Hello",
		Body:    "World",
		Segment: "vip",
	})
	assert.ErrorIs(t, err, domainerrors.ErrBroadcastSegmentInvalid)
}

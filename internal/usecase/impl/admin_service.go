package impl

import (
	"context"
	"log/slog"
	"time"

	"expitrack/internal/domain/entity"
	domainerrors "expitrack/internal/domain/errors"
	"expitrack/internal/domain/repository"
	"expitrack/internal/domain/service"
	"expitrack/internal/errors"
	"expitrack/internal/usecase"

	"github.com/google/uuid"
)

const (
	// inactiveUserWindow is how long without a login a user counts as
	// inactive for the broadcast segment.
	inactiveUserWindow = 30 * 24 * time.Hour

	defaultUserPageSize = 20
)

type adminService struct {
	logger           *slog.Logger
	userRepo         repository.UserRepository
	itemRepo         repository.ItemRepository
	notificationRepo repository.NotificationRepository
	queue            service.JobQueue
}

// NewAdminService creates a new admin surface service instance.
func NewAdminService(
	logger *slog.Logger,
	userRepo repository.UserRepository,
	itemRepo repository.ItemRepository,
	notificationRepo repository.NotificationRepository,
	queue service.JobQueue,
) usecase.AdminUsecase {
	return &adminService{
		logger:           logger,
		userRepo:         userRepo,
		itemRepo:         itemRepo,
		notificationRepo: notificationRepo,
		queue:            queue,
	}
}

// GetDashboardStats aggregates users, items, notifications and queue depth.
func (s *adminService) GetDashboardStats(ctx context.Context) (*usecase.DashboardStats, error) {
	now := time.Now()

	userStats, err := s.userRepo.Stats(ctx, now)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate user stats")
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	totalItems, recentItems, err := s.itemRepo.CountAll(ctx, monthStart)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count items")
	}

	notificationStats, err := s.notificationRepo.Stats(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate notification stats")
	}

	deliveryRate := 0.0
	if delivered := notificationStats.Sent + notificationStats.Failed; delivered > 0 {
		deliveryRate = float64(notificationStats.Sent) / float64(delivered)
	}

	queueCounts, err := s.queue.Counts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read queue depth")
	}

	return &usecase.DashboardStats{
		Users:         userStats,
		TotalItems:    totalItems,
		RecentItems:   recentItems,
		Notifications: notificationStats,
		DeliveryRate:  deliveryRate,
		Queue:         queueCounts,
	}, nil
}

// ListUsers returns a page of users plus the total count and the cursor
// for the next page.
func (s *adminService) ListUsers(ctx context.Context, filter repository.UserListFilter) ([]*entity.User, int64, *uuid.UUID, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultUserPageSize
	}

	users, total, err := s.userRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, nil, errors.Wrap(err, "failed to list users")
	}

	var nextCursor *uuid.UUID
	if len(users) == filter.Limit {
		last := users[len(users)-1].ID
		nextCursor = &last
	}

	return users, total, nextCursor, nil
}

// GetUser retrieves a single user by ID.
func (s *adminService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// Broadcast creates PENDING notifications for every user in the segment
// and enqueues their delivery.
func (s *adminService) Broadcast(ctx context.Context, input *usecase.BroadcastInput) (*usecase.BroadcastResult, error) {
	userIDs, err := s.resolveSegment(ctx, input.Segment)
	if err != nil {
		return nil, err
	}

	broadcastID := uuid.New()
	result := &usecase.BroadcastResult{
		BroadcastID:     broadcastID,
		TargetUserCount: len(userIDs),
	}

	if len(userIDs) == 0 {
		return result, nil
	}

	now := time.Now()
	notifications := make([]*entity.Notification, 0, len(userIDs))
	for _, userID := range userIDs {
		notifications = append(notifications, &entity.Notification{
			UserID:       userID,
			Title:        input.Title,
			Body:         input.Body,
			ScheduledFor: now,
			Status:       entity.NotificationPending,
			FCMMessageID: broadcastID.String(),
		})
	}

	if err := s.notificationRepo.BatchCreate(ctx, notifications); err != nil {
		return nil, errors.Wrap(err, "failed to create broadcast notifications")
	}

	for _, notification := range notifications {
		job := &service.Job{
			Key:            service.BroadcastJobKey(broadcastID, notification.UserID),
			Kind:           service.JobBroadcast,
			NotificationID: notification.ID,
			UserID:         notification.UserID,
			FireAt:         now,
		}
		if err := s.queue.Submit(ctx, job); err != nil {
			if errors.Is(err, service.ErrDuplicateJob) {
				continue
			}

			s.logger.WarnContext(ctx, "failed to enqueue broadcast job",
				slog.String("broadcastId", broadcastID.String()),
				slog.String("userId", notification.UserID.String()),
				slog.String("error", err.Error()),
			)
		}
	}

	s.logger.InfoContext(ctx, "broadcast enqueued",
		slog.String("broadcastId", broadcastID.String()),
		slog.String("segment", string(input.Segment)),
		slog.Int("targetUsers", len(userIDs)),
	)

	return result, nil
}

func (s *adminService) resolveSegment(ctx context.Context, segment usecase.BroadcastSegment) ([]uuid.UUID, error) {
	switch segment {
	case usecase.SegmentAll:
		return s.userRepo.FindActiveUserIDs(ctx)
	case usecase.SegmentPremium:
		return s.userRepo.FindUserIDsByPlan(ctx, entity.PlanPremium)
	case usecase.SegmentFree:
		return s.userRepo.FindUserIDsByPlan(ctx, entity.PlanFree)
	case usecase.SegmentInactive:
		return s.userRepo.FindInactiveUserIDs(ctx, time.Now().Add(-inactiveUserWindow))
	default:
		return nil, domainerrors.ErrBroadcastSegmentInvalid
	}
}

package usecase

import (
	"context"

	"expitrack/internal/domain/entity"
	"expitrack/internal/domain/repository"
	"expitrack/internal/domain/service"

	"github.com/google/uuid"
)

// BroadcastSegment selects the audience of an admin broadcast.
type BroadcastSegment string

const (
	SegmentAll      BroadcastSegment = "all"
	SegmentPremium  BroadcastSegment = "premium"
	SegmentFree     BroadcastSegment = "free"
	SegmentInactive BroadcastSegment = "inactive"
)

// BroadcastInput carries an admin broadcast request.
type BroadcastInput struct {
	Title   string           `json:"title"`
	Body    string           `json:"body"`
	Segment BroadcastSegment `json:"segment"`
}

// BroadcastResult reports what a broadcast targeted.
type BroadcastResult struct {
	BroadcastID     uuid.UUID `json:"broadcast_id"`
	TargetUserCount int       `json:"target_user_count"`
}

// DashboardStats aggregates the admin dashboard numbers.
type DashboardStats struct {
	Users         *repository.UserStats         `json:"users"`
	TotalItems    int64                         `json:"total_items"`
	RecentItems   int64                         `json:"recent_items"`
	Notifications *repository.NotificationStats `json:"notifications"`
	DeliveryRate  float64                       `json:"delivery_rate"`
	Queue         *service.QueueCounts          `json:"queue"`
}

// AdminUsecase defines the interface for the admin surface.
type AdminUsecase interface {
	// GetDashboardStats aggregates users, items, notifications and queue depth.
	GetDashboardStats(ctx context.Context) (*DashboardStats, error)

	// ListUsers returns a page of users plus the total count and the
	// cursor for the next page (nil when exhausted).
	ListUsers(ctx context.Context, filter repository.UserListFilter) ([]*entity.User, int64, *uuid.UUID, error)

	// GetUser retrieves a single user by ID.
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// Broadcast creates PENDING notifications for every user in the
	// segment and enqueues their delivery. An empty segment succeeds
	// with a zero target count.
	Broadcast(ctx context.Context, input *BroadcastInput) (*BroadcastResult, error)
}

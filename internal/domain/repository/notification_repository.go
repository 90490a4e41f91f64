// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"expitrack/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationStats aggregates delivery counts for the admin dashboard.
type NotificationStats struct {
	Total   int64
	Sent    int64
	Failed  int64
	Pending int64
}

// NotificationRepository defines the interface for reminder persistence.
type NotificationRepository interface {
	// Create persists a new notification record.
	Create(ctx context.Context, notification *entity.Notification) error

	// BatchCreate persists multiple notification records in batches.
	BatchCreate(ctx context.Context, notifications []*entity.Notification) error

	// FindByID retrieves a notification by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)

	// FindActiveReminder returns the PENDING or SENT reminder for the
	// given item and offset, or nil when none exists. Fired reminders
	// count so that reconciliation does not recreate them.
	FindActiveReminder(ctx context.Context, itemID uuid.UUID, offsetDays int) (*entity.Notification, error)

	// MarkSent transitions a PENDING notification to SENT.
	MarkSent(ctx context.Context, id uuid.UUID, fcmMessageID string, sentAt time.Time) error

	// MarkFailed transitions a PENDING notification to FAILED with the
	// failure reason.
	MarkFailed(ctx context.Context, id uuid.UUID, errorMessage string) error

	// CancelPendingByItem transitions all PENDING notifications of an
	// item to CANCELLED and returns how many were cancelled.
	CancelPendingByItem(ctx context.Context, itemID uuid.UUID) (int64, error)

	// ListByUser returns a page of the user's notifications, newest
	// first, optionally filtered by status, plus the total count.
	ListByUser(ctx context.Context, userID uuid.UUID, status *entity.NotificationStatus, page, limit int) ([]*entity.Notification, int64, error)

	// Stats aggregates delivery counts for the admin dashboard.
	Stats(ctx context.Context) (*NotificationStats, error)
}

package usecase

import (
	"context"
	"time"

	"expitrack/internal/domain/entity"

	"github.com/google/uuid"
)

// ExpiryUsecase defines the interface for reminder scheduling and delivery.
type ExpiryUsecase interface {
	// ScheduleForItem plans reminders for a newly created item according
	// to the owner's preferences. Queue failures are returned but must
	// never roll back the item write.
	ScheduleForItem(ctx context.Context, item *entity.Item) error

	// RescheduleForItem cancels all planned reminders for an edited item
	// and schedules a fresh set from its current expiry date.
	RescheduleForItem(ctx context.Context, item *entity.Item) error

	// CancelAllForItem removes queued jobs and cancels pending reminders
	// for a deleted item.
	CancelAllForItem(ctx context.Context, itemID uuid.UUID) error

	// ReconcileAll re-derives the reminder set for every active user and
	// schedules anything missing. Per-user failures are logged and skipped.
	ReconcileAll(ctx context.Context) error

	// ProcessDueJobs claims jobs due at now and delivers them, returning
	// how many jobs were handled.
	ProcessDueJobs(ctx context.Context, now time.Time, limit int) (int, error)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrDuplicateJob is returned by Submit when a job with the same key is
// already queued. Callers treat it as success: the reminder is planned.
var ErrDuplicateJob = errors.New("job with this key already queued")

// JobKind discriminates the payload of a queued job.
type JobKind string

const (
	JobExpiryReminder JobKind = "expiry_reminder"
	JobBroadcast      JobKind = "broadcast"
)

// Job is a delayed delivery task. Key is deterministic so that
// submitting the same reminder twice cannot double-queue it.
type Job struct {
	Key            string     `json:"key"`
	Kind           JobKind    `json:"kind"`
	NotificationID uuid.UUID  `json:"notification_id"`
	UserID         uuid.UUID  `json:"user_id"`
	ItemID         *uuid.UUID `json:"item_id,omitempty"`
	FireAt         time.Time  `json:"fire_at"`
	Attempts       int        `json:"attempts"`
}

// ExpiryJobKey builds the deterministic key for an expiry reminder.
func ExpiryJobKey(itemID uuid.UUID, offsetDays int) string {
	return fmt.Sprintf("expiry-%s-%d", itemID, offsetDays)
}

// BroadcastJobKey builds the deterministic key for one user's share of a broadcast.
func BroadcastJobKey(broadcastID, userID uuid.UUID) string {
	return fmt.Sprintf("broadcast-%s-%s", broadcastID, userID)
}

// QueueCounts reports queue depth for the admin dashboard.
type QueueCounts struct {
	Delayed int64 `json:"delayed"`
	Retry   int64 `json:"retry"`
}

// JobQueue defines the interface for the delayed reminder queue.
type JobQueue interface {
	// Submit enqueues a job to fire at job.FireAt. Submitting a key that
	// is already queued returns ErrDuplicateJob and leaves the existing
	// job untouched.
	Submit(ctx context.Context, job *Job) error

	// ClaimDue atomically removes and returns up to limit jobs whose fire
	// time is not after now.
	ClaimDue(ctx context.Context, now time.Time, limit int) ([]*Job, error)

	// Retry re-enqueues a claimed job to fire after the given delay,
	// incrementing its attempt counter.
	Retry(ctx context.Context, job *Job, delay time.Duration) error

	// CancelByItem removes all queued jobs referencing the given item and
	// returns how many were removed.
	CancelByItem(ctx context.Context, itemID uuid.UUID) (int64, error)

	// Counts reports current queue depth.
	Counts(ctx context.Context) (*QueueCounts, error)
}

package usecase

import (
	"context"

	"expitrack/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdatePreferencesInput carries partial preference updates.
// Nil fields are left unchanged.
type UpdatePreferencesInput struct {
	Enabled           *bool   `json:"enabled"`
	FoodEnabled       *bool   `json:"food_enabled"`
	DocumentEnabled   *bool   `json:"document_enabled"`
	Intervals         []int   `json:"intervals"`
	QuietHoursEnabled *bool   `json:"quiet_hours_enabled"`
	QuietHoursStart   *string `json:"quiet_hours_start"`
	QuietHoursEnd     *string `json:"quiet_hours_end"`
	PreferredTime     *string `json:"preferred_time"`
}

// NotificationUsecase defines the interface for notification preference
// and history use cases.
type NotificationUsecase interface {
	// GetPreferences returns the user's preferences, creating a default
	// record on first access.
	GetPreferences(ctx context.Context, userID uuid.UUID) (*entity.NotificationPreference, error)

	// UpdatePreferences applies a partial update to the user's preferences.
	UpdatePreferences(ctx context.Context, userID uuid.UUID, input *UpdatePreferencesInput) (*entity.NotificationPreference, error)

	// GetHistory returns a page of the user's notifications, newest
	// first, optionally filtered by status, plus the total count.
	GetHistory(ctx context.Context, userID uuid.UUID, status *entity.NotificationStatus, page, limit int) ([]*entity.Notification, int64, error)

	// SendTest pushes a test notification to all of the user's active devices.
	SendTest(ctx context.Context, userID uuid.UUID) error
}

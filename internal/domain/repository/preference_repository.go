// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"expitrack/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPreferenceNotFound is returned when a user has no preference record yet.
var ErrPreferenceNotFound = errors.New("notification preference not found")

// PreferenceRepository defines the interface for notification preference persistence.
type PreferenceRepository interface {
	// FindByUser retrieves a user's notification preferences.
	FindByUser(ctx context.Context, userID uuid.UUID) (*entity.NotificationPreference, error)

	// Create persists a new preference record.
	Create(ctx context.Context, pref *entity.NotificationPreference) error

	// Update modifies an existing preference record.
	Update(ctx context.Context, pref *entity.NotificationPreference) error
}

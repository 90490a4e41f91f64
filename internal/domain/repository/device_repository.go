// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"expitrack/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when trying to create a device that already exists.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// Create persists a new device for a user.
	Create(ctx context.Context, device *entity.UserDevice) error

	// FindByToken retrieves a device by its FCM token.
	FindByToken(ctx context.Context, fcmToken string) (*entity.UserDevice, error)

	// FindActiveByUser retrieves all active devices for a specific user.
	FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// Update modifies an existing device record.
	Update(ctx context.Context, device *entity.UserDevice) error

	// DeleteByToken removes a user's device registration by FCM token.
	DeleteByToken(ctx context.Context, userID uuid.UUID, fcmToken string) error

	// DeactivateTokens marks the given FCM tokens inactive. Used when the
	// push provider reports them invalid or unregistered.
	DeactivateTokens(ctx context.Context, fcmTokens []string) error
}

package usecase

import (
	"context"

	"expitrack/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo represents device information for registration
type DeviceInfo struct {
	FCMToken string `json:"fcm_token"`
	DeviceID string `json:"device_id"`
	Platform string `json:"platform"`
}

// DeviceUsecase defines the interface for device token management use cases
type DeviceUsecase interface {
	// RegisterToken registers an FCM token for the user. A token already
	// registered by another user is reassigned to the registering user.
	RegisterToken(ctx context.Context, userID uuid.UUID, deviceInfo *DeviceInfo) (*entity.UserDevice, error)

	// RemoveToken removes the user's FCM token registration.
	RemoveToken(ctx context.Context, userID uuid.UUID, fcmToken string) error

	// GetUserDevices retrieves all active devices for a user
	GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)
}

// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DevicePlatform enumerates supported mobile platforms.
type DevicePlatform string

const (
	PlatformIOS     DevicePlatform = "ios"
	PlatformAndroid DevicePlatform = "android"
)

// UserDevice represents a device registered for push notifications.
// One FCM token maps to exactly one user; re-registering a token moves
// it to the registering user.
type UserDevice struct {
	ID        uuid.UUID      `json:"id"`         // The Global Unique Identifier (GUID) for the device.
	UserID    uuid.UUID      `json:"user_id"`    // The ID of the user who owns this device.
	FCMToken  string         `json:"fcm_token"`  // Firebase Cloud Messaging token for push notifications.
	DeviceID  string         `json:"device_id"`  // Unique device identifier from the client.
	Platform  DevicePlatform `json:"platform"`   // Device platform (ios, android).
	IsActive  bool           `json:"is_active"`  // Indicates if this device is active for notifications.
	CreatedAt time.Time      `json:"created_at"` // Timestamp of when this device was registered.
	UpdatedAt time.Time      `json:"updated_at"` // Timestamp of the last modification.
}

// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationStatus enumerates the delivery states of a reminder.
// PENDING is the only non-terminal state.
type NotificationStatus string

const (
	NotificationPending   NotificationStatus = "PENDING"
	NotificationSent      NotificationStatus = "SENT"
	NotificationFailed    NotificationStatus = "FAILED"
	NotificationCancelled NotificationStatus = "CANCELLED"
)

// Notification represents a scheduled reminder for a single user.
// Expiry reminders reference the item they were derived from; broadcast
// notifications carry no item and tag the broadcast ID in FCMMessageID.
type Notification struct {
	ID           uuid.UUID          `json:"id"`             // The Global Unique Identifier (GUID) for the notification.
	UserID       uuid.UUID          `json:"user_id"`        // The ID of the user this notification targets.
	ItemID       *uuid.UUID         `json:"item_id"`        // The item this reminder belongs to, nil for broadcasts.
	ItemType     ItemType           `json:"item_type"`      // Variant of the referenced item, empty for broadcasts.
	OffsetDays   int                `json:"offset_days"`    // Days before expiry this reminder fires at.
	Title        string             `json:"title"`          // Push notification title.
	Body         string             `json:"body"`           // Push notification body.
	ScheduledFor time.Time          `json:"scheduled_for"`  // When the reminder is due to fire.
	Status       NotificationStatus `json:"status"`         // Delivery state (PENDING, SENT, FAILED, CANCELLED).
	ErrorMessage string             `json:"error_message"`  // Failure reason when Status is FAILED.
	SentAt       *time.Time         `json:"sent_at"`        // When delivery succeeded, nil otherwise.
	FCMMessageID string             `json:"fcm_message_id"` // FCM message ID, or the broadcast ID for broadcast entries.
	CreatedAt    time.Time          `json:"created_at"`     // Timestamp of when this record was created.
	UpdatedAt    time.Time          `json:"updated_at"`     // Timestamp of the last modification.
}

// IsTerminal reports whether the notification can no longer change state.
func (n *Notification) IsTerminal() bool {
	return n.Status != NotificationPending
}

// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// DefaultReminderIntervals is applied when a user has not customized
// their reminder offsets.
var DefaultReminderIntervals = []int{30, 15, 7, 1}

// NotificationPreference holds a user's reminder settings. A record is
// created lazily with defaults the first time preferences are read.
type NotificationPreference struct {
	ID                uuid.UUID `json:"id"`                  // The Global Unique Identifier (GUID) for the preference record.
	UserID            uuid.UUID `json:"user_id"`             // The ID of the user these preferences belong to.
	Enabled           bool      `json:"enabled"`             // Master switch for all reminders.
	FoodEnabled       bool      `json:"food_enabled"`        // Switch for food expiry reminders.
	DocumentEnabled   bool      `json:"document_enabled"`    // Switch for document expiry reminders.
	Intervals         []int     `json:"intervals"`           // Reminder offsets in days before expiry.
	QuietHoursEnabled bool      `json:"quiet_hours_enabled"` // Whether quiet hours apply.
	QuietHoursStart   string    `json:"quiet_hours_start"`   // Quiet hours start, HH:MM, empty when unset.
	QuietHoursEnd     string    `json:"quiet_hours_end"`     // Quiet hours end, HH:MM, empty when unset.
	PreferredTime     string    `json:"preferred_time"`      // Preferred delivery time, HH:MM, empty when unset.
	CreatedAt         time.Time `json:"created_at"`          // Timestamp of when this record was created.
	UpdatedAt         time.Time `json:"updated_at"`          // Timestamp of the last modification.
}

// NewDefaultPreference builds the preference record created on first access.
func NewDefaultPreference(userID uuid.UUID) *NotificationPreference {
	return &NotificationPreference{
		UserID:          userID,
		Enabled:         true,
		FoodEnabled:     true,
		DocumentEnabled: true,
		Intervals:       slices.Clone(DefaultReminderIntervals),
	}
}

// AllowsType reports whether reminders for the given item type are enabled.
func (p *NotificationPreference) AllowsType(itemType ItemType) bool {
	if !p.Enabled {
		return false
	}
	switch itemType {
	case ItemTypeFood:
		return p.FoodEnabled
	case ItemTypeDocument:
		return p.DocumentEnabled
	default:
		return false
	}
}

// EffectiveIntervals returns the configured offsets. Only a record that
// never had intervals set falls back to the defaults; an explicitly
// cleared list stays empty, which silences reminders without touching
// the master switch.
func (p *NotificationPreference) EffectiveIntervals() []int {
	if p.Intervals == nil {
		return slices.Clone(DefaultReminderIntervals)
	}

	return p.Intervals
}

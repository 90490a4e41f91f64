package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel mirrors the 'notifications' table. It stores both
// scheduled expiry reminders (ItemID set) and broadcast notifications
// (ItemID nil, FCMMessageID carries the broadcast ID until delivery).
type NotificationModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	ItemID       *uuid.UUID `gorm:"type:uuid;index:idx_notifications_item_offset,priority:1"`
	ItemType     string     `gorm:"type:varchar(20)"`
	OffsetDays   int        `gorm:"not null;default:0;index:idx_notifications_item_offset,priority:2"`
	Title        string     `gorm:"type:varchar(255);not null"`
	Body         string     `gorm:"type:text;not null"`
	ScheduledFor time.Time  `gorm:"not null;index"`
	Status       string     `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	ErrorMessage string     `gorm:"type:text"`
	SentAt       *time.Time
	FCMMessageID string `gorm:"type:varchar(255)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}

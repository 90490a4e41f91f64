package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationPreferenceModel mirrors the 'notification_preferences' table.
// Intervals is stored as a JSONB array of day offsets.
type NotificationPreferenceModel struct {
	ID                uuid.UUID                `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID            uuid.UUID                `gorm:"type:uuid;not null;uniqueIndex"`
	Enabled           bool                     `gorm:"not null;default:true"`
	FoodEnabled       bool                     `gorm:"not null;default:true"`
	DocumentEnabled   bool                     `gorm:"not null;default:true"`
	Intervals         datatypes.JSONSlice[int] `gorm:"type:jsonb"`
	QuietHoursEnabled bool                     `gorm:"not null;default:false"`
	QuietHoursStart   string                   `gorm:"type:varchar(5)"`
	QuietHoursEnd     string                   `gorm:"type:varchar(5)"`
	PreferredTime     string                   `gorm:"type:varchar(5)"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationPreferenceModel) TableName() string {
	return "notification_preferences"
}

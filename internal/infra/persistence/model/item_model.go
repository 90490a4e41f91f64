package model

import (
	"time"

	"github.com/google/uuid"
)

// ItemModel mirrors the 'items' table. Both item variants share the
// table; variant-specific columns are nullable and interpreted by Type.
type ItemModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index:idx_items_user_expiry,priority:1"`
	Type       string    `gorm:"type:varchar(20);not null;index"`
	Name       string    `gorm:"type:varchar(255);not null"`
	ExpiryDate time.Time `gorm:"type:date;not null;index:idx_items_user_expiry,priority:2"`
	Notes      string    `gorm:"type:text"`
	PhotoURL   string    `gorm:"type:varchar(512)"`

	// Food columns
	Category    string `gorm:"type:varchar(50)"`
	StorageType string `gorm:"type:varchar(50)"`
	Quantity    string `gorm:"type:varchar(50)"`

	// Document columns
	DocumentType   string `gorm:"type:varchar(50)"`
	CustomType     string `gorm:"type:varchar(100)"`
	DocumentNumber string `gorm:"type:varchar(100)"`
	IssuedDate     *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ItemModel) TableName() string {
	return "items"
}

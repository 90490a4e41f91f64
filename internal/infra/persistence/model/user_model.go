package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email               string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash        string    `gorm:"type:varchar(255);not null"`
	FirstName           string    `gorm:"type:varchar(100)"`
	LastName            string    `gorm:"type:varchar(100)"`
	IsActive            bool      `gorm:"not null;default:true"`
	IsAdmin             bool      `gorm:"not null;default:false"`
	LastLoginAt         *time.Time
	PasswordResetToken  *string `gorm:"type:varchar(64);index"`
	PasswordResetExpiry *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time

	Subscription *SubscriptionModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// SubscriptionModel mirrors the 'subscriptions' table. UserID references users.id (UUID).
type SubscriptionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Plan      string    `gorm:"type:varchar(20);not null;default:'FREE'"`
	Status    string    `gorm:"type:varchar(20);not null;default:'ACTIVE'"`
	StartDate time.Time `gorm:"not null"`
	EndDate   *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SubscriptionModel) TableName() string {
	return "subscriptions"
}

// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionPlan enumerates the billing plans a user can be on.
type SubscriptionPlan string

const (
	PlanFree    SubscriptionPlan = "FREE"
	PlanPremium SubscriptionPlan = "PREMIUM"
)

// SubscriptionStatus enumerates the lifecycle states of a subscription.
type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "ACTIVE"
	SubscriptionCancelled SubscriptionStatus = "CANCELLED"
	SubscriptionExpired   SubscriptionStatus = "EXPIRED"
)

// User is the core entity in the system, representing a unique account.
type User struct {
	ID                  uuid.UUID     // The Global Unique Identifier (GUID) for the user.
	Email               string        // The user's primary contact email, used as the login identifier.
	PasswordHash        string        // Bcrypt hash of the user's password. Never leaves the backend.
	FirstName           string        // The user's given name.
	LastName            string        // The user's family name.
	IsActive            bool          // Deactivated accounts cannot log in and receive no reminders.
	IsAdmin             bool          // Grants access to the admin surface.
	LastLoginAt         *time.Time    // Timestamp of the most recent successful login, nil if never.
	PasswordResetToken  *string       // Pending password reset token, nil when none is outstanding.
	PasswordResetExpiry *time.Time    // Expiry of the pending reset token.
	Subscription        *Subscription // The user's billing subscription. Nil until loaded.
	CreatedAt           time.Time     // Timestamp of when this user account was created.
	UpdatedAt           time.Time     // Timestamp of the last modification to this user's data.
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}

	return u.FirstName + " " + u.LastName
}

// IsPremium reports whether the user is on an active premium plan.
func (u *User) IsPremium() bool {
	return u.Subscription != nil &&
		u.Subscription.Plan == PlanPremium &&
		u.Subscription.Status == SubscriptionActive
}

// Subscription represents a user's billing subscription.
type Subscription struct {
	ID        uuid.UUID          `json:"id"`         // The Global Unique Identifier (GUID) for the subscription.
	UserID    uuid.UUID          `json:"user_id"`    // The ID of the user who owns this subscription.
	Plan      SubscriptionPlan   `json:"plan"`       // The billing plan (FREE, PREMIUM).
	Status    SubscriptionStatus `json:"status"`     // The lifecycle status (ACTIVE, CANCELLED, EXPIRED).
	StartDate time.Time          `json:"start_date"` // When the subscription started.
	EndDate   *time.Time         `json:"end_date"`   // When the subscription ends, nil for open-ended plans.
	CreatedAt time.Time          `json:"created_at"` // Timestamp of when this record was created.
	UpdatedAt time.Time          `json:"updated_at"` // Timestamp of the last modification.
}

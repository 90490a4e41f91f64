// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"expitrack/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when creating a user with an email that is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserListFilter narrows the admin user listing. Cursor is the ID of the
// last user on the previous page; pagination is keyset-based.
type UserListFilter struct {
	Cursor   *uuid.UUID
	Limit    int
	IsActive *bool
	Plan     *entity.SubscriptionPlan
	Search   string
}

// UserStats aggregates user counts for the admin dashboard.
type UserStats struct {
	Total        int64
	Active       int64
	Premium      int64
	NewThisWeek  int64
	NewThisMonth int64
}

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user with their subscription by unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user with their subscription by email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByResetToken retrieves the user holding the given password reset token.
	FindByResetToken(ctx context.Context, token string) (*entity.User, error)

	// Create persists a new user entity, including its subscription association.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// UpdateLastLogin stamps the user's last successful login time.
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error

	// List returns a page of users for the admin surface, newest first,
	// along with the total count matching the filter.
	List(ctx context.Context, filter UserListFilter) ([]*entity.User, int64, error)

	// Stats aggregates user counts for the admin dashboard.
	Stats(ctx context.Context, now time.Time) (*UserStats, error)

	// FindActiveUserIDs returns the IDs of all active users.
	FindActiveUserIDs(ctx context.Context) ([]uuid.UUID, error)

	// FindUserIDsByPlan returns the IDs of active users on the given plan.
	FindUserIDsByPlan(ctx context.Context, plan entity.SubscriptionPlan) ([]uuid.UUID, error)

	// FindInactiveUserIDs returns the IDs of users who have not logged in
	// since the given time.
	FindInactiveUserIDs(ctx context.Context, lastLoginBefore time.Time) ([]uuid.UUID, error)
}

// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"expitrack/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrItemNotFound is returned when an item is not found.
var ErrItemNotFound = errors.New("item not found")

// ItemListFilter narrows and paginates an item listing. Page is 1-based.
type ItemListFilter struct {
	Type           *entity.ItemType
	Category       string
	Search         string
	ExpiringBefore *time.Time
	ExpiringAfter  *time.Time
	Page           int
	Limit          int
	SortBy         string
	SortOrder      string
}

// ItemStats aggregates a user's item counts by status and type.
type ItemStats struct {
	Total        int64
	Food         int64
	Documents    int64
	ExpiringSoon int64
	Expired      int64
}

// ItemRepository defines the interface for item-related database operations.
type ItemRepository interface {
	// Create persists a new item.
	Create(ctx context.Context, item *entity.Item) error

	// FindByID retrieves an item by its unique ID regardless of owner.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Item, error)

	// FindByIDAndUser retrieves an item by ID scoped to its owner.
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Item, error)

	// Update modifies an existing item.
	Update(ctx context.Context, item *entity.Item) error

	// Delete removes an item by ID scoped to its owner.
	Delete(ctx context.Context, id, userID uuid.UUID) error

	// List returns a page of the user's items plus the total count
	// matching the filter.
	List(ctx context.Context, userID uuid.UUID, filter ItemListFilter) ([]*entity.Item, int64, error)

	// FindExpiringBetween retrieves the user's items whose expiry date
	// falls in [from, to), ordered by expiry date ascending.
	FindExpiringBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.Item, error)

	// FindWithFutureExpiry retrieves the user's items that have not yet expired.
	FindWithFutureExpiry(ctx context.Context, userID uuid.UUID, now time.Time) ([]*entity.Item, error)

	// Stats aggregates the user's item counts for the stats endpoint.
	Stats(ctx context.Context, userID uuid.UUID, now time.Time) (*ItemStats, error)

	// CountAll returns the total number of items across all users, plus
	// how many were created since the given time.
	CountAll(ctx context.Context, createdSince time.Time) (total, recent int64, err error)
}

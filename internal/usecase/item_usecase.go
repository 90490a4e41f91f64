package usecase

import (
	"context"
	"io"
	"time"

	"expitrack/internal/domain/entity"
	"expitrack/internal/domain/repository"

	"github.com/google/uuid"
)

// CreateFoodItemInput carries the fields for creating a food item.
type CreateFoodItemInput struct {
	Name        string    `json:"name"`
	ExpiryDate  time.Time `json:"expiry_date"`
	Category    string    `json:"category"`
	StorageType string    `json:"storage_type"`
	Quantity    string    `json:"quantity"`
	Notes       string    `json:"notes"`
}

// CreateDocumentItemInput carries the fields for creating a document item.
type CreateDocumentItemInput struct {
	Name           string     `json:"name"`
	ExpiryDate     time.Time  `json:"expiry_date"`
	DocumentType   string     `json:"document_type"`
	CustomType     string     `json:"custom_type"`
	DocumentNumber string     `json:"document_number"`
	IssuedDate     *time.Time `json:"issued_date"`
	Notes          string     `json:"notes"`
}

// UpdateFoodItemInput carries partial updates for a food item.
// Nil fields are left unchanged.
type UpdateFoodItemInput struct {
	Name        *string    `json:"name"`
	ExpiryDate  *time.Time `json:"expiry_date"`
	Category    *string    `json:"category"`
	StorageType *string    `json:"storage_type"`
	Quantity    *string    `json:"quantity"`
	Notes       *string    `json:"notes"`
}

// UpdateDocumentItemInput carries partial updates for a document item.
// Nil fields are left unchanged.
type UpdateDocumentItemInput struct {
	Name           *string    `json:"name"`
	ExpiryDate     *time.Time `json:"expiry_date"`
	DocumentType   *string    `json:"document_type"`
	CustomType     *string    `json:"custom_type"`
	DocumentNumber *string    `json:"document_number"`
	IssuedDate     *time.Time `json:"issued_date"`
	Notes          *string    `json:"notes"`
}

// PhotoUpload carries an uploaded photo stream with its metadata.
type PhotoUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// ItemUsecase defines the interface for item management use cases.
type ItemUsecase interface {
	// CreateFoodItem creates a food item and schedules its reminders.
	CreateFoodItem(ctx context.Context, userID uuid.UUID, input *CreateFoodItemInput) (*entity.Item, error)

	// CreateDocumentItem creates a document item and schedules its reminders.
	CreateDocumentItem(ctx context.Context, userID uuid.UUID, input *CreateDocumentItemInput) (*entity.Item, error)

	// ListItems returns a filtered, paginated page of the user's items
	// plus the total count.
	ListItems(ctx context.Context, userID uuid.UUID, filter repository.ItemListFilter) ([]*entity.Item, int64, error)

	// GetExpiringItems returns items expiring within the given number of days.
	GetExpiringItems(ctx context.Context, userID uuid.UUID, days int) ([]*entity.Item, error)

	// GetItemStats aggregates the user's item counts.
	GetItemStats(ctx context.Context, userID uuid.UUID) (*repository.ItemStats, error)

	// GetItem retrieves one of the user's items, checking the variant matches.
	GetItem(ctx context.Context, userID uuid.UUID, itemType entity.ItemType, id uuid.UUID) (*entity.Item, error)

	// UpdateFoodItem applies a partial update; an expiry change reschedules reminders.
	UpdateFoodItem(ctx context.Context, userID, id uuid.UUID, input *UpdateFoodItemInput) (*entity.Item, error)

	// UpdateDocumentItem applies a partial update; an expiry change reschedules reminders.
	UpdateDocumentItem(ctx context.Context, userID, id uuid.UUID, input *UpdateDocumentItemInput) (*entity.Item, error)

	// DeleteItem removes an item, cancels its reminders and deletes its photo.
	DeleteItem(ctx context.Context, userID uuid.UUID, itemType entity.ItemType, id uuid.UUID) error

	// UploadPhoto validates and stores an item photo, replacing any previous one.
	UploadPhoto(ctx context.Context, userID uuid.UUID, itemType entity.ItemType, id uuid.UUID, upload *PhotoUpload) (*entity.Item, error)

	// DeletePhoto removes an item's photo.
	DeletePhoto(ctx context.Context, userID uuid.UUID, itemType entity.ItemType, id uuid.UUID) error
}

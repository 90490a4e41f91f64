package impl

import (
	"context"
	"log/slog"
	"time"

	"expitrack/internal/domain/entity"
	domainerrors "expitrack/internal/domain/errors"
	"expitrack/internal/domain/repository"
	"expitrack/internal/domain/service"
	"expitrack/internal/errors"
	"expitrack/internal/usecase"

	"github.com/google/uuid"
)

// maxPhotoSize caps uploaded item photos at 5 MB.
const maxPhotoSize = 5 << 20

// photoExtensions maps the accepted photo content types to storage key
// extensions. Anything else is rejected.
var photoExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

type itemService struct {
	logger        *slog.Logger
	itemRepo      repository.ItemRepository
	expiryUsecase usecase.ExpiryUsecase
	storage       service.ImageStorage
}

// NewItemService creates a new item management service instance.
func NewItemService(
	logger *slog.Logger,
	itemRepo repository.ItemRepository,
	expiryUsecase usecase.ExpiryUsecase,
	storage service.ImageStorage,
) usecase.ItemUsecase {
	return &itemService{
		logger:        logger,
		itemRepo:      itemRepo,
		expiryUsecase: expiryUsecase,
		storage:       storage,
	}
}

// CreateFoodItem creates a food item and schedules its reminders.
func (s *itemService) CreateFoodItem(ctx context.Context, userID uuid.UUID, input *usecase.CreateFoodItemInput) (*entity.Item, error) {
	item := &entity.Item{
		UserID:      userID,
		Type:        entity.ItemTypeFood,
		Name:        input.Name,
		ExpiryDate:  input.ExpiryDate,
		Notes:       input.Notes,
		Category:    input.Category,
		StorageType: input.StorageType,
		Quantity:    input.Quantity,
	}

	return s.createItem(ctx, item)
}

// CreateDocumentItem creates a document item and schedules its reminders.
func (s *itemService) CreateDocumentItem(ctx context.Context, userID uuid.UUID, input *usecase.CreateDocumentItemInput) (*entity.Item, error) {
	item := &entity.Item{
		UserID:         userID,
		Type:           entity.ItemTypeDocument,
		Name:           input.Name,
		ExpiryDate:     input.ExpiryDate,
		Notes:          input.Notes,
		DocumentType:   input.DocumentType,
		CustomType:     input.CustomType,
		DocumentNumber: input.DocumentNumber,
		IssuedDate:     input.IssuedDate,
	}

	return s.createItem(ctx, item)
}

func (s *itemService) createItem(ctx context.Context, item *entity.Item) (*entity.Item, error) {
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to create item")
	}

	// Reminder scheduling failures never roll back the item write.
	if err := s.expiryUsecase.ScheduleForItem(ctx, item); err != nil {
		s.logger.WarnContext(ctx, "failed to schedule reminders for new item",
			slog.String("itemId", item.ID.String()),
			slog.String("error", err.Error()),
		)
	}

	return item, nil
}

// ListItems returns a filtered, paginated page of the user's items.
func (s *itemService) ListItems(ctx context.Context, userID uuid.UUID, filter repository.ItemListFilter) ([]*entity.Item, int64, error) {
	items, total, err := s.itemRepo.List(ctx, userID, filter)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list items")
	}

	return items, total, nil
}

// GetExpiringItems returns items expiring within the given number of days,
// today included.
func (s *itemService) GetExpiringItems(ctx context.Context, userID uuid.UUID, days int) ([]*entity.Item, error) {
	if days < 0 {
		days = 0
	}

	now := time.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 0, days+1)

	items, err := s.itemRepo.FindExpiringBetween(ctx, userID, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find expiring items")
	}

	return items, nil
}

// GetItemStats aggregates the user's item counts.
func (s *itemService) GetItemStats(ctx context.Context, userID uuid.UUID) (*repository.ItemStats, error) {
	stats, err := s.itemRepo.Stats(ctx, userID, time.Now())
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate item stats")
	}

	return stats, nil
}

// GetItem retrieves one of the user's items, checking the variant matches.
func (s *itemService) GetItem(ctx context.Context, userID uuid.UUID, itemType entity.ItemType, id uuid.UUID) (*entity.Item, error) {
	return s.findOwnedItem(ctx, userID, itemType, id)
}

// UpdateFoodItem applies a partial update; an expiry change reschedules reminders.
func (s *itemService) UpdateFoodItem(ctx context.Context, userID, id uuid.UUID, input *usecase.UpdateFoodItemInput) (*entity.Item, error) {
	item, err := s.findOwnedItem(ctx, userID, entity.ItemTypeFood, id)
	if err != nil {
		return nil, err
	}

	expiryChanged := false
	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.ExpiryDate != nil && !input.ExpiryDate.Equal(item.ExpiryDate) {
		item.ExpiryDate = *input.ExpiryDate
		expiryChanged = true
	}
	if input.Category != nil {
		item.Category = *input.Category
	}
	if input.StorageType != nil {
		item.StorageType = *input.StorageType
	}
	if input.Quantity != nil {
		item.Quantity = *input.Quantity
	}
	if input.Notes != nil {
		item.Notes = *input.Notes
	}

	return s.saveUpdatedItem(ctx, item, expiryChanged)
}

// UpdateDocumentItem applies a partial update; an expiry change reschedules reminders.
func (s *itemService) UpdateDocumentItem(ctx context.Context, userID, id uuid.UUID, input *usecase.UpdateDocumentItemInput) (*entity.Item, error) {
	item, err := s.findOwnedItem(ctx, userID, entity.ItemTypeDocument, id)
	if err != nil {
		return nil, err
	}

	expiryChanged := false
	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.ExpiryDate != nil && !input.ExpiryDate.Equal(item.ExpiryDate) {
		item.ExpiryDate = *input.ExpiryDate
		expiryChanged = true
	}
	if input.DocumentType != nil {
		item.DocumentType = *input.DocumentType
	}
	if input.CustomType != nil {
		item.CustomType = *input.CustomType
	}
	if input.DocumentNumber != nil {
		item.DocumentNumber = *input.DocumentNumber
	}
	if input.IssuedDate != nil {
		item.IssuedDate = input.IssuedDate
	}
	if input.Notes != nil {
		item.Notes = *input.Notes
	}

	return s.saveUpdatedItem(ctx, item, expiryChanged)
}

func (s *itemService) saveUpdatedItem(ctx context.Context, item *entity.Item, expiryChanged bool) (*entity.Item, error) {
	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to update item")
	}

	if expiryChanged {
		if err := s.expiryUsecase.RescheduleForItem(ctx, item); err != nil {
			s.logger.WarnContext(ctx, "failed to reschedule reminders after expiry change",
				slog.String("itemId", item.ID.String()),
				slog.String("error", err.Error()),
			)
		}
	}

	return item, nil
}

// DeleteItem removes an item, cancels its reminders and deletes its photo.
func (s *itemService) DeleteItem(ctx context.Context, userID uuid.UUID, itemType entity.ItemType, id uuid.UUID) error {
	item, err := s.findOwnedItem(ctx, userID, itemType, id)
	if err != nil {
		return err
	}

	if err := s.expiryUsecase.CancelAllForItem(ctx, item.ID); err != nil {
		s.logger.WarnContext(ctx, "failed to cancel reminders for deleted item",
			slog.String("itemId", item.ID.String()),
			slog.String("error", err.Error()),
		)
	}

	if item.PhotoURL != "" {
		if err := s.storage.Delete(ctx, item.PhotoURL); err != nil {
			s.logger.WarnContext(ctx, "failed to delete item photo",
				slog.String("itemId", item.ID.String()),
				slog.String("error", err.Error()),
			)
		}
	}

	if err := s.itemRepo.Delete(ctx, item.ID, userID); err != nil {
		return errors.Wrap(err, "failed to delete item")
	}

	return nil
}

// UploadPhoto validates and stores an item photo, replacing any previous one.
func (s *itemService) UploadPhoto(ctx context.Context, userID uuid.UUID, itemType entity.ItemType, id uuid.UUID, upload *usecase.PhotoUpload) (*entity.Item, error) {
	item, err := s.findOwnedItem(ctx, userID, itemType, id)
	if err != nil {
		return nil, err
	}

	ext, ok := photoExtensions[upload.ContentType]
	if !ok {
		return nil, domainerrors.ErrPhotoInvalidFormat
	}
	if upload.Size > maxPhotoSize {
		return nil, domainerrors.ErrPhotoTooLarge
	}

	oldURL := item.PhotoURL

	key := item.ID.String() + ext
	url, err := s.storage.Upload(ctx, key, upload.ContentType, upload.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to upload photo")
	}

	item.PhotoURL = url
	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to store photo URL")
	}

	if oldURL != "" && oldURL != url {
		if err := s.storage.Delete(ctx, oldURL); err != nil {
			s.logger.WarnContext(ctx, "failed to delete replaced photo",
				slog.String("itemId", item.ID.String()),
				slog.String("error", err.Error()),
			)
		}
	}

	return item, nil
}

// DeletePhoto removes an item's photo.
func (s *itemService) DeletePhoto(ctx context.Context, userID uuid.UUID, itemType entity.ItemType, id uuid.UUID) error {
	item, err := s.findOwnedItem(ctx, userID, itemType, id)
	if err != nil {
		return err
	}

	if item.PhotoURL == "" {
		return domainerrors.ErrPhotoNotFound
	}

	if err := s.storage.Delete(ctx, item.PhotoURL); err != nil {
		return errors.Wrap(err, "failed to delete photo")
	}

	item.PhotoURL = ""
	if err := s.itemRepo.Update(ctx, item); err != nil {
		return errors.Wrap(err, "failed to clear photo URL")
	}

	return nil
}

// findOwnedItem fetches an item scoped to its owner and checks the
// requested variant matches the stored one.
func (s *itemService) findOwnedItem(ctx context.Context, userID uuid.UUID, itemType entity.ItemType, id uuid.UUID) (*entity.Item, error) {
	item, err := s.itemRepo.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, domainerrors.ErrItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find item")
	}

	if item.Type != itemType {
		return nil, domainerrors.ErrItemTypeMismatch
	}

	return item, nil
}

package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"expitrack/internal/domain/entity"
	domainerrors "expitrack/internal/domain/errors"
	"expitrack/internal/domain/repository"
	mockRepo "expitrack/internal/mocks/repository"
	mockSvc "expitrack/internal/mocks/service"
	mockUC "expitrack/internal/mocks/usecase"
	"expitrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// itemServiceFixtures holds all test dependencies for item service tests.
type itemServiceFixtures struct {
	service       usecase.ItemUsecase
	itemRepo      *mockRepo.MockItemRepository
	expiryUsecase *mockUC.MockExpiryUsecase
	storage       *mockSvc.MockImageStorage
}

func createTestItemService(t *testing.T) itemServiceFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	itemRepo := mockRepo.NewMockItemRepository(t)
	expiryUsecase := mockUC.NewMockExpiryUsecase(t)
	storage := mockSvc.NewMockImageStorage(t)

	svc := NewItemService(logger, itemRepo, expiryUsecase, storage)

	return itemServiceFixtures{
		service:       svc,
		itemRepo:      itemRepo,
		expiryUsecase: expiryUsecase,
		storage:       storage,
	}
}

func TestItemService_CreateFoodItem_SchedulesReminders(t *testing.T) {
	fx := createTestItemService(t)

	ctx := context.Background()
	userID := uuid.New()
	expiry := time.Now().AddDate(0, 0, 14)

	fx.itemRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Item")).
		Run(func(ctx context.Context, item *entity.Item) {
			item.ID = uuid.New()
		}).
		Return(nil)
	fx.expiryUsecase.EXPECT().
		ScheduleForItem(ctx, mock.AnythingOfType("*entity.Item")).
		Return(nil)

	item, err := fx.service.CreateFoodItem(ctx, userID, &usecase.CreateFoodItemInput{
		Name:        "Milk",
		ExpiryDate:  expiry,
		Category:    "dairy",
		StorageType: "fridge",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ItemTypeFood, item.Type)
	assert.Equal(t, userID, item.UserID)
	assert.Equal(t, "Milk", item.Name)
	assert.Equal(t, "dairy", item.Category)
}

func TestItemService_CreateDocumentItem_SchedulingFailureDoesNotBlock(t *testing.T) {
	fx := createTestItemService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.itemRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Item")).
		Return(nil)
	fx.expiryUsecase.EXPECT().
		ScheduleForItem(ctx, mock.AnythingOfType("*entity.Item")).
		Return(errors.New("queue unavailable"))

	item, err := fx.service.CreateDocumentItem(ctx, userID, &usecase.CreateDocumentItemInput{
		Name:         "Passport",
		ExpiryDate:   time.Now().AddDate(1, 0, 0),
		DocumentType: "passport",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ItemTypeDocument, item.Type)
}

func TestItemService_GetItem_TypeMismatch(t *testing.T) {
	fx := createTestItemService(t)

	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()

	fx.itemRepo.EXPECT().
		FindByIDAndUser(ctx, itemID, userID).
		Return(&entity.Item{ID: itemID, UserID: userID, Type: entity.ItemTypeDocument}, nil)

	_, err := fx.service.GetItem(ctx, userID, entity.ItemTypeFood, itemID)
	assert.ErrorIs(t, err, domainerrors.ErrItemTypeMismatch)
}

func TestItemService_GetItem_NotFound(t *testing.T) {
	fx := createTestItemService(t)

	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()

	fx.itemRepo.EXPECT().
		FindByIDAndUser(ctx, itemID, userID).
		Return(nil, repository.ErrItemNotFound)

	_, err := fx.service.GetItem(ctx, userID, entity.ItemTypeFood, itemID)
	assert.ErrorIs(t, err, domainerrors.ErrItemNotFound)
}

func TestItemService_UpdateFoodItem_ExpiryChangeReschedules(t *testing.T) {
	fx := createTestItemService(t)

	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()
	oldExpiry := time.Now().AddDate(0, 0, 7)
	newExpiry := time.Now().AddDate(0, 0, 21)

	fx.itemRepo.EXPECT().
		FindByIDAndUser(ctx, itemID, userID).
		Return(&entity.Item{
			ID:         itemID,
			UserID:     userID,
			Type:       entity.ItemTypeFood,
			Name:       "Milk",
			ExpiryDate: oldExpiry,
		}, nil)
	fx.itemRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Item")).
		Return(nil)
	fx.expiryUsecase.EXPECT().
		RescheduleForItem(ctx, mock.AnythingOfType("*entity.Item")).
		Return(nil)

	item, err := fx.service.UpdateFoodItem(ctx, userID, itemID, &usecase.UpdateFoodItemInput{
		ExpiryDate: &newExpiry,
	})
	require.NoError(t, err)
	assert.True(t, item.ExpiryDate.Equal(newExpiry))
}

func TestItemService_UpdateFoodItem_NoExpiryChangeSkipsReschedule(t *testing.T) {
	fx := createTestItemService(t)

	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()
	expiry := time.Now().AddDate(0, 0, 7)
	newName := "Oat milk"

	fx.itemRepo.EXPECT().
		FindByIDAndUser(ctx, itemID, userID).
		Return(&entity.Item{
			ID:         itemID,
			UserID:     userID,
			Type:       entity.ItemTypeFood,
			Name:       "Milk",
			ExpiryDate: expiry,
		}, nil)
	fx.itemRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Item")).
		Return(nil)

	item, err := fx.service.UpdateFoodItem(ctx, userID, itemID, &usecase.UpdateFoodItemInput{
		Name: &newName,
	})
	require.NoError(t, err)
	assert.Equal(t, "Oat milk", item.Name)
}

func TestItemService_UpdateFoodItem_SameExpiryValueSkipsReschedule(t *testing.T) {
	fx := createTestItemService(t)

	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()
	expiry := time.Now().AddDate(0, 0, 7)

	fx.itemRepo.EXPECT().
		FindByIDAndUser(ctx, itemID, userID).
		Return(&entity.Item{
			ID:         itemID,
			UserID:     userID,
			Type:       entity.ItemTypeFood,
			ExpiryDate: expiry,
		}, nil)
	fx.itemRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Item")).
		Return(nil)

	sameExpiry := expiry
	_, err := fx.service.UpdateFoodItem(ctx, userID, itemID, &usecase.UpdateFoodItemInput{
		ExpiryDate: &sameExpiry,
	})
	require.NoError(t, err)
}

func TestItemService_DeleteItem_CancelsRemindersAndPhoto(t *testing.T) {
	fx := createTestItemService(t)

	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()

	fx.itemRepo.EXPECT().
		FindByIDAndUser(ctx, itemID, userID).
		Return(&entity.Item{
			ID:       itemID,
			UserID:   userID,
			Type:     entity.ItemTypeFood,
			PhotoURL: "items/photo.jpg",
		}, nil)
	fx.expiryUsecase.EXPECT().
		CancelAllForItem(ctx, itemID).
		Return(nil)
	fx.storage.EXPECT().
		Delete(ctx, "items/photo.jpg").
		Return(nil)
	fx.itemRepo.EXPECT().
		Delete(ctx, itemID, userID).
		Return(nil)

	err := fx.service.DeleteItem(ctx, userID, entity.ItemTypeFood, itemID)
	require.NoError(t, err)
}

func TestItemService_DeleteItem_PhotoDeleteFailureDoesNotBlock(t *testing.T) {
	fx := createTestItemService(t)

	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()

	fx.itemRepo.EXPECT().
		FindByIDAndUser(ctx, itemID, userID).
		Return(&entity.Item{
			ID:       itemID,
			UserID:   userID,
			Type:     entity.ItemTypeFood,
			PhotoURL: "items/photo.jpg",
		}, nil)
	fx.expiryUsecase.EXPECT().
		CancelAllForItem(ctx, itemID).
		Return(nil)
	fx.storage.EXPECT().
		Delete(ctx, "items/photo.jpg").
		Return(errors.New("bucket unavailable"))
	fx.itemRepo.EXPECT().
		Delete(ctx, itemID, userID).
		Return(nil)

	err := fx.service.DeleteItem(ctx, userID, entity.ItemTypeFood, itemID)
	require.NoError(t, err)
}

func TestItemService_UploadPhoto_Success(t *testing.T) {
	fx := createTestItemService(t)

	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()

	fx.itemRepo.EXPECT().
		FindByIDAndUser(ctx, itemID, userID).
		Return(&entity.Item{ID: itemID, UserID: userID, Type: entity.ItemTypeFood}, nil)
	fx.storage.EXPECT().
		Upload(ctx, itemID.String()+".jpg", "image/jpeg", mock.Anything).
		Return("items/"+itemID.String()+".jpg", nil)
	fx.itemRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Item")).
		Return(nil)

	item, err := fx.service.UploadPhoto(ctx, userID, entity.ItemTypeFood, itemID, &usecase.PhotoUpload{
		Filename:    "photo.jpg",
		ContentType: "image/jpeg",
		Size:        1024,
		Body:        strings.NewReader("fake image bytes"),
	})
	require.NoError(t, err)
	assert.Equal(t, "items/"+itemID.String()+".jpg", item.PhotoURL)
}

func TestItemService_UploadPhoto_ReplacesPreviousPhoto(t *testing.T) {
	fx := createTestItemService(t)

	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()

	fx.itemRepo.EXPECT().
		FindByIDAndUser(ctx, itemID, userID).
		Return(&entity.Item{
			ID:       itemID,
			UserID:   userID,
			Type:     entity.ItemTypeFood,
			PhotoURL: "items/old.png",
		}, nil)
	fx.storage.EXPECT().
		Upload(ctx, itemID.String()+".webp", "image/webp", mock.Anything).
		Return("items/"+itemID.String()+".webp", nil)
	fx.itemRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Item")).
		Return(nil)
	fx.storage.EXPECT().
		Delete(ctx, "items/old.png").
		Return(nil)

	_, err := fx.service.UploadPhoto(ctx, userID, entity.ItemTypeFood, itemID, &usecase.PhotoUpload{
		Filename:    "photo.webp",
		ContentType: "image/webp",
		Size:        2048,
		Body:        strings.NewReader("fake image bytes"),
	})
	require.NoError(t, err)
}

func TestItemService_UploadPhoto_RejectsUnsupportedFormat(t *testing.T) {
	fx := createTestItemService(t)

	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()

	fx.itemRepo.EXPECT().
		FindByIDAndUser(ctx, itemID, userID).
		Return(&entity.Item{ID: itemID, UserID: userID, Type: entity.ItemTypeFood}, nil)

	_, err := fx.service.UploadPhoto(ctx, userID, entity.ItemTypeFood, itemID, &usecase.PhotoUpload{
		Filename:    "photo.gif",
		ContentType: "image/gif",
		Size:        1024,
		Body:        strings.NewReader("fake image bytes"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrPhotoInvalidFormat)
}

func TestItemService_UploadPhoto_RejectsOversizedFile(t *testing.T) {
	fx := createTestItemService(t)

	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()

	fx.itemRepo.EXPECT().
		FindByIDAndUser(ctx, itemID, userID).
		Return(&entity.Item{ID: itemID, UserID: userID, Type: entity.ItemTypeFood}, nil)

	_, err := fx.service.UploadPhoto(ctx, userID, entity.ItemTypeFood, itemID, &usecase.PhotoUpload{
		Filename:    "photo.jpg",
		ContentType: "image/jpeg",
		Size:        maxPhotoSize + 1,
		Body:        strings.NewReader("fake image bytes"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrPhotoTooLarge)
}

func TestItemService_DeletePhoto_NoPhoto(t *testing.T) {
	fx := createTestItemService(t)

	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()

	fx.itemRepo.EXPECT().
		FindByIDAndUser(ctx, itemID, userID).
		Return(&entity.Item{ID: itemID, UserID: userID, Type: entity.ItemTypeFood}, nil)

	err := fx.service.DeletePhoto(ctx, userID, entity.ItemTypeFood, itemID)
	assert.ErrorIs(t, err, domainerrors.ErrPhotoNotFound)
}

func TestItemService_DeletePhoto_Success(t *testing.T) {
	fx := createTestItemService(t)

	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()

	fx.itemRepo.EXPECT().
		FindByIDAndUser(ctx, itemID, userID).
		Return(&entity.Item{
			ID:       itemID,
			UserID:   userID,
			Type:     entity.ItemTypeFood,
			PhotoURL: "items/photo.jpg",
		}, nil)
	fx.storage.EXPECT().
		Delete(ctx, "items/photo.jpg").
		Return(nil)

	var savedItem *entity.Item
	fx.itemRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Item")).
		Run(func(ctx context.Context, item *entity.Item) {
			savedItem = item
		}).
		Return(nil)

	err := fx.service.DeletePhoto(ctx, userID, entity.ItemTypeFood, itemID)
	require.NoError(t, err)
	assert.Empty(t, savedItem.PhotoURL)
}

func TestItemService_GetExpiringItems_ClampsNegativeDays(t *testing.T) {
	fx := createTestItemService(t)

	ctx := context.Background()
	userID := uuid.New()

	var from, to time.Time
	fx.itemRepo.EXPECT().
		FindExpiringBetween(ctx, userID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Run(func(ctx context.Context, userID uuid.UUID, gotFrom, gotTo time.Time) {
			from = gotFrom
			to = gotTo
		}).
		Return([]*entity.Item{}, nil)

	_, err := fx.service.GetExpiringItems(ctx, userID, -5)
	require.NoError(t, err)
	// Negative windows collapse to today only.
	assert.Equal(t, 24*time.Hour, to.Sub(from))
}

func TestItemService_ListItems_Passthrough(t *testing.T) {
	fx := createTestItemService(t)

	ctx := context.Background()
	userID := uuid.New()
	filter := repository.ItemListFilter{Page: 1, Limit: 10}

	expected := []*entity.Item{{ID: uuid.New(), UserID: userID}}
	fx.itemRepo.EXPECT().
		List(ctx, userID, filter).
		Return(expected, int64(1), nil)

	items, total, err := fx.service.ListItems(ctx, userID, filter)
	require.NoError(t, err)
	assert.Equal(t, expected, items)
	assert.Equal(t, int64(1), total)
}

// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"expitrack/internal/domain/entity"
	domainerrors "expitrack/internal/domain/errors"
	"expitrack/internal/domain/repository"
	"expitrack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const defaultItemPageSize = 20

// sortableItemColumns whitelists the columns exposed for client sorting.
var sortableItemColumns = map[string]string{
	"expiryDate": "expiry_date",
	"name":       "name",
	"createdAt":  "created_at",
}

// itemRepository implements the repository.ItemRepository interface.
type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository is the constructor for itemRepository.
func NewItemRepository(db *gorm.DB) repository.ItemRepository {
	return &itemRepository{
		db: db,
	}
}

// Create persists a new item.
func (repo *itemRepository) Create(ctx context.Context, item *entity.Item) error {
	itemM := fromItemDomain(item)

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required item information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create item")
	}

	// Update the entity with generated values
	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// FindByID retrieves an item by its unique ID regardless of owner.
func (repo *itemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	var itemM model.ItemModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find item by ID")
	}

	return toItemDomain(&itemM), nil
}

// FindByIDAndUser retrieves an item by ID scoped to its owner.
func (repo *itemRepository) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Item, error) {
	var itemM model.ItemModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find item by ID and user")
	}

	return toItemDomain(&itemM), nil
}

// Update modifies an existing item.
func (repo *itemRepository) Update(ctx context.Context, item *entity.Item) error {
	itemM := fromItemDomain(item)

	result := repo.db.WithContext(ctx).
		Model(&model.ItemModel{}).
		Where("id = ? AND user_id = ?", item.ID, item.UserID).
		Select("Name", "ExpiryDate", "Notes", "PhotoURL",
			"Category", "StorageType", "Quantity",
			"DocumentType", "CustomType", "DocumentNumber", "IssuedDate").
		Updates(itemM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update item")
	}

	if result.RowsAffected == 0 {
		return repository.ErrItemNotFound
	}

	return nil
}

// Delete removes an item by ID scoped to its owner.
func (repo *itemRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.ItemModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete item")
	}

	if result.RowsAffected == 0 {
		return repository.ErrItemNotFound
	}

	return nil
}

// List returns a page of the user's items plus the total count matching the filter.
func (repo *itemRepository) List(ctx context.Context, userID uuid.UUID, filter repository.ItemListFilter) ([]*entity.Item, int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.ItemModel{}).
		Where("user_id = ?", userID)

	if filter.Type != nil {
		query = query.Where("type = ?", string(*filter.Type))
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR notes ILIKE ?", pattern, pattern)
	}
	if filter.ExpiringBefore != nil {
		query = query.Where("expiry_date <= ?", *filter.ExpiringBefore)
	}
	if filter.ExpiringAfter != nil {
		query = query.Where("expiry_date >= ?", *filter.ExpiringAfter)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count items")
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultItemPageSize
	}

	column, ok := sortableItemColumns[filter.SortBy]
	if !ok {
		column = "expiry_date"
	}
	direction := "ASC"
	if filter.SortOrder == "desc" {
		direction = "DESC"
	}

	var itemModels []*model.ItemModel
	if err := query.
		Order(column + " " + direction).
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&itemModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list items")
	}

	items := make([]*entity.Item, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toItemDomain(itemM))
	}

	return items, total, nil
}

// FindExpiringBetween retrieves the user's items whose expiry date falls
// in [from, to), ordered by expiry date ascending.
func (repo *itemRepository) FindExpiringBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.Item, error) {
	var itemModels []*model.ItemModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND expiry_date >= ? AND expiry_date < ?", userID, from, to).
		Order("expiry_date ASC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find expiring items")
	}

	items := make([]*entity.Item, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toItemDomain(itemM))
	}

	return items, nil
}

// FindWithFutureExpiry retrieves the user's items that have not yet expired.
func (repo *itemRepository) FindWithFutureExpiry(ctx context.Context, userID uuid.UUID, now time.Time) ([]*entity.Item, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var itemModels []*model.ItemModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND expiry_date >= ?", userID, today).
		Order("expiry_date ASC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find items with future expiry")
	}

	items := make([]*entity.Item, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toItemDomain(itemM))
	}

	return items, nil
}

// Stats aggregates the user's item counts for the stats endpoint.
func (repo *itemRepository) Stats(ctx context.Context, userID uuid.UUID, now time.Time) (*repository.ItemStats, error) {
	stats := &repository.ItemStats{}
	base := func() *gorm.DB {
		return repo.db.WithContext(ctx).Model(&model.ItemModel{}).Where("user_id = ?", userID)
	}

	if err := base().Count(&stats.Total).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count items")
	}
	if err := base().Where("type = ?", string(entity.ItemTypeFood)).Count(&stats.Food).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count food items")
	}
	if err := base().Where("type = ?", string(entity.ItemTypeDocument)).Count(&stats.Documents).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count document items")
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	soonEnd := today.AddDate(0, 0, 8)

	if err := base().Where("expiry_date >= ? AND expiry_date < ?", today, soonEnd).
		Count(&stats.ExpiringSoon).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count expiring items")
	}
	if err := base().Where("expiry_date < ?", today).Count(&stats.Expired).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count expired items")
	}

	return stats, nil
}

// CountAll returns the total number of items across all users, plus how
// many were created since the given time.
func (repo *itemRepository) CountAll(ctx context.Context, createdSince time.Time) (int64, int64, error) {
	var total, recent int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ItemModel{}).
		Count(&total).Error; err != nil {
		return 0, 0, errors.Wrap(err, "failed to count all items")
	}
	if err := repo.db.WithContext(ctx).
		Model(&model.ItemModel{}).
		Where("created_at >= ?", createdSince).
		Count(&recent).Error; err != nil {
		return 0, 0, errors.Wrap(err, "failed to count recent items")
	}

	return total, recent, nil
}

// --- Mapper Functions ---

// toItemDomain converts a GORM ItemModel to a domain Item entity.
func toItemDomain(data *model.ItemModel) *entity.Item {
	if data == nil {
		return nil
	}

	return &entity.Item{
		ID:             data.ID,
		UserID:         data.UserID,
		Type:           entity.ItemType(data.Type),
		Name:           data.Name,
		ExpiryDate:     data.ExpiryDate,
		Notes:          data.Notes,
		PhotoURL:       data.PhotoURL,
		Category:       data.Category,
		StorageType:    data.StorageType,
		Quantity:       data.Quantity,
		DocumentType:   data.DocumentType,
		CustomType:     data.CustomType,
		DocumentNumber: data.DocumentNumber,
		IssuedDate:     data.IssuedDate,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromItemDomain converts a domain Item entity to a GORM ItemModel.
func fromItemDomain(data *entity.Item) *model.ItemModel {
	if data == nil {
		return nil
	}

	return &model.ItemModel{
		ID:             data.ID,
		UserID:         data.UserID,
		Type:           string(data.Type),
		Name:           data.Name,
		ExpiryDate:     data.ExpiryDate,
		Notes:          data.Notes,
		PhotoURL:       data.PhotoURL,
		Category:       data.Category,
		StorageType:    data.StorageType,
		Quantity:       data.Quantity,
		DocumentType:   data.DocumentType,
		CustomType:     data.CustomType,
		DocumentNumber: data.DocumentNumber,
		IssuedDate:     data.IssuedDate,
	}
}

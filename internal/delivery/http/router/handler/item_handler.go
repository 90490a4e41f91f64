package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"expitrack/internal/delivery/http/middleware"
	"expitrack/internal/delivery/http/response"
	"expitrack/internal/domain/entity"
	"expitrack/internal/domain/repository"
	"expitrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ItemHandler holds dependencies for item-related handlers.
type ItemHandler struct {
	uc     usecase.ItemUsecase
	logger *slog.Logger
}

// NewItemHandler is the constructor for ItemHandler, injected by Fx.
func NewItemHandler(uc usecase.ItemUsecase, logger *slog.Logger) *ItemHandler {
	return &ItemHandler{
		uc:     uc,
		logger: logger,
	}
}

type createFoodItemRequest struct {
	Name        string    `json:"name" validate:"required"`
	ExpiryDate  time.Time `json:"expiry_date" validate:"required"`
	Category    string    `json:"category"`
	StorageType string    `json:"storage_type"`
	Quantity    string    `json:"quantity"`
	Notes       string    `json:"notes"`
}

// CreateFoodItem handles the food item creation request.
func (h *ItemHandler) CreateFoodItem(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req createFoodItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid food item input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	item, err := h.uc.CreateFoodItem(c.Request().Context(), userID, &usecase.CreateFoodItemInput{
		Name:        req.Name,
		ExpiryDate:  req.ExpiryDate,
		Category:    req.Category,
		StorageType: req.StorageType,
		Quantity:    req.Quantity,
		Notes:       req.Notes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, item, "Food item created successfully")
}

type createDocumentItemRequest struct {
	Name           string     `json:"name" validate:"required"`
	ExpiryDate     time.Time  `json:"expiry_date" validate:"required"`
	DocumentType   string     `json:"document_type"`
	CustomType     string     `json:"custom_type"`
	DocumentNumber string     `json:"document_number"`
	IssuedDate     *time.Time `json:"issued_date"`
	Notes          string     `json:"notes"`
}

// CreateDocumentItem handles the document item creation request.
func (h *ItemHandler) CreateDocumentItem(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req createDocumentItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid document item input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	item, err := h.uc.CreateDocumentItem(c.Request().Context(), userID, &usecase.CreateDocumentItemInput{
		Name:           req.Name,
		ExpiryDate:     req.ExpiryDate,
		DocumentType:   req.DocumentType,
		CustomType:     req.CustomType,
		DocumentNumber: req.DocumentNumber,
		IssuedDate:     req.IssuedDate,
		Notes:          req.Notes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, item, "Document item created successfully")
}

type itemListResponse struct {
	Items []*entity.Item `json:"items"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

// ListItems handles the item listing request with filters and pagination.
func (h *ItemHandler) ListItems(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	filter, err := parseItemListFilter(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	items, total, err := h.uc.ListItems(c.Request().Context(), userID, filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, itemListResponse{
		Items: items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, "Items retrieved successfully")
}

// GetExpiringItems handles the expiring items request.
func (h *ItemHandler) GetExpiringItems(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	days := 7
	if raw := c.QueryParam("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "days must be an integer")
		}
		days = parsed
	}

	items, err := h.uc.GetExpiringItems(c.Request().Context(), userID, days)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "Expiring items retrieved successfully")
}

// GetItemStats handles the item statistics request.
func (h *ItemHandler) GetItemStats(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	stats, err := h.uc.GetItemStats(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "Item stats retrieved successfully")
}

// GetFoodItem handles the single food item request.
func (h *ItemHandler) GetFoodItem(c echo.Context) error {
	return h.getItem(c, entity.ItemTypeFood)
}

// GetDocumentItem handles the single document item request.
func (h *ItemHandler) GetDocumentItem(c echo.Context) error {
	return h.getItem(c, entity.ItemTypeDocument)
}

func (h *ItemHandler) getItem(c echo.Context, itemType entity.ItemType) error {
	userID, itemID, err := itemRequestIDs(c)
	if err != nil {
		return err
	}

	item, err := h.uc.GetItem(c.Request().Context(), userID, itemType, itemID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item, "Item retrieved successfully")
}

// UpdateFoodItem handles the food item update request.
func (h *ItemHandler) UpdateFoodItem(c echo.Context) error {
	userID, itemID, err := itemRequestIDs(c)
	if err != nil {
		return err
	}

	var req usecase.UpdateFoodItemInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid food item input")
	}

	item, err := h.uc.UpdateFoodItem(c.Request().Context(), userID, itemID, &req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item, "Food item updated successfully")
}

// UpdateDocumentItem handles the document item update request.
func (h *ItemHandler) UpdateDocumentItem(c echo.Context) error {
	userID, itemID, err := itemRequestIDs(c)
	if err != nil {
		return err
	}

	var req usecase.UpdateDocumentItemInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid document item input")
	}

	item, err := h.uc.UpdateDocumentItem(c.Request().Context(), userID, itemID, &req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item, "Document item updated successfully")
}

// DeleteFoodItem handles the food item deletion request.
func (h *ItemHandler) DeleteFoodItem(c echo.Context) error {
	return h.deleteItem(c, entity.ItemTypeFood)
}

// DeleteDocumentItem handles the document item deletion request.
func (h *ItemHandler) DeleteDocumentItem(c echo.Context) error {
	return h.deleteItem(c, entity.ItemTypeDocument)
}

func (h *ItemHandler) deleteItem(c echo.Context, itemType entity.ItemType) error {
	userID, itemID, err := itemRequestIDs(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteItem(c.Request().Context(), userID, itemType, itemID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Item deleted"}, "Item deleted successfully")
}

// UploadFoodPhoto handles the food item photo upload request.
func (h *ItemHandler) UploadFoodPhoto(c echo.Context) error {
	return h.uploadPhoto(c, entity.ItemTypeFood)
}

// UploadDocumentPhoto handles the document item photo upload request.
func (h *ItemHandler) UploadDocumentPhoto(c echo.Context) error {
	return h.uploadPhoto(c, entity.ItemTypeDocument)
}

func (h *ItemHandler) uploadPhoto(c echo.Context, itemType entity.ItemType) error {
	userID, itemID, err := itemRequestIDs(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "photo file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded photo")
	}
	defer file.Close()

	item, err := h.uc.UploadPhoto(c.Request().Context(), userID, itemType, itemID, &usecase.PhotoUpload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Body:        file,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item, "Photo uploaded successfully")
}

// DeleteFoodPhoto handles the food item photo deletion request.
func (h *ItemHandler) DeleteFoodPhoto(c echo.Context) error {
	return h.deletePhoto(c, entity.ItemTypeFood)
}

// DeleteDocumentPhoto handles the document item photo deletion request.
func (h *ItemHandler) DeleteDocumentPhoto(c echo.Context) error {
	return h.deletePhoto(c, entity.ItemTypeDocument)
}

func (h *ItemHandler) deletePhoto(c echo.Context, itemType entity.ItemType) error {
	userID, itemID, err := itemRequestIDs(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeletePhoto(c.Request().Context(), userID, itemType, itemID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Photo deleted"}, "Photo deleted successfully")
}

func itemRequestIDs(c echo.Context) (userID, itemID uuid.UUID, err error) {
	userID, ok := middleware.UserID(c)
	if !ok {
		return uuid.Nil, uuid.Nil, response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	itemID, parseErr := uuid.Parse(c.Param("id"))
	if parseErr != nil {
		return uuid.Nil, uuid.Nil, response.BadRequest(c, "INVALID_INPUT", "Invalid item ID")
	}

	return userID, itemID, nil
}

func parseItemListFilter(c echo.Context) (repository.ItemListFilter, error) {
	filter := repository.ItemListFilter{
		Category:  c.QueryParam("category"),
		Search:    c.QueryParam("search"),
		SortBy:    c.QueryParam("sort_by"),
		SortOrder: c.QueryParam("sort_order"),
		Page:      1,
		Limit:     20,
	}

	if raw := c.QueryParam("type"); raw != "" {
		itemType := entity.ItemType(raw)
		if itemType != entity.ItemTypeFood && itemType != entity.ItemTypeDocument {
			return filter, errors.New("type must be food or document")
		}
		filter.Type = &itemType
	}

	if raw := c.QueryParam("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return filter, errors.New("page must be a positive integer")
		}
		filter.Page = page
	}

	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return filter, errors.New("limit must be a positive integer")
		}
		filter.Limit = limit
	}

	if raw := c.QueryParam("expiring_before"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, errors.New("expiring_before must be an RFC 3339 timestamp")
		}
		filter.ExpiringBefore = &t
	}

	if raw := c.QueryParam("expiring_after"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, errors.New("expiring_after must be an RFC 3339 timestamp")
		}
		filter.ExpiringAfter = &t
	}

	return filter, nil
}

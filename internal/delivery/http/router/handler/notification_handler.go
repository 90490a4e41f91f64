package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"expitrack/internal/delivery/http/middleware"
	"expitrack/internal/delivery/http/response"
	"expitrack/internal/domain/entity"
	"expitrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NotificationHandler holds dependencies for notification-related handlers.
type NotificationHandler struct {
	uc     usecase.NotificationUsecase
	logger *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler, injected by Fx.
func NewNotificationHandler(uc usecase.NotificationUsecase, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetPreferences handles the preference read request, creating a default
// record on first access.
func (h *NotificationHandler) GetPreferences(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	pref, err := h.uc.GetPreferences(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pref, "Preferences retrieved successfully")
}

// UpdatePreferences handles the partial preference update request.
func (h *NotificationHandler) UpdatePreferences(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req usecase.UpdatePreferencesInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid preferences input")
	}

	pref, err := h.uc.UpdatePreferences(c.Request().Context(), userID, &req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pref, "Preferences updated successfully")
}

type notificationHistoryResponse struct {
	Notifications []*entity.Notification `json:"notifications"`
	Total         int64                  `json:"total"`
	Page          int                    `json:"page"`
	Limit         int                    `json:"limit"`
}

// GetHistory handles the notification history request.
func (h *NotificationHandler) GetHistory(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	page := 1
	if raw := c.QueryParam("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return response.BadRequest(c, "INVALID_INPUT", "page must be a positive integer")
		}
		page = parsed
	}

	limit := 20
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return response.BadRequest(c, "INVALID_INPUT", "limit must be a positive integer")
		}
		limit = parsed
	}

	var status *entity.NotificationStatus
	if raw := c.QueryParam("status"); raw != "" {
		parsed := entity.NotificationStatus(raw)
		switch parsed {
		case entity.NotificationPending, entity.NotificationSent,
			entity.NotificationFailed, entity.NotificationCancelled:
			status = &parsed
		default:
			return response.BadRequest(c, "INVALID_INPUT", "unknown notification status")
		}
	}

	notifications, total, err := h.uc.GetHistory(c.Request().Context(), userID, status, page, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, notificationHistoryResponse{
		Notifications: notifications,
		Total:         total,
		Page:          page,
		Limit:         limit,
	}, "Notification history retrieved successfully")
}

// SendTest handles the test notification request.
func (h *NotificationHandler) SendTest(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	if err := h.uc.SendTest(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Test notification sent"}, "Test notification sent successfully")
}

package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"expitrack/internal/delivery/http/response"
	"expitrack/internal/domain/entity"
	"expitrack/internal/domain/repository"
	"expitrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for the admin surface handlers.
type AdminHandler struct {
	uc     usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetDashboard handles the admin dashboard request.
func (h *AdminHandler) GetDashboard(c echo.Context) error {
	stats, err := h.uc.GetDashboardStats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "Dashboard stats retrieved successfully")
}

type userListResponse struct {
	Users      []*entity.User `json:"users"`
	Total      int64          `json:"total"`
	NextCursor *uuid.UUID     `json:"next_cursor,omitempty"`
}

// ListUsers handles the admin user listing request with cursor pagination.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	filter, err := parseUserListFilter(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	users, total, nextCursor, err := h.uc.ListUsers(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, userListResponse{
		Users:      users,
		Total:      total,
		NextCursor: nextCursor,
	}, "Users retrieved successfully")
}

// GetUser handles the admin single user request.
func (h *AdminHandler) GetUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
	}

	user, err := h.uc.GetUser(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "User retrieved successfully")
}

type broadcastRequest struct {
	Title   string `json:"title" validate:"required"`
	Body    string `json:"body" validate:"required"`
	Segment string `json:"segment" validate:"required"`
}

// Broadcast handles the admin broadcast request.
func (h *AdminHandler) Broadcast(c echo.Context) error {
	var req broadcastRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid broadcast input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.uc.Broadcast(c.Request().Context(), &usecase.BroadcastInput{
		Title:   req.Title,
		Body:    req.Body,
		Segment: usecase.BroadcastSegment(req.Segment),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusAccepted, result, "Broadcast enqueued successfully")
}

func parseUserListFilter(c echo.Context) (repository.UserListFilter, error) {
	filter := repository.UserListFilter{
		Search: c.QueryParam("search"),
	}

	if raw := c.QueryParam("cursor"); raw != "" {
		cursor, err := uuid.Parse(raw)
		if err != nil {
			return filter, errors.New("cursor must be a valid user ID")
		}
		filter.Cursor = &cursor
	}

	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return filter, errors.New("limit must be a positive integer")
		}
		filter.Limit = limit
	}

	if raw := c.QueryParam("is_active"); raw != "" {
		isActive, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, errors.New("is_active must be a boolean")
		}
		filter.IsActive = &isActive
	}

	if raw := c.QueryParam("plan"); raw != "" {
		plan := entity.SubscriptionPlan(raw)
		if plan != entity.PlanFree && plan != entity.PlanPremium {
			return filter, errors.New("plan must be free or premium")
		}
		filter.Plan = &plan
	}

	return filter, nil
}

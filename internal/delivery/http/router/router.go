// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"expitrack/internal/delivery/http/middleware"
	"expitrack/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	ItemHandler         *handler.ItemHandler
	NotificationHandler *handler.NotificationHandler
	DeviceHandler       *handler.DeviceHandler
	AdminHandler        *handler.AdminHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	itemHandler         *handler.ItemHandler
	notificationHandler *handler.NotificationHandler
	deviceHandler       *handler.DeviceHandler
	adminHandler        *handler.AdminHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		itemHandler:         params.ItemHandler,
		notificationHandler: params.NotificationHandler,
		deviceHandler:       params.DeviceHandler,
		adminHandler:        params.AdminHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/forgot-password", r.authHandler.ForgotPassword)
		authGroup.POST("/reset-password", r.authHandler.ResetPassword)
		authGroup.POST("/logout", r.authHandler.Logout, r.authMiddleware.Authenticate)
	}

	// Item routes that require authentication
	itemGroup := e.Group("/items")
	itemGroup.Use(r.authMiddleware.Authenticate)
	{
		itemGroup.GET("", r.itemHandler.ListItems)
		itemGroup.GET("/expiring", r.itemHandler.GetExpiringItems)
		itemGroup.GET("/stats", r.itemHandler.GetItemStats)

		foodGroup := itemGroup.Group("/food")
		{
			foodGroup.POST("", r.itemHandler.CreateFoodItem)
			foodGroup.GET("/:id", r.itemHandler.GetFoodItem)
			foodGroup.PATCH("/:id", r.itemHandler.UpdateFoodItem)
			foodGroup.DELETE("/:id", r.itemHandler.DeleteFoodItem)
			foodGroup.POST("/:id/photo", r.itemHandler.UploadFoodPhoto)
			foodGroup.DELETE("/:id/photo", r.itemHandler.DeleteFoodPhoto)
		}

		documentGroup := itemGroup.Group("/document")
		{
			documentGroup.POST("", r.itemHandler.CreateDocumentItem)
			documentGroup.GET("/:id", r.itemHandler.GetDocumentItem)
			documentGroup.PATCH("/:id", r.itemHandler.UpdateDocumentItem)
			documentGroup.DELETE("/:id", r.itemHandler.DeleteDocumentItem)
			documentGroup.POST("/:id/photo", r.itemHandler.UploadDocumentPhoto)
			documentGroup.DELETE("/:id/photo", r.itemHandler.DeleteDocumentPhoto)
		}
	}

	// Notification routes that require authentication
	notificationGroup := e.Group("/notifications")
	notificationGroup.Use(r.authMiddleware.Authenticate)
	{
		notificationGroup.GET("/preferences", r.notificationHandler.GetPreferences)
		notificationGroup.PATCH("/preferences", r.notificationHandler.UpdatePreferences)
		notificationGroup.GET("/history", r.notificationHandler.GetHistory)
		notificationGroup.POST("/test", r.notificationHandler.SendTest)
		notificationGroup.GET("/devices", r.deviceHandler.ListDevices)
		notificationGroup.POST("/fcm-token", r.deviceHandler.RegisterToken)
		notificationGroup.DELETE("/fcm-token/:token", r.deviceHandler.RemoveToken)
	}

	// Admin routes that require authentication and the admin flag
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireAdmin)
	{
		adminGroup.GET("/stats", r.adminHandler.GetDashboard)
		adminGroup.GET("/users", r.adminHandler.ListUsers)
		adminGroup.GET("/users/:id", r.adminHandler.GetUser)
		adminGroup.POST("/notifications/broadcast", r.adminHandler.Broadcast)
	}
}

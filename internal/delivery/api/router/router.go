// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"

	"taponn/internal/delivery/api/middleware"
	"taponn/internal/delivery/api/router/handler"
	"taponn/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	ProfileHandler   *handler.ProfileHandler
	QRCodeHandler    *handler.QRCodeHandler
	OrderHandler     *handler.OrderHandler
	AnalyticsHandler *handler.AnalyticsHandler
	AdminHandler     *handler.AdminHandler
	UploadHandler    *handler.UploadHandler
	HealthHandler    *handler.HealthHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	profileHandler   *handler.ProfileHandler
	qrCodeHandler    *handler.QRCodeHandler
	orderHandler     *handler.OrderHandler
	analyticsHandler *handler.AnalyticsHandler
	adminHandler     *handler.AdminHandler
	uploadHandler    *handler.UploadHandler
	healthHandler    *handler.HealthHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		profileHandler:   params.ProfileHandler,
		qrCodeHandler:    params.QRCodeHandler,
		orderHandler:     params.OrderHandler,
		analyticsHandler: params.AnalyticsHandler,
		adminHandler:     params.AdminHandler,
		uploadHandler:    params.UploadHandler,
		healthHandler:    params.HealthHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.authMiddleware.Authenticate

	e.GET("/", r.healthHandler.Root)
	e.GET("/uploads/*", r.uploadHandler.ServeFile)

	api := e.Group("/api")
	api.GET("/health", r.healthHandler.HealthCheck)

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/me", r.authHandler.Me, auth)
	}

	// Profile routes; lookups by ID and handle are public
	profilesGroup := api.Group("/profiles")
	{
		collection(profilesGroup, http.MethodGet, r.profileHandler.ListMyProfiles, auth)
		collection(profilesGroup, http.MethodPost, r.profileHandler.CreateProfile, auth)
		profilesGroup.GET("/public", r.profileHandler.ListPublicProfiles)
		profilesGroup.GET("/username/:username", r.profileHandler.GetProfileByUsername, r.authMiddleware.OptionalAuthenticate)
		profilesGroup.GET("/:id", r.profileHandler.GetProfile)
		profilesGroup.PUT("/:id", r.profileHandler.UpdateProfile, auth)
		profilesGroup.PATCH("/:id/toggle-status", r.profileHandler.ToggleProfileVisibility, auth)
	}

	// QR code routes; scanning is public
	qrGroup := api.Group("/qr")
	{
		qrGroup.GET("/scan/:id", r.qrCodeHandler.ScanQRCode)
		qrGroup.GET("/redirect/:id", r.qrCodeHandler.ScanQRCode)

		collection(qrGroup, http.MethodGet, r.qrCodeHandler.ListQRCodes, auth)
		collection(qrGroup, http.MethodPost, r.qrCodeHandler.CreateQRCode, auth)
		qrGroup.GET("/:id", r.qrCodeHandler.GetQRCode, auth)
		qrGroup.PUT("/:id", r.qrCodeHandler.UpdateQRCode, auth)
		qrGroup.DELETE("/:id", r.qrCodeHandler.DeleteQRCode, auth)
		qrGroup.GET("/:id/download", r.qrCodeHandler.DownloadQRCode, auth)
		qrGroup.PATCH("/:id/toggle-status", r.qrCodeHandler.ToggleQRCodeStatus, auth)
		qrGroup.POST("/:id/regenerate", r.qrCodeHandler.RegenerateQRCode, auth)
		qrGroup.GET("/:id/analytics", r.qrCodeHandler.GetQRCodeAnalytics, auth)
	}

	// Order routes
	ordersGroup := api.Group("/orders")
	ordersGroup.Use(auth)
	{
		collection(ordersGroup, http.MethodGet, r.orderHandler.ListOrders)
		collection(ordersGroup, http.MethodPost, r.orderHandler.CreateOrder)
		ordersGroup.GET("/:id", r.orderHandler.GetOrder)
		ordersGroup.PATCH("/:id/cancel", r.orderHandler.CancelOrder)
		ordersGroup.POST("/:id/notes", r.orderHandler.AddOrderNote)
		ordersGroup.POST("/:id/payment", r.orderHandler.RecordPayment)
		ordersGroup.PATCH("/:id/status", r.orderHandler.UpdateOrderStatus, r.authMiddleware.RequireAdmin)
		ordersGroup.POST("/:id/refund", r.orderHandler.RefundOrder, r.authMiddleware.RequireAdmin)
	}

	// Analytics routes; authentication is optional
	analyticsGroup := api.Group("/analytics")
	{
		analyticsGroup.POST("/record", r.analyticsHandler.RecordEvent, r.authMiddleware.OptionalAuthenticate)
	}

	// Admin routes
	adminGroup := api.Group("/admin")
	adminGroup.Use(auth)
	adminGroup.Use(r.authMiddleware.RequireAdmin)
	{
		adminGroup.GET("/dashboard", r.adminHandler.GetDashboard)
		adminGroup.GET("/users", r.adminHandler.ListUsers)
		adminGroup.PUT("/users/:id", r.adminHandler.UpdateUser)
	}

	// Upload routes
	uploadGroup := api.Group("/upload")
	uploadGroup.Use(auth)
	{
		uploadGroup.POST("/profile-image", r.uploadHandler.UploadProfileImage,
			r.authMiddleware.RequirePermission(entity.PermissionProfileEdit))
		uploadGroup.POST("/qr-logo", r.uploadHandler.UploadQRLogo,
			r.authMiddleware.RequirePermission(entity.PermissionQRGenerate))
	}
}

// collection registers a handler on the group root both with and without the trailing slash.
func collection(g *echo.Group, method string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) {
	g.Add(method, "", h, m...)
	g.Add(method, "/", h, m...)
}

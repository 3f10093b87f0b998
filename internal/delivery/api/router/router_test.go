package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"taponn/config"
	apimiddleware "taponn/internal/delivery/api/middleware"
	"taponn/internal/delivery/api/router/handler"
	"taponn/internal/delivery/api/validator"
	"taponn/internal/domain/entity"
	mockUsecase "taponn/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestRouter(t *testing.T) (*echo.Echo, *mockUsecase.MockAuthUsecase) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	authUC := mockUsecase.NewMockAuthUsecase(t)

	r := NewRouter(RouterParams{
		AuthHandler:      &handler.AuthHandler{},
		ProfileHandler:   &handler.ProfileHandler{},
		QRCodeHandler:    &handler.QRCodeHandler{},
		OrderHandler:     &handler.OrderHandler{},
		AnalyticsHandler: &handler.AnalyticsHandler{},
		AdminHandler:     &handler.AdminHandler{},
		UploadHandler:    &handler.UploadHandler{},
		HealthHandler:    handler.NewHealthHandler(&config.Config{}),
		AuthMiddleware:   apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{AuthUC: authUC, Logger: logger}),
	})

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	r.RegisterRoutes(e)

	return e, authUC
}

func TestRegisterRoutes(t *testing.T) {
	e, _ := newTestRouter(t)

	registered := make(map[string]bool)
	for _, route := range e.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	expected := []string{
		"GET /",
		"GET /api/health",
		"GET /uploads/*",
		"POST /api/auth/register",
		"POST /api/auth/login",
		"GET /api/auth/me",
		"GET /api/profiles",
		"GET /api/profiles/",
		"POST /api/profiles",
		"POST /api/profiles/",
		"GET /api/profiles/public",
		"GET /api/profiles/username/:username",
		"GET /api/profiles/:id",
		"PUT /api/profiles/:id",
		"PATCH /api/profiles/:id/toggle-status",
		"GET /api/qr/scan/:id",
		"GET /api/qr/redirect/:id",
		"GET /api/qr",
		"POST /api/qr/",
		"GET /api/qr/:id",
		"PUT /api/qr/:id",
		"DELETE /api/qr/:id",
		"GET /api/qr/:id/download",
		"PATCH /api/qr/:id/toggle-status",
		"POST /api/qr/:id/regenerate",
		"GET /api/qr/:id/analytics",
		"GET /api/orders",
		"POST /api/orders/",
		"GET /api/orders/:id",
		"PATCH /api/orders/:id/cancel",
		"POST /api/orders/:id/notes",
		"POST /api/orders/:id/payment",
		"PATCH /api/orders/:id/status",
		"POST /api/orders/:id/refund",
		"POST /api/analytics/record",
		"GET /api/admin/dashboard",
		"GET /api/admin/users",
		"PUT /api/admin/users/:id",
		"POST /api/upload/profile-image",
		"POST /api/upload/qr-logo",
	}
	for _, route := range expected {
		assert.True(t, registered[route], "missing route %s", route)
	}
}

func TestRegisterRoutes_Guards(t *testing.T) {
	t.Run("protected routes reject anonymous requests", func(t *testing.T) {
		e, _ := newTestRouter(t)

		for _, target := range []string{"/api/auth/me", "/api/orders", "/api/orders/", "/api/admin/users", "/api/qr/" + uuid.NewString()} {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

			assert.Equal(t, http.StatusUnauthorized, rec.Code, target)
			assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate), target)
		}
	})

	t.Run("admin routes reject regular users", func(t *testing.T) {
		e, authUC := newTestRouter(t)
		authUC.EXPECT().Authenticate(mock.Anything, "user-token").
			Return(&entity.User{ID: uuid.New(), Role: entity.RoleUser, Status: entity.UserStatusActive}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer user-token")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("health is public", func(t *testing.T) {
		e, _ := newTestRouter(t)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

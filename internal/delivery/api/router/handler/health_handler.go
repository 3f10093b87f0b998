package handler

import (
	"net/http"

	"taponn/config"
	"taponn/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

const databaseName = "PostgreSQL"

// HealthHandler reports service liveness and version.
type HealthHandler struct {
	version  string
	docsPath string
}

// NewHealthHandler is the constructor for HealthHandler.
func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{
		version:  cfg.App.Version,
		docsPath: cfg.App.DocsPath,
	}
}

// HealthCheck handles the health check request
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{
		"status":  "success",
		"message": "TapOnn API is running",
		"version": h.version,
	})
}

// Root describes the API.
func (h *HealthHandler) Root(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{
		"message":  "Welcome to TapOnn API",
		"version":  h.version,
		"database": databaseName,
		"docs":     h.docsPath,
	})
}

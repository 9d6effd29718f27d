package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Arun-Dalakoti/CardGenius/internal/catalog"
)

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	startedAt time.Time
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler() *HealthCheckHandler {
	return &HealthCheckHandler{startedAt: time.Now()}
}

// HealthCheck reports liveness. There is no database behind this service;
// the process is healthy whenever the catalog table loaded, so the check
// reports catalog size and uptime rather than connectivity.
//
// Method: GET /health
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":       "healthy",
		"catalog_size": catalog.Size(),
		"uptime":       time.Since(h.startedAt).Round(time.Second).String(),
		"time":         time.Now().UTC().Format(time.RFC3339),
	})
}

package handlers

import (
	"context"
	"net/http"
	"time"

	"micron-manager/internal/errors"

	"github.com/labstack/echo/v4"
)

// HealthChecker reports whether a backing store is reachable
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// HealthCheckHandler handles the liveness and readiness endpoints
type HealthCheckHandler struct {
	store        HealthChecker
	readyTimeout time.Duration
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(store HealthChecker) *HealthCheckHandler {
	return &HealthCheckHandler{store: store, readyTimeout: 2 * time.Second}
}

// HealthCheck reports that the process is up. It never touches the store.
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string} "Service is up"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Ready checks database connectivity
// @Summary Readiness probe
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,time=string} "Service is ready"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Service unavailable (database connection failed)"
// @Router /ready [get]
func (h *HealthCheckHandler) Ready(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.readyTimeout)
	defer cancel()

	if h.store == nil || h.store.HealthCheck(ctx) != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "ready",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

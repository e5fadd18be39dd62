package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"featurevote/src/core/usecase"
)

// HealthHandler handles the health check endpoint.
type HealthHandler struct {
	healthService *usecase.HealthService
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(healthService *usecase.HealthService) *HealthHandler {
	return &HealthHandler{healthService: healthService}
}

// Health returns the health status of the application.
// A degraded database yields status "unhealthy" in the body, still with 200:
// monitoring reads the payload, not the status code.
// GET /api/health
func (h *HealthHandler) Health(c *gin.Context) {
	status := h.healthService.Check(c.Request.Context())
	c.JSON(http.StatusOK, status)
}

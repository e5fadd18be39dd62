package usecase

import (
	"context"
	"log/slog"

	"featurevote/src/core/ports"
)

// HealthService reports whether the service and its storage are usable.
// A degraded database is reported in the response body, not as an error code.
type HealthService struct {
	db  ports.Repository
	log *slog.Logger
}

// NewHealthService creates a new HealthService.
func NewHealthService(db ports.Repository, log *slog.Logger) *HealthService {
	return &HealthService{
		db:  db,
		log: log,
	}
}

// HealthStatus represents the health of the application.
type HealthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Error    string `json:"error,omitempty"`
}

// Check pings the storage layer and reports overall health.
func (s *HealthService) Check(ctx context.Context) *HealthStatus {
	if err := s.db.Health(ctx); err != nil {
		s.log.Warn("health check failed", "error", err)
		return &HealthStatus{
			Status:   "unhealthy",
			Database: "disconnected",
			Error:    err.Error(),
		}
	}

	return &HealthStatus{
		Status:   "healthy",
		Database: "connected",
	}
}

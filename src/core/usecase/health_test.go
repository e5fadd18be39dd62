package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"featurevote/src/infra/logger"
	"featurevote/src/infra/repo"
)

type unreachableRepo struct{}

func (unreachableRepo) Health(context.Context) error {
	return errors.New("connection refused")
}

func TestHealthCheckHealthy(t *testing.T) {
	svc := NewHealthService(repo.NewInMemoryFeatureRepository(), logger.Discard())

	status := svc.Check(context.Background())

	assert.Equal(t, "healthy", status.Status)
	assert.Equal(t, "connected", status.Database)
	assert.Empty(t, status.Error)
}

func TestHealthCheckDegraded(t *testing.T) {
	svc := NewHealthService(unreachableRepo{}, logger.Discard())

	status := svc.Check(context.Background())

	assert.Equal(t, "unhealthy", status.Status)
	assert.Equal(t, "disconnected", status.Database)
	assert.Contains(t, status.Error, "connection refused")
}

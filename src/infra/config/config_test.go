package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "feature_voting", cfg.Database.Name)
	assert.True(t, cfg.Database.MigrateOnStart)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("APP_DB_NAME", "voting_test")
	t.Setenv("APP_CORS_ORIGINS", "http://localhost:3000,http://localhost:19006")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.Server.Addr())
	assert.Contains(t, cfg.Database.DSN(), "/voting_test?")
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:19006"}, cfg.CORS.AllowedOrigins)
}

func TestDSN(t *testing.T) {
	db := DatabaseConfig{
		Host: "db", Port: 5433, User: "svc", Password: "secret",
		Name: "feature_voting", SSLMode: "require",
	}
	assert.Equal(t, "postgres://svc:secret@db:5433/feature_voting?sslmode=require", db.DSN())
}

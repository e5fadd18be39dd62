// Package main is the entry point for the feature voting API server.
// It initializes all dependencies and starts the HTTP server.
package main

import (
	"context"
	"log"
	"os"

	"featurevote/src/app/server"
	"featurevote/src/core/metrics"
	"featurevote/src/infra/config"
	"featurevote/src/infra/db"
	"featurevote/src/infra/logger"
	"featurevote/src/infra/repo"
)

func main() {
	if err := run(); err != nil {
		log.Printf("fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Initialize logger
	log := logger.New(cfg.Log)
	log.Info("starting application",
		"port", cfg.Server.Port,
		"log_level", cfg.Log.Level,
	)

	// Apply schema migrations before opening the pool
	if cfg.Database.MigrateOnStart {
		if err := db.Migrate(cfg.Database, log); err != nil {
			return err
		}
	}

	// Initialize database connection
	pg, err := db.New(context.Background(), cfg.Database, log)
	if err != nil {
		return err
	}
	defer pg.Close()

	// Initialize repositories and metrics
	featureRepo := repo.NewPostgresFeatureRepository(pg, log)
	voteRepo := repo.NewPostgresVoteRepository(pg, log)
	m := metrics.New()

	// Create and run HTTP server
	srv := server.New(cfg, log, featureRepo, voteRepo, m)

	// Run blocks until shutdown signal is received
	return srv.Run()
}

// Package main implements the entry point for the Unitip API server,
// the REST backend of the campus service marketplace.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/unitip/unitip-api/internal/config"
	"github.com/unitip/unitip-api/internal/platform/logger"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.cleanup()

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration, sets up logging, connects to the
// database, applies migrations and wires the application dependencies.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := setupAppDatabase(cfg, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to set up database: %w", err)
	}

	if cfg.Database.RunMigrations {
		if err := runMigrations(db, appLogger); err != nil {
			closeErr := db.Close()
			if closeErr != nil {
				appLogger.Error("failed to close database after migration failure",
					"error", closeErr)
			}
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	return newApplication(cfg, db, appLogger)
}

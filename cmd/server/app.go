package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/unitip/unitip-api/internal/config"
	"github.com/unitip/unitip-api/internal/openapi"
	"github.com/unitip/unitip-api/internal/platform/postgres"
	"github.com/unitip/unitip-api/internal/service"
	"github.com/unitip/unitip-api/internal/service/auth"
)

// application holds the shared dependencies of the server: the loaded
// configuration, the database handle, the stores, and the services
// built on top of them. Handlers are created from it in setupRouter.
type application struct {
	config *config.Config
	db     *sql.DB
	logger *slog.Logger

	sessionVerifier auth.SessionVerifier
	offerService    *service.OfferService
	profileService  *service.ProfileService
	jobService      *service.JobService
	docsHandler     http.HandlerFunc
}

// newApplication wires the stores and services over the given database
// connection.
func newApplication(
	cfg *config.Config,
	db *sql.DB,
	logger *slog.Logger,
) (*application, error) {
	// The OpenAPI document is static, so a marshal failure is a
	// programming error; refuse to start rather than run without docs.
	docsHandler, err := openapi.Handler()
	if err != nil {
		return nil, fmt.Errorf("failed to build OpenAPI document: %w", err)
	}

	sessionStore := postgres.NewPostgresSessionStore(db, logger)
	userStore := postgres.NewPostgresUserStore(db, logger)
	offerStore := postgres.NewPostgresOfferStore(db, logger)
	jobStore := postgres.NewPostgresJobStore(db, logger)

	return &application{
		config:          cfg,
		db:              db,
		logger:          logger,
		sessionVerifier: auth.NewSessionVerifier(sessionStore, logger),
		offerService:    service.NewOfferService(offerStore, logger),
		profileService:  service.NewProfileService(sessionStore, userStore, logger),
		jobService:      service.NewJobService(jobStore, logger),
		docsHandler:     docsHandler,
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}

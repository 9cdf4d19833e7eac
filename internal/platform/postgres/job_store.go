package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/unitip/unitip-api/internal/domain"
	"github.com/unitip/unitip-api/internal/platform/logger"
	"github.com/unitip/unitip-api/internal/store"
)

// PostgresJobStore implements the store.JobStore interface
// using a PostgreSQL database as the storage backend.
type PostgresJobStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresJobStore creates a new PostgreSQL implementation of the
// JobStore interface. If logger is nil, a default logger will be used.
func NewPostgresJobStore(db store.DBTX, logger *slog.Logger) *PostgresJobStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresJobStore{
		db:     db,
		logger: logger.With(slog.String("component", "job_store")),
	}
}

// Ensure PostgresJobStore implements store.JobStore interface
var _ store.JobStore = (*PostgresJobStore)(nil)

// CreateApplication implements store.JobStore.CreateApplication
// It inserts a job application and returns the new row ID.
// Returns store.ErrInvalidEntity if the job or freelancer does not exist.
func (s *PostgresJobStore) CreateApplication(
	ctx context.Context,
	app *domain.JobApplication,
) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := app.Validate(); err != nil {
		log.Warn("job application validation failed",
			slog.String("error", err.Error()),
			slog.String("job_id", app.JobID))
		return "", err
	}

	query := `
		INSERT INTO job_applications
			(id, job_id, freelancer, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var id string
	err := s.db.QueryRowContext(
		ctx,
		query,
		app.ID,
		app.JobID,
		app.Freelancer,
		app.Price,
		app.CreatedAt,
		app.UpdatedAt,
	).Scan(&id)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Error("job application insert returned no id",
				slog.String("job_id", app.JobID))
			return "", store.ErrNoID
		}

		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during job application",
				slog.String("error", err.Error()),
				slog.String("job_id", app.JobID),
				slog.String("freelancer", app.Freelancer))
			return "", fmt.Errorf("%w: job %s not found", store.ErrInvalidEntity, app.JobID)
		}

		log.Error("failed to create job application",
			slog.String("error", err.Error()),
			slog.String("job_id", app.JobID))
		return "", err
	}

	log.Info("job application created",
		slog.String("application_id", id),
		slog.String("job_id", app.JobID),
		slog.String("freelancer", app.Freelancer))
	return id, nil
}

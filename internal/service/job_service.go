package service

import (
	"context"
	"log/slog"

	"github.com/unitip/unitip-api/internal/domain"
	"github.com/unitip/unitip-api/internal/platform/logger"
	"github.com/unitip/unitip-api/internal/service/auth"
	"github.com/unitip/unitip-api/internal/store"
)

// JobService implements job applications.
type JobService struct {
	jobs   store.JobStore
	logger *slog.Logger
}

// NewJobService creates a new JobService with the given dependencies.
// If logger is nil, a default logger will be used.
func NewJobService(jobs store.JobStore, logger *slog.Logger) *JobService {
	if jobs == nil {
		panic("jobs cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &JobService{
		jobs:   jobs,
		logger: logger.With(slog.String("component", "job_service")),
	}
}

// Apply submits the authenticated user's application for a job.
// Customers are rejected with ErrRoleForbidden. Returns the new
// application's ID.
func (s *JobService) Apply(
	ctx context.Context,
	authz *auth.Authorization,
	jobID string,
	price float64,
) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if authz.IsCustomer() {
		log.Debug("customer attempted to apply for job",
			slog.String("user_id", authz.UserID),
			slog.String("job_id", jobID))
		return "", ErrRoleForbidden
	}

	app, err := domain.NewJobApplication(jobID, authz.UserID, price)
	if err != nil {
		return "", err
	}

	return s.jobs.CreateApplication(ctx, app)
}

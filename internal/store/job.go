package store

import (
	"context"

	"github.com/unitip/unitip-api/internal/domain"
)

// JobStore defines the interface for job application persistence.
type JobStore interface {
	// CreateApplication inserts a job application and returns the new
	// row ID. Returns ErrInvalidEntity if the job or user does not exist.
	CreateApplication(ctx context.Context, app *domain.JobApplication) (string, error)
}

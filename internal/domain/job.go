package domain

import (
	"time"

	"github.com/google/uuid"
)

// JobApplication is a freelancer's bid on a customer-posted job.
type JobApplication struct {
	ID         string    `json:"id"`
	JobID      string    `json:"job_id"`
	Freelancer string    `json:"freelancer"`
	Price      float64   `json:"price"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewJobApplication creates an application for the given job by the
// given freelancer, generating a new ID.
func NewJobApplication(jobID, freelancer string, price float64) (*JobApplication, error) {
	now := time.Now().UTC()
	app := &JobApplication{
		ID:         uuid.NewString(),
		JobID:      jobID,
		Freelancer: freelancer,
		Price:      price,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := app.Validate(); err != nil {
		return nil, err
	}

	return app, nil
}

// Validate checks if the JobApplication has valid data.
func (a *JobApplication) Validate() error {
	if a.JobID == "" {
		return NewValidationError("job_id", "cannot be empty", ErrInvalidID)
	}
	if a.Freelancer == "" {
		return ErrEmptyFreelancer
	}
	if a.Price < 0 {
		return ErrNegativePrice
	}
	return nil
}

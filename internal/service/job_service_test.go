package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unitip/unitip-api/internal/service/auth"
	"github.com/unitip/unitip-api/internal/store"
)

func TestJobApply(t *testing.T) {
	t.Parallel()

	jobs := &mockJobStore{}
	svc := NewJobService(jobs, nil)

	id, err := svc.Apply(
		context.Background(),
		&auth.Authorization{UserID: "user-1", Role: "driver"},
		"job-1",
		20000,
	)
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	require.NotNil(t, jobs.created)
	assert.Equal(t, "job-1", jobs.created.JobID)
	assert.Equal(t, "user-1", jobs.created.Freelancer)
	assert.Equal(t, float64(20000), jobs.created.Price)
}

func TestJobApplyForbiddenForCustomer(t *testing.T) {
	t.Parallel()

	jobs := &mockJobStore{}
	svc := NewJobService(jobs, nil)

	_, err := svc.Apply(
		context.Background(),
		&auth.Authorization{UserID: "user-1", Role: "customer"},
		"job-1",
		20000,
	)
	assert.ErrorIs(t, err, ErrRoleForbidden)
	assert.Nil(t, jobs.created)
}

func TestJobApplyUnknownJob(t *testing.T) {
	t.Parallel()

	jobs := &mockJobStore{err: store.ErrInvalidEntity}
	svc := NewJobService(jobs, nil)

	_, err := svc.Apply(
		context.Background(),
		&auth.Authorization{UserID: "user-1", Role: "driver"},
		"ghost-job",
		20000,
	)
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
}

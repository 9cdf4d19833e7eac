package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/unitip/unitip-api/internal/api/shared"
	"github.com/unitip/unitip-api/internal/service"
	"github.com/unitip/unitip-api/internal/service/auth"
)

// JobHandler handles the job API requests.
type JobHandler struct {
	jobService *service.JobService
	verifier   auth.SessionVerifier
	validator  *validator.Validate
}

// NewJobHandler creates a new JobHandler with the given dependencies.
func NewJobHandler(
	jobService *service.JobService,
	verifier auth.SessionVerifier,
) *JobHandler {
	return &JobHandler{
		jobService: jobService,
		verifier:   verifier,
		validator:  newValidator(),
	}
}

// ApplyJob handles POST /api/v1/jobs/{job_id}/apply.
// Follows the same contract as offer creation: body validation first,
// then authentication, then the role gate.
func (h *JobHandler) ApplyJob(w http.ResponseWriter, r *http.Request) {
	var req ApplyJobRequest

	// Parse request
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithBadRequest(w, r, []shared.FieldError{
			{Path: "body", Message: "Invalid request format"},
		})
		return
	}

	// Validate request
	if errs := validateRequest(h.validator, req); errs != nil {
		shared.RespondWithBadRequest(w, r, errs)
		return
	}

	// Verify authentication token
	authz, err := h.verifier.VerifyBearer(r.Context(), r.Header.Get("Authorization"))
	if err != nil {
		if errors.Is(err, auth.ErrInvalidToken) {
			shared.RespondWithUnauthorized(w, r)
			return
		}
		slog.Error("failed to verify bearer token", "error", err)
		shared.RespondWithServerError(w, r, err)
		return
	}

	jobID := chi.URLParam(r, "job_id")

	id, err := h.jobService.Apply(r.Context(), authz, jobID, *req.Price)
	if err != nil {
		if errors.Is(err, service.ErrRoleForbidden) {
			shared.RespondWithForbidden(w, r, "Anda tidak memiliki akses untuk melamar pekerjaan ini!")
			return
		}
		slog.Error("failed to apply for job", "error", err, "job_id", jobID, "user_id", authz.UserID)
		shared.RespondWithServerError(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, r, ApplyJobResponse{
		Success: true,
		ID:      id,
	})
}

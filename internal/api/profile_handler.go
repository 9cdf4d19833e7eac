package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/unitip/unitip-api/internal/api/middleware"
	"github.com/unitip/unitip-api/internal/api/shared"
	"github.com/unitip/unitip-api/internal/service"
	"github.com/unitip/unitip-api/internal/service/auth"
)

// ProfileHandler handles the account profile API requests.
type ProfileHandler struct {
	profileService *service.ProfileService
	verifier       auth.SessionVerifier
	validator      *validator.Validate
}

// NewProfileHandler creates a new ProfileHandler with the given dependencies.
func NewProfileHandler(
	profileService *service.ProfileService,
	verifier auth.SessionVerifier,
) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		verifier:       verifier,
		validator:      newValidator(),
	}
}

// GetProfile handles GET /api/v1/accounts/profile.
// Authentication is handled by the middleware; the session token from
// the authorization context drives the profile read.
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	authz, ok := middleware.GetAuthorization(r)
	if !ok {
		shared.RespondWithUnauthorized(w, r)
		return
	}

	profile, err := h.profileService.Get(r.Context(), authz.Token)
	if err != nil {
		// The session vanished between authentication and the read, or
		// the read itself failed; either way the client sees a 500.
		slog.Error("failed to read profile", "error", err, "user_id", authz.UserID)
		shared.RespondWithServerError(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, r, profile)
}

// UpdateProfile handles PATCH /api/v1/accounts/profile.
// The body is validated before the bearer token is checked; a request
// that is both malformed and unauthenticated gets a 400.
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req UpdateProfileRequest

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

	// Update profile
	user, err := h.profileService.Update(r.Context(), authz.UserID, req.Name, req.Gender)
	if err != nil {
		slog.Error("failed to update profile", "error", err, "user_id", authz.UserID)
		shared.RespondWithServerError(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, r, UpdateProfileResponse{
		ID:     user.ID,
		Name:   user.Name,
		Gender: user.Gender,
	})
}

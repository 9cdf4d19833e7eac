// Package middleware provides the HTTP middleware applied around the
// API handlers: bearer-token authentication and trace-ID propagation.
package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/unitip/unitip-api/internal/api/shared"
	"github.com/unitip/unitip-api/internal/service/auth"
)

// AuthMiddleware provides session-token authentication for routes.
//
// It is applied only to GET routes; the mutating handlers verify the
// token themselves because their contract runs body validation before
// authentication.
type AuthMiddleware struct {
	verifier auth.SessionVerifier
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(verifier auth.SessionVerifier) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
	}
}

// Authenticate validates the bearer token from the Authorization header
// against the session table and adds the authorization context to the
// request for authorized requests.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authz, err := m.verifier.VerifyBearer(r.Context(), r.Header.Get("Authorization"))
		if err != nil {
			if errors.Is(err, auth.ErrInvalidToken) {
				shared.RespondWithUnauthorized(w, r)
				return
			}

			slog.Error("failed to verify bearer token", "error", err)
			shared.RespondWithServerError(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), shared.AuthContextKey, authz)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetAuthorization extracts the authenticated session from the request
// context. Returns the authorization and a boolean indicating if it was
// found.
func GetAuthorization(r *http.Request) (*auth.Authorization, bool) {
	authz, ok := r.Context().Value(shared.AuthContextKey).(*auth.Authorization)
	return authz, ok && authz != nil
}

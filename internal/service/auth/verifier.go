// Package auth provides bearer-token verification against the session
// table. Tokens are opaque strings issued at login time (outside this
// service); verifying one is a single read joining the session to its
// user.
package auth

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/unitip/unitip-api/internal/domain"
	"github.com/unitip/unitip-api/internal/platform/logger"
	"github.com/unitip/unitip-api/internal/store"
)

// ErrInvalidToken is returned when the Authorization header is missing,
// malformed, or names a token with no matching session. Callers map it
// to HTTP 401.
var ErrInvalidToken = errors.New("invalid or missing bearer token")

// Authorization is the authenticated caller's context: the session
// token, the user it belongs to, and the user's role and profile fields.
type Authorization struct {
	UserID string
	Token  string
	Role   string
	Name   string
	Email  string
	Gender string
}

// IsCustomer reports whether the authenticated user has the customer
// role, which is barred from publishing offers and applying for jobs.
func (a *Authorization) IsCustomer() bool {
	return a.Role == domain.RoleCustomer
}

// SessionVerifier resolves bearer tokens to authenticated sessions.
type SessionVerifier interface {
	// VerifyBearer parses an Authorization header value and looks up the
	// session for its token. Returns ErrInvalidToken if the header is
	// absent, not a Bearer scheme, or the token matches no session.
	VerifyBearer(ctx context.Context, authorizationHeader string) (*Authorization, error)
}

// sessionVerifier is the store-backed SessionVerifier implementation.
type sessionVerifier struct {
	sessions store.SessionStore
	logger   *slog.Logger
}

// NewSessionVerifier creates a SessionVerifier backed by the given
// session store. If logger is nil, a default logger will be used.
func NewSessionVerifier(sessions store.SessionStore, logger *slog.Logger) SessionVerifier {
	if sessions == nil {
		panic("sessions cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &sessionVerifier{
		sessions: sessions,
		logger:   logger.With(slog.String("component", "session_verifier")),
	}
}

// VerifyBearer implements SessionVerifier.VerifyBearer.
func (v *sessionVerifier) VerifyBearer(
	ctx context.Context,
	authorizationHeader string,
) (*Authorization, error) {
	log := logger.FromContextOrDefault(ctx, v.logger)

	token, ok := parseBearer(authorizationHeader)
	if !ok {
		log.Debug("missing or malformed authorization header")
		return nil, ErrInvalidToken
	}

	session, err := v.sessions.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			log.Debug("no active session for token")
			return nil, ErrInvalidToken
		}

		log.Error("session lookup failed",
			slog.String("error", err.Error()))
		return nil, err
	}

	return &Authorization{
		UserID: session.UserID,
		Token:  session.Token,
		Role:   session.Role,
		Name:   session.Name,
		Email:  session.Email,
		Gender: session.Gender,
	}, nil
}

// parseBearer extracts the token from an "Authorization: Bearer <token>"
// header value.
func parseBearer(header string) (string, bool) {
	if header == "" {
		return "", false
	}

	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}

	return parts[1], true
}

package service

import (
	"context"
	"log/slog"

	"github.com/unitip/unitip-api/internal/domain"
	"github.com/unitip/unitip-api/internal/platform/logger"
	"github.com/unitip/unitip-api/internal/store"
)

// Profile is the account profile as returned by the profile read.
type Profile struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Token  string `json:"token"`
	Role   string `json:"role"`
	Gender string `json:"gender"`
}

// ProfileService implements the account profile read and update.
type ProfileService struct {
	sessions store.SessionStore
	users    store.UserStore
	logger   *slog.Logger
}

// NewProfileService creates a new ProfileService with the given
// dependencies. If logger is nil, a default logger will be used.
func NewProfileService(
	sessions store.SessionStore,
	users store.UserStore,
	logger *slog.Logger,
) *ProfileService {
	if sessions == nil {
		panic("sessions cannot be nil")
	}
	if users == nil {
		panic("users cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &ProfileService{
		sessions: sessions,
		users:    users,
		logger:   logger.With(slog.String("component", "profile_service")),
	}
}

// Get reads the profile of the session identified by token.
// A token with no session surfaces as store.ErrSessionNotFound; since
// the caller has already authenticated, the API layer treats that as a
// server error rather than a 404.
func (s *ProfileService) Get(ctx context.Context, token string) (*Profile, error) {
	session, err := s.sessions.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	return &Profile{
		ID:     session.UserID,
		Name:   session.Name,
		Email:  session.Email,
		Token:  session.Token,
		Role:   session.Role,
		Gender: session.Gender,
	}, nil
}

// Update sets the user's name and gender and returns the updated row.
func (s *ProfileService) Update(
	ctx context.Context,
	userID, name, gender string,
) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.users.UpdateProfile(ctx, userID, name, gender)
	if err != nil {
		return nil, err
	}

	log.Debug("profile updated",
		slog.String("user_id", user.ID))
	return user, nil
}

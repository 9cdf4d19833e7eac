package store

import (
	"context"

	"github.com/unitip/unitip-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
// Account creation and deletion happen outside this service; only the
// mutable profile fields are ever written here.
type UserStore interface {
	// UpdateProfile sets the user's name and gender and returns the
	// updated row (ID, Name and Gender populated).
	// Returns ErrUserNotFound if the user does not exist.
	UpdateProfile(ctx context.Context, id, name, gender string) (*domain.User, error)
}

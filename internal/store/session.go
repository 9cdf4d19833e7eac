package store

import "context"

// AuthSession is the result of resolving a bearer token: the session
// row joined to its owning user. It carries everything the profile
// endpoint returns so a single lookup serves both authentication and
// the profile read.
type AuthSession struct {
	UserID string
	Token  string
	Role   string
	Name   string
	Email  string
	Gender string
}

// SessionStore defines the interface for session lookups.
// Sessions are issued outside this service and are read-only here.
type SessionStore interface {
	// GetByToken resolves a session token to the session and its user.
	// Returns ErrSessionNotFound if no session matches the token.
	GetByToken(ctx context.Context, token string) (*AuthSession, error)
}

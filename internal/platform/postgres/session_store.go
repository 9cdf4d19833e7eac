package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/unitip/unitip-api/internal/platform/logger"
	"github.com/unitip/unitip-api/internal/store"
)

// PostgresSessionStore implements the store.SessionStore interface
// using a PostgreSQL database as the storage backend.
type PostgresSessionStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresSessionStore creates a new PostgreSQL implementation of the
// SessionStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresSessionStore(db store.DBTX, logger *slog.Logger) *PostgresSessionStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresSessionStore{
		db:     db,
		logger: logger.With(slog.String("component", "session_store")),
	}
}

// Ensure PostgresSessionStore implements store.SessionStore interface
var _ store.SessionStore = (*PostgresSessionStore)(nil)

// GetByToken implements store.SessionStore.GetByToken
// It resolves a session token to the session row joined to its user.
// Returns store.ErrSessionNotFound if no session matches the token.
func (s *PostgresSessionStore) GetByToken(
	ctx context.Context,
	token string,
) (*store.AuthSession, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT u.id, u.name, u.email, us.token, us.role, COALESCE(u.gender, '')
		FROM user_sessions us
		INNER JOIN users u ON u.id = us.user_id
		WHERE us.token = $1
	`

	var session store.AuthSession
	err := s.db.QueryRowContext(ctx, query, token).Scan(
		&session.UserID,
		&session.Name,
		&session.Email,
		&session.Token,
		&session.Role,
		&session.Gender,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("no session matches token")
			return nil, store.ErrSessionNotFound
		}

		log.Error("failed to look up session",
			slog.String("error", err.Error()))
		return nil, err
	}

	return &session, nil
}

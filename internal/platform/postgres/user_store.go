package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/unitip/unitip-api/internal/domain"
	"github.com/unitip/unitip-api/internal/platform/logger"
	"github.com/unitip/unitip-api/internal/store"
)

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the
// UserStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresUserStore(db store.DBTX, logger *slog.Logger) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

// UpdateProfile implements store.UserStore.UpdateProfile
// It sets the user's name and gender and returns the updated row.
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) UpdateProfile(
	ctx context.Context,
	id, name, gender string,
) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := domain.ValidateProfileUpdate(name, gender); err != nil {
		log.Warn("profile validation failed during update",
			slog.String("error", err.Error()),
			slog.String("user_id", id))
		return nil, err
	}

	query := `
		UPDATE users
		SET name = $1, gender = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING id, name, COALESCE(gender, '')
	`

	var user domain.User
	err := s.db.QueryRowContext(ctx, query, name, gender, id).Scan(
		&user.ID,
		&user.Name,
		&user.Gender,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn("profile update matched no user",
				slog.String("user_id", id))
			return nil, store.ErrUserNotFound
		}

		log.Error("failed to update profile",
			slog.String("error", err.Error()),
			slog.String("user_id", id))
		return nil, err
	}

	log.Info("profile updated",
		slog.String("user_id", user.ID))
	return &user, nil
}

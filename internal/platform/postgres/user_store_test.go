package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unitip/unitip-api/internal/domain"
	"github.com/unitip/unitip-api/internal/store"
)

func newUserStoreWithMock(t *testing.T) (*PostgresUserStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	return NewPostgresUserStore(db, nil), mock
}

func TestUpdateProfile(t *testing.T) {
	s, mock := newUserStoreWithMock(t)

	mock.ExpectQuery("UPDATE users").
		WithArgs("Putri", "female", "user-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "gender"}).
			AddRow("user-1", "Putri", "female"))

	user, err := s.UpdateProfile(context.Background(), "user-1", "Putri", "female")
	require.NoError(t, err)

	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, "Putri", user.Name)
	assert.Equal(t, "female", user.Gender)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateProfileUserMissing(t *testing.T) {
	s, mock := newUserStoreWithMock(t)

	mock.ExpectQuery("UPDATE users").
		WithArgs("Putri", "female", "ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "gender"}))

	_, err := s.UpdateProfile(context.Background(), "ghost", "Putri", "female")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestUpdateProfileRejectsInvalidGender(t *testing.T) {
	s, mock := newUserStoreWithMock(t)

	_, err := s.UpdateProfile(context.Background(), "user-1", "Putri", "unknown")
	assert.ErrorIs(t, err, domain.ErrInvalidGender)

	// Validation happens before any query is issued.
	assert.NoError(t, mock.ExpectationsWereMet())
}

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unitip/unitip-api/internal/store"
)

func TestProfileGet(t *testing.T) {
	t.Parallel()

	sessions := &mockSessionStore{
		session: &store.AuthSession{
			UserID: "user-1",
			Token:  "tok-abc",
			Role:   "customer",
			Name:   "Rizky",
			Email:  "rizky@example.com",
			Gender: "male",
		},
	}
	svc := NewProfileService(sessions, &mockUserStore{}, nil)

	profile, err := svc.Get(context.Background(), "tok-abc")
	require.NoError(t, err)

	assert.Equal(t, "user-1", profile.ID)
	assert.Equal(t, "Rizky", profile.Name)
	assert.Equal(t, "rizky@example.com", profile.Email)
	assert.Equal(t, "tok-abc", profile.Token)
	assert.Equal(t, "customer", profile.Role)
	assert.Equal(t, "male", profile.Gender)
}

func TestProfileGetSessionGone(t *testing.T) {
	t.Parallel()

	sessions := &mockSessionStore{err: store.ErrSessionNotFound}
	svc := NewProfileService(sessions, &mockUserStore{}, nil)

	_, err := svc.Get(context.Background(), "tok-abc")
	assert.ErrorIs(t, err, store.ErrSessionNotFound)
}

func TestProfileUpdate(t *testing.T) {
	t.Parallel()

	users := &mockUserStore{}
	svc := NewProfileService(&mockSessionStore{}, users, nil)

	user, err := svc.Update(context.Background(), "user-1", "Putri", "female")
	require.NoError(t, err)

	assert.Equal(t, "user-1", users.gotID)
	assert.Equal(t, "Putri", user.Name)
	assert.Equal(t, "female", user.Gender)
}

func TestProfileUpdateUserMissing(t *testing.T) {
	t.Parallel()

	users := &mockUserStore{err: store.ErrUserNotFound}
	svc := NewProfileService(&mockSessionStore{}, users, nil)

	_, err := svc.Update(context.Background(), "ghost", "Putri", "female")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

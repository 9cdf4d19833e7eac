package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unitip/unitip-api/internal/service/auth"
)

// fakeVerifier returns a canned authorization or error.
type fakeVerifier struct {
	authz *auth.Authorization
	err   error

	gotHeader string
}

func (f *fakeVerifier) VerifyBearer(
	_ context.Context,
	header string,
) (*auth.Authorization, error) {
	f.gotHeader = header
	if f.err != nil {
		return nil, f.err
	}
	return f.authz, nil
}

func TestAuthenticatePassesAuthorizationDownstream(t *testing.T) {
	t.Parallel()

	verifier := &fakeVerifier{
		authz: &auth.Authorization{UserID: "user-1", Token: "tok", Role: "driver"},
	}
	m := NewAuthMiddleware(verifier)

	var gotAuthz *auth.Authorization
	handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuthz, _ = GetAuthorization(r)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/offers", nil)
	req.Header.Set("Authorization", "Bearer tok")
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Bearer tok", verifier.gotHeader)
	require.NotNil(t, gotAuthz)
	assert.Equal(t, "user-1", gotAuthz.UserID)
}

func TestAuthenticateRejectsInvalidToken(t *testing.T) {
	t.Parallel()

	m := NewAuthMiddleware(&fakeVerifier{err: auth.ErrInvalidToken})

	called := false
	handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/offers", nil)
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.False(t, called, "handler must not run for unauthenticated requests")
}

func TestAuthenticateStoreFailureIsServerError(t *testing.T) {
	t.Parallel()

	m := NewAuthMiddleware(&fakeVerifier{err: errors.New("connection refused")})

	handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts/profile", nil)
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}

func TestGetAuthorizationMissing(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := GetAuthorization(req)
	assert.False(t, ok)
}

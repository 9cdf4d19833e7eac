package shared

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithSuccess(t *testing.T) {
	t.Parallel()

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	RespondWithSuccess(recorder, req, map[string]any{"success": true, "id": "offer-1"})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "offer-1", body["id"])
}

func TestRespondWithBadRequestPreservesOrder(t *testing.T) {
	t.Parallel()

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", nil)

	RespondWithBadRequest(recorder, req, []FieldError{
		{Path: "title", Message: "Judul tidak boleh kosong!"},
		{Path: "price", Message: "Biaya tidak boleh negatif!"},
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var body ValidationErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
	require.Len(t, body.Errors, 2)
	assert.Equal(t, "title", body.Errors[0].Path)
	assert.Equal(t, "price", body.Errors[1].Path)
}

func TestRespondWithUnauthorized(t *testing.T) {
	t.Parallel()

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	RespondWithUnauthorized(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	var body MessageResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
	assert.NotEmpty(t, body.Message)
}

func TestRespondWithForbidden(t *testing.T) {
	t.Parallel()

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", nil)

	RespondWithForbidden(recorder, req, "Anda tidak memiliki akses untuk membuat offer!")

	assert.Equal(t, http.StatusForbidden, recorder.Code)

	var body MessageResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
	assert.Equal(t, "Anda tidak memiliki akses untuk membuat offer!", body.Message)
}

func TestRespondWithServerErrorHidesDetails(t *testing.T) {
	t.Parallel()

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	RespondWithServerError(recorder, req, errors.New("pq: connection refused to 10.0.0.3"))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "10.0.0.3")
}

func TestTraceIDRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := SetTraceID(context.Background())
	traceID := GetTraceID(ctx)
	assert.Len(t, traceID, TraceIDLength*2)

	// A second context gets a different ID.
	other := GetTraceID(SetTraceID(context.Background()))
	assert.NotEqual(t, traceID, other)
}

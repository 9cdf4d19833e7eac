// Package shared holds the response envelope and context helpers used
// by every API handler.
package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// FieldError is one entry of a validation failure response: the JSON
// path of the offending field and a human-readable message.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ValidationErrorResponse is the body of every 400 response.
type ValidationErrorResponse struct {
	Errors []FieldError `json:"errors"`
}

// MessageResponse is the body of 401, 403 and 500 responses.
type MessageResponse struct {
	Message string `json:"message"`
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithSuccess writes the payload with HTTP 200.
func RespondWithSuccess(w http.ResponseWriter, r *http.Request, data interface{}) {
	RespondWithJSON(w, r, http.StatusOK, data)
}

// RespondWithBadRequest writes a 400 response carrying the per-field
// validation errors, preserving their order.
func RespondWithBadRequest(w http.ResponseWriter, r *http.Request, errs []FieldError) {
	logClientError(r, http.StatusBadRequest, "validation failed")
	RespondWithJSON(w, r, http.StatusBadRequest, ValidationErrorResponse{Errors: errs})
}

// RespondWithUnauthorized writes a 401 response for a missing or
// invalid bearer token.
func RespondWithUnauthorized(w http.ResponseWriter, r *http.Request) {
	logClientError(r, http.StatusUnauthorized, "missing or invalid token")
	RespondWithJSON(w, r, http.StatusUnauthorized, MessageResponse{
		Message: "Invalid or missing authentication token",
	})
}

// RespondWithForbidden writes a 403 response with the given message.
func RespondWithForbidden(w http.ResponseWriter, r *http.Request, message string) {
	logClientError(r, http.StatusForbidden, message)
	RespondWithJSON(w, r, http.StatusForbidden, MessageResponse{Message: message})
}

// RespondWithServerError writes a generic 500 response. The underlying
// error is logged but never leaked to the client.
func RespondWithServerError(w http.ResponseWriter, r *http.Request, err error) {
	traceID := GetTraceID(r.Context())

	attrs := []slog.Attr{
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", http.StatusInternalServerError),
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	slog.LogAttrs(r.Context(), slog.LevelError, "API error response", attrs...)

	RespondWithJSON(w, r, http.StatusInternalServerError, MessageResponse{
		Message: "Internal server error",
	})
}

// logClientError records 4xx responses at debug level with the trace ID
// for correlation.
func logClientError(r *http.Request, status int, message string) {
	slog.Debug("sending error response",
		"status_code", status,
		"message", message,
		"trace_id", GetTraceID(r.Context()),
		"path", r.URL.Path,
		"method", r.Method)
}

package service

import "errors"

// Common service errors - sentinel errors used across service implementations.
// Callers use errors.Is to check for specific conditions; the API layer
// maps them to HTTP status codes.
var (
	// ErrRoleForbidden indicates the authenticated user's role is not
	// permitted to perform the operation (customers cannot publish
	// offers or apply for jobs). API layer maps this to HTTP 403.
	ErrRoleForbidden = errors.New("role is not permitted to perform this operation")

	// ErrInvalidListType indicates an offer listing was requested with a
	// type outside {all, single, multi}. API layer maps this to HTTP 400
	// with path "type".
	ErrInvalidListType = errors.New("invalid offer list type")
)

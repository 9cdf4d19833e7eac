package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in
	// the store. This is the generic version of the entity-specific not
	// found errors below.
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidEntity is returned when an entity fails validation or
	// references a row that does not exist (foreign key violation).
	// Check the wrapped error for specific details.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrNoID is returned when an insert that should hand back the new
	// row's ID yields nothing. Callers treat this as a server error.
	ErrNoID = errors.New("insert returned no id")

	// Entity-specific "not found" errors

	// ErrUserNotFound indicates that the requested user does not exist in the store.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrSessionNotFound indicates that no session matches the presented token.
	ErrSessionNotFound = fmt.Errorf("%w: session", ErrNotFound)
)

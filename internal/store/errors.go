package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when a lookup, update or delete targets a
	// user id or email that has no row in the users table.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyRegistered is returned when an insert or update violates
	// the unique index on users.email.
	ErrEmailAlreadyRegistered = errors.New("email already registered")
)

// ErrUnexpectedDB wraps every driver-level failure that has no domain meaning.
var ErrUnexpectedDB = errors.New("unexpected DB error")

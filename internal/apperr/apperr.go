// Package apperr defines the error taxonomy shared by services and handlers.
// Services return these sentinels (wrapped with context); handlers translate
// them into HTTP statuses.
package apperr

import "errors"

var (
	// ErrValidation: missing or malformed input, no store access attempted.
	ErrValidation = errors.New("validation error")

	// ErrConflict: a uniqueness invariant was violated (email, product id).
	ErrConflict = errors.New("already exists")

	// ErrAuthentication covers both "no such user" and "wrong password".
	// The single message is deliberate: responses must not reveal which
	// of the two failed.
	ErrAuthentication = errors.New("invalid email or password")

	// ErrNotFound: the referenced entity is absent.
	ErrNotFound = errors.New("not found")

	// ErrPersistence: the store is unreachable, timed out, or rejected the
	// operation. Also used for internal hashing/signing failures, which are
	// fatal to the current request only.
	ErrPersistence = errors.New("storage error")
)

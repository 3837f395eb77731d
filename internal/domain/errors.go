package domain

import "errors"

// Sentinel errors shared across collections. Controllers map these to
// status codes with errors.Is, so every failure mode stays explicit.
var (
	// ErrNotFound is returned when a lookup, update, or delete target does not exist.
	ErrNotFound = errors.New("not found")

	// ErrForbidden is returned when the caller's role does not permit the operation.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidInput is returned when a request is structurally valid JSON but
	// semantically unacceptable (e.g. missing required fields).
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidCredentials is returned on login with an unknown email or wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrDuplicateEmail is returned when creating a user with an email already in use.
	ErrDuplicateEmail = errors.New("email already in use")

	// ErrPersistence wraps a failed flush to durable storage. The in-memory
	// collection may already be ahead of disk when this is returned; no
	// rollback is attempted.
	ErrPersistence = errors.New("persistence failure")
)

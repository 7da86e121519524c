// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Business-rule failures, recovered locally and mapped to structured responses.
var (
	// ErrValidation indicates missing or empty required fields.
	ErrValidation = errors.New("validation failed")

	// ErrAlreadyExists indicates a unique constraint violation (email already registered).
	ErrAlreadyExists = errors.New("already exists")

	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrBadCredentials indicates a password mismatch for an existing user.
	// Externally it must be indistinguishable from ErrNotFound on login.
	ErrBadCredentials = errors.New("bad credentials")
)

// Authentication failures, mapped to HTTP 401.
var (
	// ErrMissingToken indicates the request carried no bearer credential.
	ErrMissingToken = errors.New("missing token")

	// ErrInvalidToken indicates a malformed token or a bad signature.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken indicates a well-signed token whose expiry has passed.
	ErrExpiredToken = errors.New("token expired")
)

// Internal faults, logged with detail and surfaced as a generic server error.
var (
	// ErrStorage indicates a storage-layer failure; no partial write is visible.
	ErrStorage = errors.New("storage failure")

	// ErrDecryption indicates ciphertext that is malformed, truncated or tampered.
	ErrDecryption = errors.New("decryption failed")
)

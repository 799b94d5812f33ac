// Package common defines shared constants and sentinel errors used across
// client and server layers of geoseek. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Lookup / join errors.
	ErrNotFound     = errors.New("game not found")
	ErrSessionEnded = errors.New("game already ended")

	// Command rejection errors (checked before any store write).
	ErrValidation    = errors.New("invalid game config")
	ErrNotAuthorized = errors.New("not authorized")
	ErrPrecondition  = errors.New("precondition not met")

	// Crypto errors (authentication tag mismatch, wrong code, tampering).
	ErrDecryptionFailed = errors.New("decryption failed")

	// Transient store failures; callers decide whether to retry.
	ErrStoreUnavailable = errors.New("store unavailable")

	// Auth errors (invalid or malformed store access token).
	ErrInvalidToken = errors.New("invalid token")
)

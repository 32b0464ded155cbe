// Package common defines shared constants and sentinel errors used across
// the RedHub client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Credential / session errors.
	ErrMalformedToken = errors.New("malformed token")
	ErrTokenExpired   = errors.New("token expired")
	ErrNotLoggedIn    = errors.New("not logged in")

	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Generic/internal flow control.
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("unauthorized")
)

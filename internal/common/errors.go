// Package common contains shared sentinel errors used across the
// healthtrack client layers. Callers should use errors.Is to match the
// sentinels and errors.As to inspect RemoteError values.
package common

import "errors"

var (
	// Session / auth errors.
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Remote collection errors.
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")

	// Transport-level errors (network unreachable, timeout).
	ErrUnavailable = errors.New("server unavailable")

	// Client-side errors that never reach the network.
	ErrValidation = errors.New("validation error")

	// Object storage errors.
	ErrUpload = errors.New("upload failed")
)

package service

import (
	"errors"
)

var (
	// ErrUnauthorized means the server rejected the request because the
	// token was missing, expired or invalid.
	ErrUnauthorized = errors.New("not authorized")

	// ErrNoToken means an update was attempted before any login succeeded.
	ErrNoToken = errors.New("no authentication token")

	ErrRequestRejected = errors.New("request rejected by server")
)

// AuthError is returned by login and refresh when the server did not issue
// a token. Message is the server-provided explanation.
type AuthError struct {
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	return "Login failed: " + e.Message
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// UpdateError is returned by an update that failed for any reason other
// than a failed re-authentication. Message is the server-provided
// explanation.
type UpdateError struct {
	Message string
	Err     error
}

func (e *UpdateError) Error() string {
	return "Update failed: " + e.Message
}

func (e *UpdateError) Unwrap() error {
	return e.Err
}

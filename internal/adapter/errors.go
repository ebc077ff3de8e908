package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	// ErrRequestRejected is returned when the server answered with a 2xx
	// status but the envelope status is not "SUCCESS".
	ErrRequestRejected = errors.New("request rejected")

	// ErrEmptyToken is returned when a successful login carries no token.
	ErrEmptyToken = errors.New("empty token in login response")
)

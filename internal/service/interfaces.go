// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SessionService defines the Session Manager: it owns the single
// authentication token of the process and is the only component allowed to
// replace it.
type SessionService interface {
	// Login authenticates the configured identity against the server and
	// replaces the held token with the one returned. A successful or failed
	// record is appended to the request log in either case.
	// Returns *AuthError if the request fails or the server does not answer
	// with status "SUCCESS". Login never retries.
	Login(ctx context.Context) error

	// Refresh re-authenticates after the server rejected the held token.
	// It has the same contract as Login.
	Refresh(ctx context.Context) error

	// Token returns the most recently obtained token, or an empty string if
	// no login has succeeded yet.
	Token() string

	// HasToken reports whether a login has succeeded.
	HasToken() bool
}

// UpdateService defines the single activity-count update operation.
type UpdateService interface {
	// SendUpdate draws a random count in the configured range and reports it
	// to the server using the session token. When the token is missing or
	// rejected as unauthorized, it refreshes the session exactly once and
	// retries the same update exactly once.
	// Returns *AuthError if the refresh fails, or *UpdateError for any other
	// failure, including a second unauthorized answer.
	SendUpdate(ctx context.Context) error
}

// UpdateScheduler defines the long-running loop that paces updates.
type UpdateScheduler interface {
	// Run executes update cycles until ctx is cancelled. Errors inside a
	// cycle are logged and followed by the retry delay; they never stop the
	// loop.
	Run(ctx context.Context)

	// RunCycle executes a single cycle: builds a fresh delay schedule and
	// dispatches its updates sequentially. Returns the first error met.
	RunCycle(ctx context.Context) error
}

// Rand is the source of randomness used for counts and delays.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	// IntN returns a uniform integer in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-count-updater application. It aggregates all sub-configurations and is
// populated by merging built-in defaults with values from environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the identity of the single account the client acts for.
	App App `envPrefix:"APP_"`

	// Adapter holds the remote endpoints and the outbound request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Updates holds the bounds of the randomly drawn activity count.
	Updates Updates `envPrefix:"UPDATES_"`

	// Workers holds the pacing settings of the update scheduler.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from defaults, environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds account-level configuration values.
type App struct {
	// IdentityAddress is sent in the login request body and identifies the
	// account whose activity count is updated.
	// Env: APP_IDENTITY_ADDRESS
	IdentityAddress string `env:"IDENTITY_ADDRESS"`
}

// Adapter holds configuration of the outbound HTTP transport.
type Adapter struct {
	// LoginURL is the absolute URL of the login endpoint (POST).
	// Env: ADAPTER_LOGIN_URL
	LoginURL string `env:"LOGIN_URL"`

	// UpdateURL is the absolute URL of the count update endpoint (PUT).
	// Env: ADAPTER_UPDATE_URL
	UpdateURL string `env:"UPDATE_URL"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request (e.g. "30s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Updates holds the inclusive range the activity count is drawn from.
type Updates struct {
	// MinCount is the smallest count that may be sent.
	// Env: UPDATES_MIN_COUNT
	MinCount int `env:"MIN_COUNT"`

	// MaxCount is the largest count that may be sent.
	// Env: UPDATES_MAX_COUNT
	MaxCount int `env:"MAX_COUNT"`
}

// Workers holds configuration of the update scheduler.
type Workers struct {
	// RetryDelay is the pause after a failed cycle before the next cycle
	// starts.
	// Env: WORKERS_RETRY_DELAY
	RetryDelay time.Duration `env:"RETRY_DELAY"`

	// RequestDelay is the legacy fixed delay between updates. The scheduler
	// paces requests with its own delay schedule and does not read it.
	// Env: WORKERS_REQUEST_DELAY
	RequestDelay time.Duration `env:"REQUEST_DELAY"`

	// ExtraRequests is the number of additional, randomly delayed updates
	// sent after the scheduled slots of every cycle. Zero by default.
	// Env: WORKERS_EXTRA_REQUESTS
	ExtraRequests int `env:"EXTRA_REQUESTS"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid adapter settings
	// (for example, a missing endpoint URL or a zero request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidAppConfigs indicates invalid account settings
	// (for example, an empty identity address).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidUpdatesConfigs indicates an invalid count range.
	ErrInvalidUpdatesConfigs = errors.New("invalid updates configuration")
	// ErrInvalidWorkerConfigs indicates invalid scheduler settings
	// (for example, zero retry delay).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)

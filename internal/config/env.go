package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from the process environment. Fields are mapped via
// the `env` and `envPrefix` tags of [StructuredConfig] and its nested types.
func parseEnv(cfg *StructuredConfig) error {
	return parseEnvFrom(cfg, nil)
}

// parseEnvFrom is parseEnv reading from environ instead of the process
// environment. A nil environ means the process environment.
func parseEnvFrom(cfg *StructuredConfig, environ map[string]string) error {
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

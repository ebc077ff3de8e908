// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or one of the ErrInvalid*
// sentinels (wrapped with details) otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.IdentityAddress == "" {
		return fmt.Errorf("%w: identity address is required", ErrInvalidAppConfigs)
	}

	if err := validateURL(cfg.Adapter.LoginURL); err != nil {
		return fmt.Errorf("%w: login url: %v", ErrInvalidAdapterConfigs, err)
	}
	if err := validateURL(cfg.Adapter.UpdateURL); err != nil {
		return fmt.Errorf("%w: update url: %v", ErrInvalidAdapterConfigs, err)
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}

	if cfg.Updates.MinCount < 0 || cfg.Updates.MinCount > cfg.Updates.MaxCount {
		return fmt.Errorf("%w: need 0 <= min count <= max count, got [%d, %d]",
			ErrInvalidUpdatesConfigs, cfg.Updates.MinCount, cfg.Updates.MaxCount)
	}

	if cfg.Workers.RetryDelay <= 0 {
		return fmt.Errorf("%w: retry delay must be positive", ErrInvalidWorkerConfigs)
	}
	if cfg.Workers.ExtraRequests < 0 {
		return fmt.Errorf("%w: extra requests must not be negative", ErrInvalidWorkerConfigs)
	}

	return nil
}

func validateURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("empty address")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("address must include host and scheme")
	}

	return nil
}

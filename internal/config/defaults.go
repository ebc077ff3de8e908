// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	DefaultLoginURL       = "https://dppj1ypy65ita.cloudfront.net/v1/user/login"
	DefaultUpdateURL      = "https://dppj1ypy65ita.cloudfront.net/v1/user/user-count"
	DefaultRequestTimeout = 30 * time.Second

	DefaultMinCount = 200
	DefaultMaxCount = 300

	DefaultRetryDelay   = 10 * time.Second
	DefaultRequestDelay = 100 * time.Millisecond
)

// Defaults returns the static configuration the updater runs with when no
// other source overrides it. The identity address has no default and must
// be provided.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			LoginURL:       DefaultLoginURL,
			UpdateURL:      DefaultUpdateURL,
			RequestTimeout: DefaultRequestTimeout,
		},
		Updates: Updates{
			MinCount: DefaultMinCount,
			MaxCount: DefaultMaxCount,
		},
		Workers: Workers{
			RetryDelay:   DefaultRetryDelay,
			RequestDelay: DefaultRequestDelay,
		},
	}
}

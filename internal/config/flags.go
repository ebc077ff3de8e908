package config

import (
	"flag"
	"fmt"
	"time"
)

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-identity identity address used to log in
//	-login-url login endpoint URL
//	-update-url count update endpoint URL
//	-request-timeout outbound request timeout (e.g., "30s", "1m")
//	-min-count smallest count sent per update
//	-max-count largest count sent per update
//	-retry-delay pause after a failed cycle (e.g., "10s")
//	-request-delay legacy per-request delay, not used by the scheduler
//	-extra-requests additional randomly delayed updates per cycle
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var identityAddress string
	var loginURL, updateURL string
	var requestTimeout time.Duration
	var minCount, maxCount int
	var retryDelay, requestDelay time.Duration
	var extraRequests int
	var jsonConfigPath string

	fs := flag.NewFlagSet("updater", flag.ContinueOnError)
	fs.StringVar(&identityAddress, "identity", "", "Identity address used to log in")
	fs.StringVar(&loginURL, "login-url", "", "Login endpoint URL")
	fs.StringVar(&updateURL, "update-url", "", "Count update endpoint URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.IntVar(&minCount, "min-count", 0, "Smallest count sent per update")
	fs.IntVar(&maxCount, "max-count", 0, "Largest count sent per update")
	fs.DurationVar(&retryDelay, "retry-delay", 0, "Pause after a failed cycle (e.g., 10s)")
	fs.DurationVar(&requestDelay, "request-delay", 0, "Legacy per-request delay (unused)")
	fs.IntVar(&extraRequests, "extra-requests", 0, "Additional randomly delayed updates per cycle")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			IdentityAddress: identityAddress,
		},
		Adapter: Adapter{
			LoginURL:       loginURL,
			UpdateURL:      updateURL,
			RequestTimeout: requestTimeout,
		},
		Updates: Updates{
			MinCount: minCount,
			MaxCount: maxCount,
		},
		Workers: Workers{
			RetryDelay:    retryDelay,
			RequestDelay:  requestDelay,
			ExtraRequests: extraRequests,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

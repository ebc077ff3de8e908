package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const userAgent = "go-count-updater"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent resty-based client that sends and
// accepts JSON. A positive timeout bounds every request; zero leaves requests
// bounded by their context only.
//
// Example usage:
//
//	client := utils.NewHTTPClient(30 * time.Second)
//	resp, err := client.R().SetBody(req).Post(loginURL)
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent)

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}

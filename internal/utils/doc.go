// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes the resty-based HTTP client, unverified JWT expiry parsing and
// record identifier generation.
package utils

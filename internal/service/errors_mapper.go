// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-count-updater/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return fmt.Errorf("%w: %s", ErrUnauthorized, extractBody(err))
	case errors.Is(err, adapter.ErrRequestRejected):
		return fmt.Errorf("%w: %s", ErrRequestRejected, extractBody(err))
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}

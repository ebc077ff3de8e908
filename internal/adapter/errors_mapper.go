package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-count-updater/models"
	"github.com/go-resty/resty/v2"
)

// unauthorizedMarker is the fragment the server puts into the message of a
// request made with a missing or expired token.
const unauthorizedMarker = "not authorized"

func mapHTTPError(resp *resty.Response, message string) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := message
	if body == "" {
		body = strings.TrimSpace(string(resp.Body()))
	}
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	if isUnauthorizedMessage(body) {
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrTooManyRequests, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, body)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

// checkEnvelope rejects a 2xx response whose status field is not "SUCCESS".
func checkEnvelope[T any](env models.Envelope[T]) error {
	if env.Status == models.StatusSuccess {
		return nil
	}

	msg := env.Message
	if msg == "" {
		msg = fmt.Sprintf("status %q", env.Status)
	}

	if isUnauthorizedMessage(msg) {
		return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	}
	return fmt.Errorf("%w: %s", ErrRequestRejected, msg)
}

func isUnauthorizedMessage(msg string) bool {
	return strings.Contains(strings.ToLower(msg), unauthorizedMarker)
}

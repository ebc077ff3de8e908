package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-count-updater/internal/config"
	"github.com/MKhiriev/go-count-updater/internal/logger"
	"github.com/MKhiriev/go-count-updater/internal/utils"
	"github.com/MKhiriev/go-count-updater/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	loginURL  string
	updateURL string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the login and update URLs from cfg and
// configures the underlying HTTP client with the request timeout.
//
// Returns an error if either URL is empty or cannot be parsed as a valid
// absolute URL.
func NewHTTPServerAdapter(cfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	loginURL, err := normalizeURL(cfg.LoginURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter login url: %w", err)
	}
	updateURL, err := normalizeURL(cfg.UpdateURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter update url: %w", err)
	}

	client := utils.NewHTTPClient(cfg.RequestTimeout)

	return &httpServerAdapter{
		client:    client,
		loginURL:  loginURL,
		updateURL: updateURL,
		logger:    logger,
	}, nil
}

func normalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Login implements [ServerAdapter]. It POSTs {"identityAddress": ...} to the
// login URL and returns data.token. When the token is a JWT its unverified
// "exp" claim is copied to [models.Token.ExpiresAt].
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		Post(h.loginURL)
	if err != nil {
		return models.Token{}, fmt.Errorf("login request: %w", err)
	}

	env, err := decodeEnvelope[models.LoginData](resp)
	if err != nil {
		return models.Token{}, err
	}

	signed := strings.TrimSpace(env.Data.Token)
	if signed == "" {
		return models.Token{}, ErrEmptyToken
	}

	token := models.Token{SignedString: signed}
	if exp, err := utils.ParseTokenExpiry(signed); err == nil {
		token.ExpiresAt = exp
	} else {
		h.logger.Debug().Err(err).Msg("token carries no readable expiry")
	}

	return token, nil
}

// UpdateCount implements [ServerAdapter]. It PUTs {"count": n} to the update
// URL with an "Authorization: Bearer <token>" header and returns the decoded
// data payload.
func (h *httpServerAdapter) UpdateCount(ctx context.Context, token string, req models.UpdateRequest) (models.UpdateData, error) {
	resp, err := h.authedRequest(ctx, token).
		SetBody(req).
		Put(h.updateURL)
	if err != nil {
		return models.UpdateData{}, fmt.Errorf("update request: %w", err)
	}

	env, err := decodeEnvelope[models.UpdateData](resp)
	if err != nil {
		return models.UpdateData{}, err
	}

	return env.Data, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context, token string) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token = strings.TrimSpace(token); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// decodeEnvelope decodes the response body whatever the status code is, so
// that the server message is available for error mapping.
func decodeEnvelope[T any](resp *resty.Response) (models.Envelope[T], error) {
	var env models.Envelope[T]
	decodeErr := json.Unmarshal(resp.Body(), &env)

	if err := mapHTTPError(resp, env.Message); err != nil {
		return env, err
	}
	if decodeErr != nil {
		return env, fmt.Errorf("decode response: %w", decodeErr)
	}

	return env, checkEnvelope(env)
}

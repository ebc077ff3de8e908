// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the remote activity service.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes and from
// the "status"/"message" fields of the response envelope by mapHTTPError and
// checkEnvelope, so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for an expired token).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-count-updater/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the remote
// activity service. Implementations are stateless with respect to
// authentication: the caller owns the token and passes it explicitly.
type ServerAdapter interface {
	// Login authenticates the account described by req. On success it returns
	// the token issued by the server. Returns an error if the request fails,
	// the server responds with a non-2xx status, or the response status is not
	// "SUCCESS".
	Login(ctx context.Context, req models.LoginRequest) (models.Token, error)

	// UpdateCount reports req.Count activities for the account identified by
	// token and returns the server-side totals after the update. Returns
	// [ErrUnauthorized] (wrapped) when the server rejects the token, or
	// another error if the request fails.
	UpdateCount(ctx context.Context, token string, req models.UpdateRequest) (models.UpdateData, error)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-count-updater/internal/adapter"
	"github.com/MKhiriev/go-count-updater/internal/logger"
	"github.com/MKhiriev/go-count-updater/internal/store"
	"github.com/MKhiriev/go-count-updater/models"
)

type sessionService struct {
	adapter         adapter.ServerAdapter
	identityAddress string
	recorder        *requestRecorder
	logger          *logger.Logger

	mu    sync.RWMutex
	token models.Token
}

func NewSessionService(serverAdapter adapter.ServerAdapter, identityAddress string, requestLog store.RequestLog, logger *logger.Logger) SessionService {
	return &sessionService{
		adapter:         serverAdapter,
		identityAddress: identityAddress,
		recorder:        newRequestRecorder(requestLog, logger),
		logger:          logger,
	}
}

func (s *sessionService) Login(ctx context.Context) error {
	token, err := s.adapter.Login(ctx, models.LoginRequest{IdentityAddress: s.identityAddress})
	if err != nil {
		authErr := &AuthError{Message: extractBody(err), Err: mapAdapterError(err)}
		s.recorder.failed(models.ActionLogin, map[string]any{
			"error": authErr.Error(),
		})
		return authErr
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	fields := map[string]any{"message": "Login successful"}
	if !token.ExpiresAt.IsZero() {
		fields["token_expires_at"] = token.ExpiresAt.UTC()
	}
	s.recorder.successful(models.ActionLogin, fields)

	return nil
}

func (s *sessionService) Refresh(ctx context.Context) error {
	s.logger.Info().Msg("re-authenticating")
	return s.Login(ctx)
}

func (s *sessionService) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token.SignedString
}

func (s *sessionService) HasToken() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.token.IsEmpty()
}

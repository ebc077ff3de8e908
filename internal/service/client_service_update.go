// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-count-updater/internal/adapter"
	"github.com/MKhiriev/go-count-updater/internal/logger"
	"github.com/MKhiriev/go-count-updater/internal/store"
	"github.com/MKhiriev/go-count-updater/models"
	"github.com/sethvargo/go-retry"
)

// maxReauthRetries bounds how many times a single update may be resent after
// a re-authentication.
const maxReauthRetries = 1

const reauthMessage = "Token expired, re-authenticating..."

type updateService struct {
	adapter  adapter.ServerAdapter
	session  SessionService
	recorder *requestRecorder
	rng      Rand

	minCount int
	maxCount int

	logger *logger.Logger
}

func NewUpdateService(
	serverAdapter adapter.ServerAdapter,
	session SessionService,
	requestLog store.RequestLog,
	rng Rand,
	minCount, maxCount int,
	logger *logger.Logger,
) UpdateService {
	return &updateService{
		adapter:  serverAdapter,
		session:  session,
		recorder: newRequestRecorder(requestLog, logger),
		rng:      rng,
		minCount: minCount,
		maxCount: maxCount,
		logger:   logger,
	}
}

func (s *updateService) SendUpdate(ctx context.Context) error {
	count := randomInRange(s.rng, s.minCount, s.maxCount)
	req := models.UpdateRequest{Count: count}

	attempt := 0
	backoff := retry.WithMaxRetries(maxReauthRetries, retry.BackoffFunc(func() (time.Duration, bool) {
		return 0, false
	}))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		if attempt > 1 {
			// an AuthError is not retryable and leaves retry.Do as is
			if err := s.session.Refresh(ctx); err != nil {
				return err
			}
		}

		if !s.session.HasToken() {
			if attempt == 1 {
				s.logger.Warn().Msg("no token held, authenticating before update")
				return retry.RetryableError(ErrNoToken)
			}
			return s.fail(ErrNoToken)
		}

		data, err := s.adapter.UpdateCount(ctx, s.session.Token(), req)
		if err != nil {
			if errors.Is(err, adapter.ErrUnauthorized) && attempt == 1 {
				s.recorder.failed(models.ActionUpdate, map[string]any{
					"message":    reauthMessage,
					"count_sent": count,
				})
				return retry.RetryableError(mapAdapterError(err))
			}
			return s.fail(err)
		}

		s.recorder.successful(models.ActionUpdate, map[string]any{
			"count_sent":       count,
			"total_user_count": data.UserData.Count,
			"contribution":     Contribution(data.UserData.Count, data.LeaderboardData.Count),
			"is_active":        activityLabel(data.UserData.IsActive),
		})
		return nil
	})
}

func (s *updateService) fail(err error) error {
	updErr := &UpdateError{Message: extractBody(err), Err: mapAdapterError(err)}
	s.recorder.failed(models.ActionUpdate, map[string]any{
		"error": updErr.Error(),
	})
	return updErr
}

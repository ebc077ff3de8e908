// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-count-updater/internal/logger"
)

type updateScheduler struct {
	updates UpdateService
	rng     Rand

	retryDelay    time.Duration
	extraRequests int

	sleep  sleepFunc
	logger *logger.Logger

	cycle int
}

// NewUpdateScheduler creates an UpdateScheduler that dispatches updates
// through updates. It is idle until Run is called.
func NewUpdateScheduler(updates UpdateService, rng Rand, retryDelay time.Duration, extraRequests int, logger *logger.Logger) UpdateScheduler {
	return &updateScheduler{
		updates:       updates,
		rng:           rng,
		retryDelay:    retryDelay,
		extraRequests: extraRequests,
		sleep:         sleepContext,
		logger:        logger,
	}
}

// Run implements UpdateScheduler and workers.Worker. A failed cycle is
// abandoned, never resumed: after the retry delay a fresh cycle starts.
func (s *updateScheduler) Run(ctx context.Context) {
	for ctx.Err() == nil {
		err := s.RunCycle(ctx)
		if err == nil {
			continue
		}
		if ctx.Err() != nil {
			break
		}

		s.logger.Err(err).Int("cycle", s.cycle).Msg("error during execution")
		s.logger.Info().Msgf("retrying in %d seconds", int(s.retryDelay/time.Second))
		if err = s.sleep(ctx, s.retryDelay); err != nil {
			break
		}
	}

	s.logger.Info().Int("cycles", s.cycle).Msg("update scheduler stopped")
}

// RunCycle implements UpdateScheduler.
func (s *updateScheduler) RunCycle(ctx context.Context) error {
	s.cycle++
	s.logger.Info().Msgf("cycle %d: starting updates", s.cycle)

	schedule, adjusted := BuildSchedule(s.rng)
	if adjusted {
		s.logger.Warn().Ints("delays", schedule).Msg("adjustment required")
	}
	s.logger.Info().Ints("delays", schedule).Int("total", schedule.Sum()).Msg("delay schedule")

	for i, d := range schedule.Durations() {
		if err := s.dispatch(ctx, d); err != nil {
			return fmt.Errorf("cycle %d, update %d: %w", s.cycle, i+1, err)
		}
	}

	for i := range s.extraRequests {
		d := time.Duration(RandomDelay(s.rng)) * time.Second
		if err := s.dispatch(ctx, d); err != nil {
			return fmt.Errorf("cycle %d, extra update %d: %w", s.cycle, i+1, err)
		}
	}

	return nil
}

func (s *updateScheduler) dispatch(ctx context.Context, delay time.Duration) error {
	if err := s.updates.SendUpdate(ctx); err != nil {
		return err
	}
	s.logger.Debug().Dur("delay", delay).Msg("waiting before next update")
	return s.sleep(ctx, delay)
}

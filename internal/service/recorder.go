// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"strings"
	"time"

	"github.com/MKhiriev/go-count-updater/internal/logger"
	"github.com/MKhiriev/go-count-updater/internal/store"
	"github.com/MKhiriev/go-count-updater/internal/utils"
	"github.com/MKhiriev/go-count-updater/models"
)

// requestRecorder writes every outcome both to the request log and to the
// console.
type requestRecorder struct {
	requestLog store.RequestLog
	ids        *utils.UUIDGenerator
	now        func() time.Time
	logger     *logger.Logger
}

func newRequestRecorder(requestLog store.RequestLog, logger *logger.Logger) *requestRecorder {
	return &requestRecorder{
		requestLog: requestLog,
		ids:        utils.NewUUIDGenerator(),
		now:        time.Now,
		logger:     logger,
	}
}

func (r *requestRecorder) successful(action models.Action, fields map[string]any) models.UpdateRecord {
	return r.append(action, models.OutcomeSuccessful, fields)
}

func (r *requestRecorder) failed(action models.Action, fields map[string]any) models.UpdateRecord {
	return r.append(action, models.OutcomeFailed, fields)
}

func (r *requestRecorder) append(action models.Action, outcome models.Outcome, fields map[string]any) models.UpdateRecord {
	rec := models.UpdateRecord{
		ID:        r.ids.Generate(),
		Timestamp: r.now().UTC(),
		Action:    action,
		Outcome:   outcome,
		Fields:    fields,
	}
	r.requestLog.Append(rec)

	ev := r.logger.Info()
	if outcome != models.OutcomeSuccessful {
		ev = r.logger.Error()
	}
	ev.Str("record_id", rec.ID).
		Str("action", string(action)).
		Fields(fields).
		Msg(strings.ToUpper(string(outcome)))

	return rec
}

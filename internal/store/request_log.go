// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"slices"
	"sync"

	"github.com/MKhiriev/go-count-updater/models"
)

type memoryRequestLog struct {
	mu         sync.RWMutex
	successful []models.UpdateRecord
	failed     []models.UpdateRecord
}

// NewRequestLog returns an empty in-memory [RequestLog]. The sequences grow
// without bound and are never pruned.
func NewRequestLog() RequestLog {
	return &memoryRequestLog{}
}

func (l *memoryRequestLog) Append(rec models.UpdateRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if rec.Outcome == models.OutcomeSuccessful {
		l.successful = append(l.successful, rec)
		return
	}
	l.failed = append(l.failed, rec)
}

func (l *memoryRequestLog) Successful() []models.UpdateRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.successful)
}

func (l *memoryRequestLog) Failed() []models.UpdateRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.failed)
}

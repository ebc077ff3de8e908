// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-count-updater/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(id string, outcome models.Outcome) models.UpdateRecord {
	return models.UpdateRecord{
		ID:        id,
		Timestamp: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Action:    models.ActionUpdate,
		Outcome:   outcome,
	}
}

func TestRequestLog_Empty(t *testing.T) {
	l := NewRequestLog()

	assert.Empty(t, l.Successful())
	assert.Empty(t, l.Failed())
}

func TestRequestLog_AppendSplitsByOutcome(t *testing.T) {
	l := NewRequestLog()

	l.Append(record("1", models.OutcomeSuccessful))
	l.Append(record("2", models.OutcomeFailed))
	l.Append(record("3", models.OutcomeSuccessful))
	l.Append(record("4", models.Outcome("weird")))

	succ := l.Successful()
	fail := l.Failed()

	require.Len(t, succ, 2)
	require.Len(t, fail, 2)
	assert.Equal(t, "1", succ[0].ID)
	assert.Equal(t, "3", succ[1].ID)
	assert.Equal(t, "2", fail[0].ID)
	assert.Equal(t, "4", fail[1].ID, "unknown outcome goes to the failed sequence")
}

func TestRequestLog_ReturnsCopies(t *testing.T) {
	l := NewRequestLog()
	l.Append(record("1", models.OutcomeSuccessful))

	got := l.Successful()
	got[0].ID = "mutated"

	assert.Equal(t, "1", l.Successful()[0].ID)
}

func TestRequestLog_ConcurrentAppend(t *testing.T) {
	l := NewRequestLog()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			outcome := models.OutcomeSuccessful
			if i%2 == 0 {
				outcome = models.OutcomeFailed
			}
			l.Append(record("x", outcome))
		}(i)
	}
	wg.Wait()

	assert.Len(t, l.Successful(), 25)
	assert.Len(t, l.Failed(), 25)
}

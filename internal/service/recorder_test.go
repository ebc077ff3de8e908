package service

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-count-updater/internal/logger"
	"github.com/MKhiriev/go-count-updater/internal/mock"
	"github.com/MKhiriev/go-count-updater/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRequestRecorder_Append(t *testing.T) {
	ctrl := gomock.NewController(t)
	requestLog := mock.NewMockRequestLog(ctrl)

	rec := newRequestRecorder(requestLog, logger.Nop())
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.FixedZone("UTC+3", 3*3600))
	rec.now = func() time.Time { return fixed }

	var appended []models.UpdateRecord
	requestLog.EXPECT().Append(gomock.Any()).
		Do(func(r models.UpdateRecord) { appended = append(appended, r) }).
		Times(2)

	ok := rec.successful(models.ActionUpdate, map[string]any{"count_sent": 250})
	failed := rec.failed(models.ActionLogin, map[string]any{"error": "Login failed: nope"})

	assert.Equal(t, []models.UpdateRecord{ok, failed}, appended)

	assert.Equal(t, models.OutcomeSuccessful, ok.Outcome)
	assert.Equal(t, models.ActionUpdate, ok.Action)
	assert.Equal(t, models.OutcomeFailed, failed.Outcome)
	assert.Equal(t, models.ActionLogin, failed.Action)

	assert.NotEmpty(t, ok.ID)
	assert.NotEqual(t, ok.ID, failed.ID)
	assert.True(t, fixed.Equal(ok.Timestamp))
	assert.Equal(t, time.UTC, ok.Timestamp.Location())
}

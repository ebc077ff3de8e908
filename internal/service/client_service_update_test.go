// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-count-updater/internal/adapter"
	"github.com/MKhiriev/go-count-updater/internal/logger"
	"github.com/MKhiriev/go-count-updater/internal/mock"
	"github.com/MKhiriev/go-count-updater/internal/store"
	"github.com/MKhiriev/go-count-updater/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type updateSvcDeps struct {
	adapter    *mock.MockServerAdapter
	session    *mock.MockSessionService
	rng        *mock.MockRand
	requestLog store.RequestLog
}

func newTestUpdateSvc(t *testing.T, ctrl *gomock.Controller) (UpdateService, updateSvcDeps) {
	t.Helper()
	deps := updateSvcDeps{
		adapter:    mock.NewMockServerAdapter(ctrl),
		session:    mock.NewMockSessionService(ctrl),
		rng:        mock.NewMockRand(ctrl),
		requestLog: store.NewRequestLog(),
	}

	svc := NewUpdateService(deps.adapter, deps.session, deps.requestLog, deps.rng, 200, 300, logger.Nop())
	return svc, deps
}

func sampleUpdateData() models.UpdateData {
	return models.UpdateData{
		UserData:        models.UserData{Count: 50, IsActive: true},
		LeaderboardData: models.LeaderboardData{Count: 200},
	}
}

func unauthorizedErr() error {
	return fmt.Errorf("%w: %s", adapter.ErrUnauthorized, "User not authorized")
}

func TestUpdateService_SendUpdate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, deps := newTestUpdateSvc(t, ctrl)

	gomock.InOrder(
		// 101 values in [200, 300]
		deps.rng.EXPECT().IntN(101).Return(42),
		deps.session.EXPECT().HasToken().Return(true),
		deps.session.EXPECT().Token().Return("T"),
		deps.adapter.EXPECT().
			UpdateCount(gomock.Any(), "T", models.UpdateRequest{Count: 242}).
			Return(sampleUpdateData(), nil),
	)

	require.NoError(t, svc.SendUpdate(context.Background()))

	assert.Empty(t, deps.requestLog.Failed())
	successful := deps.requestLog.Successful()
	require.Len(t, successful, 1)

	rec := successful[0]
	assert.Equal(t, models.ActionUpdate, rec.Action)
	assert.Equal(t, 242, rec.Fields["count_sent"])
	assert.Equal(t, int64(50), rec.Fields["total_user_count"])
	assert.Equal(t, "25.00%", rec.Fields["contribution"])
	assert.Equal(t, "Active", rec.Fields["is_active"])
}

func TestUpdateService_SendUpdate_InactiveEmptyLeaderboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, deps := newTestUpdateSvc(t, ctrl)

	deps.rng.EXPECT().IntN(101).Return(0)
	deps.session.EXPECT().HasToken().Return(true)
	deps.session.EXPECT().Token().Return("T")
	deps.adapter.EXPECT().
		UpdateCount(gomock.Any(), "T", models.UpdateRequest{Count: 200}).
		Return(models.UpdateData{UserData: models.UserData{Count: 3}}, nil)

	require.NoError(t, svc.SendUpdate(context.Background()))

	successful := deps.requestLog.Successful()
	require.Len(t, successful, 1)
	assert.Equal(t, "N/A", successful[0].Fields["contribution"])
	assert.Equal(t, "Inactive", successful[0].Fields["is_active"])
}

func TestUpdateService_SendUpdate_UnauthorizedReauthenticatesOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, deps := newTestUpdateSvc(t, ctrl)

	gomock.InOrder(
		deps.rng.EXPECT().IntN(101).Return(7),
		deps.session.EXPECT().HasToken().Return(true),
		deps.session.EXPECT().Token().Return("expired"),
		deps.adapter.EXPECT().
			UpdateCount(gomock.Any(), "expired", models.UpdateRequest{Count: 207}).
			Return(models.UpdateData{}, unauthorizedErr()),
		deps.session.EXPECT().Refresh(gomock.Any()).Return(nil),
		deps.session.EXPECT().HasToken().Return(true),
		deps.session.EXPECT().Token().Return("fresh"),
		// the same count is resent
		deps.adapter.EXPECT().
			UpdateCount(gomock.Any(), "fresh", models.UpdateRequest{Count: 207}).
			Return(sampleUpdateData(), nil),
	)

	require.NoError(t, svc.SendUpdate(context.Background()))

	failed := deps.requestLog.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, "Token expired, re-authenticating...", failed[0].Fields["message"])

	successful := deps.requestLog.Successful()
	require.Len(t, successful, 1)
	assert.Equal(t, 207, successful[0].Fields["count_sent"])
}

func TestUpdateService_SendUpdate_UnauthorizedTwiceStops(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, deps := newTestUpdateSvc(t, ctrl)

	deps.rng.EXPECT().IntN(101).Return(1)
	deps.session.EXPECT().HasToken().Return(true).Times(2)
	deps.session.EXPECT().Token().Return("T").Times(2)
	deps.session.EXPECT().Refresh(gomock.Any()).Return(nil).Times(1)
	deps.adapter.EXPECT().
		UpdateCount(gomock.Any(), "T", models.UpdateRequest{Count: 201}).
		Return(models.UpdateData{}, unauthorizedErr()).
		Times(2)

	err := svc.SendUpdate(context.Background())
	require.Error(t, err)

	var updErr *UpdateError
	require.True(t, errors.As(err, &updErr))
	assert.Equal(t, "User not authorized", updErr.Message)
	assert.ErrorIs(t, err, ErrUnauthorized)

	failed := deps.requestLog.Failed()
	require.Len(t, failed, 2)
	assert.Equal(t, "Token expired, re-authenticating...", failed[0].Fields["message"])
	assert.Equal(t, "Update failed: User not authorized", failed[1].Fields["error"])
}

func TestUpdateService_SendUpdate_RefreshFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, deps := newTestUpdateSvc(t, ctrl)

	authErr := &AuthError{Message: "Identity not registered", Err: ErrRequestRejected}

	gomock.InOrder(
		deps.rng.EXPECT().IntN(101).Return(0),
		deps.session.EXPECT().HasToken().Return(true),
		deps.session.EXPECT().Token().Return("T"),
		deps.adapter.EXPECT().UpdateCount(gomock.Any(), "T", gomock.Any()).Return(models.UpdateData{}, unauthorizedErr()),
		deps.session.EXPECT().Refresh(gomock.Any()).Return(authErr),
	)

	err := svc.SendUpdate(context.Background())
	require.Error(t, err)

	var gotAuthErr *AuthError
	require.True(t, errors.As(err, &gotAuthErr))
	assert.Same(t, authErr, gotAuthErr)

	var updErr *UpdateError
	assert.False(t, errors.As(err, &updErr))

	// only the re-authentication notice; the session records its own failure
	assert.Len(t, deps.requestLog.Failed(), 1)
}

func TestUpdateService_SendUpdate_NoTokenLogsInFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, deps := newTestUpdateSvc(t, ctrl)

	gomock.InOrder(
		deps.rng.EXPECT().IntN(101).Return(50),
		deps.session.EXPECT().HasToken().Return(false),
		deps.session.EXPECT().Refresh(gomock.Any()).Return(nil),
		deps.session.EXPECT().HasToken().Return(true),
		deps.session.EXPECT().Token().Return("T"),
		deps.adapter.EXPECT().
			UpdateCount(gomock.Any(), "T", models.UpdateRequest{Count: 250}).
			Return(sampleUpdateData(), nil),
	)

	require.NoError(t, svc.SendUpdate(context.Background()))
	assert.Empty(t, deps.requestLog.Failed())
	assert.Len(t, deps.requestLog.Successful(), 1)
}

func TestUpdateService_SendUpdate_OtherErrorNoRetry(t *testing.T) {
	tests := []struct {
		name        string
		adapterErr  error
		wantMessage string
		wantIs      error
	}{
		{
			name:        "server error",
			adapterErr:  fmt.Errorf("%w: %s", adapter.ErrInternalServerError, "database unavailable"),
			wantMessage: "database unavailable",
			wantIs:      adapter.ErrInternalServerError,
		},
		{
			name:        "rejected envelope",
			adapterErr:  fmt.Errorf("%w: %s", adapter.ErrRequestRejected, "Count out of range"),
			wantMessage: "Count out of range",
			wantIs:      ErrRequestRejected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, deps := newTestUpdateSvc(t, ctrl)

			deps.rng.EXPECT().IntN(101).Return(0)
			deps.session.EXPECT().HasToken().Return(true)
			deps.session.EXPECT().Token().Return("T")
			deps.adapter.EXPECT().UpdateCount(gomock.Any(), "T", gomock.Any()).Return(models.UpdateData{}, tt.adapterErr)

			err := svc.SendUpdate(context.Background())
			require.Error(t, err)

			var updErr *UpdateError
			require.True(t, errors.As(err, &updErr))
			assert.Equal(t, tt.wantMessage, updErr.Message)
			assert.ErrorIs(t, err, tt.wantIs)

			failed := deps.requestLog.Failed()
			require.Len(t, failed, 1)
			assert.Equal(t, "Update failed: "+tt.wantMessage, failed[0].Fields["error"])
		})
	}
}

func TestUpdateService_SendUpdate_CountWithinBounds(t *testing.T) {
	ctrl := gomock.NewController(t)
	adapterMock := mock.NewMockServerAdapter(ctrl)
	session := mock.NewMockSessionService(ctrl)

	svc := NewUpdateService(adapterMock, session, store.NewRequestLog(), globalRand{}, 200, 300, logger.Nop())

	session.EXPECT().HasToken().Return(true).AnyTimes()
	session.EXPECT().Token().Return("T").AnyTimes()
	adapterMock.EXPECT().UpdateCount(gomock.Any(), "T", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, req models.UpdateRequest) (models.UpdateData, error) {
			assert.GreaterOrEqual(t, req.Count, 200)
			assert.LessOrEqual(t, req.Count, 300)
			return sampleUpdateData(), nil
		}).
		Times(500)

	for range 500 {
		require.NoError(t, svc.SendUpdate(context.Background()))
	}
}

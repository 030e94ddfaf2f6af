package service

import (
	"context"
	"testing"

	"github.com/stpnv0/AttendanceDesk/internal/domain"
	"github.com/stpnv0/AttendanceDesk/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRosterReader_GetStats_DerivesRate(t *testing.T) {
	api := mocks.NewMockRosterAPI(t)
	svc := NewRosterReader(api)

	api.EXPECT().GetAttendanceStats(mock.Anything, "e1").
		Return(&domain.AttendanceStats{TotalRegistered: 8, TotalAttended: 2, AttendanceRate: 12}, nil)

	stats, err := svc.GetStats(context.Background(), "e1")

	require.NoError(t, err)
	assert.InDelta(t, 25.0, stats.AttendanceRate, 0.0001)
}

func TestRosterReader_GetStats_ZeroRegistered(t *testing.T) {
	api := mocks.NewMockRosterAPI(t)
	svc := NewRosterReader(api)

	api.EXPECT().GetAttendanceStats(mock.Anything, "e1").Return(&domain.AttendanceStats{}, nil)

	stats, err := svc.GetStats(context.Background(), "e1")

	require.NoError(t, err)
	assert.Zero(t, stats.AttendanceRate)
}

func TestRosterReader_EmptyEventID(t *testing.T) {
	svc := NewRosterReader(mocks.NewMockRosterAPI(t))

	_, err := svc.GetStats(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.GetRegistrations(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.GetEvent(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRosterReader_GetRegistrations_PropagatesNotFound(t *testing.T) {
	api := mocks.NewMockRosterAPI(t)
	svc := NewRosterReader(api)

	api.EXPECT().ListRegistrations(mock.Anything, "nope").Return(nil, domain.ErrEventNotFound)

	_, err := svc.GetRegistrations(context.Background(), "nope")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestRosterReader_Refresh(t *testing.T) {
	api := mocks.NewMockRosterAPI(t)
	svc := NewRosterReader(api)

	regs := []domain.Registration{*registered("r1"), *attended("r2")}
	api.EXPECT().GetAttendanceStats(mock.Anything, "e1").
		Return(&domain.AttendanceStats{TotalRegistered: 2, TotalAttended: 1}, nil)
	api.EXPECT().ListRegistrations(mock.Anything, "e1").Return(regs, nil)

	snap, err := svc.Refresh(context.Background(), "e1")

	require.NoError(t, err)
	assert.Equal(t, "e1", snap.EventID)
	assert.Equal(t, domain.NewAttendanceStats(2, 1), snap.Stats)
	assert.Equal(t, regs, snap.Registrations)
	assert.False(t, snap.FetchedAt.IsZero())
}

func TestRosterReader_Refresh_FailsWhenEitherHalfFails(t *testing.T) {
	api := mocks.NewMockRosterAPI(t)
	svc := NewRosterReader(api)

	api.EXPECT().GetAttendanceStats(mock.Anything, "e1").
		Return(&domain.AttendanceStats{TotalRegistered: 2}, nil).Maybe()
	api.EXPECT().ListRegistrations(mock.Anything, "e1").Return(nil, domain.ErrTransient)

	snap, err := svc.Refresh(context.Background(), "e1")

	require.Error(t, err)
	assert.Nil(t, snap)
	assert.ErrorIs(t, err, domain.ErrTransient)
}

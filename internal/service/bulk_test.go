package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/AttendanceDesk/internal/domain"
	portmocks "github.com/stpnv0/AttendanceDesk/internal/service/ports/mocks"
	svcmocks "github.com/stpnv0/AttendanceDesk/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type coordinatorDeps struct {
	resolver  *svcmocks.MockCheckInResolver
	roster    *portmocks.MockRosterAPI
	refresher *svcmocks.MockSnapshotRefresher
	notifier  *portmocks.MockBatchNotifier
}

func newTestCoordinator(t *testing.T) (*Coordinator, coordinatorDeps) {
	d := coordinatorDeps{
		resolver:  svcmocks.NewMockCheckInResolver(t),
		roster:    portmocks.NewMockRosterAPI(t),
		refresher: svcmocks.NewMockSnapshotRefresher(t),
		notifier:  portmocks.NewMockBatchNotifier(t),
	}
	return NewCoordinator(d.resolver, d.roster, d.refresher, d.notifier, newTestLogger(t)), d
}

// expectNotify returns a channel closed once the async notification ran.
func expectNotify(d coordinatorDeps, eventID string) <-chan struct{} {
	done := make(chan struct{})
	d.notifier.EXPECT().NotifyBatchCompleted(mock.Anything, eventID, mock.Anything).
		Run(func(context.Context, string, *domain.BatchSummary) { close(done) }).
		Return()
	return done
}

func waitNotify(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("batch notification was not sent")
	}
}

func attendedResult(id, name string) *domain.CheckInResult {
	return &domain.CheckInResult{
		Identifier:   id,
		Outcome:      domain.OutcomeAttended,
		Registration: &domain.Registration{ID: id, Member: domain.MemberSummary{Name: name}},
	}
}

func TestCoordinator_ProcessQueue_PartialFailure(t *testing.T) {
	c, d := newTestCoordinator(t)
	done := expectNotify(d, "e1")

	mock.InOrder(
		d.resolver.EXPECT().ResolveAndMark(mock.Anything, "e1", "c1").Return(attendedResult("c1", "Ann"), nil).Call,
		d.resolver.EXPECT().ResolveAndMark(mock.Anything, "e1", "c2").Return(attendedResult("c2", "Ben"), nil).Call,
		d.resolver.EXPECT().ResolveAndMark(mock.Anything, "e1", "c3").Return(nil, domain.ErrRegistrationNotFound).Call,
		d.resolver.EXPECT().ResolveAndMark(mock.Anything, "e1", "c4").Return(attendedResult("c4", "Dan"), nil).Call,
		d.resolver.EXPECT().ResolveAndMark(mock.Anything, "e1", "c5").Return(attendedResult("c5", "Eve"), nil).Call,
		d.refresher.EXPECT().Refresh(mock.Anything, "e1").Return(&domain.Snapshot{EventID: "e1"}, nil).Call,
	)

	summary, err := c.ProcessQueue(context.Background(), "e1", []string{"c1", "c2", "c3", "c4", "c5"})

	require.NoError(t, err)
	assert.Equal(t, []string{"Ann", "Ben", "Dan", "Eve"}, summary.Succeeded)
	require.Len(t, summary.Failed, 1)
	assert.Equal(t, "c3", summary.Failed[0].Identifier)
	assert.Equal(t, "Member not found or not registered for this event.", summary.Failed[0].Reason)
	assert.Equal(t, 5, summary.Processed())
	assert.NotNil(t, summary.Snapshot)
	waitNotify(t, done)
}

func TestCoordinator_ProcessQueue_DuplicatesCountedSeparately(t *testing.T) {
	c, d := newTestCoordinator(t)
	done := expectNotify(d, "e1")

	d.resolver.EXPECT().ResolveAndMark(mock.Anything, "e1", "c1").
		Return(&domain.CheckInResult{Identifier: "c1", Outcome: domain.OutcomeDuplicate}, nil)
	d.resolver.EXPECT().ResolveAndMark(mock.Anything, "e1", "c2").Return(attendedResult("c2", "Ben"), nil)
	d.refresher.EXPECT().Refresh(mock.Anything, "e1").Return(&domain.Snapshot{EventID: "e1"}, nil).Once()

	summary, err := c.ProcessQueue(context.Background(), "e1", []string{"c1", "c2"})

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Duplicates)
	assert.Equal(t, []string{"Ben"}, summary.Succeeded)
	assert.Empty(t, summary.Failed)
	waitNotify(t, done)
}

func TestCoordinator_ProcessQueue_RefreshFailureKeepsSummary(t *testing.T) {
	c, d := newTestCoordinator(t)
	done := expectNotify(d, "e1")

	d.resolver.EXPECT().ResolveAndMark(mock.Anything, "e1", "c1").Return(attendedResult("c1", "Ann"), nil)
	d.refresher.EXPECT().Refresh(mock.Anything, "e1").Return(nil, domain.ErrTransient)

	summary, err := c.ProcessQueue(context.Background(), "e1", []string{"c1"})

	require.NoError(t, err)
	assert.Equal(t, []string{"Ann"}, summary.Succeeded)
	assert.Nil(t, summary.Snapshot)
	waitNotify(t, done)
}

func TestCoordinator_ProcessQueue_EmptyQueueSkipsNotify(t *testing.T) {
	c, d := newTestCoordinator(t)

	d.refresher.EXPECT().Refresh(mock.Anything, "e1").Return(&domain.Snapshot{EventID: "e1"}, nil)

	summary, err := c.ProcessQueue(context.Background(), "e1", nil)

	require.NoError(t, err)
	assert.Zero(t, summary.Processed())
	time.Sleep(50 * time.Millisecond)
	d.notifier.AssertNotCalled(t, "NotifyBatchCompleted", mock.Anything, mock.Anything, mock.Anything)
}

func TestCoordinator_ProcessQueue_CancelledAbandonsRest(t *testing.T) {
	c, d := newTestCoordinator(t)
	done := expectNotify(d, "e1")

	ctx, cancel := context.WithCancel(context.Background())
	d.resolver.EXPECT().ResolveAndMark(mock.Anything, "e1", "c1").
		RunAndReturn(func(context.Context, string, string) (*domain.CheckInResult, error) {
			cancel()
			return attendedResult("c1", "Ann"), nil
		})
	d.refresher.EXPECT().Refresh(mock.Anything, "e1").Return(nil, context.Canceled)

	summary, err := c.ProcessQueue(ctx, "e1", []string{"c1", "c2", "c3"})

	require.NoError(t, err)
	assert.Equal(t, []string{"Ann"}, summary.Succeeded)
	require.Len(t, summary.Failed, 2)
	assert.Equal(t, "c2", summary.Failed[0].Identifier)
	assert.Equal(t, "c3", summary.Failed[1].Identifier)
	waitNotify(t, done)
}

func TestCoordinator_ProcessQueue_EmptyEvent(t *testing.T) {
	c, _ := newTestCoordinator(t)

	_, err := c.ProcessQueue(context.Background(), "", []string{"c1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCoordinator_ProcessSelection(t *testing.T) {
	c, d := newTestCoordinator(t)
	done := expectNotify(d, "e1")

	roster := []domain.Registration{*registered("r1"), *registered("r2"), *attended("r3")}
	d.roster.EXPECT().ListRegistrations(mock.Anything, "e1").Return(roster, nil).Once()
	mock.InOrder(
		d.resolver.EXPECT().Mark(mock.Anything, "e1", mock.MatchedBy(func(r *domain.Registration) bool { return r.ID == "r2" })).
			Return(attendedResult("r2", "Dr r2"), nil).Call,
		d.resolver.EXPECT().Mark(mock.Anything, "e1", mock.MatchedBy(func(r *domain.Registration) bool { return r.ID == "r1" })).
			Return(attendedResult("r1", "Dr r1"), nil).Call,
		d.refresher.EXPECT().Refresh(mock.Anything, "e1").Return(&domain.Snapshot{EventID: "e1"}, nil).Call,
	)

	summary, err := c.ProcessSelection(context.Background(), "e1", []string{"r2", "ghost", "r1"})

	require.NoError(t, err)
	assert.Equal(t, []string{"Dr r2", "Dr r1"}, summary.Succeeded)
	require.Len(t, summary.Failed, 1)
	assert.Equal(t, "ghost", summary.Failed[0].Identifier)
	waitNotify(t, done)
}

func TestCoordinator_ProcessSelection_RosterError(t *testing.T) {
	c, d := newTestCoordinator(t)

	d.roster.EXPECT().ListRegistrations(mock.Anything, "e1").Return(nil, domain.ErrTransient)

	_, err := c.ProcessSelection(context.Background(), "e1", []string{"r1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTransient)
	d.resolver.AssertNotCalled(t, "Mark", mock.Anything, mock.Anything, mock.Anything)
}

func TestTally(t *testing.T) {
	outcomes := []domain.ItemOutcome{
		{Identifier: "a", Result: attendedResult("a", "Ann")},
		{Identifier: "b", Result: &domain.CheckInResult{Outcome: domain.OutcomeDuplicate}},
		{Identifier: "c", Err: errors.New("boom")},
		{Identifier: "d", Result: &domain.CheckInResult{Outcome: domain.OutcomeAttended}},
		{Identifier: "e"},
	}

	s := Tally(outcomes)

	assert.Equal(t, []string{"Ann", "d"}, s.Succeeded)
	assert.Equal(t, 1, s.Duplicates)
	assert.Equal(t, []domain.FailedItem{
		{Identifier: "c", Reason: "boom"},
		{Identifier: "e", Reason: "no result"},
	}, s.Failed)
	assert.Equal(t, len(outcomes), s.Processed())
}

func TestTally_Empty(t *testing.T) {
	s := Tally(nil)

	assert.NotNil(t, s.Succeeded)
	assert.NotNil(t, s.Failed)
	assert.Zero(t, s.Processed())
}

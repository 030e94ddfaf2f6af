package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/AttendanceDesk/internal/domain"
	"github.com/stpnv0/AttendanceDesk/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

// newResolver waits for background journal writes before the mocks assert.
func newResolver(t *testing.T, checkin *mocks.MockCheckInAPI, roster *mocks.MockRosterAPI, journal *mocks.MockJournal) *Resolver {
	t.Helper()
	svc := NewResolver(checkin, roster, journal, newTestLogger(t))
	t.Cleanup(svc.Wait)
	return svc
}

func registered(id string) *domain.Registration {
	return &domain.Registration{
		ID:      id,
		EventID: "e1",
		Status:  domain.RegistrationStatusRegistered,
		Member:  domain.MemberSummary{ID: "m-" + id, Name: "Dr " + id, Email: id + "@medsoc.example"},
	}
}

func attended(id string) *domain.Registration {
	r := registered(id)
	at := time.Date(2026, 3, 1, 8, 30, 0, 0, time.UTC)
	r.Status = domain.RegistrationStatusAttended
	r.AttendedAt = &at
	return r
}

func TestResolver_ResolveAndMark_Success(t *testing.T) {
	checkin := mocks.NewMockCheckInAPI(t)
	roster := mocks.NewMockRosterAPI(t)
	journal := mocks.NewMockJournal(t)
	svc := newResolver(t, checkin, roster, journal)

	checkin.EXPECT().LookupRegistration(mock.Anything, "e1", "QR-1").Return(registered("r1"), nil)
	checkin.EXPECT().MarkAttendance(mock.Anything, "r1").Return(attended("r1"), nil)
	journal.EXPECT().Record(mock.Anything, mock.MatchedBy(func(e *domain.JournalEntry) bool {
		return e.Outcome == domain.OutcomeAttended && e.RegistrationID == "r1" && e.Identifier == "QR-1"
	})).Return(nil)

	res, err := svc.ResolveAndMark(context.Background(), "e1", "  QR-1 ")

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeAttended, res.Outcome)
	assert.Equal(t, "QR-1", res.Identifier)
	assert.True(t, res.Registration.Attended())
}

func TestResolver_ResolveAndMark_DuplicateIssuesNoMutation(t *testing.T) {
	checkin := mocks.NewMockCheckInAPI(t)
	roster := mocks.NewMockRosterAPI(t)
	journal := mocks.NewMockJournal(t)
	svc := newResolver(t, checkin, roster, journal)

	existing := attended("r1")
	checkin.EXPECT().LookupRegistration(mock.Anything, "e1", "QR-1").Return(existing, nil)
	journal.EXPECT().Record(mock.Anything, mock.Anything).Return(nil)

	res, err := svc.ResolveAndMark(context.Background(), "e1", "QR-1")

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeDuplicate, res.Outcome)
	assert.Equal(t, existing.AttendedAt, res.AttendedAt())
	checkin.AssertNotCalled(t, "MarkAttendance", mock.Anything, mock.Anything)
}

func TestResolver_ResolveAndMark_NotFound(t *testing.T) {
	checkin := mocks.NewMockCheckInAPI(t)
	roster := mocks.NewMockRosterAPI(t)
	journal := mocks.NewMockJournal(t)
	svc := newResolver(t, checkin, roster, journal)

	checkin.EXPECT().LookupRegistration(mock.Anything, "e1", "bogus").Return(nil, domain.ErrRegistrationNotFound)
	journal.EXPECT().Record(mock.Anything, mock.MatchedBy(func(e *domain.JournalEntry) bool {
		return e.Outcome == domain.OutcomeFailed && e.Reason != ""
	})).Return(nil)

	_, err := svc.ResolveAndMark(context.Background(), "e1", "bogus")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRegistrationNotFound)
}

func TestResolver_ResolveAndMark_OtherEvent(t *testing.T) {
	checkin := mocks.NewMockCheckInAPI(t)
	roster := mocks.NewMockRosterAPI(t)
	journal := mocks.NewMockJournal(t)
	svc := newResolver(t, checkin, roster, journal)

	foreign := registered("r9")
	foreign.EventID = "e2"
	checkin.EXPECT().LookupRegistration(mock.Anything, "e1", "QR-9").Return(foreign, nil)
	journal.EXPECT().Record(mock.Anything, mock.Anything).Return(nil)

	_, err := svc.ResolveAndMark(context.Background(), "e1", "QR-9")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRegistrationNotFound)
}

func TestResolver_ResolveAndMark_EmptyIdentifier(t *testing.T) {
	svc := NewResolver(nil, nil, nil, newTestLogger(t))

	for _, id := range []string{"", "   ", "\t\n"} {
		_, err := svc.ResolveAndMark(context.Background(), "e1", id)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
}

func TestResolver_ResolveAndMark_ServerConflictIsDuplicate(t *testing.T) {
	checkin := mocks.NewMockCheckInAPI(t)
	roster := mocks.NewMockRosterAPI(t)
	journal := mocks.NewMockJournal(t)
	svc := newResolver(t, checkin, roster, journal)

	checkin.EXPECT().LookupRegistration(mock.Anything, "e1", "QR-1").Return(registered("r1"), nil)
	checkin.EXPECT().MarkAttendance(mock.Anything, "r1").
		Return(nil, errors.Join(domain.ErrAlreadyAttended, errors.New("409")))
	winner := attended("r1")
	roster.EXPECT().ListRegistrations(mock.Anything, "e1").
		Return([]domain.Registration{*registered("r0"), *winner}, nil)
	journal.EXPECT().Record(mock.Anything, mock.MatchedBy(func(e *domain.JournalEntry) bool {
		return e.Outcome == domain.OutcomeDuplicate
	})).Return(nil)

	res, err := svc.ResolveAndMark(context.Background(), "e1", "QR-1")

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeDuplicate, res.Outcome)
	assert.True(t, res.Registration.Attended())
	require.NotNil(t, res.AttendedAt())
	assert.Equal(t, *winner.AttendedAt, *res.AttendedAt())
	assert.Equal(t, "Dr r1", res.Registration.Member.Name)
}

func TestResolver_ServerConflict_RereadFailureStillDuplicate(t *testing.T) {
	checkin := mocks.NewMockCheckInAPI(t)
	roster := mocks.NewMockRosterAPI(t)
	journal := mocks.NewMockJournal(t)
	svc := newResolver(t, checkin, roster, journal)

	checkin.EXPECT().MarkAttendance(mock.Anything, "r1").Return(nil, domain.ErrAlreadyAttended)
	roster.EXPECT().ListRegistrations(mock.Anything, "e1").Return(nil, domain.ErrTransient)
	journal.EXPECT().Record(mock.Anything, mock.Anything).Return(nil)

	res, err := svc.Mark(context.Background(), "e1", registered("r1"))

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeDuplicate, res.Outcome)
	assert.True(t, res.Registration.Attended())
	checkin.AssertNumberOfCalls(t, "MarkAttendance", 1)
}

func TestResolver_ResolveAndMark_TransientMarkFailure(t *testing.T) {
	checkin := mocks.NewMockCheckInAPI(t)
	roster := mocks.NewMockRosterAPI(t)
	journal := mocks.NewMockJournal(t)
	svc := newResolver(t, checkin, roster, journal)

	checkin.EXPECT().LookupRegistration(mock.Anything, "e1", "QR-1").Return(registered("r1"), nil)
	checkin.EXPECT().MarkAttendance(mock.Anything, "r1").Return(nil, domain.ErrTransient)
	journal.EXPECT().Record(mock.Anything, mock.Anything).Return(nil)

	_, err := svc.ResolveAndMark(context.Background(), "e1", "QR-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTransient)
}

func TestResolver_JournalFailureKeepsOutcome(t *testing.T) {
	checkin := mocks.NewMockCheckInAPI(t)
	roster := mocks.NewMockRosterAPI(t)
	journal := mocks.NewMockJournal(t)
	svc := newResolver(t, checkin, roster, journal)

	checkin.EXPECT().LookupRegistration(mock.Anything, "e1", "QR-1").Return(registered("r1"), nil)
	checkin.EXPECT().MarkAttendance(mock.Anything, "r1").Return(attended("r1"), nil)
	journal.EXPECT().Record(mock.Anything, mock.Anything).Return(errors.New("db down"))

	res, err := svc.ResolveAndMark(context.Background(), "e1", "QR-1")

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeAttended, res.Outcome)
}

func TestResolver_SlowJournalDoesNotDelayCheckIn(t *testing.T) {
	checkin := mocks.NewMockCheckInAPI(t)
	roster := mocks.NewMockRosterAPI(t)
	journal := mocks.NewMockJournal(t)
	svc := newResolver(t, checkin, roster, journal)

	release := make(chan struct{})
	defer close(release)

	checkin.EXPECT().LookupRegistration(mock.Anything, "e1", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, code string) (*domain.Registration, error) {
			return registered(code), nil
		})
	checkin.EXPECT().MarkAttendance(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, id string) (*domain.Registration, error) {
			return attended(id), nil
		})
	journal.EXPECT().Record(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ *domain.JournalEntry) error {
			select {
			case <-release:
			case <-ctx.Done():
			}
			return errors.New("db down")
		}).Times(5)

	start := time.Now()
	for _, code := range []string{"r1", "r2", "r3", "r4", "r5"} {
		res, err := svc.ResolveAndMark(context.Background(), "e1", code)
		require.NoError(t, err)
		assert.Equal(t, domain.OutcomeAttended, res.Outcome)
	}

	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestResolver_JournalBacklogFullDropsEntry(t *testing.T) {
	checkin := mocks.NewMockCheckInAPI(t)
	roster := mocks.NewMockRosterAPI(t)
	journal := mocks.NewMockJournal(t)
	svc := newResolver(t, checkin, roster, journal)
	svc.pending = make(chan struct{}, 1)

	release := make(chan struct{})
	defer close(release)

	checkin.EXPECT().LookupRegistration(mock.Anything, "e1", mock.Anything).Return(attended("r1"), nil)
	journal.EXPECT().Record(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, *domain.JournalEntry) error {
			<-release
			return nil
		}).Once()

	for i := 0; i < 3; i++ {
		res, err := svc.ResolveAndMark(context.Background(), "e1", "QR-1")
		require.NoError(t, err)
		assert.Equal(t, domain.OutcomeDuplicate, res.Outcome)
	}
}

func TestResolver_JournalRecordsOperator(t *testing.T) {
	checkin := mocks.NewMockCheckInAPI(t)
	roster := mocks.NewMockRosterAPI(t)
	journal := mocks.NewMockJournal(t)
	svc := newResolver(t, checkin, roster, journal)

	checkin.EXPECT().LookupRegistration(mock.Anything, "e1", "QR-1").Return(attended("r1"), nil)
	journal.EXPECT().Record(mock.Anything, mock.MatchedBy(func(e *domain.JournalEntry) bool {
		return e.OperatorID == "op-7" && e.MemberName == "Dr r1" && e.ID != ""
	})).Return(nil)

	ctx := domain.WithSession(context.Background(), domain.Session{OperatorID: "op-7"})
	_, err := svc.ResolveAndMark(ctx, "e1", "QR-1")

	require.NoError(t, err)
}

func TestResolver_MarkByRegistrationID_Success(t *testing.T) {
	checkin := mocks.NewMockCheckInAPI(t)
	roster := mocks.NewMockRosterAPI(t)
	journal := mocks.NewMockJournal(t)
	svc := newResolver(t, checkin, roster, journal)

	roster.EXPECT().ListRegistrations(mock.Anything, "e1").
		Return([]domain.Registration{*registered("r1"), *registered("r2")}, nil)
	checkin.EXPECT().MarkAttendance(mock.Anything, "r2").Return(attended("r2"), nil)
	journal.EXPECT().Record(mock.Anything, mock.Anything).Return(nil)

	res, err := svc.MarkByRegistrationID(context.Background(), "e1", "r2")

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeAttended, res.Outcome)
	checkin.AssertNotCalled(t, "LookupRegistration", mock.Anything, mock.Anything, mock.Anything)
}

func TestResolver_MarkByRegistrationID_AlreadyAttended(t *testing.T) {
	checkin := mocks.NewMockCheckInAPI(t)
	roster := mocks.NewMockRosterAPI(t)
	journal := mocks.NewMockJournal(t)
	svc := newResolver(t, checkin, roster, journal)

	roster.EXPECT().ListRegistrations(mock.Anything, "e1").
		Return([]domain.Registration{*attended("r1")}, nil)
	journal.EXPECT().Record(mock.Anything, mock.Anything).Return(nil)

	res, err := svc.MarkByRegistrationID(context.Background(), "e1", "r1")

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeDuplicate, res.Outcome)
	checkin.AssertNotCalled(t, "MarkAttendance", mock.Anything, mock.Anything)
}

func TestResolver_MarkByRegistrationID_Unknown(t *testing.T) {
	checkin := mocks.NewMockCheckInAPI(t)
	roster := mocks.NewMockRosterAPI(t)
	journal := mocks.NewMockJournal(t)
	svc := newResolver(t, checkin, roster, journal)

	roster.EXPECT().ListRegistrations(mock.Anything, "e1").
		Return([]domain.Registration{*registered("r1")}, nil)
	journal.EXPECT().Record(mock.Anything, mock.Anything).Return(nil)

	_, err := svc.MarkByRegistrationID(context.Background(), "e1", "r404")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRegistrationNotFound)
}

func TestResolver_MarkByRegistrationID_RosterError(t *testing.T) {
	checkin := mocks.NewMockCheckInAPI(t)
	roster := mocks.NewMockRosterAPI(t)
	journal := mocks.NewMockJournal(t)
	svc := newResolver(t, checkin, roster, journal)

	roster.EXPECT().ListRegistrations(mock.Anything, "e1").Return(nil, domain.ErrTransient)

	_, err := svc.MarkByRegistrationID(context.Background(), "e1", "r1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTransient)
}

func TestResolver_Mark_NilRegistration(t *testing.T) {
	svc := NewResolver(nil, nil, nil, newTestLogger(t))

	_, err := svc.Mark(context.Background(), "e1", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

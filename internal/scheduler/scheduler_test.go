package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/AttendanceDesk/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
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

func TestScheduler_Tick_PrunesJournal(t *testing.T) {
	journal := mocks.NewMockJournalPruner(t)
	desks := mocks.NewMockDeskSweeper(t)
	log := newTestLogger(t)

	s := New(journal, desks, 50*time.Millisecond, 24*time.Hour, time.Hour, log)

	desks.EXPECT().CloseIdle(time.Hour).Return(0)
	journal.EXPECT().DeleteOlderThan(mock.Anything, mock.MatchedBy(func(cutoff time.Time) bool {
		age := time.Since(cutoff)
		return age > 23*time.Hour && age < 25*time.Hour
	})).Return(int64(4), nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(journal.Calls), 1)
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	journal := mocks.NewMockJournalPruner(t)
	desks := mocks.NewMockDeskSweeper(t)
	log := newTestLogger(t)

	s := New(journal, desks, 50*time.Millisecond, time.Hour, time.Hour, log)

	desks.EXPECT().CloseIdle(mock.Anything).Return(2)
	journal.EXPECT().DeleteOlderThan(mock.Anything, mock.Anything).Return(int64(0), errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(journal.Calls), 1)
	assert.GreaterOrEqual(t, len(desks.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	journal := mocks.NewMockJournalPruner(t)
	desks := mocks.NewMockDeskSweeper(t)
	log := newTestLogger(t)

	s := New(journal, desks, time.Second, time.Hour, time.Hour, log)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	journal := mocks.NewMockJournalPruner(t)
	desks := mocks.NewMockDeskSweeper(t)
	log := newTestLogger(t)

	s := New(journal, desks, 30*time.Millisecond, time.Hour, time.Hour, log)

	desks.EXPECT().CloseIdle(mock.Anything).Return(0)
	journal.EXPECT().DeleteOlderThan(mock.Anything, mock.Anything).Return(int64(0), nil).Times(3)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(journal.Calls), 3)
}

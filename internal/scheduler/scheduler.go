package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type journalPruner interface {
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type deskSweeper interface {
	CloseIdle(maxIdle time.Duration) int
}

// Scheduler runs housekeeping only: it trims the check-in journal and
// closes abandoned desks. No attendance decision is ever made on a timer.
type Scheduler struct {
	journal   journalPruner
	desks     deskSweeper
	interval  time.Duration
	retention time.Duration
	deskIdle  time.Duration
	logger    logger.Logger
}

func New(
	journal journalPruner,
	desks deskSweeper,
	interval time.Duration,
	retention time.Duration,
	deskIdle time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		journal:   journal,
		desks:     desks,
		interval:  interval,
		retention: retention,
		deskIdle:  deskIdle,
		logger:    logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
		logger.Duration("journal_retention", s.retention),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	if n := s.desks.CloseIdle(s.deskIdle); n > 0 {
		s.logger.Info("idle desks closed", logger.Int("count", n))
	}

	deleted, err := s.journal.DeleteOlderThan(ctx, time.Now().Add(-s.retention))
	if err != nil {
		s.logger.Error("failed to prune check-in journal",
			logger.String("error", err.Error()),
		)
		return
	}

	if deleted > 0 {
		s.logger.Info("check-in journal pruned",
			logger.Int64("deleted", deleted),
		)
	}
}

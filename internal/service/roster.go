package service

import (
	"context"
	"fmt"
	"time"

	"github.com/stpnv0/AttendanceDesk/internal/domain"
	"github.com/stpnv0/AttendanceDesk/internal/service/ports"
	"golang.org/x/sync/errgroup"
)

// RosterReader is a read-through to the membership API. It keeps nothing
// between calls.
type RosterReader struct {
	api ports.RosterAPI
}

func NewRosterReader(api ports.RosterAPI) *RosterReader {
	return &RosterReader{api: api}
}

func (r *RosterReader) GetEvent(ctx context.Context, eventID string) (*domain.Event, error) {
	if eventID == "" {
		return nil, fmt.Errorf("%w: event id is required", domain.ErrValidation)
	}
	return r.api.GetEvent(ctx, eventID)
}

func (r *RosterReader) GetStats(ctx context.Context, eventID string) (*domain.AttendanceStats, error) {
	if eventID == "" {
		return nil, fmt.Errorf("%w: event id is required", domain.ErrValidation)
	}

	stats, err := r.api.GetAttendanceStats(ctx, eventID)
	if err != nil {
		return nil, err
	}

	derived := domain.NewAttendanceStats(stats.TotalRegistered, stats.TotalAttended)
	return &derived, nil
}

func (r *RosterReader) GetRegistrations(ctx context.Context, eventID string) ([]domain.Registration, error) {
	if eventID == "" {
		return nil, fmt.Errorf("%w: event id is required", domain.ErrValidation)
	}
	return r.api.ListRegistrations(ctx, eventID)
}

// Refresh reads stats and roster concurrently. Both must succeed. FetchedAt
// is when the reads were issued, so snapshots order by request start.
func (r *RosterReader) Refresh(ctx context.Context, eventID string) (*domain.Snapshot, error) {
	issuedAt := time.Now().UTC()

	var (
		stats *domain.AttendanceStats
		regs  []domain.Registration
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s, err := r.GetStats(gctx, eventID)
		if err != nil {
			return fmt.Errorf("stats: %w", err)
		}
		stats = s
		return nil
	})
	g.Go(func() error {
		list, err := r.GetRegistrations(gctx, eventID)
		if err != nil {
			return fmt.Errorf("registrations: %w", err)
		}
		regs = list
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("refresh: %w", err)
	}

	return &domain.Snapshot{
		EventID:       eventID,
		Stats:         *stats,
		Registrations: regs,
		FetchedAt:     issuedAt,
	}, nil
}

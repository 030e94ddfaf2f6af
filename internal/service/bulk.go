package service

import (
	"context"
	"fmt"

	"github.com/stpnv0/AttendanceDesk/internal/domain"
	"github.com/stpnv0/AttendanceDesk/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type checkInResolver interface {
	ResolveAndMark(ctx context.Context, eventID, identifier string) (*domain.CheckInResult, error)
	Mark(ctx context.Context, eventID string, reg *domain.Registration) (*domain.CheckInResult, error)
}

type snapshotRefresher interface {
	Refresh(ctx context.Context, eventID string) (*domain.Snapshot, error)
}

// Coordinator drives many check-ins through the resolver one at a time. An
// item failure never stops the batch, and the roster is re-read once at the
// end rather than per item.
type Coordinator struct {
	resolver  checkInResolver
	roster    ports.RosterAPI
	refresher snapshotRefresher
	notifier  ports.BatchNotifier
	logger    logger.Logger
}

func NewCoordinator(
	resolver checkInResolver,
	roster ports.RosterAPI,
	refresher snapshotRefresher,
	notifier ports.BatchNotifier,
	logger logger.Logger,
) *Coordinator {
	return &Coordinator{
		resolver:  resolver,
		roster:    roster,
		refresher: refresher,
		notifier:  notifier,
		logger:    logger,
	}
}

// ProcessQueue resolves scanned codes in insertion order.
func (c *Coordinator) ProcessQueue(ctx context.Context, eventID string, identifiers []string) (*domain.BatchSummary, error) {
	if eventID == "" {
		return nil, fmt.Errorf("%w: event id is required", domain.ErrValidation)
	}

	outcomes := make([]domain.ItemOutcome, 0, len(identifiers))
	for i, id := range identifiers {
		if err := ctx.Err(); err != nil {
			outcomes = append(outcomes, abandoned(identifiers[i:], err)...)
			break
		}

		res, err := c.resolver.ResolveAndMark(ctx, eventID, id)
		outcomes = append(outcomes, domain.ItemOutcome{Identifier: id, Result: res, Err: err})
	}

	return c.finish(ctx, eventID, "queue", outcomes), nil
}

// ProcessSelection marks registrations picked from the roster. Status comes
// from one roster read at batch start; a mark that races another operator
// comes back from the resolver as a duplicate.
func (c *Coordinator) ProcessSelection(ctx context.Context, eventID string, registrationIDs []string) (*domain.BatchSummary, error) {
	if eventID == "" {
		return nil, fmt.Errorf("%w: event id is required", domain.ErrValidation)
	}

	regs, err := c.roster.ListRegistrations(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}

	outcomes := make([]domain.ItemOutcome, 0, len(registrationIDs))
	for i, id := range registrationIDs {
		if err = ctx.Err(); err != nil {
			outcomes = append(outcomes, abandoned(registrationIDs[i:], err)...)
			break
		}

		reg, ok := domain.FindRegistration(regs, id)
		if !ok {
			outcomes = append(outcomes, domain.ItemOutcome{
				Identifier: id,
				Err:        fmt.Errorf("%w: registration %s", domain.ErrRegistrationNotFound, id),
			})
			continue
		}

		res, err := c.resolver.Mark(ctx, eventID, reg)
		outcomes = append(outcomes, domain.ItemOutcome{Identifier: id, Result: res, Err: err})
	}

	return c.finish(ctx, eventID, "selection", outcomes), nil
}

func (c *Coordinator) finish(ctx context.Context, eventID, kind string, outcomes []domain.ItemOutcome) *domain.BatchSummary {
	summary := Tally(outcomes)

	snap, err := c.refresher.Refresh(ctx, eventID)
	if err != nil {
		c.logger.Warn("refresh after batch failed",
			logger.String("event_id", eventID),
			logger.String("error", err.Error()),
		)
	} else {
		summary.Snapshot = snap
	}

	c.logger.Info("batch check-in processed",
		logger.String("event_id", eventID),
		logger.String("kind", kind),
		logger.Int("succeeded", len(summary.Succeeded)),
		logger.Int("duplicates", summary.Duplicates),
		logger.Int("failed", len(summary.Failed)),
	)

	if len(outcomes) > 0 {
		go c.notifier.NotifyBatchCompleted(context.WithoutCancel(ctx), eventID, summary)
	}

	return summary
}

// Tally folds per-item outcomes into a batch summary. Duplicates are neither
// successes nor failures.
func Tally(outcomes []domain.ItemOutcome) *domain.BatchSummary {
	s := &domain.BatchSummary{
		Succeeded: []string{},
		Failed:    []domain.FailedItem{},
	}

	for _, o := range outcomes {
		switch {
		case o.Err != nil:
			s.Failed = append(s.Failed, domain.FailedItem{
				Identifier: o.Identifier,
				Reason:     domain.UserMessage(o.Err),
			})
		case o.Result == nil:
			s.Failed = append(s.Failed, domain.FailedItem{
				Identifier: o.Identifier,
				Reason:     "no result",
			})
		case o.Result.Outcome == domain.OutcomeDuplicate:
			s.Duplicates++
		default:
			s.Succeeded = append(s.Succeeded, memberName(o))
		}
	}

	return s
}

func memberName(o domain.ItemOutcome) string {
	if o.Result.Registration != nil && o.Result.Registration.Member.Name != "" {
		return o.Result.Registration.Member.Name
	}
	return o.Identifier
}

func abandoned(ids []string, cause error) []domain.ItemOutcome {
	res := make([]domain.ItemOutcome, 0, len(ids))
	for _, id := range ids {
		res = append(res, domain.ItemOutcome{
			Identifier: id,
			Err:        fmt.Errorf("abandoned: %w", cause),
		})
	}
	return res
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/AttendanceDesk/internal/domain"
	"github.com/stpnv0/AttendanceDesk/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const (
	journalWriteTimeout     = 5 * time.Second
	maxPendingJournalWrites = 64
)

// Resolver turns one identifier into one attendance decision. It issues at
// most one mutating call per identifier and none for duplicates.
//
// Journal writes run in the background and never hold up a check-in. When
// maxPendingJournalWrites are already in flight the entry is dropped.
type Resolver struct {
	checkin ports.CheckInAPI
	roster  ports.RosterAPI
	journal ports.Journal
	logger  logger.Logger

	pending chan struct{}
	wg      sync.WaitGroup
}

func NewResolver(
	checkin ports.CheckInAPI,
	roster ports.RosterAPI,
	journal ports.Journal,
	logger logger.Logger,
) *Resolver {
	return &Resolver{
		checkin: checkin,
		roster:  roster,
		journal: journal,
		logger:  logger,
		pending: make(chan struct{}, maxPendingJournalWrites),
	}
}

// Wait blocks until every journal write already started has finished.
func (r *Resolver) Wait() {
	r.wg.Wait()
}

// ResolveAndMark looks the identifier up against live state every time.
func (r *Resolver) ResolveAndMark(ctx context.Context, eventID, identifier string) (*domain.CheckInResult, error) {
	code := strings.TrimSpace(identifier)
	if code == "" {
		return nil, fmt.Errorf("%w: identifier is required", domain.ErrValidation)
	}
	if eventID == "" {
		return nil, fmt.Errorf("%w: event id is required", domain.ErrValidation)
	}

	reg, err := r.checkin.LookupRegistration(ctx, eventID, code)
	if err != nil {
		r.record(ctx, eventID, code, nil, domain.OutcomeFailed, err)
		return nil, fmt.Errorf("resolve %q: %w", code, err)
	}

	if reg.EventID != "" && reg.EventID != eventID {
		err = fmt.Errorf("%w: registration %s belongs to event %s", domain.ErrRegistrationNotFound, reg.ID, reg.EventID)
		r.record(ctx, eventID, code, reg, domain.OutcomeFailed, err)
		return nil, fmt.Errorf("resolve %q: %w", code, err)
	}

	return r.mark(ctx, eventID, code, reg)
}

// MarkByRegistrationID skips the code lookup but still reads the current
// status from a fresh roster before mutating.
func (r *Resolver) MarkByRegistrationID(ctx context.Context, eventID, registrationID string) (*domain.CheckInResult, error) {
	id := strings.TrimSpace(registrationID)
	if id == "" {
		return nil, fmt.Errorf("%w: registration id is required", domain.ErrValidation)
	}
	if eventID == "" {
		return nil, fmt.Errorf("%w: event id is required", domain.ErrValidation)
	}

	regs, err := r.roster.ListRegistrations(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}

	reg, ok := domain.FindRegistration(regs, id)
	if !ok {
		err = fmt.Errorf("%w: registration %s", domain.ErrRegistrationNotFound, id)
		r.record(ctx, eventID, id, nil, domain.OutcomeFailed, err)
		return nil, err
	}

	return r.mark(ctx, eventID, id, reg)
}

// Mark applies the attended transition to a registration whose status the
// caller has just read.
func (r *Resolver) Mark(ctx context.Context, eventID string, reg *domain.Registration) (*domain.CheckInResult, error) {
	if reg == nil || reg.ID == "" {
		return nil, fmt.Errorf("%w: registration is required", domain.ErrValidation)
	}
	return r.mark(ctx, eventID, reg.ID, reg)
}

func (r *Resolver) mark(
	ctx context.Context,
	eventID, identifier string,
	reg *domain.Registration,
) (*domain.CheckInResult, error) {
	if reg.Attended() {
		return r.duplicate(ctx, eventID, identifier, reg), nil
	}

	updated, err := r.checkin.MarkAttendance(ctx, reg.ID)
	if err != nil {
		// The server is the authority: a concurrent operator got there first.
		if errors.Is(err, domain.ErrAlreadyAttended) {
			return r.duplicate(ctx, eventID, identifier, r.attendedCopy(ctx, eventID, reg)), nil
		}

		r.record(ctx, eventID, identifier, reg, domain.OutcomeFailed, err)
		return nil, fmt.Errorf("mark %s: %w", reg.ID, err)
	}

	if updated.Member.Name == "" {
		updated.Member = reg.Member
	}
	if updated.EventID == "" {
		updated.EventID = eventID
	}

	r.logger.Info("attendance marked",
		logger.String("event_id", eventID),
		logger.String("registration_id", updated.ID),
		logger.String("member", updated.Member.Name),
	)
	r.record(ctx, eventID, identifier, updated, domain.OutcomeAttended, nil)

	return &domain.CheckInResult{
		Identifier:   identifier,
		Outcome:      domain.OutcomeAttended,
		Registration: updated,
	}, nil
}

func (r *Resolver) duplicate(
	ctx context.Context,
	eventID, identifier string,
	reg *domain.Registration,
) *domain.CheckInResult {
	r.logger.Debug("already attended",
		logger.String("event_id", eventID),
		logger.String("registration_id", reg.ID),
	)
	r.record(ctx, eventID, identifier, reg, domain.OutcomeDuplicate, nil)

	return &domain.CheckInResult{
		Identifier:   identifier,
		Outcome:      domain.OutcomeDuplicate,
		Registration: reg,
	}
}

// attendedCopy re-reads the registration after a lost race so the duplicate
// carries the winner's attendance time. The read is best effort.
func (r *Resolver) attendedCopy(ctx context.Context, eventID string, reg *domain.Registration) *domain.Registration {
	regs, err := r.roster.ListRegistrations(ctx, eventID)
	if err == nil {
		if live, ok := domain.FindRegistration(regs, reg.ID); ok && live.Attended() {
			if live.Member.Name == "" {
				live.Member = reg.Member
			}
			return live
		}
	} else {
		r.logger.Warn("failed to re-read registration after conflict",
			logger.String("event_id", eventID),
			logger.String("registration_id", reg.ID),
			logger.String("error", err.Error()),
		)
	}

	dup := *reg
	dup.Status = domain.RegistrationStatusAttended
	return &dup
}

// record queues a journal write; a journal failure never changes the outcome.
func (r *Resolver) record(
	ctx context.Context,
	eventID, identifier string,
	reg *domain.Registration,
	outcome domain.CheckInOutcome,
	cause error,
) {
	entry := &domain.JournalEntry{
		ID:         uuid.New().String(),
		EventID:    eventID,
		Identifier: identifier,
		Outcome:    outcome,
		CreatedAt:  time.Now().UTC(),
	}
	if s, ok := domain.SessionFromContext(ctx); ok {
		entry.OperatorID = s.OperatorID
	}
	if reg != nil {
		entry.RegistrationID = reg.ID
		entry.MemberName = reg.Member.Name
	}
	if cause != nil {
		entry.Reason = domain.UserMessage(cause)
	}

	select {
	case r.pending <- struct{}{}:
	default:
		r.logger.Warn("check-in journal backlog full, entry dropped",
			logger.String("event_id", eventID),
			logger.String("identifier", identifier),
			logger.String("outcome", string(outcome)),
		)
		return
	}

	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), journalWriteTimeout)
	r.wg.Add(1)
	go func() {
		defer func() {
			cancel()
			<-r.pending
			r.wg.Done()
		}()

		if err := r.journal.Record(writeCtx, entry); err != nil {
			r.logger.Warn("failed to write check-in journal",
				logger.String("event_id", eventID),
				logger.String("error", err.Error()),
			)
		}
	}()
}

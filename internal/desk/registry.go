package desk

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/stpnv0/AttendanceDesk/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type rosterService interface {
	GetEvent(ctx context.Context, eventID string) (*domain.Event, error)
	Refresh(ctx context.Context, eventID string) (*domain.Snapshot, error)
}

type checkInService interface {
	ResolveAndMark(ctx context.Context, eventID, identifier string) (*domain.CheckInResult, error)
	MarkByRegistrationID(ctx context.Context, eventID, registrationID string) (*domain.CheckInResult, error)
}

type batchService interface {
	ProcessQueue(ctx context.Context, eventID string, identifiers []string) (*domain.BatchSummary, error)
	ProcessSelection(ctx context.Context, eventID string, registrationIDs []string) (*domain.BatchSummary, error)
}

type reportService interface {
	ExportReport(ctx context.Context, eventID string) (*domain.Report, error)
}

// Registry keeps one desk per operator and event.
type Registry struct {
	roster  rosterService
	checkin checkInService
	batch   batchService
	export  reportService
	logger  logger.Logger

	mu    sync.Mutex
	desks map[Key]*Desk
}

func NewRegistry(
	roster rosterService,
	checkin checkInService,
	batch batchService,
	export reportService,
	logger logger.Logger,
) *Registry {
	return &Registry{
		roster:  roster,
		checkin: checkin,
		batch:   batch,
		export:  export,
		logger:  logger,
		desks:   make(map[Key]*Desk),
	}
}

func keyFor(ctx context.Context, eventID string) Key {
	s, _ := domain.SessionFromContext(ctx)
	return Key{OperatorID: s.OperatorID, EventID: eventID}
}

// Open always fetches event, stats and roster afresh. An already open desk
// for the same operator and event is closed and replaced.
func (r *Registry) Open(ctx context.Context, eventID string) (*View, error) {
	if eventID == "" {
		return nil, fmt.Errorf("%w: event id is required", domain.ErrValidation)
	}

	event, err := r.roster.GetEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("open desk: %w", err)
	}

	key := keyFor(ctx, eventID)
	d := newDesk(key, *event)

	r.mu.Lock()
	if prev, ok := r.desks[key]; ok {
		prev.close()
	}
	r.desks[key] = d
	r.mu.Unlock()

	seq := d.beginFetch()
	snap, err := r.roster.Refresh(ctx, eventID)
	if err != nil {
		r.discard(key, d)
		return nil, fmt.Errorf("open desk: %w", err)
	}
	if !d.apply(seq, snap) {
		return nil, fmt.Errorf("open desk: %w", domain.ErrDeskNotOpen)
	}

	r.logger.Info("check-in desk opened",
		logger.String("event_id", eventID),
		logger.String("operator_id", key.OperatorID),
		logger.Int("registrations", len(snap.Registrations)),
	)

	return d.view(domain.RosterFilter{}), nil
}

func (r *Registry) View(ctx context.Context, eventID string, f domain.RosterFilter) (*View, error) {
	d, err := r.get(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return d.view(f), nil
}

// Close abandons the desk. Responses still in flight for it are dropped.
func (r *Registry) Close(ctx context.Context, eventID string) error {
	key := keyFor(ctx, eventID)

	r.mu.Lock()
	d, ok := r.desks[key]
	delete(r.desks, key)
	r.mu.Unlock()

	if !ok {
		return domain.ErrDeskNotOpen
	}
	d.close()

	r.logger.Info("check-in desk closed",
		logger.String("event_id", eventID),
		logger.String("operator_id", key.OperatorID),
	)
	return nil
}

// CloseIdle closes desks untouched for longer than maxIdle.
func (r *Registry) CloseIdle(maxIdle time.Duration) int {
	now := time.Now()

	r.mu.Lock()
	var idle []*Desk
	for key, d := range r.desks {
		if d.idleSince(now) > maxIdle {
			idle = append(idle, d)
			delete(r.desks, key)
		}
	}
	r.mu.Unlock()

	for _, d := range idle {
		d.close()
	}
	return len(idle)
}

func (r *Registry) Refresh(ctx context.Context, eventID string) (*View, error) {
	d, err := r.get(ctx, eventID)
	if err != nil {
		return nil, err
	}

	release, err := d.acquire(actionRefresh)
	if err != nil {
		return nil, err
	}
	defer release()

	if err = r.refresh(ctx, d); err != nil {
		return nil, err
	}
	return d.view(domain.RosterFilter{}), nil
}

// Scan resolves one code immediately. Only a new attendance triggers a
// refresh; a duplicate changes nothing upstream.
func (r *Registry) Scan(ctx context.Context, eventID, code string) (*domain.CheckInResult, *View, error) {
	d, err := r.get(ctx, eventID)
	if err != nil {
		return nil, nil, err
	}

	release, err := d.acquire(actionScan)
	if err != nil {
		return nil, nil, err
	}
	defer release()

	res, err := r.checkin.ResolveAndMark(ctx, eventID, code)
	if err != nil {
		return nil, nil, err
	}

	return res, r.afterSingle(ctx, d, res), nil
}

func (r *Registry) MarkManual(ctx context.Context, eventID, registrationID string) (*domain.CheckInResult, *View, error) {
	d, err := r.get(ctx, eventID)
	if err != nil {
		return nil, nil, err
	}

	release, err := d.acquire(actionMark)
	if err != nil {
		return nil, nil, err
	}
	defer release()

	res, err := r.checkin.MarkByRegistrationID(ctx, eventID, registrationID)
	if err != nil {
		return nil, nil, err
	}

	return res, r.afterSingle(ctx, d, res), nil
}

func (r *Registry) Enqueue(ctx context.Context, eventID, code string) ([]QueueEntry, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, fmt.Errorf("%w: code is required", domain.ErrValidation)
	}

	d, err := r.get(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return d.enqueue(code), nil
}

// ProcessQueue resolves every queued code in order, then clears them from
// the queue whatever their individual outcome.
func (r *Registry) ProcessQueue(ctx context.Context, eventID string) (*domain.BatchSummary, *View, error) {
	d, err := r.get(ctx, eventID)
	if err != nil {
		return nil, nil, err
	}

	release, err := d.acquire(actionQueue)
	if err != nil {
		return nil, nil, err
	}
	defer release()

	codes := d.queuedCodes()
	if len(codes) == 0 {
		return nil, nil, fmt.Errorf("%w: scan queue is empty", domain.ErrValidation)
	}

	summary, err := r.batch.ProcessQueue(ctx, eventID, codes)
	if err != nil {
		return nil, nil, err
	}
	d.dropQueued(len(codes))

	return summary, r.afterBatch(d, summary), nil
}

func (r *Registry) Select(ctx context.Context, eventID, registrationID string) ([]string, error) {
	d, err := r.get(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if err = d.selectID(registrationID); err != nil {
		return nil, fmt.Errorf("select %s: %w", registrationID, err)
	}
	return d.selectedIDs(), nil
}

func (r *Registry) Deselect(ctx context.Context, eventID, registrationID string) ([]string, error) {
	d, err := r.get(ctx, eventID)
	if err != nil {
		return nil, err
	}
	d.deselectID(registrationID)
	return d.selectedIDs(), nil
}

func (r *Registry) SubmitSelection(ctx context.Context, eventID string) (*domain.BatchSummary, *View, error) {
	d, err := r.get(ctx, eventID)
	if err != nil {
		return nil, nil, err
	}

	release, err := d.acquire(actionSelection)
	if err != nil {
		return nil, nil, err
	}
	defer release()

	ids := d.selectedIDs()
	if len(ids) == 0 {
		return nil, nil, fmt.Errorf("%w: selection is empty", domain.ErrValidation)
	}

	summary, err := r.batch.ProcessSelection(ctx, eventID, ids)
	if err != nil {
		return nil, nil, err
	}
	d.dropSelected(ids)

	return summary, r.afterBatch(d, summary), nil
}

// Export does not need an open desk; when one is open a second export from
// it is refused while the first is pending.
func (r *Registry) Export(ctx context.Context, eventID string) (*domain.Report, error) {
	d, err := r.get(ctx, eventID)
	if err == nil {
		release, err := d.acquire(actionExport)
		if err != nil {
			return nil, err
		}
		defer release()
	} else if !errors.Is(err, domain.ErrDeskNotOpen) {
		return nil, err
	}

	return r.export.ExportReport(ctx, eventID)
}

func (r *Registry) get(ctx context.Context, eventID string) (*Desk, error) {
	if eventID == "" {
		return nil, fmt.Errorf("%w: event id is required", domain.ErrValidation)
	}

	r.mu.Lock()
	d, ok := r.desks[keyFor(ctx, eventID)]
	r.mu.Unlock()

	if !ok || !d.isOpen() {
		return nil, domain.ErrDeskNotOpen
	}
	return d, nil
}

func (r *Registry) discard(key Key, d *Desk) {
	r.mu.Lock()
	if r.desks[key] == d {
		delete(r.desks, key)
	}
	r.mu.Unlock()
	d.close()
}

func (r *Registry) refresh(ctx context.Context, d *Desk) error {
	seq := d.beginFetch()
	snap, err := r.roster.Refresh(ctx, d.key.EventID)
	if err != nil {
		return err
	}
	if !d.apply(seq, snap) {
		r.logger.Debug("stale refresh discarded",
			logger.String("event_id", d.key.EventID),
			logger.Int64("seq", int64(seq)),
		)
	}
	return nil
}

// afterSingle refreshes once after a new attendance. A failed refresh keeps
// the previous view; the attendance itself already succeeded.
func (r *Registry) afterSingle(ctx context.Context, d *Desk, res *domain.CheckInResult) *View {
	if res.Outcome == domain.OutcomeAttended {
		if err := r.refresh(ctx, d); err != nil {
			r.logger.Warn("refresh after check-in failed",
				logger.String("event_id", d.key.EventID),
				logger.String("error", err.Error()),
			)
		}
	}
	if !d.isOpen() {
		return nil
	}
	return d.view(domain.RosterFilter{})
}

// afterBatch applies the snapshot the coordinator took at the end of the
// batch unless the desk already shows a read issued after it.
func (r *Registry) afterBatch(d *Desk, summary *domain.BatchSummary) *View {
	if summary.Snapshot != nil && !d.applyNewer(summary.Snapshot) {
		r.logger.Debug("stale batch snapshot discarded",
			logger.String("event_id", d.key.EventID),
			logger.Time("fetched_at", summary.Snapshot.FetchedAt),
		)
	}
	if !d.isOpen() {
		return nil
	}
	return d.view(domain.RosterFilter{})
}

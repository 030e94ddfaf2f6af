// Package desk holds the transient state of an operator's check-in desk for
// one event: the last fetched roster, the scan queue and the bulk selection.
// Nothing here is persisted and nothing is authoritative; every attendance
// decision is made against the membership API.
package desk

import (
	"slices"
	"sync"
	"time"

	"github.com/stpnv0/AttendanceDesk/internal/domain"
)

type action string

const (
	actionRefresh   action = "refresh"
	actionScan      action = "scan"
	actionQueue     action = "queue"
	actionSelection action = "selection"
	actionMark      action = "mark"
	actionExport    action = "export"
)

// QueueEntry is a scanned code waiting for batch resolution.
type QueueEntry struct {
	Code     string    `json:"code"`
	QueuedAt time.Time `json:"queued_at"`
}

// View is a copy of the desk state safe to hand out.
type View struct {
	Event         domain.Event           `json:"event"`
	Stats         domain.AttendanceStats `json:"stats"`
	Registrations []domain.Registration  `json:"registrations"`
	Queue         []QueueEntry           `json:"queue"`
	Selection     []string               `json:"selection"`
	FetchedAt     time.Time              `json:"fetched_at"`
}

type Key struct {
	OperatorID string
	EventID    string
}

type Desk struct {
	key Key

	mu        sync.Mutex
	closed    bool
	seq       uint64
	event     domain.Event
	snapshot  *domain.Snapshot
	queue     []QueueEntry
	selection []string
	busy      map[action]bool
	lastUsed  time.Time
}

func newDesk(key Key, event domain.Event) *Desk {
	return &Desk{
		key:      key,
		event:    event,
		busy:     make(map[action]bool),
		lastUsed: time.Now(),
	}
}

// acquire marks the action as pending. The returned func releases it.
func (d *Desk) acquire(a action) (func(), error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return nil, domain.ErrDeskNotOpen
	}
	if d.busy[a] {
		return nil, domain.ErrActionInProgress
	}
	d.busy[a] = true
	d.lastUsed = time.Now()

	return func() {
		d.mu.Lock()
		delete(d.busy, a)
		d.mu.Unlock()
	}, nil
}

// beginFetch stamps a new fetch. Only the latest stamp may be applied.
func (d *Desk) beginFetch() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	return d.seq
}

// apply installs the snapshot if seq is still the latest and the desk is
// still open. It reports whether the snapshot was applied.
func (d *Desk) apply(seq uint64, snap *domain.Snapshot) bool {
	if snap == nil {
		return false
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if seq != d.seq {
		return false
	}
	return d.installLocked(snap)
}

// applyNewer installs a snapshot read outside the desk's own fetches, such
// as the one a batch takes at its end. It does not move the sequence, so a
// refresh still in flight can replace it.
func (d *Desk) applyNewer(snap *domain.Snapshot) bool {
	if snap == nil {
		return false
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	return d.installLocked(snap)
}

// installLocked never lets a read issued earlier replace one issued later.
func (d *Desk) installLocked(snap *domain.Snapshot) bool {
	if d.closed || snap.EventID != d.key.EventID {
		return false
	}
	if d.snapshot != nil && snap.FetchedAt.Before(d.snapshot.FetchedAt) {
		return false
	}

	d.snapshot = snap
	d.pruneSelectionLocked()
	return true
}

// pruneSelectionLocked drops ids that became attended or left the roster.
func (d *Desk) pruneSelectionLocked() {
	if d.snapshot == nil {
		return
	}
	d.selection = slices.DeleteFunc(d.selection, func(id string) bool {
		reg, ok := domain.FindRegistration(d.snapshot.Registrations, id)
		return !ok || reg.Attended()
	})
}

func (d *Desk) close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	d.queue = nil
	d.selection = nil
}

func (d *Desk) isOpen() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return !d.closed
}

func (d *Desk) idleSince(now time.Time) time.Duration {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.busy) > 0 {
		return 0
	}
	return now.Sub(d.lastUsed)
}

func (d *Desk) enqueue(code string) []QueueEntry {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.queue = append(d.queue, QueueEntry{Code: code, QueuedAt: time.Now().UTC()})
	d.lastUsed = time.Now()
	return slices.Clone(d.queue)
}

func (d *Desk) queuedCodes() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	codes := make([]string, 0, len(d.queue))
	for _, e := range d.queue {
		codes = append(codes, e.Code)
	}
	return codes
}

// dropQueued removes the first n entries; codes queued while a batch was
// running stay for the next one.
func (d *Desk) dropQueued(n int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if n > len(d.queue) {
		n = len(d.queue)
	}
	d.queue = slices.Clone(d.queue[n:])
}

func (d *Desk) selectID(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.snapshot == nil {
		return domain.ErrNotSelectable
	}
	reg, ok := domain.FindRegistration(d.snapshot.Registrations, id)
	if !ok {
		return domain.ErrRegistrationNotFound
	}
	if reg.Attended() {
		return domain.ErrNotSelectable
	}
	if !slices.Contains(d.selection, id) {
		d.selection = append(d.selection, id)
	}
	d.lastUsed = time.Now()
	return nil
}

func (d *Desk) deselectID(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.selection = slices.DeleteFunc(d.selection, func(s string) bool { return s == id })
}

func (d *Desk) selectedIDs() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.selection)
}

func (d *Desk) dropSelected(ids []string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.selection = slices.DeleteFunc(d.selection, func(s string) bool {
		return slices.Contains(ids, s)
	})
}

func (d *Desk) view(f domain.RosterFilter) *View {
	d.mu.Lock()
	defer d.mu.Unlock()

	v := &View{
		Event:         d.event,
		Registrations: []domain.Registration{},
		Queue:         slices.Clone(d.queue),
		Selection:     slices.Clone(d.selection),
	}
	if v.Queue == nil {
		v.Queue = []QueueEntry{}
	}
	if v.Selection == nil {
		v.Selection = []string{}
	}
	if d.snapshot != nil {
		v.Stats = d.snapshot.Stats
		v.Registrations = domain.FilterRegistrations(d.snapshot.Registrations, f)
		v.FetchedAt = d.snapshot.FetchedAt
	}
	return v
}

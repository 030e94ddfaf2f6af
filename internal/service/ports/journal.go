package ports

import (
	"context"
	"time"

	"github.com/stpnv0/AttendanceDesk/internal/domain"
)

type Journal interface {
	Record(ctx context.Context, e *domain.JournalEntry) error
	ListByEvent(ctx context.Context, eventID string, limit int) ([]*domain.JournalEntry, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

package ports

import (
	"context"

	"github.com/stpnv0/AttendanceDesk/internal/domain"
)

type BatchNotifier interface {
	NotifyBatchCompleted(ctx context.Context, eventID string, summary *domain.BatchSummary)
}

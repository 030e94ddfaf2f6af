package ports

import (
	"context"

	"github.com/stpnv0/AttendanceDesk/internal/domain"
)

type RosterAPI interface {
	GetEvent(ctx context.Context, eventID string) (*domain.Event, error)
	ListRegistrations(ctx context.Context, eventID string) ([]domain.Registration, error)
	GetAttendanceStats(ctx context.Context, eventID string) (*domain.AttendanceStats, error)
}

type CheckInAPI interface {
	LookupRegistration(ctx context.Context, eventID, code string) (*domain.Registration, error)
	MarkAttendance(ctx context.Context, registrationID string) (*domain.Registration, error)
}

type ReportAPI interface {
	AttendanceReport(ctx context.Context, eventID string) (*domain.Report, error)
}

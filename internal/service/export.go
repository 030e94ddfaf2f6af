package service

import (
	"context"
	"fmt"

	"github.com/stpnv0/AttendanceDesk/internal/domain"
	"github.com/stpnv0/AttendanceDesk/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type Exporter struct {
	api    ports.ReportAPI
	logger logger.Logger
}

func NewExporter(api ports.ReportAPI, logger logger.Logger) *Exporter {
	return &Exporter{api: api, logger: logger}
}

// ExportReport returns the whole artifact or nothing. It never retries.
func (e *Exporter) ExportReport(ctx context.Context, eventID string) (*domain.Report, error) {
	if eventID == "" {
		return nil, fmt.Errorf("%w: event id is required", domain.ErrValidation)
	}

	report, err := e.api.AttendanceReport(ctx, eventID)
	if err != nil {
		e.logger.Error("attendance report export failed",
			logger.String("event_id", eventID),
			logger.String("error", err.Error()),
		)
		return nil, fmt.Errorf("%w: %w", domain.ErrExportFailed, err)
	}

	e.logger.Info("attendance report exported",
		logger.String("event_id", eventID),
		logger.Int("bytes", len(report.Data)),
	)

	return report, nil
}

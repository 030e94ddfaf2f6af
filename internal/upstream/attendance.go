package upstream

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"

	"github.com/stpnv0/AttendanceDesk/internal/domain"
)

const defaultReportType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (c *Client) GetEvent(ctx context.Context, eventID string) (*domain.Event, error) {
	resp, err := c.do(ctx, http.MethodGet, "/events/"+url.PathEscape(eventID), nil, nil, domain.ErrEventNotFound)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := decode[domain.Event](resp)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	return &e, nil
}

func (c *Client) ListRegistrations(ctx context.Context, eventID string) ([]domain.Registration, error) {
	path := "/events/" + url.PathEscape(eventID) + "/registrations"
	resp, err := c.do(ctx, http.MethodGet, path, nil, nil, domain.ErrEventNotFound)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}

	regs, err := decode[[]domain.Registration](resp)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	if regs == nil {
		regs = []domain.Registration{}
	}
	return regs, nil
}

type statsBody struct {
	TotalRegistered int     `json:"totalRegistered"`
	TotalAttended   int     `json:"totalAttended"`
	AttendanceRate  float64 `json:"attendanceRate"`
}

// GetAttendanceStats ignores the wire rate and recomputes it from the counts.
func (c *Client) GetAttendanceStats(ctx context.Context, eventID string) (*domain.AttendanceStats, error) {
	path := "/events/" + url.PathEscape(eventID) + "/attendance-stats"
	resp, err := c.do(ctx, http.MethodGet, path, nil, nil, domain.ErrEventNotFound)
	if err != nil {
		return nil, fmt.Errorf("get attendance stats: %w", err)
	}

	b, err := decode[statsBody](resp)
	if err != nil {
		return nil, fmt.Errorf("get attendance stats: %w", err)
	}

	stats := domain.NewAttendanceStats(b.TotalRegistered, b.TotalAttended)
	return &stats, nil
}

func (c *Client) LookupRegistration(ctx context.Context, eventID, code string) (*domain.Registration, error) {
	path := "/events/" + url.PathEscape(eventID) + "/lookup"
	resp, err := c.do(ctx, http.MethodGet, path, url.Values{"code": {code}}, nil, domain.ErrRegistrationNotFound)
	if err != nil {
		return nil, fmt.Errorf("lookup registration: %w", err)
	}

	r, err := decode[domain.Registration](resp)
	if err != nil {
		return nil, fmt.Errorf("lookup registration: %w", err)
	}
	return &r, nil
}

// MarkAttendance returns domain.ErrAlreadyAttended when the server refuses a
// second mark.
func (c *Client) MarkAttendance(ctx context.Context, registrationID string) (*domain.Registration, error) {
	path := "/registrations/" + url.PathEscape(registrationID) + "/attendance"
	resp, err := c.do(ctx, http.MethodPost, path, nil, nil, domain.ErrRegistrationNotFound)
	if err != nil {
		return nil, fmt.Errorf("mark attendance: %w", err)
	}

	r, err := decode[domain.Registration](resp)
	if err != nil {
		return nil, fmt.Errorf("mark attendance: %w", err)
	}
	return &r, nil
}

// AttendanceReport reads the whole artifact before returning so a broken
// download never yields a truncated file.
func (c *Client) AttendanceReport(ctx context.Context, eventID string) (*domain.Report, error) {
	path := "/events/" + url.PathEscape(eventID) + "/attendance-report"
	resp, err := c.do(ctx, http.MethodGet, path, nil, nil, domain.ErrEventNotFound)
	if err != nil {
		return nil, fmt.Errorf("attendance report: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read attendance report: %w", domain.ErrTransient, err)
	}

	ct := resp.Header.Get("Content-Type")
	if ct == "" {
		ct = defaultReportType
	}

	return &domain.Report{
		FileName:    reportFileName(resp.Header.Get("Content-Disposition"), eventID),
		ContentType: ct,
		Data:        data,
	}, nil
}

func reportFileName(disposition, eventID string) string {
	if disposition != "" {
		if _, params, err := mime.ParseMediaType(disposition); err == nil && params["filename"] != "" {
			return params["filename"]
		}
	}
	return "attendance-" + eventID + ".xlsx"
}

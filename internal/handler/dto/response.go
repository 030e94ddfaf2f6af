package dto

import (
	"fmt"
	"time"

	"github.com/stpnv0/AttendanceDesk/internal/desk"
	"github.com/stpnv0/AttendanceDesk/internal/domain"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type EventResponse struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	EventDate string  `json:"event_date"`
	Venue     string  `json:"venue"`
	CMEPoints float64 `json:"cme_points"`
	Capacity  int     `json:"capacity"`
	Status    string  `json:"status"`
}

type StatsResponse struct {
	TotalRegistered int     `json:"total_registered"`
	TotalAttended   int     `json:"total_attended"`
	AttendanceRate  float64 `json:"attendance_rate"`
}

type RegistrationResponse struct {
	ID           string  `json:"id"`
	MemberName   string  `json:"member_name"`
	Email        string  `json:"email"`
	Specialty    string  `json:"specialty"`
	Status       string  `json:"status"`
	RegisteredAt string  `json:"registered_at"`
	AttendedAt   *string `json:"attended_at,omitempty"`
	Selectable   bool    `json:"selectable"`
	Selected     bool    `json:"selected"`
}

type QueueEntryResponse struct {
	Code     string `json:"code"`
	QueuedAt string `json:"queued_at"`
}

type DeskResponse struct {
	Event         EventResponse          `json:"event"`
	Stats         StatsResponse          `json:"stats"`
	Registrations []RegistrationResponse `json:"registrations"`
	Queue         []QueueEntryResponse   `json:"queue"`
	Selection     []string               `json:"selection"`
	FetchedAt     string                 `json:"fetched_at"`
}

type CheckInResponse struct {
	Outcome      string                `json:"outcome"`
	Message      string                `json:"message"`
	Registration *RegistrationResponse `json:"registration,omitempty"`
	Desk         *DeskResponse         `json:"desk,omitempty"`
}

type FailedItemResponse struct {
	Identifier string `json:"identifier"`
	Reason     string `json:"reason"`
}

type BatchResponse struct {
	Succeeded  []string             `json:"succeeded"`
	Duplicates int                  `json:"duplicates"`
	Failed     []FailedItemResponse `json:"failed"`
	Message    string               `json:"message"`
	Desk       *DeskResponse        `json:"desk,omitempty"`
}

type QueueResponse struct {
	Queue []QueueEntryResponse `json:"queue"`
}

type SelectionResponse struct {
	Selection []string `json:"selection"`
}

type JournalEntryResponse struct {
	ID             string `json:"id"`
	OperatorID     string `json:"operator_id"`
	Identifier     string `json:"identifier"`
	RegistrationID string `json:"registration_id,omitempty"`
	MemberName     string `json:"member_name,omitempty"`
	Outcome        string `json:"outcome"`
	Reason         string `json:"reason,omitempty"`
	CreatedAt      string `json:"created_at"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:        e.ID,
		Title:     e.Title,
		EventDate: e.EventDate.Format(time.RFC3339),
		Venue:     e.Venue,
		CMEPoints: e.CMEPoints,
		Capacity:  e.Capacity,
		Status:    string(e.Status),
	}
}

func ToStatsResponse(s domain.AttendanceStats) StatsResponse {
	return StatsResponse{
		TotalRegistered: s.TotalRegistered,
		TotalAttended:   s.TotalAttended,
		AttendanceRate:  s.AttendanceRate,
	}
}

func ToRegistrationResponse(r *domain.Registration, selected bool) RegistrationResponse {
	resp := RegistrationResponse{
		ID:           r.ID,
		MemberName:   r.Member.Name,
		Email:        r.Member.Email,
		Specialty:    r.Member.Specialty,
		Status:       string(r.Status),
		RegisteredAt: r.RegisteredAt.Format(time.RFC3339),
		Selectable:   !r.Attended(),
		Selected:     selected,
	}
	if r.AttendedAt != nil {
		at := r.AttendedAt.Format(time.RFC3339)
		resp.AttendedAt = &at
	}
	return resp
}

func ToQueueResponse(entries []desk.QueueEntry) []QueueEntryResponse {
	res := make([]QueueEntryResponse, 0, len(entries))
	for _, e := range entries {
		res = append(res, QueueEntryResponse{Code: e.Code, QueuedAt: e.QueuedAt.Format(time.RFC3339)})
	}
	return res
}

func ToDeskResponse(v *desk.View) *DeskResponse {
	if v == nil {
		return nil
	}

	selected := make(map[string]bool, len(v.Selection))
	for _, id := range v.Selection {
		selected[id] = true
	}

	regs := make([]RegistrationResponse, 0, len(v.Registrations))
	for i := range v.Registrations {
		regs = append(regs, ToRegistrationResponse(&v.Registrations[i], selected[v.Registrations[i].ID]))
	}

	sel := v.Selection
	if sel == nil {
		sel = []string{}
	}

	return &DeskResponse{
		Event:         ToEventResponse(&v.Event),
		Stats:         ToStatsResponse(v.Stats),
		Registrations: regs,
		Queue:         ToQueueResponse(v.Queue),
		Selection:     sel,
		FetchedAt:     v.FetchedAt.Format(time.RFC3339),
	}
}

func ToCheckInResponse(res *domain.CheckInResult, v *desk.View) CheckInResponse {
	resp := CheckInResponse{
		Outcome: string(res.Outcome),
		Desk:    ToDeskResponse(v),
	}
	if res.Registration != nil {
		r := ToRegistrationResponse(res.Registration, false)
		resp.Registration = &r
	}
	resp.Message = checkInMessage(res)
	return resp
}

func checkInMessage(res *domain.CheckInResult) string {
	name := res.Identifier
	if res.Registration != nil && res.Registration.Member.Name != "" {
		name = res.Registration.Member.Name
	}

	if res.Outcome == domain.OutcomeDuplicate {
		if at := res.AttendedAt(); at != nil {
			return name + " already attended at " + at.Format("15:04") + "."
		}
		return name + " already attended."
	}
	return name + " checked in."
}

func ToBatchResponse(s *domain.BatchSummary, v *desk.View) BatchResponse {
	failed := make([]FailedItemResponse, 0, len(s.Failed))
	for _, f := range s.Failed {
		failed = append(failed, FailedItemResponse{Identifier: f.Identifier, Reason: f.Reason})
	}

	succeeded := s.Succeeded
	if succeeded == nil {
		succeeded = []string{}
	}

	return BatchResponse{
		Succeeded:  succeeded,
		Duplicates: s.Duplicates,
		Failed:     failed,
		Message:    batchMessage(s),
		Desk:       ToDeskResponse(v),
	}
}

func batchMessage(s *domain.BatchSummary) string {
	return fmt.Sprintf("%d checked in, %d already attended, %d failed.",
		len(s.Succeeded), s.Duplicates, len(s.Failed))
}

func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	return JournalEntryResponse{
		ID:             e.ID,
		OperatorID:     e.OperatorID,
		Identifier:     e.Identifier,
		RegistrationID: e.RegistrationID,
		MemberName:     e.MemberName,
		Outcome:        string(e.Outcome),
		Reason:         e.Reason,
		CreatedAt:      e.CreatedAt.Format(time.RFC3339),
	}
}

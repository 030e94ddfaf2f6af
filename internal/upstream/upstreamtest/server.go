// Package upstreamtest runs an in-memory membership API for tests. It keeps
// a log of every request in arrival order so tests can assert call order.
package upstreamtest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stpnv0/AttendanceDesk/internal/domain"
)

const ReportContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Server struct {
	*httptest.Server

	mu             sync.Mutex
	events         map[string]domain.Event
	regs           map[string][]*domain.Registration
	calls          []string
	tokens         []string
	markFailures   map[string]int
	lookupFailures map[string]int
	reportFailure  int
}

func New(t testing.TB) *Server {
	t.Helper()

	s := &Server{
		events:         make(map[string]domain.Event),
		regs:           make(map[string][]*domain.Registration),
		markFailures:   make(map[string]int),
		lookupFailures: make(map[string]int),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /events/{id}", s.getEvent)
	mux.HandleFunc("GET /events/{id}/registrations", s.listRegistrations)
	mux.HandleFunc("GET /events/{id}/attendance-stats", s.stats)
	mux.HandleFunc("GET /events/{id}/lookup", s.lookup)
	mux.HandleFunc("GET /events/{id}/attendance-report", s.report)
	mux.HandleFunc("POST /registrations/{id}/attendance", s.mark)

	s.Server = httptest.NewServer(s.record(mux))
	t.Cleanup(s.Close)

	return s
}

func (s *Server) AddEvent(e domain.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[e.ID] = e
}

func (s *Server) AddRegistration(r domain.Registration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	reg := r
	s.regs[r.EventID] = append(s.regs[r.EventID], &reg)
}

// SeedRoster adds an event with n registrations in status Registered. Ids are
// "<eventID>-r1".. and check-in codes "QR-<id>".
func (s *Server) SeedRoster(eventID string, n int) []domain.Registration {
	s.AddEvent(domain.Event{ID: eventID, Title: "Event " + eventID, Status: domain.EventStatusInProgress})

	res := make([]domain.Registration, 0, n)
	for i := 1; i <= n; i++ {
		id := fmt.Sprintf("%s-r%d", eventID, i)
		r := domain.Registration{
			ID:           id,
			EventID:      eventID,
			CheckInCode:  "QR-" + id,
			Status:       domain.RegistrationStatusRegistered,
			RegisteredAt: time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC),
			Member: domain.MemberSummary{
				ID:        fmt.Sprintf("m%d", i),
				Name:      fmt.Sprintf("Member %d", i),
				Email:     fmt.Sprintf("member%d@medsoc.example", i),
				Specialty: "Cardiology",
			},
		}
		s.AddRegistration(r)
		res = append(res, r)
	}
	return res
}

// SetAttended simulates another operator checking the registration in.
func (s *Server) SetAttended(registrationID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r := s.findLocked(registrationID); r != nil {
		now := time.Now().UTC()
		r.Status = domain.RegistrationStatusAttended
		r.AttendedAt = &now
	}
}

func (s *Server) FailMark(registrationID string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.markFailures[registrationID] = status
}

func (s *Server) FailLookup(code string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lookupFailures[code] = status
}

func (s *Server) FailReport(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reportFailure = status
}

// Calls returns "METHOD path?query" for every request received.
func (s *Server) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

// Mutations returns only the POST calls.
func (s *Server) Mutations() []string {
	var res []string
	for _, c := range s.Calls() {
		if strings.HasPrefix(c, http.MethodPost+" ") {
			res = append(res, c)
		}
	}
	return res
}

// Tokens returns the bearer tokens seen, one per request.
func (s *Server) Tokens() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.tokens...)
}

func (s *Server) ResetCalls() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = nil
	s.tokens = nil
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		call := r.Method + " " + r.URL.Path
		if r.URL.RawQuery != "" {
			call += "?" + r.URL.RawQuery
		}
		s.mu.Lock()
		s.calls = append(s.calls, call)
		s.tokens = append(s.tokens, strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer "))
		s.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

func (s *Server) getEvent(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	e, ok := s.events[r.PathValue("id")]
	s.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, "event not found")
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (s *Server) listRegistrations(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := r.PathValue("id")
	if _, ok := s.events[id]; !ok {
		writeError(w, http.StatusNotFound, "event not found")
		return
	}

	res := make([]domain.Registration, 0, len(s.regs[id]))
	for _, reg := range s.regs[id] {
		res = append(res, *reg)
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) stats(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := r.PathValue("id")
	if _, ok := s.events[id]; !ok {
		writeError(w, http.StatusNotFound, "event not found")
		return
	}

	var registered, attended int
	for _, reg := range s.regs[id] {
		switch reg.Status {
		case domain.RegistrationStatusCancelled, domain.RegistrationStatusWaitlisted:
			continue
		case domain.RegistrationStatusAttended:
			attended++
		}
		registered++
	}

	st := domain.NewAttendanceStats(registered, attended)
	writeJSON(w, http.StatusOK, map[string]any{
		"totalRegistered": st.TotalRegistered,
		"totalAttended":   st.TotalAttended,
		"attendanceRate":  st.AttendanceRate,
	})
}

func (s *Server) lookup(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	code := r.URL.Query().Get("code")
	if status, ok := s.lookupFailures[code]; ok {
		writeError(w, status, "lookup failed")
		return
	}

	for _, regs := range s.regs {
		for _, reg := range regs {
			if reg.CheckInCode == code {
				writeJSON(w, http.StatusOK, reg)
				return
			}
		}
	}
	writeError(w, http.StatusNotFound, "no registration for code")
}

func (s *Server) mark(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := r.PathValue("id")
	if status, ok := s.markFailures[id]; ok {
		writeError(w, status, "mark failed")
		return
	}

	reg := s.findLocked(id)
	if reg == nil {
		writeError(w, http.StatusNotFound, "registration not found")
		return
	}
	if reg.Status == domain.RegistrationStatusAttended {
		writeError(w, http.StatusConflict, "already attended")
		return
	}

	now := time.Now().UTC()
	reg.Status = domain.RegistrationStatusAttended
	reg.AttendedAt = &now
	writeJSON(w, http.StatusOK, reg)
}

// report answers with a CSV-shaped body under the spreadsheet content type;
// an empty roster still gets the header row.
func (s *Server) report(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.reportFailure != 0 {
		writeError(w, s.reportFailure, "report generation failed")
		return
	}

	id := r.PathValue("id")
	if _, ok := s.events[id]; !ok {
		writeError(w, http.StatusNotFound, "event not found")
		return
	}

	w.Header().Set("Content-Type", ReportContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="attendance-%s.xlsx"`, id))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(ReportBody(s.regsCopyLocked(id))))
}

// ReportBody is the artifact the fake produces for the given roster.
func ReportBody(regs []domain.Registration) string {
	var b strings.Builder
	b.WriteString("name,email,status\n")
	for _, r := range regs {
		fmt.Fprintf(&b, "%s,%s,%s\n", r.Member.Name, r.Member.Email, r.Status)
	}
	return b.String()
}

func (s *Server) regsCopyLocked(eventID string) []domain.Registration {
	res := make([]domain.Registration, 0, len(s.regs[eventID]))
	for _, r := range s.regs[eventID] {
		res = append(res, *r)
	}
	return res
}

func (s *Server) findLocked(id string) *domain.Registration {
	for _, regs := range s.regs {
		for _, reg := range regs {
			if reg.ID == id {
				return reg
			}
		}
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

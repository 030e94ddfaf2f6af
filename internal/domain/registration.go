package domain

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
)

type RegistrationStatus string

const (
	RegistrationStatusRegistered RegistrationStatus = "Registered"
	RegistrationStatusAttended   RegistrationStatus = "Attended"
	RegistrationStatusNoShow     RegistrationStatus = "NoShow"
	RegistrationStatusCancelled  RegistrationStatus = "Cancelled"
	RegistrationStatusWaitlisted RegistrationStatus = "Waitlisted"
)

func (s RegistrationStatus) Valid() bool {
	switch s {
	case RegistrationStatusRegistered, RegistrationStatusAttended, RegistrationStatusNoShow,
		RegistrationStatusCancelled, RegistrationStatusWaitlisted:
		return true
	}
	return false
}

type MemberSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Specialty string `json:"specialty"`
}

type Payment struct {
	Amount    float64    `json:"amount"`
	Currency  string     `json:"currency"`
	Reference string     `json:"reference"`
	PaidAt    *time.Time `json:"paidAt,omitempty"`
}

type Registration struct {
	ID           string             `json:"id"`
	EventID      string             `json:"eventId"`
	CheckInCode  string             `json:"checkInCode,omitempty"`
	Status       RegistrationStatus `json:"status"`
	RegisteredAt time.Time          `json:"registeredAt"`
	AttendedAt   *time.Time         `json:"attendedAt,omitempty"`
	Payment      *Payment           `json:"payment,omitempty"`
	Notes        string             `json:"notes,omitempty"`
	Member       MemberSummary      `json:"member"`
}

func (r *Registration) Attended() bool {
	return r.Status == RegistrationStatusAttended
}

// RosterFilter narrows a roster for display. Zero value matches everything.
type RosterFilter struct {
	Query  string
	Status RegistrationStatus
}

// FilterRegistrations keeps the roster order and matches Query as a
// case-insensitive substring of the member name or email.
func FilterRegistrations(regs []Registration, f RosterFilter) []Registration {
	fold := cases.Fold()
	query := fold.String(strings.TrimSpace(f.Query))

	res := make([]Registration, 0, len(regs))
	for _, r := range regs {
		if f.Status != "" && r.Status != f.Status {
			continue
		}
		if query != "" &&
			!strings.Contains(fold.String(r.Member.Name), query) &&
			!strings.Contains(fold.String(r.Member.Email), query) {
			continue
		}
		res = append(res, r)
	}

	return res
}

// SelectableIDs returns ids of registrations that may be put into a bulk
// selection, i.e. everything not yet attended.
func SelectableIDs(regs []Registration) []string {
	ids := make([]string, 0, len(regs))
	for _, r := range regs {
		if !r.Attended() {
			ids = append(ids, r.ID)
		}
	}
	return ids
}

func FindRegistration(regs []Registration, id string) (*Registration, bool) {
	for i := range regs {
		if regs[i].ID == id {
			return &regs[i], true
		}
	}
	return nil, false
}

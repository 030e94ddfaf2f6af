package domain

import "time"

type JournalEntry struct {
	ID             string         `json:"id"`
	EventID        string         `json:"event_id"`
	OperatorID     string         `json:"operator_id"`
	Identifier     string         `json:"identifier"`
	RegistrationID string         `json:"registration_id,omitempty"`
	MemberName     string         `json:"member_name,omitempty"`
	Outcome        CheckInOutcome `json:"outcome"`
	Reason         string         `json:"reason,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
}

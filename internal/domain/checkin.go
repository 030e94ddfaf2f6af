package domain

import "time"

type CheckInOutcome string

const (
	OutcomeAttended  CheckInOutcome = "attended"
	OutcomeDuplicate CheckInOutcome = "duplicate"
	OutcomeFailed    CheckInOutcome = "failed"
)

// CheckInResult is what a single resolve/mark produces. A duplicate is a
// result, not an error: Registration then carries the earlier attendance.
type CheckInResult struct {
	Identifier   string         `json:"identifier"`
	Outcome      CheckInOutcome `json:"outcome"`
	Registration *Registration  `json:"registration,omitempty"`
}

func (r *CheckInResult) AttendedAt() *time.Time {
	if r.Registration == nil {
		return nil
	}
	return r.Registration.AttendedAt
}

// ItemOutcome is one processed entry of a bulk batch.
type ItemOutcome struct {
	Identifier string
	Result     *CheckInResult
	Err        error
}

type FailedItem struct {
	Identifier string `json:"identifier"`
	Reason     string `json:"reason"`
}

type BatchSummary struct {
	Succeeded  []string     `json:"succeeded"`
	Duplicates int          `json:"duplicates"`
	Failed     []FailedItem `json:"failed"`
	// Snapshot is nil when the post-batch refresh failed.
	Snapshot *Snapshot `json:"snapshot,omitempty"`
}

func (s *BatchSummary) Processed() int {
	return len(s.Succeeded) + s.Duplicates + len(s.Failed)
}

package domain

import "time"

type AttendanceStats struct {
	TotalRegistered int     `json:"totalRegistered"`
	TotalAttended   int     `json:"totalAttended"`
	AttendanceRate  float64 `json:"attendanceRate"`
}

// NewAttendanceStats derives the rate from the counts; a zero roster has a zero rate.
func NewAttendanceStats(registered, attended int) AttendanceStats {
	var rate float64
	if registered > 0 {
		rate = float64(attended*100) / float64(registered)
	}
	return AttendanceStats{
		TotalRegistered: registered,
		TotalAttended:   attended,
		AttendanceRate:  rate,
	}
}

// Snapshot is one stats+roster read. The two halves come from separate
// requests and may briefly disagree; the next refresh settles it.
type Snapshot struct {
	EventID       string          `json:"event_id"`
	Stats         AttendanceStats `json:"stats"`
	Registrations []Registration  `json:"registrations"`
	FetchedAt     time.Time       `json:"fetched_at"`
}

package domain

import "time"

type EventStatus string

const (
	EventStatusDraft              EventStatus = "Draft"
	EventStatusPublished          EventStatus = "Published"
	EventStatusRegistrationOpen   EventStatus = "RegistrationOpen"
	EventStatusRegistrationClosed EventStatus = "RegistrationClosed"
	EventStatusInProgress         EventStatus = "InProgress"
	EventStatusCompleted          EventStatus = "Completed"
	EventStatusCancelled          EventStatus = "Cancelled"
)

// Event is read-only for the desk; it is owned by the membership API.
type Event struct {
	ID                   string      `json:"id"`
	Title                string      `json:"title"`
	Description          string      `json:"description"`
	EventDate            time.Time   `json:"eventDate"`
	Venue                string      `json:"venue"`
	CMEPoints            float64     `json:"cmePoints"`
	Capacity             int         `json:"capacity"`
	RegistrationDeadline *time.Time  `json:"registrationDeadline,omitempty"`
	Status               EventStatus `json:"status"`
}

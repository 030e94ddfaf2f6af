package domain

import "errors"

var (
	ErrEventNotFound        = errors.New("event not found")
	ErrRegistrationNotFound = errors.New("member not found or not registered for this event")
	ErrDeskNotOpen          = errors.New("check-in desk is not open for this event")
)

var (
	// ErrAlreadyAttended is what the membership API answers when a mark
	// races another operator. Callers turn it into a duplicate result.
	ErrAlreadyAttended  = errors.New("registration already attended")
	ErrNotSelectable    = errors.New("registration cannot be selected")
	ErrActionInProgress = errors.New("action already in progress")
)

var (
	ErrTransient    = errors.New("membership service unavailable")
	ErrExportFailed = errors.New("attendance report export failed")
	ErrUnauthorized = errors.New("unauthorized")
)

var (
	ErrValidation = errors.New("validation error")
)

// UserMessage is the operator-facing text for a check-in failure.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrRegistrationNotFound):
		return "Member not found or not registered for this event."
	case errors.Is(err, ErrEventNotFound):
		return "Event not found."
	case errors.Is(err, ErrValidation):
		return "Invalid or empty code."
	case errors.Is(err, ErrDeskNotOpen):
		return "Check-in desk is not open for this event."
	case errors.Is(err, ErrActionInProgress):
		return "Action already in progress."
	case errors.Is(err, ErrNotSelectable):
		return "Registration is already attended and cannot be selected."
	case errors.Is(err, ErrUnauthorized):
		return "Session expired or not permitted."
	case errors.Is(err, ErrExportFailed):
		return "Attendance report could not be generated."
	case errors.Is(err, ErrTransient):
		return "Membership service unavailable, try again."
	default:
		return err.Error()
	}
}

package booking

import "fmt"

// LookupError signals that the store could not be consulted.
type LookupError struct {
	Code    string
	Message string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewLookupError(msg string) error {
	return &LookupError{
		Code:    "lookupError",
		Message: msg,
	}
}

// ConflictError signals that the requested slot is already held. The
// finalizer also returns it when the conflict check itself fails, erring
// on the side of not double-booking.
type ConflictError struct {
	DoctorID  string
	Date      string
	StartTime string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("slot %s %s for doctor %s is already booked", e.Date, e.StartTime, e.DoctorID)
}

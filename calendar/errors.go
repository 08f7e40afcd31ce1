package calendar

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidRecurrence is returned when an event's recurrence kind is
	// set but is neither "year" nor "month". It aborts the whole filter or
	// generation call; no partial view is produced.
	ErrInvalidRecurrence = errors.New("invalid recurrence kind")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// InvalidRecurrenceError reports the offending event and the rejected
// recurrence kind.
type InvalidRecurrenceError struct {
	EventID string
	Kind    Recurrence
}

func (e *InvalidRecurrenceError) Error() string {
	return fmt.Sprintf("invalid value (%s) given for recurs on, can only be year or month (event %s)",
		e.Kind, e.EventID)
}

func (e *InvalidRecurrenceError) Unwrap() error {
	return ErrInvalidRecurrence
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid caller input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidRecurrence)
}

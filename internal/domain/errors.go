package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when a tractor, booking or user does not exist.
// Wrap it with fmt.Errorf("...: %w", ErrNotFound) to add context.
var ErrNotFound = errors.New("not found")

// UnauthorizedError is returned when the actor lacks the role or ownership a
// transition requires.
type UnauthorizedError struct {
	ActorID int32
	Action  string
}

func (e *UnauthorizedError) Error() string {
	return fmt.Sprintf("user %d is not allowed to %s", e.ActorID, e.Action)
}

// InvalidWindowError is returned for empty or inverted booking windows.
type InvalidWindowError struct {
	StartAt time.Time
	EndAt   time.Time
}

func (e *InvalidWindowError) Error() string {
	return fmt.Sprintf("invalid booking window: start %s must be before end %s",
		e.StartAt.Format(time.RFC3339), e.EndAt.Format(time.RFC3339))
}

// InvalidTransitionError is returned when a lifecycle transition is not in the
// state graph, or when a cross-axis guard fails (e.g. delivery before
// approval). Required, when set, names the statuses the booking must be in.
type InvalidTransitionError struct {
	BookingID int32
	From      BookingStatus
	To        BookingStatus
	Required  []BookingStatus
	Reason    string
}

func (e *InvalidTransitionError) Error() string {
	msg := fmt.Sprintf("booking %d: cannot move from %s to %s", e.BookingID, e.From, e.To)
	if len(e.Required) > 0 {
		msg += fmt.Sprintf(", requires status %v", e.Required)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// CapacityExceededError is returned when an approval would oversubscribe the
// tractor's inventory. Overlapping is the count of already-approved bookings
// whose windows overlap the candidate's.
type CapacityExceededError struct {
	TractorID   int32
	Quantity    int32
	Overlapping int32
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("tractor %d: %d overlapping approved bookings already use all %d units",
		e.TractorID, e.Overlapping, e.Quantity)
}

// AlreadyFinalizedError is returned on attempts to mutate a terminal-state
// booking or to recompute a set-once amount.
type AlreadyFinalizedError struct {
	BookingID int32
	Status    BookingStatus
	Field     string
}

func (e *AlreadyFinalizedError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("booking %d: %s is already finalized", e.BookingID, e.Field)
	}
	return fmt.Sprintf("booking %d: status %s is terminal", e.BookingID, e.Status)
}

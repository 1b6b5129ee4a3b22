package model

import (
	"time"

	"github.com/elizhang33/room-reservations-api/shared/failure"
)

// TimeWindow is the half-open interval [Start, End) of a reservation.
// Both bounds are absolute instants; comparisons never look at wall
// clock representations.
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// Validate enforces Start < End. A zero-length or inverted window is a
// caller input error, never stored.
func (w TimeWindow) Validate() error {
	if w.Start.IsZero() || w.End.IsZero() {
		return failure.BadRequestFromString("start_time and end_time are required")
	}

	if !w.Start.Before(w.End) {
		return failure.BadRequestFromString("start_time must be before end_time")
	}

	return nil
}

// Overlaps reports whether two half-open windows conflict. A window
// ending exactly when another starts does not conflict.
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return w.Start.Before(other.End) && other.Start.Before(w.End)
}

package domain

import "time"

// Window is a half-open rental interval [StartAt, EndAt).
type Window struct {
	StartAt time.Time `json:"start_at"`
	EndAt   time.Time `json:"end_at"`
}

// Validate rejects empty or inverted windows.
func (w Window) Validate() error {
	if !w.StartAt.Before(w.EndAt) {
		return &InvalidWindowError{StartAt: w.StartAt, EndAt: w.EndAt}
	}
	return nil
}

// Overlaps reports whether two half-open windows intersect.
// Touching endpoints ([10:00,12:00) and [12:00,14:00)) do not overlap.
func (w Window) Overlaps(other Window) bool {
	return w.StartAt.Before(other.EndAt) && other.StartAt.Before(w.EndAt)
}

// Minutes returns the booked duration in whole minutes.
func (w Window) Minutes() int32 {
	return int32(w.EndAt.Sub(w.StartAt) / time.Minute)
}

// Hours returns the booked duration in whole hours, truncated.
func (w Window) Hours() int32 {
	return int32(w.EndAt.Sub(w.StartAt) / time.Hour)
}

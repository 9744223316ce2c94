package domain

import "github.com/fablab-portal/SchedulingService/pkg/types"

// Interval is a half-open time range [Start, End) within one day.
type Interval struct {
	Start types.TimeString
	End   types.TimeString
}

// Overlaps reports whether two half-open intervals intersect.
// An interval ending exactly when another starts does not overlap it.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.IsBefore(other.End) && other.Start.IsBefore(i.End)
}

// Contains reports whether other lies fully inside i.
func (i Interval) Contains(other Interval) bool {
	return !other.Start.IsBefore(i.Start) && !i.End.IsBefore(other.End)
}

// DurationMinutes returns the interval length in minutes.
func (i Interval) DurationMinutes() int {
	return i.Start.MinutesUntil(i.End)
}

// IsValid reports whether the interval has chronological, non-zero extent.
func (i Interval) IsValid() bool {
	return !i.Start.IsZero() && !i.End.IsZero() && i.Start.IsBefore(i.End)
}

package domain

import (
	"time"

	"github.com/fablab-portal/SchedulingService/pkg/types"
)

// WorkingHoursPolicy is the single default weekly schedule of the lab.
// It is updated wholesale by administrators; no history is kept.
type WorkingHoursPolicy struct {
	ID          int64
	StartTime   types.TimeString
	EndTime     types.TimeString
	WorkingDays []int // weekday numbers, 0=Sunday .. 6=Saturday

	UpdatedAt time.Time
}

// OverridePeriod replaces the default schedule for a date range
// (holiday hours, Ramadan hours and similar). Records are soft-deleted:
// IsActive=false keeps them for audit but excludes them from resolution.
type OverridePeriod struct {
	ID          int64
	LabelEn     string
	LabelAr     string
	StartDate   time.Time
	EndDate     time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	WorkingDays []int
	IsActive    bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Covers reports whether the override's date range contains the date.
func (o *OverridePeriod) Covers(date time.Time) bool {
	d := DateOnly(date)
	return !d.Before(DateOnly(o.StartDate)) && !d.After(DateOnly(o.EndDate))
}

// ResolvedHours is the working-hours window that applies to one date after
// override precedence has been settled.
type ResolvedHours struct {
	StartTime   types.TimeString
	EndTime     types.TimeString
	WorkingDays []int
}

// IsWorkingDay reports whether the date's weekday belongs to the resolved
// working-day set.
func (h ResolvedHours) IsWorkingDay(date time.Time) bool {
	return ContainsWeekday(h.WorkingDays, date.Weekday())
}

// ContainsWeekday reports whether days contains the weekday
// (numbered 0=Sunday .. 6=Saturday).
func ContainsWeekday(days []int, wd time.Weekday) bool {
	for _, d := range days {
		if d == int(wd) {
			return true
		}
	}
	return false
}

// DateOnly truncates t to its calendar date in the local time zone.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

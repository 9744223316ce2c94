package domain

import "time"

// SectionDeactivation closes one lab section for a date range, independent of
// working hours (maintenance, refurbishment). Ranges of one section may
// overlap; the section is closed on a date if any active period covers it.
type SectionDeactivation struct {
	ID        int64
	Section   string
	StartDate time.Time
	EndDate   time.Time
	ReasonEn  string
	ReasonAr  string
	IsActive  bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Covers reports whether the deactivation's date range contains the date.
func (d *SectionDeactivation) Covers(date time.Time) bool {
	day := DateOnly(date)
	return !day.Before(DateOnly(d.StartDate)) && !day.After(DateOnly(d.EndDate))
}

package create_booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/fablab-portal/SchedulingService/internal/domain"
)

var (
	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidDateRange is returned when the end date precedes the start date
	ErrInvalidDateRange = errors.New("create_booking: end date before start date")

	// ErrRangeTooLong is returned when the expansion exceeds the batch bound
	ErrRangeTooLong = errors.New("create_booking: date range too long")

	// ErrMissingTimeRange is returned when a calendar-blocking booking lacks times
	ErrMissingTimeRange = errors.New("create_booking: start and end time required for calendar-blocking booking")

	// ErrSectionClosed is returned when a deactivation covers one of the dates
	ErrSectionClosed = errors.New("create_booking: section is closed")

	// ErrOutsideWorkingHours is returned when the requested interval is not
	// fully inside the date's resolved working window
	ErrOutsideWorkingHours = errors.New("create_booking: outside working hours")

	// ErrSlotConflict is returned when the interval intersects a committed
	// calendar-blocking event (pre-existing or lost to a race)
	ErrSlotConflict = errors.New("create_booking: slot conflicts with an existing event")

	// ErrInternal is returned for storage failures
	ErrInternal = errors.New("create_booking: internal error")
)

// DayError reports which date of a multi-day booking failed validation and
// why. The whole batch is aborted; no events exist for any of its dates.
type DayError struct {
	Date time.Time
	Err  error
}

func (e *DayError) Error() string {
	return fmt.Sprintf("%s: %v", e.Date.Format(domain.DateFormat), e.Err)
}

func (e *DayError) Unwrap() error {
	return e.Err
}

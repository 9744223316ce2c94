package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MinSlotDurationMinutes = 5
	MaxSlotDurationMinutes = 480 // 8 hours

	// DefaultSlotDurationMinutes applies when a slot query omits the duration.
	DefaultSlotDurationMinutes = 60

	// MaxBookingRangeDays bounds multi-day expansion so a malformed request
	// cannot create an unbounded batch of events.
	MaxBookingRangeDays = 62

	MaxLabelLength  = 200
	MaxReasonLength = 500
	MaxTitleLength  = 200
)

// CalendarBlockingStatuses are the non-terminal statuses in which a
// blocks_calendar event restricts future slot availability.
var CalendarBlockingStatuses = []EventStatus{
	StatusPending,
	StatusApproved,
	StatusBorrowed,
	StatusInProgress,
}

// TerminalStatuses are final statuses; events in them never block the calendar.
var TerminalStatuses = []EventStatus{
	StatusRejected,
	StatusCancelled,
	StatusCompleted,
	StatusReturned,
}

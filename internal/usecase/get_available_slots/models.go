package get_available_slots

import (
	"time"

	"github.com/fablab-portal/SchedulingService/pkg/types"
)

// Request asks for the open slots of one section on one date.
type Request struct {
	Section         string    // lab section, e.g. "3D"
	Date            time.Time // requested date (time part ignored)
	DurationMinutes int       // minimum usable slot length
}

// Response carries the ordered open intervals of the day.
type Response struct {
	Section string
	Date    time.Time
	Slots   []Slot
}

// Slot is a maximal open sub-interval of the day's working window that is at
// least the requested duration long.
type Slot struct {
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int
}

package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/fablab-portal/SchedulingService/internal/domain"
	"github.com/fablab-portal/SchedulingService/pkg/types"
)

// Request describes one booking, possibly spanning several days.
// A nil EndDate means a single-day booking on StartDate.
type Request struct {
	Kind           domain.EventKind
	Section        string
	StartDate      time.Time
	EndDate        *time.Time
	StartTime      types.TimeString // required when BlocksCalendar
	EndTime        types.TimeString
	BlocksCalendar bool
	Title          string
	CreatedBy      int64
}

// Response carries the committed batch: one event per day, all sharing the
// same group id.
type Response struct {
	GroupID uuid.UUID
	Events  []Event
}

// Event mirrors a committed blocking event.
type Event struct {
	ID             int64
	Kind           domain.EventKind
	Section        string
	Date           time.Time
	StartTime      types.TimeString
	EndTime        types.TimeString
	BlocksCalendar bool
	Status         domain.EventStatus
	GroupID        uuid.UUID
	Title          string
	CreatedBy      int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func fromDomainEvent(e *domain.BlockingEvent) Event {
	return Event{
		ID:             e.ID,
		Kind:           e.Kind,
		Section:        e.Section,
		Date:           e.Date,
		StartTime:      e.StartTime,
		EndTime:        e.EndTime,
		BlocksCalendar: e.BlocksCalendar,
		Status:         e.Status,
		GroupID:        e.GroupID,
		Title:          e.Title,
		CreatedBy:      e.CreatedBy,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

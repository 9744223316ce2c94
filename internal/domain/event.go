package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/fablab-portal/SchedulingService/pkg/types"
)

// EventKind distinguishes visitor appointments from staff tasks.
type EventKind string

const (
	KindAppointment EventKind = "appointment"
	KindTask        EventKind = "task"
)

// IsValid reports whether the kind is one of the known values.
func (k EventKind) IsValid() bool {
	return k == KindAppointment || k == KindTask
}

// EventStatus is the lifecycle status of a blocking event.
type EventStatus string

const (
	StatusPending    EventStatus = "pending"
	StatusApproved   EventStatus = "approved"
	StatusRejected   EventStatus = "rejected"
	StatusInProgress EventStatus = "in_progress"
	StatusCompleted  EventStatus = "completed"
	StatusCancelled  EventStatus = "cancelled"
	StatusBorrowed   EventStatus = "borrowed"
	StatusReturned   EventStatus = "returned"
)

// BlockingEvent is a committed appointment or staff task occupying calendar
// time in one lab section. Events created by a single multi-day booking share
// a GroupID so they can be updated or removed together.
type BlockingEvent struct {
	ID             int64
	Kind           EventKind
	Section        string
	Date           time.Time
	StartTime      types.TimeString // zero when the event does not block the calendar
	EndTime        types.TimeString
	BlocksCalendar bool
	Status         EventStatus
	GroupID        uuid.UUID
	Title          string
	CreatedBy      int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OccupiesCalendar reports whether the event restricts future slot
// availability: it must block the calendar and be in a non-terminal status.
func (e *BlockingEvent) OccupiesCalendar() bool {
	if !e.BlocksCalendar {
		return false
	}
	for _, s := range CalendarBlockingStatuses {
		if e.Status == s {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the event reached a final status.
func (e *BlockingEvent) IsTerminal() bool {
	switch e.Status {
	case StatusRejected, StatusCancelled, StatusCompleted, StatusReturned:
		return true
	}
	return false
}

// CanTransitionTo reports whether the status change is allowed by the
// event's state machine.
//
// Task:        pending → in_progress → completed, or pending → cancelled.
// Appointment: pending → approved | rejected, and approved ↔ rejected as an
// explicit re-decision (approving again requires conflict re-validation by
// the caller).
func (e *BlockingEvent) CanTransitionTo(next EventStatus) bool {
	switch e.Kind {
	case KindTask:
		switch e.Status {
		case StatusPending:
			return next == StatusInProgress || next == StatusCancelled
		case StatusInProgress:
			return next == StatusCompleted
		}
		return false
	case KindAppointment:
		switch e.Status {
		case StatusPending:
			return next == StatusApproved || next == StatusRejected
		case StatusApproved:
			return next == StatusRejected
		case StatusRejected:
			return next == StatusApproved
		}
		return false
	}
	return false
}

// EventsFilter selects blocking events for calendar listings.
type EventsFilter struct {
	Section   string       // required
	StartDate *time.Time   // inclusive period start, nil = unbounded
	EndDate   *time.Time   // inclusive period end, nil = unbounded
	Kind      *EventKind   // optional kind filter
	Status    *EventStatus // optional status filter
}

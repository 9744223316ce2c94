package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fablab-portal/SchedulingService/pkg/types"
)

func TestTaskTransitions(t *testing.T) {
	task := &BlockingEvent{Kind: KindTask, Status: StatusPending}

	assert.True(t, task.CanTransitionTo(StatusInProgress))
	assert.True(t, task.CanTransitionTo(StatusCancelled))
	assert.False(t, task.CanTransitionTo(StatusCompleted))
	assert.False(t, task.CanTransitionTo(StatusApproved))

	task.Status = StatusInProgress
	assert.True(t, task.CanTransitionTo(StatusCompleted))
	assert.False(t, task.CanTransitionTo(StatusCancelled))

	task.Status = StatusCompleted
	assert.False(t, task.CanTransitionTo(StatusInProgress))
	assert.True(t, task.IsTerminal())
}

func TestAppointmentTransitions(t *testing.T) {
	appt := &BlockingEvent{Kind: KindAppointment, Status: StatusPending}

	assert.True(t, appt.CanTransitionTo(StatusApproved))
	assert.True(t, appt.CanTransitionTo(StatusRejected))
	assert.False(t, appt.CanTransitionTo(StatusInProgress))
	assert.False(t, appt.CanTransitionTo(StatusCompleted))

	// A decision may be reversed in both directions.
	appt.Status = StatusApproved
	assert.True(t, appt.CanTransitionTo(StatusRejected))
	assert.False(t, appt.CanTransitionTo(StatusPending))

	appt.Status = StatusRejected
	assert.True(t, appt.CanTransitionTo(StatusApproved))
	assert.False(t, appt.CanTransitionTo(StatusPending))
}

func TestOccupiesCalendar(t *testing.T) {
	event := &BlockingEvent{
		Kind:           KindAppointment,
		BlocksCalendar: true,
		StartTime:      types.TimeString("10:00"),
		EndTime:        types.TimeString("11:00"),
	}

	for _, status := range CalendarBlockingStatuses {
		event.Status = status
		assert.True(t, event.OccupiesCalendar(), "status %s should occupy the calendar", status)
	}
	for _, status := range TerminalStatuses {
		event.Status = status
		assert.False(t, event.OccupiesCalendar(), "status %s should not occupy the calendar", status)
	}

	// A non-blocking task never occupies the calendar regardless of status.
	task := &BlockingEvent{Kind: KindTask, BlocksCalendar: false, Status: StatusPending}
	assert.False(t, task.OccupiesCalendar())
}

func TestEventKindIsValid(t *testing.T) {
	assert.True(t, KindAppointment.IsValid())
	assert.True(t, KindTask.IsValid())
	assert.False(t, EventKind("meeting").IsValid())
	assert.False(t, EventKind("").IsValid())
}

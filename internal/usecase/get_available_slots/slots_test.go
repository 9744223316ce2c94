package get_available_slots

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fablab-portal/SchedulingService/internal/domain"
	"github.com/fablab-portal/SchedulingService/pkg/types"
)

func iv(start, end string) domain.Interval {
	return domain.Interval{Start: types.TimeString(start), End: types.TimeString(end)}
}

func blockingEvent(start, end string, status domain.EventStatus) *domain.BlockingEvent {
	return &domain.BlockingEvent{
		Kind:           domain.KindAppointment,
		Section:        "3D",
		StartTime:      types.TimeString(start),
		EndTime:        types.TimeString(end),
		BlocksCalendar: true,
		Status:         status,
	}
}

func TestResolveHoursPrefersLatestOverride(t *testing.T) {
	policy := &domain.WorkingHoursPolicy{
		StartTime:   types.TimeString("09:00"),
		EndTime:     types.TimeString("21:00"),
		WorkingDays: []int{0, 1, 2, 3, 4},
	}

	hours := resolveHours(policy, nil)
	assert.Equal(t, types.TimeString("09:00"), hours.StartTime)
	assert.Equal(t, types.TimeString("21:00"), hours.EndTime)

	// Overrides arrive latest-created first; the newest one wins.
	overrides := []*domain.OverridePeriod{
		{StartTime: types.TimeString("11:00"), EndTime: types.TimeString("15:00"), WorkingDays: []int{0, 1, 2}},
		{StartTime: types.TimeString("10:00"), EndTime: types.TimeString("16:00"), WorkingDays: []int{0, 1, 2, 3}},
	}
	hours = resolveHours(policy, overrides)
	assert.Equal(t, types.TimeString("11:00"), hours.StartTime)
	assert.Equal(t, types.TimeString("15:00"), hours.EndTime)
	assert.Equal(t, []int{0, 1, 2}, hours.WorkingDays)
}

func TestBusyIntervalsClipsAndMerges(t *testing.T) {
	window := iv("11:00", "19:00")

	events := []*domain.BlockingEvent{
		blockingEvent("13:00", "14:00", domain.StatusApproved),
		blockingEvent("13:30", "15:00", domain.StatusPending),
		blockingEvent("10:00", "11:30", domain.StatusBorrowed), // clipped to window start
		blockingEvent("16:00", "17:00", domain.StatusRejected), // terminal, ignored
		blockingEvent("18:30", "20:00", domain.StatusApproved), // clipped to window end
	}

	busy := busyIntervals(window, events)

	assert.Equal(t, []domain.Interval{
		iv("11:00", "11:30"),
		iv("13:00", "15:00"),
		iv("18:30", "19:00"),
	}, busy)
}

func TestMergeIntervalsJoinsAdjacent(t *testing.T) {
	merged := mergeIntervals([]domain.Interval{
		iv("09:00", "10:00"),
		iv("10:00", "11:00"), // touching, no bookable gap between them
		iv("12:00", "13:00"),
	})

	assert.Equal(t, []domain.Interval{
		iv("09:00", "11:00"),
		iv("12:00", "13:00"),
	}, merged)
}

func TestSubtractBusy(t *testing.T) {
	window := iv("11:00", "19:00")

	free := subtractBusy(window, []domain.Interval{iv("13:00", "14:00")})
	assert.Equal(t, []domain.Interval{
		iv("11:00", "13:00"),
		iv("14:00", "19:00"),
	}, free)

	// Busy block flush against the window edges leaves nothing on that side.
	free = subtractBusy(window, []domain.Interval{iv("11:00", "12:00"), iv("18:00", "19:00")})
	assert.Equal(t, []domain.Interval{iv("12:00", "18:00")}, free)

	// Fully occupied day.
	free = subtractBusy(window, []domain.Interval{iv("11:00", "19:00")})
	assert.Empty(t, free)

	// Empty busy set returns the whole window.
	free = subtractBusy(window, nil)
	assert.Equal(t, []domain.Interval{window}, free)
}

func TestToSlotsDropsShortIntervals(t *testing.T) {
	free := []domain.Interval{
		iv("11:00", "13:00"),
		iv("14:00", "14:30"),
		iv("15:00", "19:00"),
	}

	slots := toSlots(free, 60)

	assert.Equal(t, []Slot{
		{StartTime: types.TimeString("11:00"), EndTime: types.TimeString("13:00"), DurationMinutes: 120},
		{StartTime: types.TimeString("15:00"), EndTime: types.TimeString("19:00"), DurationMinutes: 240},
	}, slots)
}

package get_available_slots

import (
	"sort"

	"github.com/fablab-portal/SchedulingService/internal/domain"
)

// resolveHours settles which working-hours window applies to the date.
// Overrides arrive latest-created first, so the first one wins; without an
// override the default policy applies. Resolution is a total function: for
// any date exactly one window (possibly an empty one via the weekday set)
// results.
func resolveHours(policy *domain.WorkingHoursPolicy, overrides []*domain.OverridePeriod) domain.ResolvedHours {
	if len(overrides) > 0 {
		o := overrides[0]
		return domain.ResolvedHours{
			StartTime:   o.StartTime,
			EndTime:     o.EndTime,
			WorkingDays: o.WorkingDays,
		}
	}
	return domain.ResolvedHours{
		StartTime:   policy.StartTime,
		EndTime:     policy.EndTime,
		WorkingDays: policy.WorkingDays,
	}
}

// busyIntervals collects the occupied [start, end) intervals of the day's
// calendar-blocking events, clipped to the working window, merged into a
// disjoint ascending sequence.
func busyIntervals(window domain.Interval, events []*domain.BlockingEvent) []domain.Interval {
	intervals := make([]domain.Interval, 0, len(events))

	for _, event := range events {
		// The repository already filters, but display-only or terminal events
		// must never shrink availability.
		if !event.OccupiesCalendar() {
			continue
		}

		interval := domain.Interval{Start: event.StartTime, End: event.EndTime}
		if !interval.IsValid() || !interval.Overlaps(window) {
			continue
		}

		// Clip to the working window
		if interval.Start.IsBefore(window.Start) {
			interval.Start = window.Start
		}
		if window.End.IsBefore(interval.End) {
			interval.End = window.End
		}

		intervals = append(intervals, interval)
	}

	sort.Slice(intervals, func(i, j int) bool {
		return intervals[i].Start.IsBefore(intervals[j].Start)
	})

	return mergeIntervals(intervals)
}

// mergeIntervals unions a start-sorted interval list. Adjacent intervals
// (end == next start) merge too: there is no bookable gap between them.
func mergeIntervals(intervals []domain.Interval) []domain.Interval {
	if len(intervals) == 0 {
		return intervals
	}

	merged := make([]domain.Interval, 0, len(intervals))
	current := intervals[0]

	for _, next := range intervals[1:] {
		if next.Start.IsAfter(current.End) {
			merged = append(merged, current)
			current = next
			continue
		}
		if current.End.IsBefore(next.End) {
			current.End = next.End
		}
	}

	return append(merged, current)
}

// subtractBusy removes the merged busy intervals from the working window,
// producing the maximal open sub-intervals in chronological order.
func subtractBusy(window domain.Interval, busy []domain.Interval) []domain.Interval {
	free := make([]domain.Interval, 0, len(busy)+1)
	cursor := window.Start

	for _, b := range busy {
		if cursor.IsBefore(b.Start) {
			free = append(free, domain.Interval{Start: cursor, End: b.Start})
		}
		if cursor.IsBefore(b.End) {
			cursor = b.End
		}
	}

	if cursor.IsBefore(window.End) {
		free = append(free, domain.Interval{Start: cursor, End: window.End})
	}

	return free
}

// toSlots drops sub-intervals shorter than the requested duration and maps
// the remainder to response slots.
func toSlots(free []domain.Interval, durationMinutes int) []Slot {
	slots := make([]Slot, 0, len(free))
	for _, interval := range free {
		length := interval.DurationMinutes()
		if length < durationMinutes {
			continue
		}
		slots = append(slots, Slot{
			StartTime:       interval.Start,
			EndTime:         interval.End,
			DurationMinutes: length,
		})
	}
	return slots
}

package get_available_slots

import (
	"context"
	"time"

	"github.com/fablab-portal/SchedulingService/internal/domain"
	"github.com/fablab-portal/SchedulingService/pkg/types"
)

// EventsRepository is the blocking-event store surface the resolver needs.
type EventsRepository interface {
	// FindConflicts returns calendar-blocking events intersecting [startTime, endTime)
	FindConflicts(ctx context.Context, section string, date time.Time, startTime, endTime types.TimeString) ([]*domain.BlockingEvent, error)
}

// ScheduleRepository reads the working-hours policy and override periods.
type ScheduleRepository interface {
	GetWorkingHours(ctx context.Context) (*domain.WorkingHoursPolicy, error)
	// ListOverridesCoveringDate returns active overrides for the date, latest created first
	ListOverridesCoveringDate(ctx context.Context, date time.Time) ([]*domain.OverridePeriod, error)
}

// SectionsRepository checks section-level closures.
type SectionsRepository interface {
	CountCovering(ctx context.Context, section string, date time.Time) (int, error)
}

// Logger is the logging surface used by the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

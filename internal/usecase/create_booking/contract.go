package create_booking

import (
	"context"
	"time"

	"github.com/fablab-portal/SchedulingService/internal/domain"
	"github.com/fablab-portal/SchedulingService/pkg/types"
)

// EventsRepository is the blocking-event store surface the expander needs.
type EventsRepository interface {
	Create(ctx context.Context, event *domain.BlockingEvent) (*domain.BlockingEvent, error)
	FindConflicts(ctx context.Context, section string, date time.Time, startTime, endTime types.TimeString) ([]*domain.BlockingEvent, error)
}

// ScheduleRepository reads the working-hours policy and override periods.
type ScheduleRepository interface {
	GetWorkingHours(ctx context.Context) (*domain.WorkingHoursPolicy, error)
	ListOverridesCoveringDate(ctx context.Context, date time.Time) ([]*domain.OverridePeriod, error)
}

// SectionsRepository checks section-level closures.
type SectionsRepository interface {
	CountCovering(ctx context.Context, section string, date time.Time) (int, error)
}

// TransactionManager serializes the validate-and-insert critical section.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging surface used by the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

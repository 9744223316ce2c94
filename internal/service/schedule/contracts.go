package schedule

import (
	"context"

	"github.com/fablab-portal/SchedulingService/internal/domain"
)

// ScheduleRepository is the storage surface for the working-hours policy and
// override periods.
type ScheduleRepository interface {
	GetWorkingHours(ctx context.Context) (*domain.WorkingHoursPolicy, error)
	UpdateWorkingHours(ctx context.Context, policy *domain.WorkingHoursPolicy) (*domain.WorkingHoursPolicy, error)
	CreateOverride(ctx context.Context, override *domain.OverridePeriod) (*domain.OverridePeriod, error)
	GetOverrideByID(ctx context.Context, id int64) (*domain.OverridePeriod, error)
	ListOverrides(ctx context.Context, includeInactive bool) ([]*domain.OverridePeriod, error)
	UpdateOverride(ctx context.Context, id int64, override *domain.OverridePeriod) (*domain.OverridePeriod, error)
	SetOverrideActive(ctx context.Context, id int64, active bool) error
}

// Logger is the logging surface used by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

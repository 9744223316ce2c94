package list_overrides

import (
	"context"

	"github.com/fablab-portal/SchedulingService/internal/service/schedule/models"
)

type ScheduleService interface {
	ListOverrides(ctx context.Context, includeInactive bool) ([]*models.OverrideResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package set_override_active

import (
	"context"

	"github.com/fablab-portal/SchedulingService/internal/service/schedule/models"
)

type ScheduleService interface {
	SetOverrideActive(ctx context.Context, id int64, active bool) (*models.OverrideResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

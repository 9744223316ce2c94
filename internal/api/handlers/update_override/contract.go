package update_override

import (
	"context"

	"github.com/fablab-portal/SchedulingService/internal/service/schedule/models"
)

type ScheduleService interface {
	UpdateOverride(ctx context.Context, id int64, req *models.OverrideRequest) (*models.OverrideResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

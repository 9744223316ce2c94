package create_override

import (
	"context"

	"github.com/fablab-portal/SchedulingService/internal/service/schedule/models"
)

type ScheduleService interface {
	CreateOverride(ctx context.Context, req *models.OverrideRequest) (*models.OverrideResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_working_hours

import (
	"context"

	"github.com/fablab-portal/SchedulingService/internal/service/schedule/models"
)

type ScheduleService interface {
	GetWorkingHours(ctx context.Context) (*models.WorkingHoursResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package set_deactivation_active

import (
	"context"

	"github.com/fablab-portal/SchedulingService/internal/service/sections/models"
)

type SectionsService interface {
	SetDeactivationActive(ctx context.Context, id int64, active bool) (*models.DeactivationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

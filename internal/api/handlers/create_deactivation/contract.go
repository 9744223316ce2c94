package create_deactivation

import (
	"context"

	"github.com/fablab-portal/SchedulingService/internal/service/sections/models"
)

type SectionsService interface {
	CreateDeactivation(ctx context.Context, req *models.DeactivationRequest) (*models.DeactivationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

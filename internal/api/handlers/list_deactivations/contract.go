package list_deactivations

import (
	"context"

	"github.com/fablab-portal/SchedulingService/internal/service/sections/models"
)

type SectionsService interface {
	ListDeactivations(ctx context.Context, section string, includeInactive bool) ([]*models.DeactivationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

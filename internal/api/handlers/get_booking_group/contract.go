package get_booking_group

import (
	"context"

	"github.com/google/uuid"

	"github.com/fablab-portal/SchedulingService/internal/service/events/models"
)

type EventsService interface {
	GetGroup(ctx context.Context, groupID uuid.UUID) (*models.GroupResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

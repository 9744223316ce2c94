package update_event_status

import (
	"context"

	"github.com/fablab-portal/SchedulingService/internal/domain"
	"github.com/fablab-portal/SchedulingService/internal/service/events/models"
)

type EventsService interface {
	ChangeStatus(ctx context.Context, id int64, next domain.EventStatus) (*models.EventResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

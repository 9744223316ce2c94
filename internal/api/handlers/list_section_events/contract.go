package list_section_events

import (
	"context"

	"github.com/fablab-portal/SchedulingService/internal/domain"
	"github.com/fablab-portal/SchedulingService/internal/service/events/models"
)

type EventsService interface {
	ListSectionEvents(ctx context.Context, filter domain.EventsFilter) ([]*models.EventResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package events

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fablab-portal/SchedulingService/internal/domain"
	"github.com/fablab-portal/SchedulingService/pkg/types"
)

// EventsRepository is the storage surface for blocking events.
type EventsRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.BlockingEvent, error)
	ListWithFilter(ctx context.Context, filter domain.EventsFilter) ([]*domain.BlockingEvent, error)
	FindConflicts(ctx context.Context, section string, date time.Time, startTime, endTime types.TimeString) ([]*domain.BlockingEvent, error)
	UpdateStatus(ctx context.Context, id int64, status domain.EventStatus) error
	ListByGroupID(ctx context.Context, groupID uuid.UUID) ([]*domain.BlockingEvent, error)
	DeleteByGroupID(ctx context.Context, groupID uuid.UUID) (int64, error)
}

// TransactionManager runs the status re-validation inside a transaction.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging surface used by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

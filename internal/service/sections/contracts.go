package sections

import (
	"context"
	"time"

	"github.com/fablab-portal/SchedulingService/internal/domain"
)

// SectionsRepository is the storage surface for section deactivations.
type SectionsRepository interface {
	Create(ctx context.Context, deactivation *domain.SectionDeactivation) (*domain.SectionDeactivation, error)
	GetByID(ctx context.Context, id int64) (*domain.SectionDeactivation, error)
	ListBySection(ctx context.Context, section string, includeInactive bool) ([]*domain.SectionDeactivation, error)
	CountCovering(ctx context.Context, section string, date time.Time) (int, error)
	SetActive(ctx context.Context, id int64, active bool) error
}

// Logger is the logging surface used by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

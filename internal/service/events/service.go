package events

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fablab-portal/SchedulingService/internal/domain"
	eventsRepo "github.com/fablab-portal/SchedulingService/internal/infra/storage/events"
	"github.com/fablab-portal/SchedulingService/internal/service/events/models"
)

// Service reads blocking events and drives their status lifecycle.
type Service struct {
	repo      EventsRepository
	txManager TransactionManager
	logger    Logger
}

// NewService creates the events service.
func NewService(repo EventsRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{repo: repo, txManager: txManager, logger: logger}
}

// GetByID returns one blocking event.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.EventResponse, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, eventsRepo.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}
		s.logger.Error("GetByID: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainEvent(event), nil
}

// ListSectionEvents returns the events of one section matching the filter.
func (s *Service) ListSectionEvents(ctx context.Context, filter domain.EventsFilter) ([]*models.EventResponse, error) {
	if filter.Section == "" {
		return nil, fmt.Errorf("%w: section is required", ErrInvalidInput)
	}
	if filter.Kind != nil && !filter.Kind.IsValid() {
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidInput, *filter.Kind)
	}
	if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
		return nil, fmt.Errorf("%w: endDate before startDate", ErrInvalidInput)
	}

	events, err := s.repo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("ListSectionEvents: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListSectionEvents - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainEvents(events), nil
}

// GetGroup returns all events sharing one booking group ID, ordered by date.
func (s *Service) GetGroup(ctx context.Context, groupID uuid.UUID) (*models.GroupResponse, error) {
	events, err := s.repo.ListByGroupID(ctx, groupID)
	if err != nil {
		s.logger.Error("GetGroup: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetGroup - repository error: %v", ErrInternal, err)
	}
	if len(events) == 0 {
		return nil, ErrGroupNotFound
	}
	return &models.GroupResponse{
		GroupID: groupID,
		Events:  models.FromDomainEvents(events),
	}, nil
}

// DeleteGroup removes every event of one booking group.
func (s *Service) DeleteGroup(ctx context.Context, groupID uuid.UUID) (*models.DeleteGroupResponse, error) {
	s.logger.Info("DeleteGroup: group=%s", groupID)

	deleted, err := s.repo.DeleteByGroupID(ctx, groupID)
	if err != nil {
		s.logger.Error("DeleteGroup: repository error: %v", err)
		return nil, fmt.Errorf("%w: DeleteGroup - repository error: %v", ErrInternal, err)
	}
	if deleted == 0 {
		return nil, ErrGroupNotFound
	}

	s.logger.Info("DeleteGroup: group=%s removed %d events", groupID, deleted)
	return &models.DeleteGroupResponse{GroupID: groupID, Deleted: deleted}, nil
}

// ChangeStatus moves one event along its state machine. A transition into
// approved re-checks the slot against current calendar occupancy inside a
// serializable transaction, so an approval can never land on a slot taken
// since the event was created.
func (s *Service) ChangeStatus(ctx context.Context, id int64, next domain.EventStatus) (*models.EventResponse, error) {
	s.logger.Info("ChangeStatus: id=%d next=%s", id, next)

	var updated *domain.BlockingEvent
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		event, err := s.repo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, eventsRepo.ErrEventNotFound) {
				return ErrEventNotFound
			}
			return fmt.Errorf("%w: ChangeStatus - repository error: %v", ErrInternal, err)
		}

		if !event.CanTransitionTo(next) {
			return fmt.Errorf("%w: %s %s -> %s", ErrInvalidTransition, event.Kind, event.Status, next)
		}

		if next == domain.StatusApproved && event.BlocksCalendar {
			if err := s.checkSlotFree(txCtx, event); err != nil {
				return err
			}
		}

		if err := s.repo.UpdateStatus(txCtx, id, next); err != nil {
			if errors.Is(err, eventsRepo.ErrEventNotFound) {
				return ErrEventNotFound
			}
			return fmt.Errorf("%w: ChangeStatus - repository error: %v", ErrInternal, err)
		}

		updated, err = s.repo.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("%w: ChangeStatus - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrEventNotFound) || errors.Is(err, ErrInvalidTransition) || errors.Is(err, ErrSlotConflict) {
			s.logger.Warn("ChangeStatus: id=%d rejected: %v", id, err)
			return nil, err
		}
		s.logger.Error("ChangeStatus: id=%d failed: %v", id, err)
		return nil, fmt.Errorf("%w: ChangeStatus - transaction error: %v", ErrInternal, err)
	}

	return models.FromDomainEvent(updated), nil
}

// checkSlotFree fails with ErrSlotConflict when any other blocking event
// occupies the event's slot. The event itself may appear in the conflict set
// when it is still pending.
func (s *Service) checkSlotFree(ctx context.Context, event *domain.BlockingEvent) error {
	conflicts, err := s.repo.FindConflicts(ctx, event.Section, event.Date, event.StartTime, event.EndTime)
	if err != nil {
		return fmt.Errorf("%w: ChangeStatus - conflict check failed: %v", ErrInternal, err)
	}
	for _, c := range conflicts {
		if c.ID != event.ID {
			return fmt.Errorf("%w: %s %s-%s on %s", ErrSlotConflict,
				event.Section, event.StartTime, event.EndTime, event.Date.Format(domain.DateFormat))
		}
	}
	return nil
}

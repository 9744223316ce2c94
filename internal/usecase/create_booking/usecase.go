package create_booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fablab-portal/SchedulingService/internal/domain"
)

// UseCase commits a booking: it expands the requested date range into one
// event per day and inserts the whole batch atomically. Validation and
// insertion run inside a single serializable transaction so no concurrent
// booking can slip into the range between the availability check and the
// write. A failing date aborts the entire batch.
type UseCase struct {
	eventsRepo   EventsRepository
	scheduleRepo ScheduleRepository
	sectionsRepo SectionsRepository
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase creates the use case.
func NewUseCase(
	eventsRepo EventsRepository,
	scheduleRepo ScheduleRepository,
	sectionsRepo SectionsRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		eventsRepo:   eventsRepo,
		scheduleRepo: scheduleRepo,
		sectionsRepo: sectionsRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute validates and commits the booking.
//
// Failure on any date is reported as a *DayError naming the date and the
// reason (section closed, outside hours, conflict); in that case no event of
// the batch is persisted.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: kind=%s, section=%s, start=%s, blocks=%t",
		req.Kind, req.Section, req.StartDate.Format(domain.DateFormat), req.BlocksCalendar)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	dates, err := expandDates(req.StartDate, req.EndDate)
	if err != nil {
		uc.logger.Warn("CreateBooking: date expansion failed: %v", err)
		return nil, err
	}

	groupID := uuid.New()

	// The closure may run more than once on serialization retry, so the
	// batch is built locally and published only when the attempt succeeds.
	var created []*domain.BlockingEvent

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		policy, err := uc.scheduleRepo.GetWorkingHours(txCtx)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get working hours: %v", err)
			return fmt.Errorf("%w: failed to get working hours: %v", ErrInternal, err)
		}

		// Validate every date in order; the first failure aborts the batch.
		// Conflict probes take row locks, so the whole range is protected
		// until the inserts below commit.
		for _, date := range dates {
			if err := uc.validateDay(txCtx, req, policy, date); err != nil {
				return err
			}
		}

		batch := make([]*domain.BlockingEvent, 0, len(dates))
		for _, date := range dates {
			event := &domain.BlockingEvent{
				Kind:           req.Kind,
				Section:        req.Section,
				Date:           date,
				StartTime:      req.StartTime,
				EndTime:        req.EndTime,
				BlocksCalendar: req.BlocksCalendar,
				Status:         domain.StatusPending,
				GroupID:        groupID,
				Title:          req.Title,
				CreatedBy:      req.CreatedBy,
			}

			inserted, err := uc.eventsRepo.Create(txCtx, event)
			if err != nil {
				uc.logger.Error("CreateBooking: failed to insert event for %s: %v",
					date.Format(domain.DateFormat), err)
				return fmt.Errorf("%w: failed to insert event: %v", ErrInternal, err)
			}
			batch = append(batch, inserted)
		}

		created = batch
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: committed group=%s with %d events", groupID, len(created))

	events := make([]Event, len(created))
	for i, e := range created {
		events[i] = fromDomainEvent(e)
	}

	return &Response{GroupID: groupID, Events: events}, nil
}

// validateDay re-runs the booking validation for one date inside the
// transaction: section closure first, then the resolved working window
// (including the weekday), then committed-event conflicts. Display-only
// bookings occupy no calendar time, so only the closure check applies to
// them.
func (uc *UseCase) validateDay(ctx context.Context, req *Request, policy *domain.WorkingHoursPolicy, date time.Time) error {
	covering, err := uc.sectionsRepo.CountCovering(ctx, req.Section, date)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to check deactivations: %v", err)
		return fmt.Errorf("%w: failed to check deactivations: %v", ErrInternal, err)
	}
	if covering > 0 {
		uc.logger.Warn("CreateBooking: section %s closed on %s", req.Section, date.Format(domain.DateFormat))
		return &DayError{Date: date, Err: ErrSectionClosed}
	}

	if !req.BlocksCalendar {
		return nil
	}

	overrides, err := uc.scheduleRepo.ListOverridesCoveringDate(ctx, date)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to list overrides: %v", err)
		return fmt.Errorf("%w: failed to list overrides: %v", ErrInternal, err)
	}

	hours := resolveHours(policy, overrides)
	if !hours.IsWorkingDay(date) {
		uc.logger.Warn("CreateBooking: %s is not a working day", date.Format(domain.DateFormat))
		return &DayError{Date: date, Err: ErrOutsideWorkingHours}
	}

	window := domain.Interval{Start: hours.StartTime, End: hours.EndTime}
	requested := domain.Interval{Start: req.StartTime, End: req.EndTime}
	if !window.Contains(requested) {
		uc.logger.Warn("CreateBooking: %s-%s outside window %s-%s on %s",
			req.StartTime, req.EndTime, hours.StartTime, hours.EndTime, date.Format(domain.DateFormat))
		return &DayError{Date: date, Err: ErrOutsideWorkingHours}
	}

	conflicts, err := uc.eventsRepo.FindConflicts(ctx, req.Section, date, req.StartTime, req.EndTime)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to find conflicts: %v", err)
		return fmt.Errorf("%w: failed to find conflicts: %v", ErrInternal, err)
	}
	if len(conflicts) > 0 {
		uc.logger.Warn("CreateBooking: %d conflicts on %s", len(conflicts), date.Format(domain.DateFormat))
		return &DayError{Date: date, Err: ErrSlotConflict}
	}

	return nil
}

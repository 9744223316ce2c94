package get_available_slots

import (
	"context"
	"fmt"

	"github.com/fablab-portal/SchedulingService/internal/domain"
)

// UseCase computes the bookable open intervals of one section for one date.
// It is a pure read: every call resolves against the current policy,
// overrides, deactivations and committed events; nothing is cached across
// requests.
type UseCase struct {
	eventsRepo   EventsRepository
	scheduleRepo ScheduleRepository
	sectionsRepo SectionsRepository
	logger       Logger
}

// NewUseCase creates the use case.
func NewUseCase(
	eventsRepo EventsRepository,
	scheduleRepo ScheduleRepository,
	sectionsRepo SectionsRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		eventsRepo:   eventsRepo,
		scheduleRepo: scheduleRepo,
		sectionsRepo: sectionsRepo,
		logger:       logger,
	}
}

// Execute resolves the available slots:
//
//  1. a section covered by an active deactivation yields no slots at all;
//  2. the working window comes from the latest-created active override for the
//     date, falling back to the default policy; a non-working weekday closes
//     the date;
//  3. the union of conflicting calendar-blocking events is subtracted from the
//     window, and sub-intervals shorter than the requested duration are
//     dropped.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: section=%s, date=%s, duration=%d",
		req.Section, req.Date.Format(domain.DateFormat), req.DurationMinutes)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	empty := &Response{Section: req.Section, Date: req.Date, Slots: []Slot{}}

	// 1. Section-level closure beats everything else
	covering, err := uc.sectionsRepo.CountCovering(ctx, req.Section, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to check deactivations: %v", err)
		return nil, fmt.Errorf("%w: failed to check deactivations: %v", ErrInternal, err)
	}
	if covering > 0 {
		uc.logger.Info("GetAvailableSlots: section %s deactivated on %s",
			req.Section, req.Date.Format(domain.DateFormat))
		return empty, nil
	}

	// 2. Resolve the working window for the date
	policy, err := uc.scheduleRepo.GetWorkingHours(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get working hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get working hours: %v", ErrInternal, err)
	}

	overrides, err := uc.scheduleRepo.ListOverridesCoveringDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list overrides: %v", err)
		return nil, fmt.Errorf("%w: failed to list overrides: %v", ErrInternal, err)
	}

	hours := resolveHours(policy, overrides)
	if !hours.IsWorkingDay(req.Date) {
		uc.logger.Info("GetAvailableSlots: %s is not a working day",
			req.Date.Format(domain.DateFormat))
		return empty, nil
	}

	window := domain.Interval{Start: hours.StartTime, End: hours.EndTime}
	if !window.IsValid() {
		uc.logger.Warn("GetAvailableSlots: resolved window %s-%s is empty",
			hours.StartTime, hours.EndTime)
		return empty, nil
	}

	// 3. Subtract committed events from the window
	conflicts, err := uc.eventsRepo.FindConflicts(ctx, req.Section, req.Date, window.Start, window.End)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to find conflicts: %v", err)
		return nil, fmt.Errorf("%w: failed to find conflicts: %v", ErrInternal, err)
	}

	busy := busyIntervals(window, conflicts)
	free := subtractBusy(window, busy)
	slots := toSlots(free, req.DurationMinutes)

	uc.logger.Info("GetAvailableSlots: section=%s, date=%s, %d busy, %d open slots",
		req.Section, req.Date.Format(domain.DateFormat), len(busy), len(slots))

	return &Response{
		Section: req.Section,
		Date:    req.Date,
		Slots:   slots,
	}, nil
}

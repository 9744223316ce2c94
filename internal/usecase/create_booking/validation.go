package create_booking

import (
	"fmt"

	"github.com/fablab-portal/SchedulingService/internal/domain"
)

// validateRequest checks the request shape before touching storage.
func validateRequest(req *Request) error {
	if !req.Kind.IsValid() {
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidInput, req.Kind)
	}

	if req.Section == "" {
		return fmt.Errorf("%w: section is required", ErrInvalidInput)
	}

	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}

	if len(req.Title) > domain.MaxTitleLength {
		return fmt.Errorf("%w: title exceeds %d characters", ErrInvalidInput, domain.MaxTitleLength)
	}

	if req.BlocksCalendar {
		if req.StartTime.IsZero() || req.EndTime.IsZero() {
			return ErrMissingTimeRange
		}
		if err := req.StartTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
		}
		if err := req.EndTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
		}
		if !req.StartTime.IsBefore(req.EndTime) {
			return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
		}
	}

	return nil
}

// resolveHours settles which working-hours window applies to a date:
// latest-created active override first, default policy otherwise.
func resolveHours(policy *domain.WorkingHoursPolicy, overrides []*domain.OverridePeriod) domain.ResolvedHours {
	if len(overrides) > 0 {
		o := overrides[0]
		return domain.ResolvedHours{
			StartTime:   o.StartTime,
			EndTime:     o.EndTime,
			WorkingDays: o.WorkingDays,
		}
	}
	return domain.ResolvedHours{
		StartTime:   policy.StartTime,
		EndTime:     policy.EndTime,
		WorkingDays: policy.WorkingDays,
	}
}

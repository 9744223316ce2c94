package get_available_slots

import (
	"fmt"

	"github.com/fablab-portal/SchedulingService/internal/domain"
)

// validateRequest checks the request shape before touching storage.
func validateRequest(req *Request) error {
	if req.Section == "" {
		return fmt.Errorf("%w: section is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.DurationMinutes < domain.MinSlotDurationMinutes || req.DurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: durationMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}

	return nil
}

package create_booking

import (
	"fmt"
	"time"

	"github.com/fablab-portal/SchedulingService/internal/domain"
)

// expandDates turns the requested date range into the inclusive daily
// sequence startDate, startDate+1, ..., endDate. A nil end date yields
// exactly the single start date.
func expandDates(startDate time.Time, endDate *time.Time) ([]time.Time, error) {
	start := domain.DateOnly(startDate)

	end := start
	if endDate != nil {
		end = domain.DateOnly(*endDate)
	}

	if end.Before(start) {
		return nil, ErrInvalidDateRange
	}

	dates := make([]time.Time, 0, 1)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if len(dates) >= domain.MaxBookingRangeDays {
			return nil, fmt.Errorf("%w: at most %d days per booking", ErrRangeTooLong, domain.MaxBookingRangeDays)
		}
		dates = append(dates, d)
	}

	return dates, nil
}

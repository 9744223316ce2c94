package create_booking

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/fablab-portal/SchedulingService/internal/api/handlers"
	"github.com/fablab-portal/SchedulingService/internal/api/middleware"
	"github.com/fablab-portal/SchedulingService/internal/domain"
	createBooking "github.com/fablab-portal/SchedulingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "invalid request body"
	msgInvalidDateOrTime   = "invalid date or time format, expected YYYY-MM-DD and HH:MM"
	msgInvalidRequest      = "invalid booking request"
	msgInvalidDateRange    = "endDate must not precede startDate"
	msgRangeTooLong        = "booking date range is too long"
	msgMissingTimeRange    = "startTime and endTime are required for a calendar-blocking booking"
	msgSectionClosed       = "section is closed"
	msgOutsideWorkingHours = "requested time is outside working hours"
	msgSlotConflict        = "time slot is already occupied"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	createdBy := middleware.UserIDFromContext(r.Context())

	useCaseReq, err := req.ToUseCaseRequest(createdBy)
	if err != nil {
		h.logger.Warn("POST /bookings - failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// A multi-day batch fails atomically; DayError names the first
		// offending date so the caller can fix exactly that day.
		var dayErr *createBooking.DayError
		failedDate := ""
		if errors.As(err, &dayErr) {
			failedDate = dayErr.Date.Format(domain.DateFormat)
		}

		switch {
		case errors.Is(err, createBooking.ErrSlotConflict):
			h.logger.Warn("POST /bookings - slot conflict: section=%s date=%s user=%d", req.Section, failedDate, createdBy)
			handlers.RespondError(w, http.StatusConflict, withDate(msgSlotConflict, failedDate))

		case errors.Is(err, createBooking.ErrSectionClosed):
			h.logger.Warn("POST /bookings - section closed: section=%s date=%s user=%d", req.Section, failedDate, createdBy)
			handlers.RespondError(w, http.StatusConflict, withDate(msgSectionClosed, failedDate))

		case errors.Is(err, createBooking.ErrOutsideWorkingHours):
			h.logger.Warn("POST /bookings - outside working hours: section=%s date=%s user=%d", req.Section, failedDate, createdBy)
			handlers.RespondBadRequest(w, withDate(msgOutsideWorkingHours, failedDate))

		case errors.Is(err, createBooking.ErrInvalidDateRange):
			h.logger.Warn("POST /bookings - invalid date range: user=%d", createdBy)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, createBooking.ErrRangeTooLong):
			h.logger.Warn("POST /bookings - range too long: user=%d", createdBy)
			handlers.RespondBadRequest(w, msgRangeTooLong)

		case errors.Is(err, createBooking.ErrMissingTimeRange):
			h.logger.Warn("POST /bookings - missing time range: user=%d", createdBy)
			handlers.RespondBadRequest(w, msgMissingTimeRange)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - invalid input: user=%d, error=%v", createdBy, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("POST /bookings - failed to create booking: section=%s user=%d, error=%v",
				req.Section, createdBy, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - booking created: group=%s section=%s events=%d user=%d",
		result.GroupID, req.Section, len(result.Events), createdBy)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

func withDate(msg, date string) string {
	if date == "" {
		return msg
	}
	return fmt.Sprintf("%s on %s", msg, date)
}

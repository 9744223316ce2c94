package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/fablab-portal/SchedulingService/internal/api/handlers"
	"github.com/fablab-portal/SchedulingService/internal/domain"
	getAvailableSlots "github.com/fablab-portal/SchedulingService/internal/usecase/get_available_slots"
)

const (
	msgMissingDate     = "date query parameter is required, expected YYYY-MM-DD"
	msgInvalidDate     = "invalid date format, expected YYYY-MM-DD"
	msgInvalidDuration = "invalid durationMinutes query parameter"
	msgInvalidRequest  = "invalid request parameters"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/sections/{section}/available-slots?date=YYYY-MM-DD&durationMinutes=60
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	section := mux.Vars(r)["section"]

	rawDate := r.URL.Query().Get("date")
	if rawDate == "" {
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}
	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		h.logger.Warn("GET /sections/%s/available-slots - invalid date %q: %v", section, rawDate, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	duration := domain.DefaultSlotDurationMinutes
	if rawDuration := r.URL.Query().Get("durationMinutes"); rawDuration != "" {
		duration, err = strconv.Atoi(rawDuration)
		if err != nil {
			h.logger.Warn("GET /sections/%s/available-slots - invalid duration %q: %v", section, rawDuration, err)
			handlers.RespondBadRequest(w, msgInvalidDuration)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		Section:         section,
		Date:            date,
		DurationMinutes: duration,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /sections/%s/available-slots - invalid request: %v", section, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)
		default:
			h.logger.Error("GET /sections/%s/available-slots - failed: %v", section, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

package create_override

import (
	"errors"
	"net/http"

	"github.com/fablab-portal/SchedulingService/internal/api/handlers"
	scheduleService "github.com/fablab-portal/SchedulingService/internal/service/schedule"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateOrTime  = "invalid date or time format, expected YYYY-MM-DD and HH:MM"
	msgInvalidRequest     = "invalid override period"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/schedule/overrides
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req OverrideRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /schedule/overrides - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /schedule/overrides - failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	override, err := h.service.CreateOverride(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrInvalidInput):
			h.logger.Warn("POST /schedule/overrides - invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)
		default:
			h.logger.Error("POST /schedule/overrides - failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedule/overrides - override created: id=%d label=%s", override.ID, override.LabelEn)
	handlers.RespondJSON(w, http.StatusCreated, handlers.OverrideToJSON(override))
}

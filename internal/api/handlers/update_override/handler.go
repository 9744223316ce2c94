package update_override

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/fablab-portal/SchedulingService/internal/api/handlers"
	scheduleService "github.com/fablab-portal/SchedulingService/internal/service/schedule"
)

const (
	msgInvalidOverrideID  = "invalid override id"
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateOrTime  = "invalid date or time format, expected YYYY-MM-DD and HH:MM"
	msgInvalidRequest     = "invalid override period"
	msgOverrideNotFound   = "override period not found"
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

// Handle PUT /api/v1/schedule/overrides/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidOverrideID)
		return
	}

	var req OverrideRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /schedule/overrides/%d - invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("PUT /schedule/overrides/%d - failed to parse request: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	override, err := h.service.UpdateOverride(r.Context(), id, serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrOverrideNotFound):
			h.logger.Warn("PUT /schedule/overrides/%d - not found", id)
			handlers.RespondNotFound(w, msgOverrideNotFound)
		case errors.Is(err, scheduleService.ErrInvalidInput):
			h.logger.Warn("PUT /schedule/overrides/%d - invalid request: %v", id, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)
		default:
			h.logger.Error("PUT /schedule/overrides/%d - failed: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /schedule/overrides/%d - override updated", id)
	handlers.RespondJSON(w, http.StatusOK, handlers.OverrideToJSON(override))
}

package set_override_active

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
	msgOverrideNotFound   = "override period not found"
)

// SetActiveRequest HTTP request model. active=false soft-deletes the
// override, active=true reactivates it.
type SetActiveRequest struct {
	Active *bool `json:"active"`
}

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

// Handle PATCH /api/v1/schedule/overrides/{id}/active
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidOverrideID)
		return
	}

	var req SetActiveRequest
	if err := handlers.DecodeJSON(r, &req); err != nil || req.Active == nil {
		h.logger.Warn("PATCH /schedule/overrides/%d/active - invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	override, err := h.service.SetOverrideActive(r.Context(), id, *req.Active)
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrOverrideNotFound):
			h.logger.Warn("PATCH /schedule/overrides/%d/active - not found", id)
			handlers.RespondNotFound(w, msgOverrideNotFound)
		default:
			h.logger.Error("PATCH /schedule/overrides/%d/active - failed: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /schedule/overrides/%d/active - active=%t", id, override.IsActive)
	handlers.RespondJSON(w, http.StatusOK, handlers.OverrideToJSON(override))
}

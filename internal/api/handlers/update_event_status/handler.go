package update_event_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/fablab-portal/SchedulingService/internal/api/handlers"
	"github.com/fablab-portal/SchedulingService/internal/domain"
	eventsService "github.com/fablab-portal/SchedulingService/internal/service/events"
)

const (
	msgInvalidEventID     = "invalid event id"
	msgInvalidRequestBody = "invalid request body"
	msgEventNotFound      = "event not found"
	msgInvalidTransition  = "status transition not allowed"
	msgSlotConflict       = "time slot is already occupied"
)

// UpdateStatusRequest HTTP request model.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type Handler struct {
	service EventsService
	logger  Logger
}

func NewHandler(service EventsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/events/{id}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidEventID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil || req.Status == "" {
		h.logger.Warn("PATCH /events/%d/status - invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	event, err := h.service.ChangeStatus(r.Context(), id, domain.EventStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, eventsService.ErrEventNotFound):
			h.logger.Warn("PATCH /events/%d/status - not found", id)
			handlers.RespondNotFound(w, msgEventNotFound)
		case errors.Is(err, eventsService.ErrInvalidTransition):
			h.logger.Warn("PATCH /events/%d/status - invalid transition: %v", id, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgInvalidTransition)
		case errors.Is(err, eventsService.ErrSlotConflict):
			h.logger.Warn("PATCH /events/%d/status - slot conflict: %v", id, err)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)
		default:
			h.logger.Error("PATCH /events/%d/status - failed: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /events/%d/status - status changed to %s", id, event.Status)
	handlers.RespondJSON(w, http.StatusOK, handlers.EventToJSON(event))
}

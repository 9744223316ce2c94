package get_event

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/fablab-portal/SchedulingService/internal/api/handlers"
	eventsService "github.com/fablab-portal/SchedulingService/internal/service/events"
)

const (
	msgInvalidEventID = "invalid event id"
	msgEventNotFound  = "event not found"
)

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

// Handle GET /api/v1/events/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidEventID)
		return
	}

	event, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, eventsService.ErrEventNotFound):
			h.logger.Warn("GET /events/%d - not found", id)
			handlers.RespondNotFound(w, msgEventNotFound)
		default:
			h.logger.Error("GET /events/%d - failed: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.EventToJSON(event))
}

package list_section_events

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/fablab-portal/SchedulingService/internal/api/handlers"
	"github.com/fablab-portal/SchedulingService/internal/domain"
	eventsService "github.com/fablab-portal/SchedulingService/internal/service/events"
	"github.com/fablab-portal/SchedulingService/pkg/ptr"
)

const (
	msgInvalidDate    = "invalid date format, expected YYYY-MM-DD"
	msgInvalidRequest = "invalid request parameters"
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

// Handle GET /api/v1/sections/{section}/events?from=&to=&kind=&status=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	section := mux.Vars(r)["section"]
	query := r.URL.Query()

	filter := domain.EventsFilter{Section: section}

	if raw := query.Get("from"); raw != "" {
		from, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		filter.StartDate = ptr.Ptr(from)
	}
	if raw := query.Get("to"); raw != "" {
		to, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		filter.EndDate = ptr.Ptr(to)
	}
	if raw := query.Get("kind"); raw != "" {
		filter.Kind = ptr.Ptr(domain.EventKind(raw))
	}
	if raw := query.Get("status"); raw != "" {
		filter.Status = ptr.Ptr(domain.EventStatus(raw))
	}

	events, err := h.service.ListSectionEvents(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, eventsService.ErrInvalidInput):
			h.logger.Warn("GET /sections/%s/events - invalid request: %v", section, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)
		default:
			h.logger.Error("GET /sections/%s/events - failed: %v", section, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.EventsToJSON(events))
}

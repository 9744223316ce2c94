package list_deactivations

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/fablab-portal/SchedulingService/internal/api/handlers"
	sectionsService "github.com/fablab-portal/SchedulingService/internal/service/sections"
)

const msgInvalidRequest = "invalid request parameters"

type Handler struct {
	service SectionsService
	logger  Logger
}

func NewHandler(service SectionsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/sections/{section}/deactivations?includeInactive=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	section := mux.Vars(r)["section"]
	includeInactive := r.URL.Query().Get("includeInactive") == "true"

	deactivations, err := h.service.ListDeactivations(r.Context(), section, includeInactive)
	if err != nil {
		switch {
		case errors.Is(err, sectionsService.ErrInvalidInput):
			h.logger.Warn("GET /sections/%s/deactivations - invalid request: %v", section, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)
		default:
			h.logger.Error("GET /sections/%s/deactivations - failed: %v", section, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.DeactivationsToJSON(deactivations))
}

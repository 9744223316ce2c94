package list_overrides

import (
	"net/http"

	"github.com/fablab-portal/SchedulingService/internal/api/handlers"
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

// Handle GET /api/v1/schedule/overrides?includeInactive=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	includeInactive := r.URL.Query().Get("includeInactive") == "true"

	overrides, err := h.service.ListOverrides(r.Context(), includeInactive)
	if err != nil {
		h.logger.Error("GET /schedule/overrides - failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.OverridesToJSON(overrides))
}

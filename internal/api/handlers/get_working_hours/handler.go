package get_working_hours

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

// Handle GET /api/v1/schedule/working-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	policy, err := h.service.GetWorkingHours(r.Context())
	if err != nil {
		h.logger.Error("GET /schedule/working-hours - failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.WorkingHoursToJSON(policy))
}

package update_working_hours

import (
	"errors"
	"net/http"

	"github.com/fablab-portal/SchedulingService/internal/api/handlers"
	scheduleService "github.com/fablab-portal/SchedulingService/internal/service/schedule"
	"github.com/fablab-portal/SchedulingService/internal/service/schedule/models"
	"github.com/fablab-portal/SchedulingService/pkg/types"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidTime        = "invalid time format, expected HH:MM"
	msgInvalidRequest     = "invalid working hours"
)

// UpdateWorkingHoursRequest HTTP request model.
type UpdateWorkingHoursRequest struct {
	StartTime   string `json:"startTime"` // "09:00"
	EndTime     string `json:"endTime"`   // "21:00"
	WorkingDays []int  `json:"workingDays"`
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

// Handle PUT /api/v1/schedule/working-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateWorkingHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /schedule/working-hours - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	startTime, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}
	endTime, err := types.NewTimeStringFromString(req.EndTime)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	policy, err := h.service.UpdateWorkingHours(r.Context(), &models.UpdateWorkingHoursRequest{
		StartTime:   startTime,
		EndTime:     endTime,
		WorkingDays: req.WorkingDays,
	})
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrInvalidInput):
			h.logger.Warn("PUT /schedule/working-hours - invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)
		default:
			h.logger.Error("PUT /schedule/working-hours - failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /schedule/working-hours - updated to %s-%s days=%v",
		policy.StartTime, policy.EndTime, policy.WorkingDays)
	handlers.RespondJSON(w, http.StatusOK, handlers.WorkingHoursToJSON(policy))
}

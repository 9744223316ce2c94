package delete_booking_group

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/fablab-portal/SchedulingService/internal/api/handlers"
	eventsService "github.com/fablab-portal/SchedulingService/internal/service/events"
)

const (
	msgInvalidGroupID = "invalid booking group id"
	msgGroupNotFound  = "booking group not found"
)

// DeleteGroupResponse HTTP response model.
type DeleteGroupResponse struct {
	GroupID string `json:"groupId"`
	Deleted int64  `json:"deleted"`
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

// Handle DELETE /api/v1/bookings/groups/{groupId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	groupID, err := uuid.Parse(mux.Vars(r)["groupId"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidGroupID)
		return
	}

	result, err := h.service.DeleteGroup(r.Context(), groupID)
	if err != nil {
		switch {
		case errors.Is(err, eventsService.ErrGroupNotFound):
			h.logger.Warn("DELETE /bookings/groups/%s - not found", groupID)
			handlers.RespondNotFound(w, msgGroupNotFound)
		default:
			h.logger.Error("DELETE /bookings/groups/%s - failed: %v", groupID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /bookings/groups/%s - removed %d events", groupID, result.Deleted)
	handlers.RespondJSON(w, http.StatusOK, DeleteGroupResponse{
		GroupID: result.GroupID.String(),
		Deleted: result.Deleted,
	})
}

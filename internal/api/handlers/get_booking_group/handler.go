package get_booking_group

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

// GroupResponse HTTP response model.
type GroupResponse struct {
	GroupID string               `json:"groupId"`
	Events  []handlers.EventJSON `json:"events"`
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

// Handle GET /api/v1/bookings/groups/{groupId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	groupID, err := uuid.Parse(mux.Vars(r)["groupId"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidGroupID)
		return
	}

	group, err := h.service.GetGroup(r.Context(), groupID)
	if err != nil {
		switch {
		case errors.Is(err, eventsService.ErrGroupNotFound):
			h.logger.Warn("GET /bookings/groups/%s - not found", groupID)
			handlers.RespondNotFound(w, msgGroupNotFound)
		default:
			h.logger.Error("GET /bookings/groups/%s - failed: %v", groupID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, GroupResponse{
		GroupID: group.GroupID.String(),
		Events:  handlers.EventsToJSON(group.Events),
	})
}

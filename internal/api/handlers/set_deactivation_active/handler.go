package set_deactivation_active

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/fablab-portal/SchedulingService/internal/api/handlers"
	sectionsService "github.com/fablab-portal/SchedulingService/internal/service/sections"
)

const (
	msgInvalidDeactivationID = "invalid deactivation id"
	msgInvalidRequestBody    = "invalid request body"
	msgDeactivationNotFound  = "deactivation period not found"
)

// SetActiveRequest HTTP request model. active=false soft-deletes the
// deactivation, active=true reactivates it.
type SetActiveRequest struct {
	Active *bool `json:"active"`
}

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

// Handle PATCH /api/v1/sections/deactivations/{id}/active
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDeactivationID)
		return
	}

	var req SetActiveRequest
	if err := handlers.DecodeJSON(r, &req); err != nil || req.Active == nil {
		h.logger.Warn("PATCH /sections/deactivations/%d/active - invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	deactivation, err := h.service.SetDeactivationActive(r.Context(), id, *req.Active)
	if err != nil {
		switch {
		case errors.Is(err, sectionsService.ErrDeactivationNotFound):
			h.logger.Warn("PATCH /sections/deactivations/%d/active - not found", id)
			handlers.RespondNotFound(w, msgDeactivationNotFound)
		default:
			h.logger.Error("PATCH /sections/deactivations/%d/active - failed: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /sections/deactivations/%d/active - active=%t", id, deactivation.IsActive)
	handlers.RespondJSON(w, http.StatusOK, handlers.DeactivationToJSON(deactivation))
}

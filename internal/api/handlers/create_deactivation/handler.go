package create_deactivation

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/fablab-portal/SchedulingService/internal/api/handlers"
	"github.com/fablab-portal/SchedulingService/internal/domain"
	sectionsService "github.com/fablab-portal/SchedulingService/internal/service/sections"
	"github.com/fablab-portal/SchedulingService/internal/service/sections/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgInvalidRequest     = "invalid deactivation period"
)

// DeactivationRequest HTTP request model.
type DeactivationRequest struct {
	StartDate string `json:"startDate"` // "2024-07-01"
	EndDate   string `json:"endDate"`   // inclusive
	ReasonEn  string `json:"reasonEn"`
	ReasonAr  string `json:"reasonAr,omitempty"`
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

// Handle POST /api/v1/sections/{section}/deactivations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	section := mux.Vars(r)["section"]

	var req DeactivationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sections/%s/deactivations - invalid request body: %v", section, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	startDate, err := time.Parse(domain.DateFormat, req.StartDate)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	endDate, err := time.Parse(domain.DateFormat, req.EndDate)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	deactivation, err := h.service.CreateDeactivation(r.Context(), &models.DeactivationRequest{
		Section:   section,
		StartDate: startDate,
		EndDate:   endDate,
		ReasonEn:  req.ReasonEn,
		ReasonAr:  req.ReasonAr,
	})
	if err != nil {
		switch {
		case errors.Is(err, sectionsService.ErrInvalidInput):
			h.logger.Warn("POST /sections/%s/deactivations - invalid request: %v", section, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)
		default:
			h.logger.Error("POST /sections/%s/deactivations - failed: %v", section, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sections/%s/deactivations - deactivation created: id=%d", section, deactivation.ID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.DeactivationToJSON(deactivation))
}

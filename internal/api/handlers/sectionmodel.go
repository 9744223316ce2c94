package handlers

import (
	"time"

	"github.com/fablab-portal/SchedulingService/internal/domain"
	"github.com/fablab-portal/SchedulingService/internal/service/sections/models"
)

// DeactivationJSON is the shared HTTP model of one section deactivation.
type DeactivationJSON struct {
	ID        int64  `json:"id"`
	Section   string `json:"section"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	ReasonEn  string `json:"reasonEn"`
	ReasonAr  string `json:"reasonAr,omitempty"`
	IsActive  bool   `json:"isActive"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// DeactivationToJSON converts the service model to the HTTP shape.
func DeactivationToJSON(d *models.DeactivationResponse) DeactivationJSON {
	return DeactivationJSON{
		ID:        d.ID,
		Section:   d.Section,
		StartDate: d.StartDate.Format(domain.DateFormat),
		EndDate:   d.EndDate.Format(domain.DateFormat),
		ReasonEn:  d.ReasonEn,
		ReasonAr:  d.ReasonAr,
		IsActive:  d.IsActive,
		CreatedAt: d.CreatedAt.Format(time.RFC3339),
		UpdatedAt: d.UpdatedAt.Format(time.RFC3339),
	}
}

// DeactivationsToJSON converts a list of service deactivation models.
func DeactivationsToJSON(deactivations []*models.DeactivationResponse) []DeactivationJSON {
	result := make([]DeactivationJSON, len(deactivations))
	for i, d := range deactivations {
		result[i] = DeactivationToJSON(d)
	}
	return result
}

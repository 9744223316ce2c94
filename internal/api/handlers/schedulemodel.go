package handlers

import (
	"time"

	"github.com/fablab-portal/SchedulingService/internal/domain"
	"github.com/fablab-portal/SchedulingService/internal/service/schedule/models"
)

// WorkingHoursJSON is the shared HTTP model of the default weekly schedule.
type WorkingHoursJSON struct {
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	WorkingDays []int  `json:"workingDays"`
	UpdatedAt   string `json:"updatedAt"`
}

// WorkingHoursToJSON converts the service model to the HTTP shape.
func WorkingHoursToJSON(p *models.WorkingHoursResponse) WorkingHoursJSON {
	return WorkingHoursJSON{
		StartTime:   p.StartTime.String(),
		EndTime:     p.EndTime.String(),
		WorkingDays: p.WorkingDays,
		UpdatedAt:   p.UpdatedAt.Format(time.RFC3339),
	}
}

// OverrideJSON is the shared HTTP model of one override period.
type OverrideJSON struct {
	ID          int64  `json:"id"`
	LabelEn     string `json:"labelEn"`
	LabelAr     string `json:"labelAr,omitempty"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	WorkingDays []int  `json:"workingDays"`
	IsActive    bool   `json:"isActive"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// OverrideToJSON converts the service model to the HTTP shape.
func OverrideToJSON(o *models.OverrideResponse) OverrideJSON {
	return OverrideJSON{
		ID:          o.ID,
		LabelEn:     o.LabelEn,
		LabelAr:     o.LabelAr,
		StartDate:   o.StartDate.Format(domain.DateFormat),
		EndDate:     o.EndDate.Format(domain.DateFormat),
		StartTime:   o.StartTime.String(),
		EndTime:     o.EndTime.String(),
		WorkingDays: o.WorkingDays,
		IsActive:    o.IsActive,
		CreatedAt:   o.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   o.UpdatedAt.Format(time.RFC3339),
	}
}

// OverridesToJSON converts a list of service override models.
func OverridesToJSON(overrides []*models.OverrideResponse) []OverrideJSON {
	result := make([]OverrideJSON, len(overrides))
	for i, o := range overrides {
		result[i] = OverrideToJSON(o)
	}
	return result
}

package create_override

import (
	"time"

	"github.com/fablab-portal/SchedulingService/internal/domain"
	"github.com/fablab-portal/SchedulingService/internal/service/schedule/models"
	"github.com/fablab-portal/SchedulingService/pkg/types"
)

// OverrideRequest HTTP request model.
type OverrideRequest struct {
	LabelEn     string `json:"labelEn"`
	LabelAr     string `json:"labelAr,omitempty"`
	StartDate   string `json:"startDate"` // "2024-03-10"
	EndDate     string `json:"endDate"`   // inclusive
	StartTime   string `json:"startTime"` // "10:00"
	EndTime     string `json:"endTime"`   // "16:00"
	WorkingDays []int  `json:"workingDays"`
}

// ToServiceRequest converts the HTTP request to the service model, parsing
// dates and times.
func (r *OverrideRequest) ToServiceRequest() (*models.OverrideRequest, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}
	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &models.OverrideRequest{
		LabelEn:     r.LabelEn,
		LabelAr:     r.LabelAr,
		StartDate:   startDate,
		EndDate:     endDate,
		StartTime:   startTime,
		EndTime:     endTime,
		WorkingDays: r.WorkingDays,
	}, nil
}

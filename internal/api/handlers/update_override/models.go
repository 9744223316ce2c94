package update_override

import (
	"time"

	"github.com/fablab-portal/SchedulingService/internal/domain"
	"github.com/fablab-portal/SchedulingService/internal/service/schedule/models"
	"github.com/fablab-portal/SchedulingService/pkg/types"
)

// OverrideRequest HTTP request model; a full replacement of the record.
type OverrideRequest struct {
	LabelEn     string `json:"labelEn"`
	LabelAr     string `json:"labelAr,omitempty"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
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

package get_available_slots

import (
	"github.com/fablab-portal/SchedulingService/internal/domain"
	getAvailableSlots "github.com/fablab-portal/SchedulingService/internal/usecase/get_available_slots"
)

// SlotResponse is one open interval of the day.
type SlotResponse struct {
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes"`
}

// AvailableSlotsResponse is the HTTP response model.
type AvailableSlotsResponse struct {
	Section string         `json:"section"`
	Date    string         `json:"date"`
	Slots   []SlotResponse `json:"slots"`
}

// FromUseCaseResponse converts the use case result to the HTTP response.
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = SlotResponse{
			StartTime:       s.StartTime.String(),
			EndTime:         s.EndTime.String(),
			DurationMinutes: s.DurationMinutes,
		}
	}
	return &AvailableSlotsResponse{
		Section: resp.Section,
		Date:    resp.Date.Format(domain.DateFormat),
		Slots:   slots,
	}
}

package create_booking

import (
	"time"

	"github.com/fablab-portal/SchedulingService/internal/domain"
	createBooking "github.com/fablab-portal/SchedulingService/internal/usecase/create_booking"
	"github.com/fablab-portal/SchedulingService/pkg/types"
)

// CreateBookingRequest HTTP request model. endDate omitted means a
// single-day booking on startDate.
type CreateBookingRequest struct {
	Kind           string  `json:"kind"` // "appointment" | "task"
	Section        string  `json:"section"`
	StartDate      string  `json:"startDate"`         // "2024-06-10"
	EndDate        *string `json:"endDate,omitempty"` // inclusive
	StartTime      string  `json:"startTime,omitempty"`
	EndTime        string  `json:"endTime,omitempty"`
	BlocksCalendar bool    `json:"blocksCalendar"`
	Title          string  `json:"title"`
}

// EventResponse HTTP model of one committed event.
type EventResponse struct {
	ID             int64  `json:"id"`
	Kind           string `json:"kind"`
	Section        string `json:"section"`
	Date           string `json:"date"`
	StartTime      string `json:"startTime,omitempty"`
	EndTime        string `json:"endTime,omitempty"`
	BlocksCalendar bool   `json:"blocksCalendar"`
	Status         string `json:"status"`
	GroupID        string `json:"groupId"`
	Title          string `json:"title"`
	CreatedBy      int64  `json:"createdBy"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}

// BookingResponse HTTP response model of the committed batch.
type BookingResponse struct {
	GroupID string          `json:"groupId"`
	Events  []EventResponse `json:"events"`
}

// ToUseCaseRequest converts the HTTP request to the use case model, parsing
// dates and times.
func (r *CreateBookingRequest) ToUseCaseRequest(createdBy int64) (*createBooking.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	var endDate *time.Time
	if r.EndDate != nil {
		parsed, err := time.Parse(domain.DateFormat, *r.EndDate)
		if err != nil {
			return nil, err
		}
		endDate = &parsed
	}

	var startTime, endTime types.TimeString
	if r.StartTime != "" {
		startTime, err = types.NewTimeStringFromString(r.StartTime)
		if err != nil {
			return nil, err
		}
	}
	if r.EndTime != "" {
		endTime, err = types.NewTimeStringFromString(r.EndTime)
		if err != nil {
			return nil, err
		}
	}

	return &createBooking.Request{
		Kind:           domain.EventKind(r.Kind),
		Section:        r.Section,
		StartDate:      startDate,
		EndDate:        endDate,
		StartTime:      startTime,
		EndTime:        endTime,
		BlocksCalendar: r.BlocksCalendar,
		Title:          r.Title,
		CreatedBy:      createdBy,
	}, nil
}

// FromUseCaseResponse converts the use case result to the HTTP response.
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	events := make([]EventResponse, len(resp.Events))
	for i, e := range resp.Events {
		events[i] = EventResponse{
			ID:             e.ID,
			Kind:           string(e.Kind),
			Section:        e.Section,
			Date:           e.Date.Format(domain.DateFormat),
			StartTime:      e.StartTime.String(),
			EndTime:        e.EndTime.String(),
			BlocksCalendar: e.BlocksCalendar,
			Status:         string(e.Status),
			GroupID:        e.GroupID.String(),
			Title:          e.Title,
			CreatedBy:      e.CreatedBy,
			CreatedAt:      e.CreatedAt.Format(time.RFC3339),
			UpdatedAt:      e.UpdatedAt.Format(time.RFC3339),
		}
	}
	return &BookingResponse{
		GroupID: resp.GroupID.String(),
		Events:  events,
	}
}

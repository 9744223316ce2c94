package handlers

import (
	"time"

	"github.com/fablab-portal/SchedulingService/internal/domain"
	"github.com/fablab-portal/SchedulingService/internal/service/events/models"
)

// EventJSON is the shared HTTP model of one blocking event; several
// endpoints return events so the shape lives here.
type EventJSON struct {
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

// EventToJSON converts a service event model to the HTTP shape.
func EventToJSON(e *models.EventResponse) EventJSON {
	return EventJSON{
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

// EventsToJSON converts a list of service event models.
func EventsToJSON(events []*models.EventResponse) []EventJSON {
	result := make([]EventJSON, len(events))
	for i, e := range events {
		result[i] = EventToJSON(e)
	}
	return result
}

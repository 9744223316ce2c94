// Package models holds the request/response models of the events service.
package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/fablab-portal/SchedulingService/internal/domain"
	"github.com/fablab-portal/SchedulingService/pkg/types"
)

// EventResponse mirrors one blocking event.
type EventResponse struct {
	ID             int64
	Kind           domain.EventKind
	Section        string
	Date           time.Time
	StartTime      types.TimeString
	EndTime        types.TimeString
	BlocksCalendar bool
	Status         domain.EventStatus
	GroupID        uuid.UUID
	Title          string
	CreatedBy      int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// FromDomainEvent converts a domain event to a response model.
func FromDomainEvent(e *domain.BlockingEvent) *EventResponse {
	return &EventResponse{
		ID:             e.ID,
		Kind:           e.Kind,
		Section:        e.Section,
		Date:           e.Date,
		StartTime:      e.StartTime,
		EndTime:        e.EndTime,
		BlocksCalendar: e.BlocksCalendar,
		Status:         e.Status,
		GroupID:        e.GroupID,
		Title:          e.Title,
		CreatedBy:      e.CreatedBy,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

// FromDomainEvents converts a list of domain events.
func FromDomainEvents(events []*domain.BlockingEvent) []*EventResponse {
	result := make([]*EventResponse, len(events))
	for i, e := range events {
		result[i] = FromDomainEvent(e)
	}
	return result
}

// GroupResponse mirrors one multi-day booking group.
type GroupResponse struct {
	GroupID uuid.UUID
	Events  []*EventResponse
}

// DeleteGroupResponse reports how many events a group removal deleted.
type DeleteGroupResponse struct {
	GroupID uuid.UUID
	Deleted int64
}

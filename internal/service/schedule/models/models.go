// Package models holds the request/response models of the schedule service.
package models

import (
	"time"

	"github.com/fablab-portal/SchedulingService/internal/domain"
	"github.com/fablab-portal/SchedulingService/pkg/types"
)

// UpdateWorkingHoursRequest replaces the default weekly schedule wholesale.
type UpdateWorkingHoursRequest struct {
	StartTime   types.TimeString
	EndTime     types.TimeString
	WorkingDays []int
}

// WorkingHoursResponse mirrors the current default weekly schedule.
type WorkingHoursResponse struct {
	StartTime   types.TimeString
	EndTime     types.TimeString
	WorkingDays []int
	UpdatedAt   time.Time
}

// FromDomainPolicy converts a domain policy to a response model.
func FromDomainPolicy(p *domain.WorkingHoursPolicy) *WorkingHoursResponse {
	return &WorkingHoursResponse{
		StartTime:   p.StartTime,
		EndTime:     p.EndTime,
		WorkingDays: p.WorkingDays,
		UpdatedAt:   p.UpdatedAt,
	}
}

// OverrideRequest creates or updates an override period.
type OverrideRequest struct {
	LabelEn     string
	LabelAr     string
	StartDate   time.Time
	EndDate     time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	WorkingDays []int
}

// ToDomainOverride converts the request to a domain override.
func (r *OverrideRequest) ToDomainOverride() *domain.OverridePeriod {
	return &domain.OverridePeriod{
		LabelEn:     r.LabelEn,
		LabelAr:     r.LabelAr,
		StartDate:   domain.DateOnly(r.StartDate),
		EndDate:     domain.DateOnly(r.EndDate),
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		WorkingDays: r.WorkingDays,
	}
}

// OverrideResponse mirrors one override period.
type OverrideResponse struct {
	ID          int64
	LabelEn     string
	LabelAr     string
	StartDate   time.Time
	EndDate     time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	WorkingDays []int
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FromDomainOverride converts a domain override to a response model.
func FromDomainOverride(o *domain.OverridePeriod) *OverrideResponse {
	return &OverrideResponse{
		ID:          o.ID,
		LabelEn:     o.LabelEn,
		LabelAr:     o.LabelAr,
		StartDate:   o.StartDate,
		EndDate:     o.EndDate,
		StartTime:   o.StartTime,
		EndTime:     o.EndTime,
		WorkingDays: o.WorkingDays,
		IsActive:    o.IsActive,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

// FromDomainOverrides converts a list of domain overrides.
func FromDomainOverrides(overrides []*domain.OverridePeriod) []*OverrideResponse {
	result := make([]*OverrideResponse, len(overrides))
	for i, o := range overrides {
		result[i] = FromDomainOverride(o)
	}
	return result
}

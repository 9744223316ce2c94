// Package models holds the request/response models of the sections service.
package models

import (
	"time"

	"github.com/fablab-portal/SchedulingService/internal/domain"
)

// DeactivationRequest closes one section for a date range.
type DeactivationRequest struct {
	Section   string
	StartDate time.Time
	EndDate   time.Time
	ReasonEn  string
	ReasonAr  string
}

// ToDomainDeactivation converts the request to a domain deactivation.
func (r *DeactivationRequest) ToDomainDeactivation() *domain.SectionDeactivation {
	return &domain.SectionDeactivation{
		Section:   r.Section,
		StartDate: domain.DateOnly(r.StartDate),
		EndDate:   domain.DateOnly(r.EndDate),
		ReasonEn:  r.ReasonEn,
		ReasonAr:  r.ReasonAr,
	}
}

// DeactivationResponse mirrors one deactivation period.
type DeactivationResponse struct {
	ID        int64
	Section   string
	StartDate time.Time
	EndDate   time.Time
	ReasonEn  string
	ReasonAr  string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FromDomainDeactivation converts a domain deactivation to a response model.
func FromDomainDeactivation(d *domain.SectionDeactivation) *DeactivationResponse {
	return &DeactivationResponse{
		ID:        d.ID,
		Section:   d.Section,
		StartDate: d.StartDate,
		EndDate:   d.EndDate,
		ReasonEn:  d.ReasonEn,
		ReasonAr:  d.ReasonAr,
		IsActive:  d.IsActive,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// FromDomainDeactivations converts a list of domain deactivations.
func FromDomainDeactivations(deactivations []*domain.SectionDeactivation) []*DeactivationResponse {
	result := make([]*DeactivationResponse, len(deactivations))
	for i, d := range deactivations {
		result[i] = FromDomainDeactivation(d)
	}
	return result
}

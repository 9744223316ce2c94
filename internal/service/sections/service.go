package sections

import (
	"context"
	"errors"
	"fmt"

	"github.com/fablab-portal/SchedulingService/internal/domain"
	sectionsRepo "github.com/fablab-portal/SchedulingService/internal/infra/storage/sections"
	"github.com/fablab-portal/SchedulingService/internal/service/sections/models"
)

// Service manages section deactivation periods.
// Deleting a deactivation is always a soft delete; records stay for audit.
type Service struct {
	repo   SectionsRepository
	logger Logger
}

// NewService creates the sections service.
func NewService(repo SectionsRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateDeactivation closes a section for a date range.
func (s *Service) CreateDeactivation(ctx context.Context, req *models.DeactivationRequest) (*models.DeactivationResponse, error) {
	s.logger.Info("CreateDeactivation: section=%s (%s - %s)",
		req.Section, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	if err := validateDeactivationRequest(req); err != nil {
		s.logger.Warn("CreateDeactivation: validation failed: %v", err)
		return nil, err
	}

	created, err := s.repo.Create(ctx, req.ToDomainDeactivation())
	if err != nil {
		s.logger.Error("CreateDeactivation: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateDeactivation - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainDeactivation(created), nil
}

// ListDeactivations returns the deactivation periods of one section ordered
// by start date.
func (s *Service) ListDeactivations(ctx context.Context, section string, includeInactive bool) ([]*models.DeactivationResponse, error) {
	if section == "" {
		return nil, fmt.Errorf("%w: section is required", ErrInvalidInput)
	}

	deactivations, err := s.repo.ListBySection(ctx, section, includeInactive)
	if err != nil {
		s.logger.Error("ListDeactivations: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListDeactivations - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainDeactivations(deactivations), nil
}

// SetDeactivationActive soft-deletes (active=false) or reactivates
// (active=true) a deactivation period.
func (s *Service) SetDeactivationActive(ctx context.Context, id int64, active bool) (*models.DeactivationResponse, error) {
	s.logger.Info("SetDeactivationActive: id=%d active=%t", id, active)

	if err := s.repo.SetActive(ctx, id, active); err != nil {
		if errors.Is(err, sectionsRepo.ErrDeactivationNotFound) {
			s.logger.Warn("SetDeactivationActive: deactivation id=%d not found", id)
			return nil, ErrDeactivationNotFound
		}
		s.logger.Error("SetDeactivationActive: repository error: %v", err)
		return nil, fmt.Errorf("%w: SetDeactivationActive - repository error: %v", ErrInternal, err)
	}

	deactivation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("SetDeactivationActive: failed to re-read deactivation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: SetDeactivationActive - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainDeactivation(deactivation), nil
}

func validateDeactivationRequest(req *models.DeactivationRequest) error {
	if req.Section == "" {
		return fmt.Errorf("%w: section is required", ErrInvalidInput)
	}
	if req.ReasonEn == "" {
		return fmt.Errorf("%w: reasonEn is required", ErrInvalidInput)
	}
	if len(req.ReasonEn) > domain.MaxReasonLength || len(req.ReasonAr) > domain.MaxReasonLength {
		return fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidInput, domain.MaxReasonLength)
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}
	if domain.DateOnly(req.EndDate).Before(domain.DateOnly(req.StartDate)) {
		return fmt.Errorf("%w: endDate before startDate", ErrInvalidInput)
	}
	return nil
}

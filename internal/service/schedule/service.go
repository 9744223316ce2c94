package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/fablab-portal/SchedulingService/internal/domain"
	scheduleRepo "github.com/fablab-portal/SchedulingService/internal/infra/storage/schedule"
	"github.com/fablab-portal/SchedulingService/internal/service/schedule/models"
	"github.com/fablab-portal/SchedulingService/pkg/types"
)

// Service manages the working-hours policy and override periods.
// Deleting an override is always a soft delete; records stay for audit.
type Service struct {
	repo   ScheduleRepository
	logger Logger
}

// NewService creates the schedule service.
func NewService(repo ScheduleRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// GetWorkingHours returns the current default weekly schedule.
func (s *Service) GetWorkingHours(ctx context.Context) (*models.WorkingHoursResponse, error) {
	policy, err := s.repo.GetWorkingHours(ctx)
	if err != nil {
		s.logger.Error("GetWorkingHours: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetWorkingHours - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainPolicy(policy), nil
}

// UpdateWorkingHours replaces the default weekly schedule wholesale.
func (s *Service) UpdateWorkingHours(ctx context.Context, req *models.UpdateWorkingHoursRequest) (*models.WorkingHoursResponse, error) {
	s.logger.Info("UpdateWorkingHours: %s-%s days=%v", req.StartTime, req.EndTime, req.WorkingDays)

	if err := validateWindow(req.StartTime, req.EndTime); err != nil {
		s.logger.Warn("UpdateWorkingHours: validation failed: %v", err)
		return nil, err
	}
	if err := validateWorkingDays(req.WorkingDays); err != nil {
		s.logger.Warn("UpdateWorkingHours: validation failed: %v", err)
		return nil, err
	}

	policy, err := s.repo.UpdateWorkingHours(ctx, &domain.WorkingHoursPolicy{
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		WorkingDays: req.WorkingDays,
	})
	if err != nil {
		s.logger.Error("UpdateWorkingHours: repository error: %v", err)
		return nil, fmt.Errorf("%w: UpdateWorkingHours - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPolicy(policy), nil
}

// CreateOverride creates a new override period.
func (s *Service) CreateOverride(ctx context.Context, req *models.OverrideRequest) (*models.OverrideResponse, error) {
	s.logger.Info("CreateOverride: %s (%s - %s)",
		req.LabelEn, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	if err := validateOverrideRequest(req); err != nil {
		s.logger.Warn("CreateOverride: validation failed: %v", err)
		return nil, err
	}

	created, err := s.repo.CreateOverride(ctx, req.ToDomainOverride())
	if err != nil {
		s.logger.Error("CreateOverride: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateOverride - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainOverride(created), nil
}

// ListOverrides returns override periods ordered by start date.
func (s *Service) ListOverrides(ctx context.Context, includeInactive bool) ([]*models.OverrideResponse, error) {
	overrides, err := s.repo.ListOverrides(ctx, includeInactive)
	if err != nil {
		s.logger.Error("ListOverrides: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListOverrides - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainOverrides(overrides), nil
}

// UpdateOverride replaces the fields of an existing override period.
func (s *Service) UpdateOverride(ctx context.Context, id int64, req *models.OverrideRequest) (*models.OverrideResponse, error) {
	s.logger.Info("UpdateOverride: id=%d", id)

	if err := validateOverrideRequest(req); err != nil {
		s.logger.Warn("UpdateOverride: validation failed: %v", err)
		return nil, err
	}

	updated, err := s.repo.UpdateOverride(ctx, id, req.ToDomainOverride())
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrOverrideNotFound) {
			s.logger.Warn("UpdateOverride: override id=%d not found", id)
			return nil, ErrOverrideNotFound
		}
		s.logger.Error("UpdateOverride: repository error: %v", err)
		return nil, fmt.Errorf("%w: UpdateOverride - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainOverride(updated), nil
}

// SetOverrideActive soft-deletes (active=false) or reactivates (active=true)
// an override period. Reactivation restores the exact previous resolution
// behavior because the record itself never changed.
func (s *Service) SetOverrideActive(ctx context.Context, id int64, active bool) (*models.OverrideResponse, error) {
	s.logger.Info("SetOverrideActive: id=%d active=%t", id, active)

	if err := s.repo.SetOverrideActive(ctx, id, active); err != nil {
		if errors.Is(err, scheduleRepo.ErrOverrideNotFound) {
			s.logger.Warn("SetOverrideActive: override id=%d not found", id)
			return nil, ErrOverrideNotFound
		}
		s.logger.Error("SetOverrideActive: repository error: %v", err)
		return nil, fmt.Errorf("%w: SetOverrideActive - repository error: %v", ErrInternal, err)
	}

	override, err := s.repo.GetOverrideByID(ctx, id)
	if err != nil {
		s.logger.Error("SetOverrideActive: failed to re-read override id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: SetOverrideActive - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainOverride(override), nil
}

func validateOverrideRequest(req *models.OverrideRequest) error {
	if req.LabelEn == "" {
		return fmt.Errorf("%w: labelEn is required", ErrInvalidInput)
	}
	if len(req.LabelEn) > domain.MaxLabelLength || len(req.LabelAr) > domain.MaxLabelLength {
		return fmt.Errorf("%w: label exceeds %d characters", ErrInvalidInput, domain.MaxLabelLength)
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}
	if domain.DateOnly(req.EndDate).Before(domain.DateOnly(req.StartDate)) {
		return fmt.Errorf("%w: endDate before startDate", ErrInvalidInput)
	}
	if err := validateWindow(req.StartTime, req.EndTime); err != nil {
		return err
	}
	return validateWorkingDays(req.WorkingDays)
}

func validateWindow(start, end types.TimeString) error {
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}
	if err := start.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	if err := end.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}
	if !start.IsBefore(end) {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}
	return nil
}

func validateWorkingDays(days []int) error {
	if len(days) == 0 {
		return fmt.Errorf("%w: at least one working day is required", ErrInvalidInput)
	}
	seen := make(map[int]bool, len(days))
	for _, d := range days {
		if d < 0 || d > 6 {
			return fmt.Errorf("%w: working day %d out of range 0..6", ErrInvalidInput, d)
		}
		if seen[d] {
			return fmt.Errorf("%w: duplicate working day %d", ErrInvalidInput, d)
		}
		seen[d] = true
	}
	return nil
}

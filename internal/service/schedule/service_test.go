package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fablab-portal/SchedulingService/internal/domain"
	scheduleRepo "github.com/fablab-portal/SchedulingService/internal/infra/storage/schedule"
	"github.com/fablab-portal/SchedulingService/internal/service/schedule/models"
	"github.com/fablab-portal/SchedulingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRepo struct {
	policy    *domain.WorkingHoursPolicy
	nextID    int64
	overrides map[int64]*domain.OverridePeriod
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		policy: &domain.WorkingHoursPolicy{
			StartTime:   types.TimeString("09:00"),
			EndTime:     types.TimeString("21:00"),
			WorkingDays: []int{0, 1, 2, 3, 4},
		},
		overrides: map[int64]*domain.OverridePeriod{},
	}
}

func (f *fakeRepo) GetWorkingHours(context.Context) (*domain.WorkingHoursPolicy, error) {
	copied := *f.policy
	return &copied, nil
}

func (f *fakeRepo) UpdateWorkingHours(_ context.Context, policy *domain.WorkingHoursPolicy) (*domain.WorkingHoursPolicy, error) {
	updated := *policy
	updated.UpdatedAt = time.Now()
	f.policy = &updated
	copied := updated
	return &copied, nil
}

func (f *fakeRepo) CreateOverride(_ context.Context, override *domain.OverridePeriod) (*domain.OverridePeriod, error) {
	f.nextID++
	stored := *override
	stored.ID = f.nextID
	stored.IsActive = true
	f.overrides[stored.ID] = &stored
	copied := stored
	return &copied, nil
}

func (f *fakeRepo) GetOverrideByID(_ context.Context, id int64) (*domain.OverridePeriod, error) {
	override, ok := f.overrides[id]
	if !ok {
		return nil, scheduleRepo.ErrOverrideNotFound
	}
	copied := *override
	return &copied, nil
}

func (f *fakeRepo) ListOverrides(_ context.Context, includeInactive bool) ([]*domain.OverridePeriod, error) {
	var result []*domain.OverridePeriod
	for _, o := range f.overrides {
		if !includeInactive && !o.IsActive {
			continue
		}
		copied := *o
		result = append(result, &copied)
	}
	return result, nil
}

func (f *fakeRepo) UpdateOverride(_ context.Context, id int64, override *domain.OverridePeriod) (*domain.OverridePeriod, error) {
	existing, ok := f.overrides[id]
	if !ok {
		return nil, scheduleRepo.ErrOverrideNotFound
	}
	updated := *override
	updated.ID = id
	updated.IsActive = existing.IsActive
	f.overrides[id] = &updated
	copied := updated
	return &copied, nil
}

func (f *fakeRepo) SetOverrideActive(_ context.Context, id int64, active bool) error {
	override, ok := f.overrides[id]
	if !ok {
		return scheduleRepo.ErrOverrideNotFound
	}
	override.IsActive = active
	return nil
}

func overrideRequest() *models.OverrideRequest {
	return &models.OverrideRequest{
		LabelEn:     "Ramadan hours",
		LabelAr:     "ساعات رمضان",
		StartDate:   time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, 4, 9, 0, 0, 0, 0, time.UTC),
		StartTime:   types.TimeString("10:00"),
		EndTime:     types.TimeString("16:00"),
		WorkingDays: []int{0, 1, 2, 3, 4},
	}
}

func TestUpdateWorkingHoursValidation(t *testing.T) {
	svc := NewService(newFakeRepo(), nopLogger{})

	_, err := svc.UpdateWorkingHours(context.Background(), &models.UpdateWorkingHoursRequest{
		StartTime:   types.TimeString("21:00"),
		EndTime:     types.TimeString("09:00"),
		WorkingDays: []int{0},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.UpdateWorkingHours(context.Background(), &models.UpdateWorkingHoursRequest{
		StartTime:   types.TimeString("09:00"),
		EndTime:     types.TimeString("21:00"),
		WorkingDays: nil,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.UpdateWorkingHours(context.Background(), &models.UpdateWorkingHoursRequest{
		StartTime:   types.TimeString("09:00"),
		EndTime:     types.TimeString("21:00"),
		WorkingDays: []int{0, 7},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	resp, err := svc.UpdateWorkingHours(context.Background(), &models.UpdateWorkingHoursRequest{
		StartTime:   types.TimeString("10:00"),
		EndTime:     types.TimeString("20:00"),
		WorkingDays: []int{0, 1, 2, 3, 4},
	})
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
}

func TestCreateOverrideValidation(t *testing.T) {
	svc := NewService(newFakeRepo(), nopLogger{})

	req := overrideRequest()
	req.LabelEn = ""
	_, err := svc.CreateOverride(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = overrideRequest()
	req.EndDate = req.StartDate.AddDate(0, 0, -1)
	_, err = svc.CreateOverride(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = overrideRequest()
	req.WorkingDays = []int{1, 1}
	_, err = svc.CreateOverride(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestOverrideSoftDeleteRoundTrip(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nopLogger{})

	created, err := svc.CreateOverride(context.Background(), overrideRequest())
	require.NoError(t, err)
	assert.True(t, created.IsActive)

	// Soft delete keeps the record but flips the flag.
	deleted, err := svc.SetOverrideActive(context.Background(), created.ID, false)
	require.NoError(t, err)
	assert.False(t, deleted.IsActive)

	active, err := svc.ListOverrides(context.Background(), false)
	require.NoError(t, err)
	assert.Empty(t, active)

	all, err := svc.ListOverrides(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	// Reactivation restores the untouched record.
	restored, err := svc.SetOverrideActive(context.Background(), created.ID, true)
	require.NoError(t, err)
	assert.True(t, restored.IsActive)
	assert.Equal(t, created.StartTime, restored.StartTime)
	assert.Equal(t, created.EndTime, restored.EndTime)
}

func TestOverrideNotFound(t *testing.T) {
	svc := NewService(newFakeRepo(), nopLogger{})

	_, err := svc.UpdateOverride(context.Background(), 42, overrideRequest())
	assert.ErrorIs(t, err, ErrOverrideNotFound)

	_, err = svc.SetOverrideActive(context.Background(), 42, false)
	assert.ErrorIs(t, err, ErrOverrideNotFound)
}

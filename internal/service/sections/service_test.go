package sections

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fablab-portal/SchedulingService/internal/domain"
	sectionsRepo "github.com/fablab-portal/SchedulingService/internal/infra/storage/sections"
	"github.com/fablab-portal/SchedulingService/internal/service/sections/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRepo struct {
	nextID        int64
	deactivations map[int64]*domain.SectionDeactivation
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{deactivations: map[int64]*domain.SectionDeactivation{}}
}

func (f *fakeRepo) Create(_ context.Context, deactivation *domain.SectionDeactivation) (*domain.SectionDeactivation, error) {
	f.nextID++
	stored := *deactivation
	stored.ID = f.nextID
	stored.IsActive = true
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.deactivations[stored.ID] = &stored
	copied := stored
	return &copied, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.SectionDeactivation, error) {
	deactivation, ok := f.deactivations[id]
	if !ok {
		return nil, sectionsRepo.ErrDeactivationNotFound
	}
	copied := *deactivation
	return &copied, nil
}

func (f *fakeRepo) ListBySection(_ context.Context, section string, includeInactive bool) ([]*domain.SectionDeactivation, error) {
	var result []*domain.SectionDeactivation
	for _, d := range f.deactivations {
		if d.Section != section {
			continue
		}
		if !includeInactive && !d.IsActive {
			continue
		}
		copied := *d
		result = append(result, &copied)
	}
	return result, nil
}

func (f *fakeRepo) CountCovering(_ context.Context, section string, date time.Time) (int, error) {
	count := 0
	for _, d := range f.deactivations {
		if d.Section == section && d.IsActive && d.Covers(date) {
			count++
		}
	}
	return count, nil
}

func (f *fakeRepo) SetActive(_ context.Context, id int64, active bool) error {
	deactivation, ok := f.deactivations[id]
	if !ok {
		return sectionsRepo.ErrDeactivationNotFound
	}
	deactivation.IsActive = active
	return nil
}

func deactivationRequest() *models.DeactivationRequest {
	return &models.DeactivationRequest{
		Section:   "3D",
		StartDate: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 7, 14, 0, 0, 0, 0, time.UTC),
		ReasonEn:  "printer maintenance",
		ReasonAr:  "صيانة الطابعة",
	}
}

func TestCreateDeactivationValidation(t *testing.T) {
	svc := NewService(newFakeRepo(), nopLogger{})

	req := deactivationRequest()
	req.Section = ""
	_, err := svc.CreateDeactivation(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = deactivationRequest()
	req.ReasonEn = ""
	_, err = svc.CreateDeactivation(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = deactivationRequest()
	req.ReasonEn = strings.Repeat("x", domain.MaxReasonLength+1)
	_, err = svc.CreateDeactivation(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = deactivationRequest()
	req.EndDate = time.Time{}
	_, err = svc.CreateDeactivation(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = deactivationRequest()
	req.EndDate = req.StartDate.AddDate(0, 0, -1)
	_, err = svc.CreateDeactivation(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateDeactivationSingleDay(t *testing.T) {
	svc := NewService(newFakeRepo(), nopLogger{})

	// A one-day closure uses the same date on both ends.
	req := deactivationRequest()
	req.EndDate = req.StartDate
	resp, err := svc.CreateDeactivation(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, resp.IsActive)
	assert.Equal(t, resp.StartDate, resp.EndDate)
}

func TestListDeactivationsRequiresSection(t *testing.T) {
	svc := NewService(newFakeRepo(), nopLogger{})

	_, err := svc.ListDeactivations(context.Background(), "", false)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDeactivationSoftDeleteRoundTrip(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nopLogger{})

	created, err := svc.CreateDeactivation(context.Background(), deactivationRequest())
	require.NoError(t, err)
	assert.True(t, created.IsActive)

	// Soft delete keeps the record but flips the flag.
	deleted, err := svc.SetDeactivationActive(context.Background(), created.ID, false)
	require.NoError(t, err)
	assert.False(t, deleted.IsActive)

	active, err := svc.ListDeactivations(context.Background(), "3D", false)
	require.NoError(t, err)
	assert.Empty(t, active)

	all, err := svc.ListDeactivations(context.Background(), "3D", true)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	// Reactivation restores the untouched record.
	restored, err := svc.SetDeactivationActive(context.Background(), created.ID, true)
	require.NoError(t, err)
	assert.True(t, restored.IsActive)
	assert.Equal(t, created.ReasonEn, restored.ReasonEn)
}

func TestDeactivationNotFound(t *testing.T) {
	svc := NewService(newFakeRepo(), nopLogger{})

	_, err := svc.SetDeactivationActive(context.Background(), 42, false)
	assert.ErrorIs(t, err, ErrDeactivationNotFound)
}

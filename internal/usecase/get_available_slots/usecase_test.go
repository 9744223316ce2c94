package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fablab-portal/SchedulingService/internal/domain"
	"github.com/fablab-portal/SchedulingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeEventsRepo struct {
	conflicts []*domain.BlockingEvent
}

func (f *fakeEventsRepo) FindConflicts(_ context.Context, _ string, _ time.Time, _, _ types.TimeString) ([]*domain.BlockingEvent, error) {
	return f.conflicts, nil
}

type fakeScheduleRepo struct {
	policy    *domain.WorkingHoursPolicy
	overrides []*domain.OverridePeriod
}

func (f *fakeScheduleRepo) GetWorkingHours(context.Context) (*domain.WorkingHoursPolicy, error) {
	return f.policy, nil
}

func (f *fakeScheduleRepo) ListOverridesCoveringDate(context.Context, time.Time) ([]*domain.OverridePeriod, error) {
	return f.overrides, nil
}

type fakeSectionsRepo struct {
	covering int
}

func (f *fakeSectionsRepo) CountCovering(context.Context, string, time.Time) (int, error) {
	return f.covering, nil
}

// Monday 2024-06-10.
var testDate = time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

func defaultPolicy() *domain.WorkingHoursPolicy {
	return &domain.WorkingHoursPolicy{
		StartTime:   types.TimeString("11:00"),
		EndTime:     types.TimeString("19:00"),
		WorkingDays: []int{0, 1, 2, 3, 4},
	}
}

func newTestUseCase(events *fakeEventsRepo, schedule *fakeScheduleRepo, sections *fakeSectionsRepo) *UseCase {
	return NewUseCase(events, schedule, sections, nopLogger{})
}

func TestExecuteSubtractsBookedSlot(t *testing.T) {
	events := &fakeEventsRepo{conflicts: []*domain.BlockingEvent{
		blockingEvent("13:00", "14:00", domain.StatusApproved),
	}}
	uc := newTestUseCase(events, &fakeScheduleRepo{policy: defaultPolicy()}, &fakeSectionsRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		Section:         "3D",
		Date:            testDate,
		DurationMinutes: 60,
	})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 2)
	assert.Equal(t, Slot{StartTime: "11:00", EndTime: "13:00", DurationMinutes: 120}, resp.Slots[0])
	assert.Equal(t, Slot{StartTime: "14:00", EndTime: "19:00", DurationMinutes: 300}, resp.Slots[1])
}

func TestExecuteOverrideWindowWins(t *testing.T) {
	schedule := &fakeScheduleRepo{
		policy: defaultPolicy(),
		overrides: []*domain.OverridePeriod{{
			StartTime:   types.TimeString("11:00"),
			EndTime:     types.TimeString("15:00"),
			WorkingDays: []int{0, 1, 2, 3, 4},
		}},
	}
	uc := newTestUseCase(&fakeEventsRepo{}, schedule, &fakeSectionsRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		Section:         "3D",
		Date:            testDate,
		DurationMinutes: 60,
	})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 1)
	assert.Equal(t, Slot{StartTime: "11:00", EndTime: "15:00", DurationMinutes: 240}, resp.Slots[0])
}

func TestExecuteDeactivatedSectionIsEmpty(t *testing.T) {
	uc := newTestUseCase(&fakeEventsRepo{}, &fakeScheduleRepo{policy: defaultPolicy()}, &fakeSectionsRepo{covering: 1})

	resp, err := uc.Execute(context.Background(), &Request{
		Section:         "laser",
		Date:            testDate,
		DurationMinutes: 60,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecuteNonWorkingDayIsEmpty(t *testing.T) {
	uc := newTestUseCase(&fakeEventsRepo{}, &fakeScheduleRepo{policy: defaultPolicy()}, &fakeSectionsRepo{})

	// Friday 2024-06-14 is outside the working-day set.
	friday := time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{
		Section:         "3D",
		Date:            friday,
		DurationMinutes: 60,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecuteValidation(t *testing.T) {
	uc := newTestUseCase(&fakeEventsRepo{}, &fakeScheduleRepo{policy: defaultPolicy()}, &fakeSectionsRepo{})

	_, err := uc.Execute(context.Background(), &Request{Date: testDate, DurationMinutes: 60})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Section: "3D", DurationMinutes: 60})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Section: "3D", Date: testDate, DurationMinutes: 2})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Section: "3D", Date: testDate, DurationMinutes: 600})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

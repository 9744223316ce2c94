package events

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fablab-portal/SchedulingService/internal/domain"
	eventsRepo "github.com/fablab-portal/SchedulingService/internal/infra/storage/events"
	"github.com/fablab-portal/SchedulingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fakeRepo keeps events in memory keyed by id.
type fakeRepo struct {
	nextID int64
	events map[int64]*domain.BlockingEvent
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{events: map[int64]*domain.BlockingEvent{}}
}

func (f *fakeRepo) add(event *domain.BlockingEvent) *domain.BlockingEvent {
	f.nextID++
	stored := *event
	stored.ID = f.nextID
	f.events[stored.ID] = &stored
	return &stored
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.BlockingEvent, error) {
	event, ok := f.events[id]
	if !ok {
		return nil, eventsRepo.ErrEventNotFound
	}
	copied := *event
	return &copied, nil
}

func (f *fakeRepo) ListWithFilter(_ context.Context, filter domain.EventsFilter) ([]*domain.BlockingEvent, error) {
	var result []*domain.BlockingEvent
	for _, e := range f.events {
		if e.Section == filter.Section {
			copied := *e
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (f *fakeRepo) FindConflicts(_ context.Context, section string, date time.Time, startTime, endTime types.TimeString) ([]*domain.BlockingEvent, error) {
	requested := domain.Interval{Start: startTime, End: endTime}
	var conflicts []*domain.BlockingEvent
	for _, e := range f.events {
		if e.Section != section || !e.Date.Equal(date) || !e.OccupiesCalendar() {
			continue
		}
		if requested.Overlaps(domain.Interval{Start: e.StartTime, End: e.EndTime}) {
			copied := *e
			conflicts = append(conflicts, &copied)
		}
	}
	return conflicts, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id int64, status domain.EventStatus) error {
	event, ok := f.events[id]
	if !ok {
		return eventsRepo.ErrEventNotFound
	}
	event.Status = status
	return nil
}

func (f *fakeRepo) ListByGroupID(_ context.Context, groupID uuid.UUID) ([]*domain.BlockingEvent, error) {
	var result []*domain.BlockingEvent
	for _, e := range f.events {
		if e.GroupID == groupID {
			copied := *e
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (f *fakeRepo) DeleteByGroupID(_ context.Context, groupID uuid.UUID) (int64, error) {
	var deleted int64
	for id, e := range f.events {
		if e.GroupID == groupID {
			delete(f.events, id)
			deleted++
		}
	}
	return deleted, nil
}

var testDate = time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

func appointment(start, end string, status domain.EventStatus) *domain.BlockingEvent {
	return &domain.BlockingEvent{
		Kind:           domain.KindAppointment,
		Section:        "3D",
		Date:           testDate,
		StartTime:      types.TimeString(start),
		EndTime:        types.TimeString(end),
		BlocksCalendar: true,
		Status:         status,
		GroupID:        uuid.New(),
	}
}

func newTestService(repo *fakeRepo) *Service {
	return NewService(repo, fakeTxManager{}, nopLogger{})
}

func TestChangeStatusApprove(t *testing.T) {
	repo := newFakeRepo()
	pending := repo.add(appointment("10:00", "11:00", domain.StatusPending))
	svc := newTestService(repo)

	updated, err := svc.ChangeStatus(context.Background(), pending.ID, domain.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, updated.Status)
}

func TestChangeStatusInvalidTransition(t *testing.T) {
	repo := newFakeRepo()
	pending := repo.add(appointment("10:00", "11:00", domain.StatusPending))
	svc := newTestService(repo)

	_, err := svc.ChangeStatus(context.Background(), pending.ID, domain.StatusCompleted)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// The stored status must be untouched.
	stored, getErr := repo.GetByID(context.Background(), pending.ID)
	require.NoError(t, getErr)
	assert.Equal(t, domain.StatusPending, stored.Status)
}

func TestChangeStatusApproveIntoOccupiedSlot(t *testing.T) {
	repo := newFakeRepo()
	rejected := repo.add(appointment("10:00", "11:00", domain.StatusRejected))
	repo.add(appointment("10:30", "11:30", domain.StatusApproved))
	svc := newTestService(repo)

	// Re-approving the rejected appointment must fail: the slot has been
	// taken since it was rejected.
	_, err := svc.ChangeStatus(context.Background(), rejected.ID, domain.StatusApproved)
	assert.ErrorIs(t, err, ErrSlotConflict)

	stored, getErr := repo.GetByID(context.Background(), rejected.ID)
	require.NoError(t, getErr)
	assert.Equal(t, domain.StatusRejected, stored.Status)
}

func TestChangeStatusApproveIgnoresSelfConflict(t *testing.T) {
	repo := newFakeRepo()
	// A pending event occupies its own slot; approving it must not trip on
	// its own row.
	pending := repo.add(appointment("14:00", "15:00", domain.StatusPending))
	svc := newTestService(repo)

	updated, err := svc.ChangeStatus(context.Background(), pending.ID, domain.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, updated.Status)
}

func TestChangeStatusTaskLifecycle(t *testing.T) {
	repo := newFakeRepo()
	task := repo.add(&domain.BlockingEvent{
		Kind:    domain.KindTask,
		Section: "laser",
		Date:    testDate,
		Status:  domain.StatusPending,
		GroupID: uuid.New(),
	})
	svc := newTestService(repo)

	updated, err := svc.ChangeStatus(context.Background(), task.ID, domain.StatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, updated.Status)

	updated, err = svc.ChangeStatus(context.Background(), task.ID, domain.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, updated.Status)

	_, err = svc.ChangeStatus(context.Background(), task.ID, domain.StatusPending)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestChangeStatusNotFound(t *testing.T) {
	svc := newTestService(newFakeRepo())

	_, err := svc.ChangeStatus(context.Background(), 99, domain.StatusApproved)
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestGroupRoundTrip(t *testing.T) {
	repo := newFakeRepo()
	groupID := uuid.New()
	for i := 0; i < 3; i++ {
		event := appointment("10:00", "11:00", domain.StatusPending)
		event.Date = testDate.AddDate(0, 0, i)
		event.GroupID = groupID
		repo.add(event)
	}
	svc := newTestService(repo)

	group, err := svc.GetGroup(context.Background(), groupID)
	require.NoError(t, err)
	assert.Len(t, group.Events, 3)

	result, err := svc.DeleteGroup(context.Background(), groupID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), result.Deleted)

	_, err = svc.GetGroup(context.Background(), groupID)
	assert.ErrorIs(t, err, ErrGroupNotFound)

	_, err = svc.DeleteGroup(context.Background(), groupID)
	assert.ErrorIs(t, err, ErrGroupNotFound)
}

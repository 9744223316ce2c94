package events

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/fablab-portal/SchedulingService/internal/domain"
	"github.com/fablab-portal/SchedulingService/pkg/dbmetrics"
	"github.com/fablab-portal/SchedulingService/pkg/psqlbuilder"
	"github.com/fablab-portal/SchedulingService/pkg/types"
)

// exclusionViolation is the PostgreSQL error code for an EXCLUDE constraint hit.
const exclusionViolation = "23P01"

// Repository stores committed blocking events (appointments and staff tasks).
type Repository struct {
	db DBExecutor
}

// NewRepository creates an events repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts one blocking event.
//
// When the event blocks the calendar, the schema-level exclusion constraint
// rejects overlapping active events for the same section and date even if a
// concurrent writer slipped past the transactional checks; that case is
// reported as ErrOverlapConstraint.
func (r *Repository) Create(ctx context.Context, event *domain.BlockingEvent) (*domain.BlockingEvent, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blocking_events").
		Columns(
			"kind",
			"section",
			"event_date",
			"start_time",
			"end_time",
			"blocks_calendar",
			"status",
			"group_id",
			"title",
			"created_by",
		).
		Values(
			event.Kind,
			event.Section,
			event.Date,
			event.StartTime,
			event.EndTime,
			event.BlocksCalendar,
			event.Status,
			event.GroupID,
			event.Title,
			event.CreatedBy,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&event.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == exclusionViolation {
			return nil, ErrOverlapConstraint
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	event.CreatedAt = createdAt.Time
	event.UpdatedAt = updatedAt.Time

	return event, nil
}

// GetByID reads one blocking event.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.BlockingEvent, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := eventSelect().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	event, err := scanEventRow(row)
	if err == sql.ErrNoRows {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan event: %v", ErrScanRow, err)
	}

	return event, nil
}

// ListWithFilter returns a section's events for calendar display,
// chronologically ordered.
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.EventsFilter) ([]*domain.BlockingEvent, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := eventSelect().
		Where(squirrel.Eq{"section": filter.Section}).
		OrderBy("event_date ASC, start_time ASC NULLS FIRST, id ASC")

	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"event_date": domain.DateOnly(*filter.StartDate)})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"event_date": domain.DateOnly(*filter.EndDate)})
	}
	if filter.Kind != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"kind": *filter.Kind})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// FindConflicts returns the calendar-blocking events of a section that
// intersect [startTime, endTime) on the date. Half-open semantics: an event
// ending exactly when the probe starts is not a conflict.
//
// Inside a transaction the matching rows are locked with FOR UPDATE so a
// concurrent commit for the same section and date serializes behind it.
func (r *Repository) FindConflicts(ctx context.Context, section string, date time.Time, startTime, endTime types.TimeString) ([]*domain.BlockingEvent, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	statuses := make([]string, len(domain.CalendarBlockingStatuses))
	for i, s := range domain.CalendarBlockingStatuses {
		statuses[i] = string(s)
	}

	selectBuilder := eventSelect().
		Where(squirrel.Eq{
			"section":         section,
			"event_date":      domain.DateOnly(date),
			"blocks_calendar": true,
			"status":          statuses,
		}).
		Where(squirrel.Lt{"start_time": endTime}).
		Where(squirrel.Gt{"end_time": startTime}).
		OrderBy("start_time ASC, id ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindConflicts - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindConflicts - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// UpdateStatus sets a new lifecycle status on one event.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.EventStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("blocking_events").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrEventNotFound
	}

	return nil
}

// ListByGroupID returns all events created by one multi-day booking,
// ordered by date.
func (r *Repository) ListByGroupID(ctx context.Context, groupID uuid.UUID) ([]*domain.BlockingEvent, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := eventSelect().
		Where(squirrel.Eq{"group_id": groupID}).
		OrderBy("event_date ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByGroupID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByGroupID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// DeleteByGroupID removes a whole booking group. Explicit admin removal is
// the only path that hard-deletes events.
func (r *Repository) DeleteByGroupID(ctx context.Context, groupID uuid.UUID) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocking_events").
		Where(squirrel.Eq{"group_id": groupID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByGroupID - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByGroupID - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByGroupID - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return 0, ErrGroupNotFound
	}

	return rowsAffected, nil
}

func eventSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"kind",
		"section",
		"event_date",
		"start_time",
		"end_time",
		"blocks_calendar",
		"status",
		"group_id",
		"title",
		"created_by",
		"created_at",
		"updated_at",
	).From("blocking_events")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEventRow(row rowScanner) (*domain.BlockingEvent, error) {
	var event domain.BlockingEvent
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&event.ID,
		&event.Kind,
		&event.Section,
		&event.Date,
		&event.StartTime,
		&event.EndTime,
		&event.BlocksCalendar,
		&event.Status,
		&event.GroupID,
		&event.Title,
		&event.CreatedBy,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	event.CreatedAt = createdAt.Time
	event.UpdatedAt = updatedAt.Time

	return &event, nil
}

func scanEvents(rows *sql.Rows) ([]*domain.BlockingEvent, error) {
	result := make([]*domain.BlockingEvent, 0)

	for rows.Next() {
		event, err := scanEventRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanEvents - scan row: %v", ErrScanRow, err)
		}
		result = append(result, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanEvents - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/fablab-portal/SchedulingService/internal/domain"
	"github.com/fablab-portal/SchedulingService/pkg/dbmetrics"
	"github.com/fablab-portal/SchedulingService/pkg/psqlbuilder"
)

// policyRowID is the fixed primary key of the single working-hours policy row.
const policyRowID = 1

// Repository stores the working-hours policy and override periods.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a schedule repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetWorkingHours reads the current default weekly schedule.
// Resolution always reads this row at call time; nothing is cached.
func (r *Repository) GetWorkingHours(ctx context.Context) (*domain.WorkingHoursPolicy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"start_time",
		"end_time",
		"working_days",
		"updated_at",
	).
		From("working_hours_policy").
		Where(squirrel.Eq{"id": policyRowID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetWorkingHours - build select query: %v", ErrBuildQuery, err)
	}

	var policy domain.WorkingHoursPolicy
	var days pq.Int64Array
	var updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&policy.ID,
		&policy.StartTime,
		&policy.EndTime,
		&days,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrPolicyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetWorkingHours - scan policy: %v", ErrScanRow, err)
	}

	policy.WorkingDays = fromInt64Array(days)
	policy.UpdatedAt = updatedAt.Time

	return &policy, nil
}

// UpdateWorkingHours replaces the default weekly schedule wholesale.
// The row is created on first update.
func (r *Repository) UpdateWorkingHours(ctx context.Context, policy *domain.WorkingHoursPolicy) (*domain.WorkingHoursPolicy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("working_hours_policy").
		Columns("id", "start_time", "end_time", "working_days").
		Values(policyRowID, policy.StartTime, policy.EndTime, toInt64Array(policy.WorkingDays)).
		Suffix(`ON CONFLICT (id) DO UPDATE
			SET start_time = EXCLUDED.start_time,
			    end_time = EXCLUDED.end_time,
			    working_days = EXCLUDED.working_days,
			    updated_at = NOW()
			RETURNING id, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateWorkingHours - build upsert query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&policy.ID, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateWorkingHours - execute upsert: %v", ErrExecQuery, err)
	}

	policy.UpdatedAt = updatedAt.Time

	return policy, nil
}

// CreateOverride inserts a new override period.
func (r *Repository) CreateOverride(ctx context.Context, override *domain.OverridePeriod) (*domain.OverridePeriod, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("override_periods").
		Columns(
			"label_en",
			"label_ar",
			"start_date",
			"end_date",
			"start_time",
			"end_time",
			"working_days",
			"is_active",
		).
		Values(
			override.LabelEn,
			override.LabelAr,
			override.StartDate,
			override.EndDate,
			override.StartTime,
			override.EndTime,
			toInt64Array(override.WorkingDays),
			true,
		).
		Suffix("RETURNING id, is_active, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateOverride - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&override.ID,
		&override.IsActive,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: CreateOverride - execute insert: %v", ErrExecQuery, err)
	}

	override.CreatedAt = createdAt.Time
	override.UpdatedAt = updatedAt.Time

	return override, nil
}

// GetOverrideByID reads one override period, active or not.
func (r *Repository) GetOverrideByID(ctx context.Context, id int64) (*domain.OverridePeriod, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := overrideSelect().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetOverrideByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	override, err := scanOverrideRow(row)
	if err == sql.ErrNoRows {
		return nil, ErrOverrideNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverrideByID - scan override: %v", ErrScanRow, err)
	}

	return override, nil
}

// ListOverrides returns all override periods ordered by start date.
// Soft-deleted records are excluded unless includeInactive is set.
func (r *Repository) ListOverrides(ctx context.Context, includeInactive bool) ([]*domain.OverridePeriod, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := overrideSelect().OrderBy("start_date ASC, id ASC")
	if !includeInactive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListOverrides - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListOverrides - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanOverrides(rows)
}

// ListOverridesCoveringDate returns the active override periods whose date
// range contains the date, most recently created first. The ordering makes
// the precedence rule (latest-created override wins) deterministic; callers
// take the first element.
func (r *Repository) ListOverridesCoveringDate(ctx context.Context, date time.Time) ([]*domain.OverridePeriod, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	day := domain.DateOnly(date)

	query, args, err := overrideSelect().
		Where(squirrel.Eq{"is_active": true}).
		Where(squirrel.LtOrEq{"start_date": day}).
		Where(squirrel.GtOrEq{"end_date": day}).
		OrderBy("created_at DESC, id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListOverridesCoveringDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListOverridesCoveringDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanOverrides(rows)
}

// UpdateOverride replaces the mutable fields of an override period.
func (r *Repository) UpdateOverride(ctx context.Context, id int64, override *domain.OverridePeriod) (*domain.OverridePeriod, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("override_periods").
		Set("label_en", override.LabelEn).
		Set("label_ar", override.LabelAr).
		Set("start_date", override.StartDate).
		Set("end_date", override.EndDate).
		Set("start_time", override.StartTime).
		Set("end_time", override.EndTime).
		Set("working_days", toInt64Array(override.WorkingDays)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING is_active, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateOverride - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&override.IsActive, &createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrOverrideNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateOverride - execute update: %v", ErrExecQuery, err)
	}

	override.ID = id
	override.CreatedAt = createdAt.Time
	override.UpdatedAt = updatedAt.Time

	return override, nil
}

// SetOverrideActive flips the soft-deletion flag. Records are never hard
// deleted; reactivation restores the exact previous resolution behavior.
func (r *Repository) SetOverrideActive(ctx context.Context, id int64, active bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("override_periods").
		Set("is_active", active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetOverrideActive - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetOverrideActive - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetOverrideActive - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrOverrideNotFound
	}

	return nil
}

func overrideSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"label_en",
		"label_ar",
		"start_date",
		"end_date",
		"start_time",
		"end_time",
		"working_days",
		"is_active",
		"created_at",
		"updated_at",
	).From("override_periods")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOverrideRow(row rowScanner) (*domain.OverridePeriod, error) {
	var override domain.OverridePeriod
	var days pq.Int64Array
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&override.ID,
		&override.LabelEn,
		&override.LabelAr,
		&override.StartDate,
		&override.EndDate,
		&override.StartTime,
		&override.EndTime,
		&days,
		&override.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	override.WorkingDays = fromInt64Array(days)
	override.CreatedAt = createdAt.Time
	override.UpdatedAt = updatedAt.Time

	return &override, nil
}

func scanOverrides(rows *sql.Rows) ([]*domain.OverridePeriod, error) {
	overrides := make([]*domain.OverridePeriod, 0)

	for rows.Next() {
		override, err := scanOverrideRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanOverrides - scan row: %v", ErrScanRow, err)
		}
		overrides = append(overrides, override)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanOverrides - rows error: %v", ErrScanRow, err)
	}

	return overrides, nil
}

func toInt64Array(days []int) pq.Int64Array {
	arr := make(pq.Int64Array, len(days))
	for i, d := range days {
		arr[i] = int64(d)
	}
	return arr
}

func fromInt64Array(arr pq.Int64Array) []int {
	days := make([]int, len(arr))
	for i, d := range arr {
		days[i] = int(d)
	}
	return days
}

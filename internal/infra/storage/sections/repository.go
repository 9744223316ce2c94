package sections

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/fablab-portal/SchedulingService/internal/domain"
	"github.com/fablab-portal/SchedulingService/pkg/dbmetrics"
	"github.com/fablab-portal/SchedulingService/pkg/psqlbuilder"
)

// Repository stores section deactivation periods.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a sections repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new deactivation period for a section.
func (r *Repository) Create(ctx context.Context, deactivation *domain.SectionDeactivation) (*domain.SectionDeactivation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("section_deactivations").
		Columns(
			"section",
			"start_date",
			"end_date",
			"reason_en",
			"reason_ar",
			"is_active",
		).
		Values(
			deactivation.Section,
			deactivation.StartDate,
			deactivation.EndDate,
			deactivation.ReasonEn,
			deactivation.ReasonAr,
			true,
		).
		Suffix("RETURNING id, is_active, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&deactivation.ID,
		&deactivation.IsActive,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	deactivation.CreatedAt = createdAt.Time
	deactivation.UpdatedAt = updatedAt.Time

	return deactivation, nil
}

// GetByID reads one deactivation period, active or not.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.SectionDeactivation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := deactivationSelect().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	deactivation, err := scanDeactivationRow(row)
	if err == sql.ErrNoRows {
		return nil, ErrDeactivationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan deactivation: %v", ErrScanRow, err)
	}

	return deactivation, nil
}

// ListBySection returns the deactivation periods of a section ordered by
// start date. Soft-deleted records are excluded unless includeInactive is set.
func (r *Repository) ListBySection(ctx context.Context, section string, includeInactive bool) ([]*domain.SectionDeactivation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := deactivationSelect().
		Where(squirrel.Eq{"section": section}).
		OrderBy("start_date ASC, id ASC")

	if !includeInactive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBySection - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBySection - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanDeactivations(rows)
}

// CountCovering counts the active deactivation periods of a section covering
// the date. Union semantics: any non-zero count means the section is closed.
func (r *Repository) CountCovering(ctx context.Context, section string, date time.Time) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	day := domain.DateOnly(date)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("section_deactivations").
		Where(squirrel.Eq{"section": section, "is_active": true}).
		Where(squirrel.LtOrEq{"start_date": day}).
		Where(squirrel.GtOrEq{"end_date": day}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountCovering - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountCovering - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// SetActive flips the soft-deletion flag. Deactivation records are retained
// for audit and never hard deleted.
func (r *Repository) SetActive(ctx context.Context, id int64, active bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("section_deactivations").
		Set("is_active", active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetActive - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetActive - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetActive - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrDeactivationNotFound
	}

	return nil
}

func deactivationSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"section",
		"start_date",
		"end_date",
		"reason_en",
		"reason_ar",
		"is_active",
		"created_at",
		"updated_at",
	).From("section_deactivations")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDeactivationRow(row rowScanner) (*domain.SectionDeactivation, error) {
	var deactivation domain.SectionDeactivation
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&deactivation.ID,
		&deactivation.Section,
		&deactivation.StartDate,
		&deactivation.EndDate,
		&deactivation.ReasonEn,
		&deactivation.ReasonAr,
		&deactivation.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	deactivation.CreatedAt = createdAt.Time
	deactivation.UpdatedAt = updatedAt.Time

	return &deactivation, nil
}

func scanDeactivations(rows *sql.Rows) ([]*domain.SectionDeactivation, error) {
	deactivations := make([]*domain.SectionDeactivation, 0)

	for rows.Next() {
		deactivation, err := scanDeactivationRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanDeactivations - scan row: %v", ErrScanRow, err)
		}
		deactivations = append(deactivations, deactivation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanDeactivations - rows error: %v", ErrScanRow, err)
	}

	return deactivations, nil
}

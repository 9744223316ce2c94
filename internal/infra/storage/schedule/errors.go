package schedule

import "errors"

var (
	// ErrPolicyNotFound is returned when the working-hours policy row is missing
	ErrPolicyNotFound = errors.New("schedule.repository: working hours policy not found")

	// ErrOverrideNotFound is returned when an override period is not found
	ErrOverrideNotFound = errors.New("schedule.repository: override period not found")

	// ErrBuildQuery is returned when building a SQL query fails
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL query fails
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)

package sections

import "errors"

var (
	// ErrDeactivationNotFound is returned when a deactivation period is not found
	ErrDeactivationNotFound = errors.New("sections.repository: deactivation not found")

	// ErrBuildQuery is returned when building a SQL query fails
	ErrBuildQuery = errors.New("sections.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL query fails
	ErrExecQuery = errors.New("sections.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("sections.repository: failed to scan row")
)

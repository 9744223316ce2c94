package events

import "errors"

var (
	// ErrEventNotFound is returned when a blocking event is not found
	ErrEventNotFound = errors.New("events.repository: event not found")

	// ErrGroupNotFound is returned when a booking group has no events
	ErrGroupNotFound = errors.New("events.repository: booking group not found")

	// ErrOverlapConstraint is returned when the storage-level exclusion
	// constraint rejects a conflicting insert
	ErrOverlapConstraint = errors.New("events.repository: overlapping calendar event")

	// ErrBuildQuery is returned when building a SQL query fails
	ErrBuildQuery = errors.New("events.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL query fails
	ErrExecQuery = errors.New("events.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("events.repository: failed to scan row")
)

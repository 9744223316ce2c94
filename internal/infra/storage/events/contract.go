package events

import (
	"github.com/fablab-portal/SchedulingService/pkg/dbmetrics"
)

// DBExecutor is the shared query surface; the active transaction in the
// context takes precedence over it.
type DBExecutor = dbmetrics.DBExecutor

package schedule

import "errors"

var (
	ErrOverrideNotFound = errors.New("schedule.service: override period not found")
	ErrInvalidInput     = errors.New("schedule.service: invalid input")
	ErrInternal         = errors.New("schedule.service: internal error")
)

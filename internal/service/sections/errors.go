package sections

import "errors"

var (
	ErrDeactivationNotFound = errors.New("sections.service: deactivation not found")
	ErrInvalidInput         = errors.New("sections.service: invalid input")
	ErrInternal             = errors.New("sections.service: internal error")
)

package events

import "errors"

var (
	ErrEventNotFound     = errors.New("events.service: event not found")
	ErrGroupNotFound     = errors.New("events.service: booking group not found")
	ErrInvalidTransition = errors.New("events.service: status transition not allowed")
	ErrSlotConflict      = errors.New("events.service: slot already occupied")
	ErrInvalidInput      = errors.New("events.service: invalid input")
	ErrInternal          = errors.New("events.service: internal error")
)

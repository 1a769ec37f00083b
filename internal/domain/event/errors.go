package event

import "errors"

var (
	// ErrEventNotFound indicates the event doesn't exist.
	ErrEventNotFound = errors.New("event not found")
	// ErrInvalidInput indicates invalid input for event operations.
	ErrInvalidInput = errors.New("invalid event input")
)

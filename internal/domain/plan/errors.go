package plan

import "errors"

var (
	// ErrInvalidInput indicates an unknown field or year.
	ErrInvalidInput = errors.New("invalid plan input")
)

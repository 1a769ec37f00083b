package mcp

import (
	"errors"
	"fmt"

	"github.com/qiwen/planner-mcp/internal/domain/event"
	"github.com/qiwen/planner-mcp/internal/domain/plan"
)

// APIError represents a coded tool error.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func invalidInput(msg string) *APIError {
	return &APIError{Code: "INVALID_INPUT", Message: msg}
}

// mapError maps domain errors to coded API errors.
func mapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, event.ErrEventNotFound):
		return &APIError{Code: "EVENT_NOT_FOUND", Message: "event not found"}
	case errors.Is(err, event.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: "date and a non-empty title are required"}
	case errors.Is(err, plan.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: "year and a field in goals/work/life/other are required"}
	default:
		return err
	}
}

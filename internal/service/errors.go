package service

import (
	"errors"
	"fmt"

	"formlab/internal/validator"
)

var (
	ErrFormNotFound     = errors.New("form not found")
	ErrDraftNotFound    = errors.New("draft not found")
	ErrResponseNotFound = errors.New("response not found")
)

// ValidationError carries the aggregated validation issues for a request.
// Recoverable shape violations never propagate as plain errors; callers map
// this to a 400 at the request boundary.
type ValidationError struct {
	Issues []validator.Issue
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "validation failed"
	}
	first := e.Issues[0]
	if first.Position < 0 {
		return first.Message
	}
	return fmt.Sprintf("question %d: %s", first.Position+1, first.Message)
}

// formLevelError builds a ValidationError not tied to a question position.
func formLevelError(reason validator.Reason, message string) *ValidationError {
	return &ValidationError{Issues: []validator.Issue{{
		Position: -1,
		Result:   validator.Result{Reason: reason, Message: message},
	}}}
}

package wizard

import (
	"errors"
	"fmt"
)

// ErrInvalidStep is returned when a step number cannot be parsed.
var ErrInvalidStep = errors.New("invalid step number")

// ValidationError describes why a step cannot be advanced past.
type ValidationError struct {
	Step    int
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("step %d: %s: %s", e.Step, e.Field, e.Message)
}

// ErrBodyTooLarge is returned when a POST body exceeds the configured limit.
var ErrBodyTooLarge = errors.New("request body too large")

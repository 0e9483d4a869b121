package escalera

import (
	"fmt"
	"strings"
)

// ConfigError reports invalid tournament configuration input (bad court or
// player counts, missing config). The operator must correct the input and
// resubmit; it is never retried automatically.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string { return e.Message }

func configErrorf(format string, args ...interface{}) error {
	return &ConfigError{Message: fmt.Sprintf(format, args...)}
}

// StateError reports loaded state that does not match the current
// configuration (stale or corrupted external data). It is not recoverable by
// the engine; the message guides the operator to reset.
type StateError struct {
	Message string
}

func (e *StateError) Error() string { return e.Message }

func stateErrorf(format string, args ...interface{}) error {
	return &StateError{Message: fmt.Sprintf(format, args...)}
}

// PreconditionError reports an operation attempted in the wrong lifecycle
// stage, such as completing a date with open matches. The caller must satisfy
// the precondition before retrying.
type PreconditionError struct {
	Message string
}

func (e *PreconditionError) Error() string { return e.Message }

func preconditionErrorf(format string, args ...interface{}) error {
	return &PreconditionError{Message: fmt.Sprintf(format, args...)}
}

// RestViolationError reports an attempt to complete a match containing players
// who appeared in the most recently completed match of the date. It is part of
// the normal operator flow: the operator completes a different match first.
type RestViolationError struct {
	// Players holds the display names of the players who must rest.
	Players []string
}

func (e *RestViolationError) Error() string {
	return fmt.Sprintf("Deben descansar antes de jugar de nuevo: %s. Completá otro partido primero.",
		strings.Join(e.Players, ", "))
}

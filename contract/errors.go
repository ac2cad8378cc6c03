package contract

import (
	"errors"
	"fmt"
)

// Failure taxonomy. Every operation rejects atomically with one of these
// wrapped under a human-readable reason, so callers branch with errors.Is
// while the reason string travels to the host unchanged.
var (
	// ErrUnauthorized - caller lacks the capability (not the administrator,
	// or not a registered member for vote-only operations).
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound - the referenced record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidState - the record exists but its lifecycle forbids the op.
	ErrInvalidState = errors.New("invalid state")
	// ErrPhase - the op was attempted outside its permitted time window.
	ErrPhase = errors.New("outside permitted window")
	// ErrValidation - the arguments violate configured bounds.
	ErrValidation = errors.New("validation failed")
	// ErrExternalCall - the invoked external code reported failure; the
	// queued action stays pending and may be retried.
	ErrExternalCall = errors.New("external call failed")
)

// reject wraps a taxonomy sentinel under a reason string.
func reject(kind error, msg string) error {
	return fmt.Errorf("%s: %w", msg, kind)
}

// rejectf is reject with formatting for ids and addresses in the reason.
func rejectf(kind error, format string, args ...any) error {
	return reject(kind, fmt.Sprintf(format, args...))
}

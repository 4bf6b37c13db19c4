package workflow

import "errors"

var (
	// ErrNilDocument is returned when a controller is built without a
	// document getter.
	ErrNilDocument = errors.New("document getter cannot be nil")

	// ErrNoPendingAction is returned by Confirm when no action is awaiting
	// confirmation.
	ErrNoPendingAction = errors.New("no action awaiting confirmation")

	// ErrExecutionInFlight is returned when an action is started while
	// another one is still executing.
	ErrExecutionInFlight = errors.New("another action is still executing")
)

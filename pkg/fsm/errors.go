package fsm

import "errors"

var (
	// ErrNoStates is returned when a config declares no states at all.
	ErrNoStates = errors.New("config must declare at least one state")

	// ErrUnknownInitialState is returned when Initial does not name a declared state.
	ErrUnknownInitialState = errors.New("initial state is not declared in states")

	// ErrUnknownTargetState is returned when a transition or branch targets an undeclared state.
	ErrUnknownTargetState = errors.New("transition target is not declared in states")

	// ErrFinalStateTransitions is returned when a final state declares outgoing transitions.
	ErrFinalStateTransitions = errors.New("final state must not declare outgoing transitions")

	// ErrEmptyEventType is returned when a state keys a transition on an empty event type.
	ErrEmptyEventType = errors.New("event type cannot be empty")
)

// Rejection messages surfaced through Result.Err. These are user-facing
// strings rendered verbatim by the host UI.
const (
	msgFinalState    = "Machine is in a final state"
	msgMidTransition = "Machine is mid-transition"
)

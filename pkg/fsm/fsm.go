package fsm

import "context"

// Event triggers a transition. Type is matched against the current state's
// transition table; Data carries an optional event payload for guards and
// actions (for example a payment amount or a rejection reason).
type Event struct {
	Type string
	Data any
}

// Guard evaluates whether a transition should be allowed. Guards must be pure
// and synchronous: they may read the context and event but not mutate either.
type Guard[C any] func(c *C, e Event) bool

// Action executes side effects during a transition, after all guards pass and
// before the state changes. Actions mutate the context in place; returning an
// error aborts the transition with the context restored.
type Action[C any] func(ctx context.Context, c *C, e Event) error

// Hook runs when a state is entered or exited.
type Hook[C any] func(ctx context.Context, c *C) error

// Branch routes a transition to an alternative target based on the context as
// it stands after the transition's actions have run. A nil Guard always
// matches.
type Branch[C any] struct {
	Target string
	Guard  Guard[C]
}

// Transition defines a state change triggered by an event.
type Transition[C any] struct {
	// Target is the destination state, used when no Branch matches.
	Target string

	// Guard, when set, must return true for the transition to proceed.
	Guard Guard[C]

	// GuardMessage is the human-readable rejection reason surfaced when
	// Guard returns false. A default message is used when empty.
	GuardMessage string

	// Actions run in order after the guard passes; any error aborts the
	// transition before the state changes.
	Actions []Action[C]

	// Branches are evaluated in order after Actions run; the first branch
	// whose guard passes overrides Target.
	Branches []Branch[C]
}

// State describes one node of the workflow graph.
type State[C any] struct {
	// Label and Description are display metadata for UI surfaces.
	Label       string
	Description string

	// Final marks a terminal state: no outgoing transitions are permitted.
	Final bool

	// OnEnter and OnExit run around the state change. An OnExit error
	// aborts the transition; an OnEnter error is logged and ignored since
	// the state has already changed.
	OnEnter Hook[C]
	OnExit  Hook[C]

	// On maps event types to the transition they trigger.
	On map[string]Transition[C]
}

// Config is the declarative description of a machine: authored once per
// document type and shared by every instance.
type Config[C any] struct {
	// ID identifies the workflow, e.g. "invoice".
	ID string

	// Initial is the starting state name and must be a key of States.
	Initial string

	// Context holds the default extended state merged under caller-supplied
	// fields by the document-type factories.
	Context C

	// States maps state names to their definitions.
	States map[string]State[C]
}

// Result reports the outcome of a transition attempt. Rejections are values,
// not errors: Err carries the human-readable reason and State the (unchanged)
// current state.
type Result struct {
	OK    bool
	Err   string
	State string
}

// Package fsm provides a declarative, type-safe finite-state-machine engine
// for document lifecycle management.
//
// A machine is described by a Config: an initial state, a typed context value,
// and a map of named states, where each state declares the events it accepts
// and the transition each event triggers. The engine handles:
//  1. Config validation with fail-fast errors for authoring mistakes
//  2. Guard evaluation to accept or reject transitions
//  3. Ordered side-effect Actions that mutate the shared context in place
//  4. OnEnter/OnExit hooks and terminal (final) states
//  5. Post-action branch routing when the target depends on the updated context
//
// # Architecture
//
// The machine is generic over its context type C. The context lives inside the
// machine and is handed to guards and actions as *C, so accumulation semantics
// (for example paidAmount += amount) work without the caller re-assigning a
// returned value. Context returns a copy; nothing outside the machine can
// write to the live context except through Transition and UpdateContext.
//
// Rejected transitions are reported as a Result value, never as an error or a
// panic. A rejection is an expected business-rule outcome: UI code polls
// CanTransition to enable or disable buttons and renders Result.Err verbatim
// when a guard blocks an event. Authoring defects (unknown initial or target
// state, transitions out of a final state) are different: New fails fast with
// a wrapped sentinel error so a broken workflow table never ships.
//
// # Usage
//
//	type OrderContext struct {
//	    Total int64
//	}
//
//	machine := fsm.MustNew(fsm.Config[OrderContext]{
//	    ID:      "order",
//	    Initial: "draft",
//	    States: map[string]fsm.State[OrderContext]{
//	        "draft": {
//	            On: map[string]fsm.Transition[OrderContext]{
//	                "SUBMIT": {
//	                    Target:       "submitted",
//	                    Guard:        func(c *OrderContext, e fsm.Event) bool { return c.Total > 0 },
//	                    GuardMessage: "Cannot submit an empty order",
//	                },
//	            },
//	        },
//	        "submitted": {Final: true},
//	    },
//	})
//
//	res := machine.Transition(ctx, fsm.Event{Type: "SUBMIT"})
//	if !res.OK {
//	    // res.Err holds the human-readable rejection reason
//	}
//
// # Branch routing
//
// When the destination depends on context fields an action just updated, a
// transition can carry ordered Branches evaluated after the actions run; the
// first branch whose guard passes wins, and Target is the fallback. This keeps
// paid-versus-partial style policy inside the workflow table instead of
// forcing the caller to issue a follow-up event.
//
// # Concurrency
//
// Transition is serialized by the surrounding event loop in the intended
// deployment. The machine still guards itself: a re-entrant Transition issued
// from inside a guard, action, or hook is rejected with a mid-transition
// Result instead of deadlocking, and accessors are safe to call concurrently.
package fsm

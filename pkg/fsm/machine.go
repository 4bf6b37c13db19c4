package fsm

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"
)

// Machine is a runtime instance of a Config. All mutation happens through
// Transition, UpdateContext, and Reset; accessors return copies.
type Machine[C any] struct {
	cfg    Config[C]
	value  string
	ctx    C
	firing bool
	mu     sync.Mutex
	log    *slog.Logger
}

// Option configures machine construction.
type Option func(*settings)

type settings struct {
	logger       *slog.Logger
	enterInitial bool
}

// WithLogger sets the logger used for hook failures and construction notices.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithoutInitialEnter skips running the initial state's OnEnter hook during
// construction and reset. Used when the machine is re-derived over an
// already-live document and entry side effects have already happened.
func WithoutInitialEnter() Option {
	return func(s *settings) {
		s.enterInitial = false
	}
}

// New validates cfg and creates a machine positioned at the initial state.
// Authoring defects (unknown initial or target state, transitions declared on
// a final state) fail fast here rather than producing an unreachable machine.
//
// The initial state's OnEnter hook, if any, runs once; a hook failure is
// logged and does not fail construction.
func New[C any](cfg Config[C], opts ...Option) (*Machine[C], error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}

	s := &settings{logger: slog.Default(), enterInitial: true}
	for _, opt := range opts {
		opt(s)
	}

	m := &Machine[C]{
		cfg:   cfg,
		value: cfg.Initial,
		ctx:   cfg.Context,
		log:   s.logger,
	}

	if s.enterInitial {
		m.enter(context.Background(), cfg.Initial)
	}

	return m, nil
}

// MustNew is like New but panics on a config error, for statically authored
// workflow tables where a bad config should prevent startup.
func MustNew[C any](cfg Config[C], opts ...Option) *Machine[C] {
	m, err := New(cfg, opts...)
	if err != nil {
		panic(fmt.Sprintf("fsm: invalid config %q: %v", cfg.ID, err))
	}
	return m
}

func validate[C any](cfg Config[C]) error {
	if len(cfg.States) == 0 {
		return fmt.Errorf("%w: workflow %q", ErrNoStates, cfg.ID)
	}
	if _, ok := cfg.States[cfg.Initial]; !ok {
		return fmt.Errorf("%w: %q in workflow %q", ErrUnknownInitialState, cfg.Initial, cfg.ID)
	}

	for name, st := range cfg.States {
		if st.Final && len(st.On) > 0 {
			return fmt.Errorf("%w: state %q in workflow %q", ErrFinalStateTransitions, name, cfg.ID)
		}
		for evt, tr := range st.On {
			if evt == "" {
				return fmt.Errorf("%w: state %q in workflow %q", ErrEmptyEventType, name, cfg.ID)
			}
			if _, ok := cfg.States[tr.Target]; !ok {
				return fmt.Errorf("%w: %q->%q on %q in workflow %q",
					ErrUnknownTargetState, name, tr.Target, evt, cfg.ID)
			}
			for _, br := range tr.Branches {
				if _, ok := cfg.States[br.Target]; !ok {
					return fmt.Errorf("%w: branch %q->%q on %q in workflow %q",
						ErrUnknownTargetState, name, br.Target, evt, cfg.ID)
				}
			}
		}
	}
	return nil
}

// ID returns the workflow identifier.
func (m *Machine[C]) ID() string { return m.cfg.ID }

// Value returns the current state name.
func (m *Machine[C]) Value() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.value
}

// Context returns a copy of the current extended state.
func (m *Machine[C]) Context() C {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ctx
}

// Done reports whether the machine has reached a terminal state.
func (m *Machine[C]) Done() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cfg.States[m.value].Final
}

// Transition applies the transition the current state declares for e.Type.
//
// The attempt is atomic: a rejected guard, a failed action, or a failed
// OnExit hook leaves both the state and the context exactly as they were.
// Rejections are reported as Result values, never as panics, so callers can
// surface Result.Err directly to the user.
func (m *Machine[C]) Transition(ctx context.Context, e Event) Result {
	m.mu.Lock()
	if m.firing {
		cur := m.value
		m.mu.Unlock()
		return Result{Err: msgMidTransition, State: cur}
	}
	m.firing = true
	current := m.value
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.firing = false
		m.mu.Unlock()
	}()

	st := m.cfg.States[current]
	if st.Final {
		return Result{Err: msgFinalState, State: current}
	}

	tr, ok := st.On[e.Type]
	if !ok {
		return Result{
			Err:   fmt.Sprintf("No transition for event '%s' in state '%s'", e.Type, current),
			State: current,
		}
	}

	if tr.Guard != nil && !tr.Guard(&m.ctx, e) {
		msg := tr.GuardMessage
		if msg == "" {
			msg = fmt.Sprintf("Event '%s' is not allowed in state '%s'", e.Type, current)
		}
		return Result{Err: msg, State: current}
	}

	// Snapshot for rollback so a failing action or exit hook cannot leave
	// a half-applied transition behind.
	saved := m.ctx

	for _, act := range tr.Actions {
		if act == nil {
			continue
		}
		if err := act(ctx, &m.ctx, e); err != nil {
			m.ctx = saved
			return Result{
				Err:   fmt.Sprintf("Action failed for event '%s' in state '%s': %v", e.Type, current, err),
				State: current,
			}
		}
	}

	target := tr.Target
	for _, br := range tr.Branches {
		if br.Guard == nil || br.Guard(&m.ctx, e) {
			target = br.Target
			break
		}
	}

	if st.OnExit != nil {
		if err := st.OnExit(ctx, &m.ctx); err != nil {
			m.ctx = saved
			return Result{
				Err:   fmt.Sprintf("Exit hook failed in state '%s': %v", current, err),
				State: current,
			}
		}
	}

	m.mu.Lock()
	m.value = target
	m.mu.Unlock()

	m.enter(ctx, target)

	return Result{OK: true, State: target}
}

// CanTransition reports whether the event type would currently be accepted,
// evaluating the same final-state, lookup, and guard checks as Transition
// without mutating anything. Used by UI code to enable or disable actions.
func (m *Machine[C]) CanTransition(eventType string) bool {
	m.mu.Lock()
	current := m.value
	m.mu.Unlock()

	st := m.cfg.States[current]
	if st.Final {
		return false
	}
	tr, ok := st.On[eventType]
	if !ok {
		return false
	}
	if tr.Guard != nil && !tr.Guard(&m.ctx, Event{Type: eventType}) {
		return false
	}
	return true
}

// AvailableTransitions returns the event types the current state declares,
// sorted for deterministic output. The result is empty once the machine is in
// a final state.
func (m *Machine[C]) AvailableTransitions() []string {
	m.mu.Lock()
	current := m.value
	m.mu.Unlock()

	st := m.cfg.States[current]
	if st.Final || len(st.On) == 0 {
		return nil
	}
	return slices.Sorted(maps.Keys(st.On))
}

// UpdateContext applies an out-of-band correction to the context without
// changing the current state, e.g. after a related background fetch. It must
// never be used to force a state change.
func (m *Machine[C]) UpdateContext(fn func(c *C)) {
	if fn == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	fn(&m.ctx)
}

// Reset reinitializes the machine to the initial state with the given
// context, re-running the initial state's OnEnter hook. Used to reuse one
// machine for a fresh document. A reset is rejected mid-transition.
func (m *Machine[C]) Reset(c C) {
	m.mu.Lock()
	if m.firing {
		m.mu.Unlock()
		m.log.Warn("reset ignored while a transition is in flight", slog.String("workflow", m.cfg.ID))
		return
	}
	m.value = m.cfg.Initial
	m.ctx = c
	m.mu.Unlock()

	m.enter(context.Background(), m.cfg.Initial)
}

// enter runs the OnEnter hook of the named state. The state change has
// already happened, so a failure is logged rather than propagated.
func (m *Machine[C]) enter(ctx context.Context, state string) {
	hook := m.cfg.States[state].OnEnter
	if hook == nil {
		return
	}
	if err := hook(ctx, &m.ctx); err != nil {
		m.log.Warn("state entry hook failed",
			slog.String("workflow", m.cfg.ID),
			slog.String("state", state),
			slog.Any("error", err),
		)
	}
}

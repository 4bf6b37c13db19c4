package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/satriyop/enter365-workflow/pkg/audit"
	"github.com/satriyop/enter365-workflow/pkg/events"
	"github.com/satriyop/enter365-workflow/pkg/logger"
)

// Mutator performs the remote state change for one workflow action. It is the
// external network collaborator: the controller never changes document status
// locally, it asks the Mutator and trusts the returned record.
type Mutator interface {
	Mutate(ctx context.Context, req MutationRequest) (*Document, error)
}

// MutatorFunc adapts a function to the Mutator interface.
type MutatorFunc func(ctx context.Context, req MutationRequest) (*Document, error)

func (f MutatorFunc) Mutate(ctx context.Context, req MutationRequest) (*Document, error) {
	return f(ctx, req)
}

// MutationRequest carries the document id and the action payload to a Mutator.
type MutationRequest struct {
	ID      int64
	Payload any
}

// phase is the confirmation-gate state. Modeling the gate as a single enum
// keeps illegal combinations (a pending action without an open confirmation,
// two concurrent executions) unrepresentable.
type phase int

const (
	phaseIdle phase = iota
	phaseAwaitingConfirmation
	phaseExecuting
)

// Controller exposes the UI-ready view of one document's workflow: the
// currently legal actions, a confirmation-gated execution path, and status
// change reporting. Safe for use from a single UI event loop; internal state
// is mutex-guarded so observers may read from other goroutines.
type Controller struct {
	cfg      Config
	doc      func() *Document
	mutators map[string]Mutator
	bus      *events.Bus
	trail    *audit.Trail
	log      *slog.Logger

	mu             sync.Mutex
	phase          phase
	pendingAction  string
	pendingPayload any
	executing      string
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithControllerLogger sets the logger for the controller.
func WithControllerLogger(l *slog.Logger) ControllerOption {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithBus attaches the event bus successful status changes are reported to.
func WithBus(bus *events.Bus) ControllerOption {
	return func(c *Controller) { c.bus = bus }
}

// WithTrail attaches an audit trail recording every execution outcome.
func WithTrail(trail *audit.Trail) ControllerOption {
	return func(c *Controller) { c.trail = trail }
}

// NewController binds a live document getter and a workflow action table to a
// registry of mutators keyed by action name. The getter is re-evaluated on
// every derivation so a background refetch is picked up immediately.
func NewController(cfg Config, doc func() *Document, mutators map[string]Mutator, opts ...ControllerOption) (*Controller, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}

	c := &Controller{
		cfg:      cfg,
		doc:      doc,
		mutators: mutators,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// AvailableActions returns the authored actions legal from the document's
// current status, in authored order. Empty when the document is absent.
func (c *Controller) AvailableActions() []Action {
	doc := c.doc()
	if doc == nil {
		return nil
	}

	var out []Action
	for _, a := range c.cfg.Actions {
		if slices.Contains(a.AllowedFrom, doc.Status) {
			out = append(out, a)
		}
	}
	return out
}

// CanExecute reports whether the named action is legal from the document's
// current status.
func (c *Controller) CanExecute(name string) bool {
	doc := c.doc()
	if doc == nil {
		return false
	}
	a, ok := c.action(name)
	return ok && slices.Contains(a.AllowedFrom, doc.Status)
}

// GetAction looks up an action definition by name regardless of current
// legality, for rendering labels on disabled buttons.
func (c *Controller) GetAction(name string) (Action, bool) {
	return c.action(name)
}

func (c *Controller) action(name string) (Action, bool) {
	for _, a := range c.cfg.Actions {
		if a.Name == name {
			return a, true
		}
	}
	return Action{}, false
}

// Execute runs the named action with the given payload. Actions requiring
// confirmation are parked until Confirm or Cancel; everything else executes
// immediately. An absent document or an action that is not currently legal
// makes this a logged no-op.
func (c *Controller) Execute(ctx context.Context, name string, payload any) error {
	doc := c.doc()
	if doc == nil {
		c.log.WarnContext(ctx, "workflow action ignored: no document",
			logger.DocumentType(c.cfg.DocumentType),
			logger.WorkflowAction(name),
		)
		return nil
	}

	action, ok := c.action(name)
	if !ok || !slices.Contains(action.AllowedFrom, doc.Status) {
		c.log.WarnContext(ctx, "workflow action ignored: not allowed from current status",
			logger.DocumentType(c.cfg.DocumentType),
			logger.DocumentID(doc.ID),
			logger.WorkflowAction(name),
			logger.Status(doc.Status),
		)
		return nil
	}

	if action.RequiresConfirmation {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.phase != phaseIdle {
			c.log.WarnContext(ctx, "workflow action ignored: controller is busy",
				logger.DocumentType(c.cfg.DocumentType),
				logger.WorkflowAction(name),
			)
			return nil
		}
		c.phase = phaseAwaitingConfirmation
		c.pendingAction = name
		c.pendingPayload = payload
		return nil
	}

	return c.run(ctx, action, payload)
}

// Confirm executes the action parked by Execute. Returns ErrNoPendingAction
// when nothing is awaiting confirmation.
func (c *Controller) Confirm(ctx context.Context) error {
	c.mu.Lock()
	if c.phase != phaseAwaitingConfirmation {
		c.mu.Unlock()
		return ErrNoPendingAction
	}
	name := c.pendingAction
	payload := c.pendingPayload
	c.phase = phaseIdle
	c.pendingAction = ""
	c.pendingPayload = nil
	c.mu.Unlock()

	action, ok := c.action(name)
	if !ok {
		// The table is static, so a vanished action is a defect.
		c.log.ErrorContext(ctx, "pending workflow action no longer defined",
			logger.DocumentType(c.cfg.DocumentType),
			logger.WorkflowAction(name),
		)
		return nil
	}
	return c.run(ctx, action, payload)
}

// Cancel discards the pending action without executing anything.
func (c *Controller) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase != phaseAwaitingConfirmation {
		return
	}
	c.phase = phaseIdle
	c.pendingAction = ""
	c.pendingPayload = nil
}

// AwaitingConfirmation reports whether an action is parked behind the
// confirmation gate.
func (c *Controller) AwaitingConfirmation() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase == phaseAwaitingConfirmation
}

// PendingAction returns the parked action name and payload, if any.
func (c *Controller) PendingAction() (string, any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase != phaseAwaitingConfirmation {
		return "", nil, false
	}
	return c.pendingAction, c.pendingPayload, true
}

// Processing reports whether a mutation is currently in flight.
func (c *Controller) Processing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase == phaseExecuting
}

// ProcessingAction returns the name of the action whose mutation is in
// flight, or an empty string.
func (c *Controller) ProcessingAction() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.executing
}

func (c *Controller) run(ctx context.Context, action Action, payload any) error {
	mut, ok := c.mutators[action.Name]
	if !ok {
		// Misconfigured workflow table: the action is legal per the status
		// table but nothing can execute it. Abort without throwing into
		// the UI event handler.
		c.log.ErrorContext(ctx, "no mutator registered for workflow action",
			logger.DocumentType(c.cfg.DocumentType),
			logger.WorkflowAction(action.Name),
		)
		return nil
	}

	c.mu.Lock()
	if c.phase == phaseExecuting {
		c.mu.Unlock()
		return ErrExecutionInFlight
	}
	c.phase = phaseExecuting
	c.executing = action.Name
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.phase = phaseIdle
		c.executing = ""
		c.mu.Unlock()
	}()

	doc := c.doc()
	if doc == nil {
		c.log.WarnContext(ctx, "workflow action aborted: document disappeared",
			logger.DocumentType(c.cfg.DocumentType),
			logger.WorkflowAction(action.Name),
		)
		return nil
	}
	oldStatus := doc.Status

	result, err := mut.Mutate(ctx, MutationRequest{ID: doc.ID, Payload: payload})
	if err != nil {
		c.log.ErrorContext(ctx, "workflow action failed",
			logger.DocumentType(c.cfg.DocumentType),
			logger.DocumentID(doc.ID),
			logger.WorkflowAction(action.Name),
			logger.Error(err),
		)
		c.record(audit.Entry{
			DocumentType: c.cfg.DocumentType,
			DocumentID:   doc.ID,
			Action:       action.Name,
			FromStatus:   oldStatus,
			Result:       audit.ResultFailure,
			Error:        err.Error(),
		})
		return fmt.Errorf("workflow: execute %s: %w", action.Name, err)
	}

	newStatus := oldStatus
	if result != nil {
		newStatus = result.Status
	}

	c.emit(ctx, events.StatusChange{
		DocumentType: c.cfg.DocumentType,
		DocumentID:   doc.ID,
		Action:       action.Name,
		From:         oldStatus,
		To:           newStatus,
	})
	c.record(audit.Entry{
		DocumentType: c.cfg.DocumentType,
		DocumentID:   doc.ID,
		Action:       action.Name,
		FromStatus:   oldStatus,
		ToStatus:     newStatus,
		Result:       audit.ResultSuccess,
	})

	c.log.InfoContext(ctx, "workflow action executed",
		logger.DocumentType(c.cfg.DocumentType),
		logger.DocumentID(doc.ID),
		logger.WorkflowAction(action.Name),
		logger.FromStatus(oldStatus),
		logger.ToStatus(newStatus),
	)
	return nil
}

func (c *Controller) emit(ctx context.Context, change events.StatusChange) {
	if c.bus == nil {
		return
	}
	if err := c.bus.Emit(ctx, events.EventStatusChanged, change); err != nil {
		c.log.WarnContext(ctx, "failed to emit status change event",
			logger.DocumentType(change.DocumentType),
			logger.DocumentID(change.DocumentID),
			logger.Error(err),
		)
	}
}

func (c *Controller) record(e audit.Entry) {
	if c.trail == nil {
		return
	}
	c.trail.Record(e)
}

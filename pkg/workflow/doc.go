// Package workflow defines the legal-status workflows for enter365 business
// documents - quotations, invoices, and purchase orders - and the controller
// that executes workflow actions against a remote document API.
//
// # Architecture
//
// The package has three layers:
//
//   - Configurations: per-document-type declarative graphs of states, events,
//     guards, and context-mutating actions, each producing an fsm.Config
//     consumed by the generic engine in pkg/fsm. Authored as data, validated
//     fail-fast by the machine factories.
//   - Action tables: UI-level workflow actions (label, icon, confirmation
//     requirement, allowed source statuses) per document type. These drive
//     what a page renders; they are filtered against the live document status
//     at derivation time and never persisted.
//   - Controller: binds one live document and one action table to a registry
//     of Mutators (external network collaborators). It computes the currently
//     legal actions, gates destructive actions behind an explicit
//     confirmation phase, executes the mutation, and reports the status
//     change on the event bus and the audit trail.
//
// The authoritative document state lives server-side: a machine built from a
// configuration here is a local re-derivation and validation layer over the
// fetched record, and the controller delegates the actual state change to the
// registered Mutator rather than to a local machine.
//
// # Usage
//
//	machine := workflow.NewInvoiceMachine(workflow.InvoiceContext{
//	    InvoiceID:   17,
//	    TotalAmount: 1_000_000,
//	})
//	res := machine.Transition(ctx, fsm.Event{
//	    Type: workflow.EventRecordPayment,
//	    Data: workflow.PaymentData{Amount: 300_000},
//	})
//	// res.State == workflow.StatusPartial, context PaidAmount == 300_000
//
// Driving the remote document instead:
//
//	ctrl := workflow.NewController(workflow.InvoiceWorkflow(), docFn, mutators,
//	    workflow.WithBus(bus),
//	    workflow.WithTrail(trail),
//	)
//	for _, a := range ctrl.AvailableActions() { /* render button */ }
//	err := ctrl.Execute(ctx, "record_payment", workflow.PaymentData{Amount: 300_000})
//
// # Confirmation gate
//
// Actions marked RequiresConfirmation do not run on Execute: the controller
// parks them in an awaiting-confirmation phase and the caller renders a
// confirmation dialog bound to AwaitingConfirmation and PendingAction, then
// calls Confirm or Cancel. The gate is a three-phase machine
// (idle, awaiting confirmation, executing), so a dangling pending action
// without an open confirmation cannot be represented.
//
// # Error handling
//
// Guard rejections inside the machines are Result values with human-readable
// messages. At the controller level, an action that is not currently legal or
// a document that is absent makes Execute a logged no-op; a mutation failure
// is logged and returned to the caller, which owns user-facing presentation.
// A registered action with no Mutator is a configuration defect: logged at
// error level and aborted without propagating into the UI event handler.
package workflow

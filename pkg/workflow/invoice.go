package workflow

import (
	"context"
	"time"

	"github.com/satriyop/enter365-workflow/pkg/fsm"
)

// InvoiceContext is the extended state carried by an invoice machine.
type InvoiceContext struct {
	InvoiceID   int64
	TotalAmount int64
	PaidAmount  int64

	// DueDate drives the overdue guard; nil means the invoice never falls
	// overdue on its own.
	DueDate *time.Time
}

// PaymentTargetState resolves where an invoice lands after a payment:
// "paid" once payments reach or exceed the total (overpayment included),
// "partial" otherwise.
func PaymentTargetState(paidAmount, totalAmount int64) string {
	if paidAmount >= totalAmount {
		return StatusPaid
	}
	return StatusPartial
}

func recordPayment(_ context.Context, c *InvoiceContext, e fsm.Event) error {
	if d, ok := e.Data.(PaymentData); ok {
		c.PaidAmount += d.Amount
	}
	return nil
}

// paymentTransition accumulates the payment and routes to paid or partial
// based on the post-payment balance. The routing lives in the transition's
// branches so the caller never has to issue a follow-up event.
func paymentTransition() fsm.Transition[InvoiceContext] {
	return fsm.Transition[InvoiceContext]{
		Target:  StatusPartial,
		Actions: []fsm.Action[InvoiceContext]{recordPayment},
		Branches: []fsm.Branch[InvoiceContext]{
			{
				Target: StatusPaid,
				Guard: func(c *InvoiceContext, _ fsm.Event) bool {
					return c.PaidAmount >= c.TotalAmount
				},
			},
		},
	}
}

// InvoiceMachineConfig builds the invoice workflow graph:
//
//	draft -> sent -> paid | partial | overdue | void
//
// Payments accumulate from sent, partial, and overdue; the invoice closes as
// paid the moment cumulative payments cover the total.
func InvoiceMachineConfig(clock func() time.Time) fsm.Config[InvoiceContext] {
	overdueGuard := func(c *InvoiceContext, _ fsm.Event) bool {
		return c.DueDate != nil && clock().After(*c.DueDate)
	}

	return fsm.Config[InvoiceContext]{
		ID:      DocTypeInvoice,
		Initial: StatusDraft,
		States: map[string]fsm.State[InvoiceContext]{
			StatusDraft: {
				Label:       "Draft",
				Description: "Invoice is being prepared",
				On: map[string]fsm.Transition[InvoiceContext]{
					EventSend: {
						Target:       StatusSent,
						Guard:        func(c *InvoiceContext, _ fsm.Event) bool { return c.TotalAmount > 0 },
						GuardMessage: "Cannot send invoice with zero amount",
					},
					EventCancel: {Target: StatusCancelled},
				},
			},
			StatusSent: {
				Label:       "Sent",
				Description: "Invoice delivered, awaiting payment",
				On: map[string]fsm.Transition[InvoiceContext]{
					EventRecordPayment: paymentTransition(),
					EventMarkOverdue: {
						Target:       StatusOverdue,
						Guard:        overdueGuard,
						GuardMessage: "Invoice is not yet overdue",
					},
					EventVoid: {Target: StatusVoid},
				},
			},
			StatusPartial: {
				Label:       "Partially Paid",
				Description: "Payments received below the invoice total",
				On: map[string]fsm.Transition[InvoiceContext]{
					EventRecordPayment: paymentTransition(),
					EventMarkOverdue: {
						Target:       StatusOverdue,
						Guard:        overdueGuard,
						GuardMessage: "Invoice is not yet overdue",
					},
					EventVoid: {Target: StatusVoid},
				},
			},
			StatusOverdue: {
				Label:       "Overdue",
				Description: "Payment deadline passed",
				On: map[string]fsm.Transition[InvoiceContext]{
					EventRecordPayment: paymentTransition(),
					EventVoid:          {Target: StatusVoid},
				},
			},
			StatusPaid: {
				Label:       "Paid",
				Description: "Invoice settled in full",
				Final:       true,
			},
			StatusVoid: {
				Label:       "Void",
				Description: "Invoice voided",
				Final:       true,
			},
			StatusCancelled: {
				Label:       "Cancelled",
				Description: "Invoice cancelled before sending",
				Final:       true,
			},
		},
	}
}

// NewInvoiceMachine creates an invoice machine positioned at draft with the
// caller's context merged over the workflow defaults.
func NewInvoiceMachine(c InvoiceContext, opts ...MachineOption) *fsm.Machine[InvoiceContext] {
	o := newMachineOpts(opts)
	cfg := InvoiceMachineConfig(o.clock)
	cfg.Context = c
	return fsm.MustNew(cfg, o.fsmOpts...)
}

package workflow

import (
	"context"
	"time"

	"github.com/satriyop/enter365-workflow/pkg/fsm"
)

// QuotationContext is the extended state carried by a quotation machine.
type QuotationContext struct {
	QuotationID int64
	TotalAmount int64

	// ValidUntil is the offer deadline; nil means the quotation never expires.
	ValidUntil *time.Time

	RejectionReason    string
	ConvertedInvoiceID int64
}

// QuotationMachineConfig builds the quotation workflow graph:
//
//	draft -> submitted -> approved -> converted | expired
//	              \-> rejected -> draft (revise)
//
// with cancellation possible from every non-terminal state. The clock feeds
// the expiry guards on CONVERT and EXPIRE.
func QuotationMachineConfig(clock func() time.Time) fsm.Config[QuotationContext] {
	return fsm.Config[QuotationContext]{
		ID:      DocTypeQuotation,
		Initial: StatusDraft,
		States: map[string]fsm.State[QuotationContext]{
			StatusDraft: {
				Label:       "Draft",
				Description: "Quotation is being prepared",
				On: map[string]fsm.Transition[QuotationContext]{
					EventSubmit: {
						Target:       StatusSubmitted,
						Guard:        func(c *QuotationContext, _ fsm.Event) bool { return c.TotalAmount > 0 },
						GuardMessage: "Cannot submit quotation with zero amount",
					},
					EventCancel: {Target: StatusCancelled},
				},
			},
			StatusSubmitted: {
				Label:       "Submitted",
				Description: "Waiting for customer decision",
				On: map[string]fsm.Transition[QuotationContext]{
					EventApprove: {Target: StatusApproved},
					EventReject: {
						Target: StatusRejected,
						Actions: []fsm.Action[QuotationContext]{
							func(_ context.Context, c *QuotationContext, e fsm.Event) error {
								if d, ok := e.Data.(RejectData); ok {
									c.RejectionReason = d.Reason
								}
								return nil
							},
						},
					},
					EventCancel: {Target: StatusCancelled},
				},
			},
			StatusRejected: {
				Label:       "Rejected",
				Description: "Customer rejected the quotation",
				On: map[string]fsm.Transition[QuotationContext]{
					EventRevise: {
						Target: StatusDraft,
						Actions: []fsm.Action[QuotationContext]{
							func(_ context.Context, c *QuotationContext, _ fsm.Event) error {
								c.RejectionReason = ""
								return nil
							},
						},
					},
					EventCancel: {Target: StatusCancelled},
				},
			},
			StatusApproved: {
				Label:       "Approved",
				Description: "Customer approved the quotation",
				On: map[string]fsm.Transition[QuotationContext]{
					EventConvert: {
						Target: StatusConverted,
						Guard: func(c *QuotationContext, _ fsm.Event) bool {
							return c.ValidUntil == nil || !c.ValidUntil.Before(clock())
						},
						GuardMessage: "Cannot convert expired quotation",
						Actions: []fsm.Action[QuotationContext]{
							func(_ context.Context, c *QuotationContext, e fsm.Event) error {
								if d, ok := e.Data.(ConvertData); ok && d.InvoiceID != 0 {
									c.ConvertedInvoiceID = d.InvoiceID
								}
								return nil
							},
						},
					},
					EventExpire: {
						Target: StatusExpired,
						Guard: func(c *QuotationContext, _ fsm.Event) bool {
							return c.ValidUntil != nil && c.ValidUntil.Before(clock())
						},
						GuardMessage: "Quotation has not expired yet",
					},
					EventCancel: {Target: StatusCancelled},
				},
			},
			StatusConverted: {
				Label:       "Converted",
				Description: "Converted into an invoice",
				Final:       true,
			},
			StatusExpired: {
				Label:       "Expired",
				Description: "Offer deadline passed",
				Final:       true,
			},
			StatusCancelled: {
				Label:       "Cancelled",
				Description: "Quotation was cancelled",
				Final:       true,
			},
		},
	}
}

// NewQuotationMachine creates a quotation machine positioned at draft with
// the caller's context merged over the workflow defaults.
func NewQuotationMachine(c QuotationContext, opts ...MachineOption) *fsm.Machine[QuotationContext] {
	o := newMachineOpts(opts)
	cfg := QuotationMachineConfig(o.clock)
	cfg.Context = c
	return fsm.MustNew(cfg, o.fsmOpts...)
}

// QuotationExpired reports whether a quotation deadline has passed. A nil
// deadline never expires.
func QuotationExpired(validUntil *time.Time, now time.Time) bool {
	return validUntil != nil && validUntil.Before(now)
}

package workflow

import (
	"context"

	"github.com/satriyop/enter365-workflow/pkg/fsm"
)

// PurchaseOrderContext is the extended state carried by a purchase order
// machine.
type PurchaseOrderContext struct {
	PurchaseOrderID int64
	VendorID        int64
	TotalAmount     int64
	ReceivedAmount  int64
	RejectionReason string
}

func receiveAmount(e fsm.Event) int64 {
	if d, ok := e.Data.(ReceiveData); ok {
		return d.Amount
	}
	return 0
}

// PurchaseOrderMachineConfig builds the purchase order workflow graph:
//
//	draft -> submitted -> approved -> ordered -> partial_received -> received
//	               \-> rejected -> submitted (resubmit)
//
// Cancellation is allowed from every non-terminal state except once goods
// have been received.
func PurchaseOrderMachineConfig() fsm.Config[PurchaseOrderContext] {
	return fsm.Config[PurchaseOrderContext]{
		ID:      DocTypePurchaseOrder,
		Initial: StatusDraft,
		States: map[string]fsm.State[PurchaseOrderContext]{
			StatusDraft: {
				Label:       "Draft",
				Description: "Purchase order is being prepared",
				On: map[string]fsm.Transition[PurchaseOrderContext]{
					EventSubmit: {
						Target: StatusSubmitted,
						Guard: func(c *PurchaseOrderContext, _ fsm.Event) bool {
							return c.TotalAmount > 0 && c.VendorID > 0
						},
						GuardMessage: "Cannot submit purchase order without vendor and amount",
					},
					EventCancel: {Target: StatusCancelled},
				},
			},
			StatusSubmitted: {
				Label:       "Submitted",
				Description: "Waiting for internal approval",
				On: map[string]fsm.Transition[PurchaseOrderContext]{
					EventApprove: {Target: StatusApproved},
					EventReject: {
						Target: StatusRejected,
						Actions: []fsm.Action[PurchaseOrderContext]{
							func(_ context.Context, c *PurchaseOrderContext, e fsm.Event) error {
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
				Description: "Approval was denied",
				On: map[string]fsm.Transition[PurchaseOrderContext]{
					EventSubmit: {
						Target: StatusSubmitted,
						Actions: []fsm.Action[PurchaseOrderContext]{
							func(_ context.Context, c *PurchaseOrderContext, _ fsm.Event) error {
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
				Description: "Approved, ready to send to vendor",
				On: map[string]fsm.Transition[PurchaseOrderContext]{
					EventSendToVendor: {Target: StatusOrdered},
					EventCancel:       {Target: StatusCancelled},
				},
			},
			StatusOrdered: {
				Label:       "Ordered",
				Description: "Sent to vendor, awaiting goods",
				On: map[string]fsm.Transition[PurchaseOrderContext]{
					EventReceivePartial: {
						Target: StatusPartialReceived,
						Actions: []fsm.Action[PurchaseOrderContext]{
							func(_ context.Context, c *PurchaseOrderContext, e fsm.Event) error {
								c.ReceivedAmount += receiveAmount(e)
								return nil
							},
						},
					},
					EventReceiveFull: {
						Target: StatusReceived,
						Actions: []fsm.Action[PurchaseOrderContext]{
							func(_ context.Context, c *PurchaseOrderContext, _ fsm.Event) error {
								c.ReceivedAmount = c.TotalAmount
								return nil
							},
						},
					},
					EventCancel: {
						Target: StatusCancelled,
						Guard: func(c *PurchaseOrderContext, _ fsm.Event) bool {
							return c.ReceivedAmount == 0
						},
						GuardMessage: "Cannot cancel after goods received",
					},
				},
			},
			StatusPartialReceived: {
				Label:       "Partially Received",
				Description: "Some goods received, more outstanding",
				On: map[string]fsm.Transition[PurchaseOrderContext]{
					EventReceivePartial: {
						Target: StatusPartialReceived,
						Guard: func(c *PurchaseOrderContext, e fsm.Event) bool {
							return c.ReceivedAmount+receiveAmount(e) < c.TotalAmount
						},
						GuardMessage: "Partial receipt would cover the order; use full receipt",
						Actions: []fsm.Action[PurchaseOrderContext]{
							func(_ context.Context, c *PurchaseOrderContext, e fsm.Event) error {
								c.ReceivedAmount += receiveAmount(e)
								return nil
							},
						},
					},
					EventReceiveFull: {
						Target: StatusReceived,
						Actions: []fsm.Action[PurchaseOrderContext]{
							func(_ context.Context, c *PurchaseOrderContext, _ fsm.Event) error {
								c.ReceivedAmount = c.TotalAmount
								return nil
							},
						},
					},
				},
			},
			StatusReceived: {
				Label:       "Received",
				Description: "All goods received",
				Final:       true,
			},
			StatusCancelled: {
				Label:       "Cancelled",
				Description: "Purchase order cancelled",
				Final:       true,
			},
		},
	}
}

// NewPurchaseOrderMachine creates a purchase order machine positioned at
// draft with the caller's context merged over the workflow defaults.
func NewPurchaseOrderMachine(c PurchaseOrderContext, opts ...MachineOption) *fsm.Machine[PurchaseOrderContext] {
	o := newMachineOpts(opts)
	cfg := PurchaseOrderMachineConfig()
	cfg.Context = c
	return fsm.MustNew(cfg, o.fsmOpts...)
}

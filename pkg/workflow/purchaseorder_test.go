package workflow_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satriyop/enter365-workflow/pkg/fsm"
	"github.com/satriyop/enter365-workflow/pkg/workflow"
)

func orderedPO(t *testing.T, c workflow.PurchaseOrderContext) *fsm.Machine[workflow.PurchaseOrderContext] {
	t.Helper()
	ctx := context.Background()
	m := workflow.NewPurchaseOrderMachine(c)
	require.True(t, m.Transition(ctx, fsm.Event{Type: workflow.EventSubmit}).OK)
	require.True(t, m.Transition(ctx, fsm.Event{Type: workflow.EventApprove}).OK)
	require.True(t, m.Transition(ctx, fsm.Event{Type: workflow.EventSendToVendor}).OK)
	return m
}

func TestPurchaseOrderSubmitGuard(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("requires vendor and amount", func(t *testing.T) {
		t.Parallel()

		m := workflow.NewPurchaseOrderMachine(workflow.PurchaseOrderContext{TotalAmount: 100_000})
		res := m.Transition(ctx, fsm.Event{Type: workflow.EventSubmit})
		require.False(t, res.OK)
		assert.Equal(t, workflow.StatusDraft, m.Value())

		m = workflow.NewPurchaseOrderMachine(workflow.PurchaseOrderContext{VendorID: 5})
		res = m.Transition(ctx, fsm.Event{Type: workflow.EventSubmit})
		require.False(t, res.OK)
	})

	t.Run("submits with both set", func(t *testing.T) {
		t.Parallel()

		m := workflow.NewPurchaseOrderMachine(workflow.PurchaseOrderContext{
			VendorID:    5,
			TotalAmount: 100_000,
		})
		require.True(t, m.Transition(ctx, fsm.Event{Type: workflow.EventSubmit}).OK)
		assert.Equal(t, workflow.StatusSubmitted, m.Value())
	})
}

func TestPurchaseOrderRejectResubmit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	m := workflow.NewPurchaseOrderMachine(workflow.PurchaseOrderContext{
		VendorID:    5,
		TotalAmount: 100_000,
	})
	require.True(t, m.Transition(ctx, fsm.Event{Type: workflow.EventSubmit}).OK)

	res := m.Transition(ctx, fsm.Event{
		Type: workflow.EventReject,
		Data: workflow.RejectData{Reason: "Wrong vendor"},
	})
	require.True(t, res.OK)
	assert.Equal(t, workflow.StatusRejected, m.Value())
	assert.Equal(t, "Wrong vendor", m.Context().RejectionReason)

	require.True(t, m.Transition(ctx, fsm.Event{Type: workflow.EventSubmit}).OK)
	assert.Equal(t, workflow.StatusSubmitted, m.Value())
	assert.Empty(t, m.Context().RejectionReason)
}

func TestPurchaseOrderReceiving(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("partial receipts accumulate", func(t *testing.T) {
		t.Parallel()

		m := orderedPO(t, workflow.PurchaseOrderContext{VendorID: 5, TotalAmount: 100})

		res := m.Transition(ctx, fsm.Event{
			Type: workflow.EventReceivePartial,
			Data: workflow.ReceiveData{Amount: 30},
		})
		require.True(t, res.OK)
		assert.Equal(t, workflow.StatusPartialReceived, m.Value())
		assert.Equal(t, int64(30), m.Context().ReceivedAmount)

		res = m.Transition(ctx, fsm.Event{
			Type: workflow.EventReceivePartial,
			Data: workflow.ReceiveData{Amount: 40},
		})
		require.True(t, res.OK)
		assert.Equal(t, workflow.StatusPartialReceived, m.Value())
		assert.Equal(t, int64(70), m.Context().ReceivedAmount)
	})

	t.Run("partial receipt may not cover the order", func(t *testing.T) {
		t.Parallel()

		m := orderedPO(t, workflow.PurchaseOrderContext{VendorID: 5, TotalAmount: 100})
		require.True(t, m.Transition(ctx, fsm.Event{
			Type: workflow.EventReceivePartial,
			Data: workflow.ReceiveData{Amount: 60},
		}).OK)

		res := m.Transition(ctx, fsm.Event{
			Type: workflow.EventReceivePartial,
			Data: workflow.ReceiveData{Amount: 40},
		})
		require.False(t, res.OK)
		assert.Equal(t, workflow.StatusPartialReceived, m.Value())
		assert.Equal(t, int64(60), m.Context().ReceivedAmount)

		res = m.Transition(ctx, fsm.Event{Type: workflow.EventReceiveFull})
		require.True(t, res.OK)
		assert.Equal(t, workflow.StatusReceived, m.Value())
		assert.Equal(t, int64(100), m.Context().ReceivedAmount)
		assert.True(t, m.Done())
	})

	t.Run("full receipt from ordered", func(t *testing.T) {
		t.Parallel()

		m := orderedPO(t, workflow.PurchaseOrderContext{VendorID: 5, TotalAmount: 100})
		res := m.Transition(ctx, fsm.Event{Type: workflow.EventReceiveFull})
		require.True(t, res.OK)
		assert.Equal(t, workflow.StatusReceived, m.Value())
		assert.Equal(t, int64(100), m.Context().ReceivedAmount)
	})
}

func TestPurchaseOrderCancelAfterReceipt(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("cancel allowed before any receipt", func(t *testing.T) {
		t.Parallel()

		m := orderedPO(t, workflow.PurchaseOrderContext{VendorID: 5, TotalAmount: 100})
		res := m.Transition(ctx, fsm.Event{Type: workflow.EventCancel})
		require.True(t, res.OK)
		assert.Equal(t, workflow.StatusCancelled, m.Value())
	})

	t.Run("cancel blocked once goods received", func(t *testing.T) {
		t.Parallel()

		m := orderedPO(t, workflow.PurchaseOrderContext{
			VendorID:       5,
			TotalAmount:    100,
			ReceivedAmount: 30,
		})

		require.False(t, m.CanTransition(workflow.EventCancel))
		res := m.Transition(ctx, fsm.Event{Type: workflow.EventCancel})
		require.False(t, res.OK)
		assert.Equal(t, "Cannot cancel after goods received", res.Err)
		assert.Equal(t, workflow.StatusOrdered, m.Value())
	})

	t.Run("no cancel path exists from partial_received", func(t *testing.T) {
		t.Parallel()

		m := orderedPO(t, workflow.PurchaseOrderContext{VendorID: 5, TotalAmount: 100})
		require.True(t, m.Transition(ctx, fsm.Event{
			Type: workflow.EventReceivePartial,
			Data: workflow.ReceiveData{Amount: 10},
		}).OK)

		assert.NotContains(t, m.AvailableTransitions(), workflow.EventCancel)
		res := m.Transition(ctx, fsm.Event{Type: workflow.EventCancel})
		require.False(t, res.OK)
		assert.Equal(t, workflow.StatusPartialReceived, m.Value())
	})
}

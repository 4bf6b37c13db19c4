package workflow_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satriyop/enter365-workflow/pkg/fsm"
	"github.com/satriyop/enter365-workflow/pkg/workflow"
)

var testNow = time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func TestQuotationSubmit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("zero amount is rejected", func(t *testing.T) {
		t.Parallel()

		m := workflow.NewQuotationMachine(workflow.QuotationContext{QuotationID: 1})

		res := m.Transition(ctx, fsm.Event{Type: workflow.EventSubmit})
		require.False(t, res.OK)
		assert.Equal(t, "Cannot submit quotation with zero amount", res.Err)
		assert.Equal(t, workflow.StatusDraft, m.Value())
	})

	t.Run("positive amount submits", func(t *testing.T) {
		t.Parallel()

		m := workflow.NewQuotationMachine(workflow.QuotationContext{
			QuotationID: 1,
			TotalAmount: 500_000,
		})

		res := m.Transition(ctx, fsm.Event{Type: workflow.EventSubmit})
		require.True(t, res.OK)
		assert.Equal(t, workflow.StatusSubmitted, m.Value())
	})
}

func TestQuotationConversion(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	approved := func(validUntil *time.Time) *fsm.Machine[workflow.QuotationContext] {
		m := workflow.NewQuotationMachine(workflow.QuotationContext{
			QuotationID: 2,
			TotalAmount: 500_000,
			ValidUntil:  validUntil,
		}, workflow.WithClock(fixedClock))
		require.True(t, m.Transition(ctx, fsm.Event{Type: workflow.EventSubmit}).OK)
		require.True(t, m.Transition(ctx, fsm.Event{Type: workflow.EventApprove}).OK)
		return m
	}

	t.Run("expired quotation cannot convert", func(t *testing.T) {
		t.Parallel()

		past := testNow.Add(-24 * time.Hour)
		m := approved(&past)

		res := m.Transition(ctx, fsm.Event{Type: workflow.EventConvert})
		require.False(t, res.OK)
		assert.Equal(t, "Cannot convert expired quotation", res.Err)
		assert.Equal(t, workflow.StatusApproved, m.Value())
	})

	t.Run("no deadline converts and stores invoice id", func(t *testing.T) {
		t.Parallel()

		m := approved(nil)

		res := m.Transition(ctx, fsm.Event{
			Type: workflow.EventConvert,
			Data: workflow.ConvertData{InvoiceID: 42},
		})
		require.True(t, res.OK)
		assert.Equal(t, workflow.StatusConverted, m.Value())
		assert.True(t, m.Done())
		assert.Equal(t, int64(42), m.Context().ConvertedInvoiceID)
	})

	t.Run("future deadline converts", func(t *testing.T) {
		t.Parallel()

		future := testNow.Add(24 * time.Hour)
		m := approved(&future)

		require.True(t, m.Transition(ctx, fsm.Event{Type: workflow.EventConvert}).OK)
		assert.Equal(t, workflow.StatusConverted, m.Value())
	})

	t.Run("expire requires a past deadline", func(t *testing.T) {
		t.Parallel()

		future := testNow.Add(24 * time.Hour)
		m := approved(&future)

		res := m.Transition(ctx, fsm.Event{Type: workflow.EventExpire})
		require.False(t, res.OK)
		assert.Equal(t, "Quotation has not expired yet", res.Err)

		past := testNow.Add(-time.Minute)
		m = approved(&past)
		res = m.Transition(ctx, fsm.Event{Type: workflow.EventExpire})
		require.True(t, res.OK)
		assert.Equal(t, workflow.StatusExpired, m.Value())
		assert.True(t, m.Done())
	})
}

func TestQuotationRejectReviseCycle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	m := workflow.NewQuotationMachine(workflow.QuotationContext{
		QuotationID: 3,
		TotalAmount: 750_000,
	})

	require.True(t, m.Transition(ctx, fsm.Event{Type: workflow.EventSubmit}).OK)

	res := m.Transition(ctx, fsm.Event{
		Type: workflow.EventReject,
		Data: workflow.RejectData{Reason: "Fix pricing"},
	})
	require.True(t, res.OK)
	assert.Equal(t, workflow.StatusRejected, m.Value())
	assert.Equal(t, "Fix pricing", m.Context().RejectionReason)

	require.True(t, m.Transition(ctx, fsm.Event{Type: workflow.EventRevise}).OK)
	assert.Equal(t, workflow.StatusDraft, m.Value())
	assert.Empty(t, m.Context().RejectionReason)

	require.True(t, m.Transition(ctx, fsm.Event{Type: workflow.EventSubmit}).OK)
	assert.Equal(t, workflow.StatusSubmitted, m.Value())
}

func TestQuotationCancelIsTerminal(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	m := workflow.NewQuotationMachine(workflow.QuotationContext{TotalAmount: 100_000})
	require.True(t, m.Transition(ctx, fsm.Event{Type: workflow.EventCancel}).OK)
	require.True(t, m.Done())

	assert.Empty(t, m.AvailableTransitions())
	res := m.Transition(ctx, fsm.Event{Type: workflow.EventSubmit})
	require.False(t, res.OK)
	assert.Equal(t, "Machine is in a final state", res.Err)
}

func TestQuotationExpiredHelper(t *testing.T) {
	t.Parallel()

	past := testNow.Add(-time.Hour)
	future := testNow.Add(time.Hour)

	assert.False(t, workflow.QuotationExpired(nil, testNow))
	assert.False(t, workflow.QuotationExpired(&future, testNow))
	assert.True(t, workflow.QuotationExpired(&past, testNow))
}

package audit_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satriyop/enter365-workflow/pkg/audit"
)

func TestTrailRecord(t *testing.T) {
	t.Parallel()

	t.Run("fills id and timestamp", func(t *testing.T) {
		t.Parallel()

		at := time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)
		trail := audit.NewTrail(audit.WithNow(func() time.Time { return at }))

		stored := trail.Record(audit.Entry{
			DocumentType: "invoice",
			DocumentID:   7,
			Action:       "send",
			FromStatus:   "draft",
			ToStatus:     "sent",
			Result:       audit.ResultSuccess,
		})

		assert.NotEqual(t, uuid.Nil, stored.ID)
		assert.Equal(t, at, stored.CreatedAt)
		assert.Equal(t, 1, trail.Len())
	})

	t.Run("preserves caller-set id and timestamp", func(t *testing.T) {
		t.Parallel()

		trail := audit.NewTrail()
		id := uuid.New()
		at := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

		stored := trail.Record(audit.Entry{ID: id, CreatedAt: at, Action: "void"})
		assert.Equal(t, id, stored.ID)
		assert.Equal(t, at, stored.CreatedAt)
	})
}

func TestTrailListOrdering(t *testing.T) {
	t.Parallel()

	trail := audit.NewTrail()
	trail.Record(audit.Entry{Action: "submit"})
	trail.Record(audit.Entry{Action: "approve"})
	trail.Record(audit.Entry{Action: "convert"})

	entries := trail.List(audit.Filter{})
	require.Len(t, entries, 3)
	assert.Equal(t, "convert", entries[0].Action)
	assert.Equal(t, "approve", entries[1].Action)
	assert.Equal(t, "submit", entries[2].Action)
}

func TestTrailFilter(t *testing.T) {
	t.Parallel()

	trail := audit.NewTrail()
	trail.Record(audit.Entry{DocumentType: "quotation", DocumentID: 1, Action: "submit", Result: audit.ResultSuccess})
	trail.Record(audit.Entry{DocumentType: "quotation", DocumentID: 2, Action: "submit", Result: audit.ResultFailure})
	trail.Record(audit.Entry{DocumentType: "invoice", DocumentID: 1, Action: "send", Result: audit.ResultSuccess})
	trail.Record(audit.Entry{DocumentType: "invoice", DocumentID: 1, Action: "record_payment", Result: audit.ResultSuccess})

	t.Run("by document type", func(t *testing.T) {
		t.Parallel()
		entries := trail.List(audit.Filter{DocumentType: "quotation"})
		require.Len(t, entries, 2)
		for _, e := range entries {
			assert.Equal(t, "quotation", e.DocumentType)
		}
	})

	t.Run("by document id", func(t *testing.T) {
		t.Parallel()
		entries := trail.List(audit.Filter{DocumentType: "invoice", DocumentID: 1})
		assert.Len(t, entries, 2)
	})

	t.Run("by action", func(t *testing.T) {
		t.Parallel()
		entries := trail.List(audit.Filter{Action: "record_payment"})
		require.Len(t, entries, 1)
		assert.Equal(t, "invoice", entries[0].DocumentType)
	})

	t.Run("by result", func(t *testing.T) {
		t.Parallel()
		entries := trail.List(audit.Filter{Result: audit.ResultFailure})
		require.Len(t, entries, 1)
		assert.Equal(t, int64(2), entries[0].DocumentID)
	})

	t.Run("limit caps newest first", func(t *testing.T) {
		t.Parallel()
		entries := trail.List(audit.Filter{Limit: 2})
		require.Len(t, entries, 2)
		assert.Equal(t, "record_payment", entries[0].Action)
		assert.Equal(t, "send", entries[1].Action)
	})

	t.Run("no match returns empty", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, trail.List(audit.Filter{DocumentType: "purchase_order"}))
	})
}

func TestTrailRetentionBound(t *testing.T) {
	t.Parallel()

	trail := audit.NewTrail(audit.WithMaxEntries(3))
	for i := range 5 {
		trail.Record(audit.Entry{Action: fmt.Sprintf("action-%d", i)})
	}

	assert.Equal(t, 3, trail.Len())

	entries := trail.List(audit.Filter{})
	require.Len(t, entries, 3)
	assert.Equal(t, "action-4", entries[0].Action)
	assert.Equal(t, "action-2", entries[2].Action)
}

func TestTrailConcurrentRecord(t *testing.T) {
	t.Parallel()

	trail := audit.NewTrail()
	done := make(chan struct{})
	for range 8 {
		go func() {
			defer func() { done <- struct{}{} }()
			for range 25 {
				trail.Record(audit.Entry{Action: "submit"})
			}
		}()
	}
	for range 8 {
		<-done
	}

	assert.Equal(t, 200, trail.Len())
}

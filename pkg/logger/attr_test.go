package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/satriyop/enter365-workflow/pkg/logger"
)

func TestErrorAttr(t *testing.T) {
	t.Parallel()

	t.Run("nil error yields empty attr", func(t *testing.T) {
		t.Parallel()
		attr := logger.Error(nil)
		assert.Empty(t, attr.Key)
	})

	t.Run("error recorded under error key", func(t *testing.T) {
		t.Parallel()
		err := errors.New("mutation failed")
		attr := logger.Error(err)
		assert.Equal(t, "error", attr.Key)
		assert.Equal(t, err, attr.Value.Any())
	})
}

func TestDomainAttrs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		attr slog.Attr
		key  string
		want slog.Value
	}{
		{"component", logger.Component("workflow"), "component", slog.StringValue("workflow")},
		{"workflow", logger.Workflow("invoice"), "workflow", slog.StringValue("invoice")},
		{"document type", logger.DocumentType("quotation"), "document_type", slog.StringValue("quotation")},
		{"document id", logger.DocumentID(42), "document_id", slog.Int64Value(42)},
		{"action", logger.WorkflowAction("record_payment"), "action", slog.StringValue("record_payment")},
		{"status", logger.Status("sent"), "status", slog.StringValue("sent")},
		{"from status", logger.FromStatus("draft"), "from_status", slog.StringValue("draft")},
		{"to status", logger.ToStatus("sent"), "to_status", slog.StringValue("sent")},
		{"event", logger.EventName("document.status.changed"), "event", slog.StringValue("document.status.changed")},
		{"state", logger.State("approved"), "state", slog.StringValue("approved")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.key, tt.attr.Key)
			assert.True(t, tt.attr.Value.Equal(tt.want))
		})
	}
}

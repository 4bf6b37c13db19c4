package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Workflow records the workflow identifier under the key "workflow".
func Workflow(id string) slog.Attr {
	return slog.String("workflow", id)
}

// DocumentType records the document type under the key "document_type".
func DocumentType(t string) slog.Attr {
	return slog.String("document_type", t)
}

// DocumentID records the document identifier under the key "document_id".
func DocumentID(id int64) slog.Attr {
	return slog.Int64("document_id", id)
}

// WorkflowAction records the action name under the key "action".
func WorkflowAction(name string) slog.Attr {
	return slog.String("action", name)
}

// Status records a document status under the key "status".
func Status(s string) slog.Attr {
	return slog.String("status", s)
}

// FromStatus records the pre-transition status under the key "from_status".
func FromStatus(s string) slog.Attr {
	return slog.String("from_status", s)
}

// ToStatus records the post-transition status under the key "to_status".
func ToStatus(s string) slog.Attr {
	return slog.String("to_status", s)
}

// EventName records a bus event name under the key "event".
func EventName(name string) slog.Attr {
	return slog.String("event", name)
}

// State records a machine state name under the key "state".
func State(name string) slog.Attr {
	return slog.String("state", name)
}

package audit

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Result classifies an execution outcome.
type Result string

const (
	ResultSuccess Result = "success"
	ResultFailure Result = "failure"
)

// Entry is a single recorded workflow execution.
type Entry struct {
	ID           uuid.UUID      `json:"id"`
	DocumentType string         `json:"document_type"`
	DocumentID   int64          `json:"document_id"`
	Action       string         `json:"action"`
	FromStatus   string         `json:"from_status"`
	ToStatus     string         `json:"to_status,omitempty"`
	Result       Result         `json:"result"`
	Error        string         `json:"error,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

// Filter narrows List results. Zero-valued fields match everything.
type Filter struct {
	DocumentType string
	DocumentID   int64
	Action       string
	Result       Result

	// Limit caps the number of returned entries; 0 means no cap.
	Limit int
}

func (f Filter) matches(e Entry) bool {
	if f.DocumentType != "" && e.DocumentType != f.DocumentType {
		return false
	}
	if f.DocumentID != 0 && e.DocumentID != f.DocumentID {
		return false
	}
	if f.Action != "" && e.Action != f.Action {
		return false
	}
	if f.Result != "" && e.Result != f.Result {
		return false
	}
	return true
}

const defaultMaxEntries = 1000

// Trail is a bounded, concurrency-safe, in-memory record of workflow
// executions. Oldest entries are evicted once the bound is reached.
type Trail struct {
	mu      sync.RWMutex
	entries []Entry
	max     int
	now     func() time.Time
}

// TrailOption configures a Trail.
type TrailOption func(*Trail)

// WithMaxEntries sets the retention bound. A minimum of 1 is enforced.
func WithMaxEntries(n int) TrailOption {
	return func(t *Trail) { t.max = max(n, 1) }
}

// WithNow overrides the entry timestamp source, for tests.
func WithNow(fn func() time.Time) TrailOption {
	return func(t *Trail) {
		if fn != nil {
			t.now = fn
		}
	}
}

// NewTrail creates an empty trail.
func NewTrail(opts ...TrailOption) *Trail {
	t := &Trail{max: defaultMaxEntries, now: time.Now}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Record stores the entry, filling ID and CreatedAt when unset, and returns
// the stored value.
func (t *Trail) Record(e Entry) Entry {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = t.now()
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.entries = append(t.entries, e)
	if len(t.entries) > t.max {
		t.entries = t.entries[len(t.entries)-t.max:]
	}
	return e
}

// List returns matching entries, newest first.
func (t *Trail) List(f Filter) []Entry {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var out []Entry
	for _, e := range slices.Backward(t.entries) {
		if !f.matches(e) {
			continue
		}
		out = append(out, e)
		if f.Limit > 0 && len(out) == f.Limit {
			break
		}
	}
	return out
}

// Len returns the number of retained entries.
func (t *Trail) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

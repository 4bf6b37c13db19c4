package workflow

import (
	"log/slog"
	"time"

	"github.com/satriyop/enter365-workflow/pkg/fsm"
)

// MachineOption configures the document machine factories.
type MachineOption func(*machineOpts)

type machineOpts struct {
	clock   func() time.Time
	fsmOpts []fsm.Option
}

func newMachineOpts(opts []MachineOption) *machineOpts {
	o := &machineOpts{clock: time.Now}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithClock overrides the clock used by time-dependent guards (quotation
// expiry, invoice overdue). Tests pin this to a fixed instant.
func WithClock(fn func() time.Time) MachineOption {
	return func(o *machineOpts) {
		if fn != nil {
			o.clock = fn
		}
	}
}

// WithMachineLogger sets the logger passed through to the underlying machine.
func WithMachineLogger(l *slog.Logger) MachineOption {
	return func(o *machineOpts) {
		if l != nil {
			o.fsmOpts = append(o.fsmOpts, fsm.WithLogger(l))
		}
	}
}

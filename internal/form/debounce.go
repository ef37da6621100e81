package form

import (
	"context"
	"sync"
	"time"
)

// CheckFunc probes whether a value already exists in the table.
type CheckFunc func(ctx context.Context, value string) (bool, error)

// Result is delivered when a scheduled probe finishes. It carries the probed
// value so consumers can discard results for values the user has since moved
// past.
type Result struct {
	Field  string
	Value  string
	Exists bool
	Err    error
}

type pendingCheck struct {
	timer  *time.Timer
	cancel context.CancelFunc
}

// Debouncer coalesces rapid input changes per field. Each new value cancels
// the field's pending probe and schedules a new one after the fixed delay;
// a probe already in flight when a newer one is scheduled has its result
// discarded, so a slow stale response can never overwrite a newer one.
type Debouncer struct {
	delay   time.Duration
	deliver func(Result)

	mu      sync.Mutex
	pending map[string]*pendingCheck
	gen     map[string]uint64
}

// NewDebouncer creates a Debouncer that delivers probe results to the given
// callback. The callback runs on the probe's goroutine.
func NewDebouncer(delay time.Duration, deliver func(Result)) *Debouncer {
	return &Debouncer{
		delay:   delay,
		deliver: deliver,
		pending: make(map[string]*pendingCheck),
		gen:     make(map[string]uint64),
	}
}

// Trigger schedules a probe of the field's current value after the delay,
// cancelling any probe previously scheduled or in flight for that field.
func (d *Debouncer) Trigger(field, value string, check CheckFunc) {
	d.mu.Lock()
	d.cancelLocked(field)
	d.gen[field]++
	gen := d.gen[field]

	ctx, cancel := context.WithCancel(context.Background())
	timer := time.AfterFunc(d.delay, func() {
		exists, err := check(ctx, value)

		d.mu.Lock()
		stale := d.gen[field] != gen
		if !stale {
			delete(d.pending, field)
		}
		d.mu.Unlock()

		if stale || ctx.Err() != nil {
			return
		}
		d.deliver(Result{Field: field, Value: value, Exists: exists, Err: err})
	})

	d.pending[field] = &pendingCheck{timer: timer, cancel: cancel}
	d.mu.Unlock()
}

// Cancel drops any scheduled or in-flight probe for the field, for example
// when the field is cleared.
func (d *Debouncer) Cancel(field string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancelLocked(field)
	d.gen[field]++
}

func (d *Debouncer) cancelLocked(field string) {
	if p, ok := d.pending[field]; ok {
		p.timer.Stop()
		p.cancel()
		delete(d.pending, field)
	}
}

// Package debounce coalesces bursts of change notifications.
package debounce

import (
	"sync"

	"golang.org/x/time/rate"

	"github.com/wandb/leetplot/internal/observability"
)

// Debouncer runs a callback at most at a fixed rate after being marked
// as pending.
//
// It is safe for concurrent use.
type Debouncer struct {
	mu      sync.Mutex
	limiter *rate.Limiter
	pending bool
	stopped bool
	logger  *observability.CoreLogger
}

func New(
	eventRate rate.Limit,
	burst int,
	logger *observability.CoreLogger,
) *Debouncer {
	if logger == nil {
		logger = observability.NewNoOpLogger()
	}
	return &Debouncer{
		limiter: rate.NewLimiter(eventRate, burst),
		logger:  logger,
	}
}

// Mark records that there is work to flush.
func (d *Debouncer) Mark() {
	if d == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pending = true
}

// Pending reports whether work has been marked and not yet flushed.
func (d *Debouncer) Pending() bool {
	if d == nil {
		return false
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending && !d.stopped
}

// Debounce runs f if work is pending and the rate limit allows it.
//
// It reports whether f ran.
func (d *Debouncer) Debounce(f func()) bool {
	if d == nil {
		return false
	}

	d.mu.Lock()
	if d.stopped || !d.pending || !d.limiter.Allow() {
		d.mu.Unlock()
		return false
	}
	d.pending = false
	d.mu.Unlock()

	f()
	return true
}

// Flush runs f if work is pending, ignoring the rate limit.
func (d *Debouncer) Flush(f func()) bool {
	if d == nil {
		return false
	}

	d.mu.Lock()
	if d.stopped || !d.pending {
		d.mu.Unlock()
		return false
	}
	d.pending = false
	d.mu.Unlock()

	d.logger.Debug("debounce: flushing")
	f()
	return true
}

// Stop turns all later calls into no-ops.
func (d *Debouncer) Stop() {
	if d == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
}

package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/time/rate"

	"github.com/wandb/leetplot/internal/debounce"
	"github.com/wandb/leetplot/internal/observability"
	"github.com/wandb/leetplot/internal/watcher"
)

// reloadInterval is the minimum time between two reloads of the dataset.
const reloadInterval = 250 * time.Millisecond

// Reloader turns file changes into FileChangedMsg for the program.
//
// Bursts of writes are coalesced: a change is delivered at most once per
// reloadInterval, and a change arriving inside the interval is delivered
// when it ends.
type Reloader struct {
	watcher   watcher.Watcher
	debouncer *debounce.Debouncer
	msgs      chan tea.Msg
	started   bool
	logger    *observability.CoreLogger
}

func NewReloader(w watcher.Watcher, logger *observability.CoreLogger) *Reloader {
	return &Reloader{
		watcher:   w,
		debouncer: debounce.New(rate.Every(reloadInterval), 1, logger),
		msgs:      make(chan tea.Msg, 16),
		logger:    logger,
	}
}

// Start begins watching path.
func (r *Reloader) Start(path string) error {
	if r == nil || r.started {
		return nil
	}

	r.logger.Debug(fmt.Sprintf("reloader: watching %s", path))
	err := r.watcher.Watch(path, func() {
		r.debouncer.Mark()
		if !r.debouncer.Debounce(r.send) {
			r.sendTick()
		}
	})
	if err != nil {
		r.logger.CaptureError(fmt.Errorf("reloader: cannot watch: %v", err))
		return err
	}

	r.started = true
	return nil
}

func (r *Reloader) send() {
	select {
	case r.msgs <- FileChangedMsg{}:
	default:
		r.logger.CaptureWarn("reloader: channel full, dropping FileChangedMsg")
	}
}

func (r *Reloader) sendTick() {
	select {
	case r.msgs <- reloadTickMsg{}:
	default:
	}
}

// Flush delivers a change held back by the rate limit, if any.
func (r *Reloader) Flush() bool {
	if r == nil {
		return false
	}
	return r.debouncer.Flush(r.send)
}

// Pending reports whether a held back change is waiting for Flush.
func (r *Reloader) Pending() bool {
	return r != nil && r.debouncer.Pending()
}

// WaitForMsg returns a command that blocks until the next message.
func (r *Reloader) WaitForMsg() tea.Cmd {
	if r == nil {
		return nil
	}
	return func() tea.Msg {
		return <-r.msgs
	}
}

// Finish stops watching.
func (r *Reloader) Finish() {
	if r == nil || !r.started {
		return
	}
	r.debouncer.Stop()
	r.watcher.Finish()
	r.started = false
}

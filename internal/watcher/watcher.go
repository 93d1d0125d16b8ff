// Package watcher reports changes to dataset files.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	poller "github.com/radovskyb/watcher"
	"golang.org/x/sync/errgroup"

	"github.com/wandb/leetplot/internal/observability"
	"github.com/wandb/leetplot/internal/observability/errs"
)

// DefaultPollingPeriod is used when Params.PollingPeriod is unset.
const DefaultPollingPeriod = 500 * time.Millisecond

// Watcher invokes callbacks when watched files change.
type Watcher interface {
	// Watch starts watching the file at path.
	//
	// onChange runs on the watcher's goroutine after the file is written
	// or recreated. Changes within one polling period are reported once.
	Watch(path string, onChange func()) error

	// Finish stops the watcher. No callbacks run after it returns.
	Finish()
}

type Params struct {
	Logger *observability.CoreLogger

	// PollingPeriod is how often files are checked for changes.
	PollingPeriod time.Duration
}

// New returns a Watcher that polls file modification times.
func New(params Params) Watcher {
	if params.Logger == nil {
		params.Logger = observability.NewNoOpLogger()
	}
	if params.PollingPeriod <= 0 {
		params.PollingPeriod = DefaultPollingPeriod
	}
	return &pollingWatcher{
		logger:   params.Logger,
		period:   params.PollingPeriod,
		handlers: make(map[string]func()),
	}
}

type pollingWatcher struct {
	mu       sync.Mutex
	logger   *observability.CoreLogger
	period   time.Duration
	delegate *poller.Watcher
	handlers map[string]func()
	finished bool
	done     sync.WaitGroup
}

func (w *pollingWatcher) Watch(path string, onChange func()) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.finished {
		return errs.Newf("watcher: Watch called after Finish")
	}

	if w.delegate == nil {
		if err := w.start(); err != nil {
			return err
		}
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return errs.Wrapf(err, "watcher: bad path %s", path)
	}
	if err := w.delegate.Add(abs); err != nil {
		return errs.Wrapf(err, "watcher: cannot watch %s", path)
	}
	w.handlers[abs] = onChange
	return nil
}

func (w *pollingWatcher) Finish() {
	w.mu.Lock()
	w.finished = true
	delegate := w.delegate
	w.mu.Unlock()

	if delegate != nil {
		delegate.Close()
	}
	w.done.Wait()
}

// start launches the polling loop and the event loop.
//
// It returns once polling has begun, or with the error that stopped it
// from starting. Close is a no-op on a poller that has not started.
func (w *pollingWatcher) start() error {
	w.delegate = poller.New()
	w.delegate.FilterOps(poller.Write, poller.Create)

	delegate := w.delegate
	grp, ctx := errgroup.WithContext(context.Background())
	w.done.Add(2)

	grp.Go(func() error {
		defer w.done.Done()
		w.dispatch(ctx, delegate)
		return nil
	})
	grp.Go(func() error {
		defer w.done.Done()
		return delegate.Start(w.period)
	})

	started := make(chan struct{})
	go func() {
		delegate.Wait()
		close(started)
	}()

	select {
	case <-started:
		return nil
	case <-ctx.Done():
		err := grp.Wait()
		w.delegate = nil
		return errs.Wrapf(err, "watcher: failed to start")
	}
}

func (w *pollingWatcher) dispatch(ctx context.Context, delegate *poller.Watcher) {
	for {
		select {
		case event := <-delegate.Event:
			if event.IsDir() {
				continue
			}
			w.notify(event.Path)

		case err := <-delegate.Error:
			w.logger.CaptureError(fmt.Errorf("watcher: poll failed: %v", err))

		case <-delegate.Closed:
			return

		case <-ctx.Done():
			return
		}
	}
}

func (w *pollingWatcher) notify(path string) {
	w.mu.Lock()
	handler := w.handlers[path]
	w.mu.Unlock()

	if handler != nil {
		handler()
	}
}

package observability

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	lru "github.com/hashicorp/golang-lru"
)

const (
	recentReportWindow = 5 * time.Minute
	defaultReportCache = 100
)

// ReporterParams configures a Reporter.
type ReporterParams struct {
	// DSN is the Sentry DSN. An empty DSN disables reporting.
	DSN string

	Disabled    bool
	Release     string
	Environment string

	// CacheSize bounds the number of remembered recent reports.
	CacheSize int

	// Transport overrides the Sentry transport; used in tests.
	Transport sentry.Transport
}

// Reporter sends errors and messages to Sentry.
//
// Identical reports within a few minutes of each other are sent once.
type Reporter struct {
	hub    *sentry.Hub
	recent *lru.Cache
}

// NewReporter creates a Reporter, or returns nil if reporting is off or the
// client cannot be created.
func NewReporter(params ReporterParams) *Reporter {
	if params.Disabled || params.DSN == "" {
		slog.Debug("observability: error reporting is disabled")
		return nil
	}

	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn:              params.DSN,
		AttachStacktrace: true,
		Release:          params.Release,
		Environment:      params.Environment,
		Transport:        params.Transport,
	})
	if err != nil {
		slog.Error("observability: failed to create sentry client", "err", err)
		return nil
	}

	size := params.CacheSize
	if size <= 0 {
		size = defaultReportCache
	}
	recent, err := lru.New(size)
	if err != nil {
		slog.Error("observability: failed to create report cache", "err", err)
		return nil
	}

	return &Reporter{
		hub:    sentry.NewHub(client, sentry.NewScope()),
		recent: recent,
	}
}

// shouldReport returns false if the same text was reported recently.
func (r *Reporter) shouldReport(text string) bool {
	sum := sha1.Sum([]byte(text))
	key := hex.EncodeToString(sum[:])

	now := time.Now()
	if last, ok := r.recent.Get(key); ok {
		if now.Sub(last.(time.Time)) < recentReportWindow {
			return false
		}
	}
	r.recent.Add(key, now)
	return true
}

// CaptureException reports err with the given tags.
func (r *Reporter) CaptureException(err error, tags map[string]string) {
	if r == nil || !r.shouldReport(err.Error()) {
		return
	}

	r.hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTags(tags)
		r.hub.CaptureException(err)
	})
}

// CaptureMessage reports an informational message with the given tags.
func (r *Reporter) CaptureMessage(msg string, tags map[string]string) {
	if r == nil || !r.shouldReport(msg) {
		return
	}

	r.hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTags(tags)
		r.hub.CaptureMessage(msg)
	})
}

// Reraise reports a recovered panic value and panics again with it.
func (r *Reporter) Reraise(value any, tags map[string]string) {
	if value == nil {
		return
	}

	var err error
	if e, ok := value.(error); ok {
		err = e
	} else {
		err = errors.New(fmt.Sprint(value))
	}

	r.CaptureException(err, tags)
	r.Flush(2 * time.Second)
	panic(value)
}

// Flush waits up to timeout for queued reports to be sent.
func (r *Reporter) Flush(timeout time.Duration) bool {
	if r == nil {
		return true
	}
	return r.hub.Flush(timeout)
}

package observability

import (
	"fmt"
	"io"
	"log/slog"
	"maps"

	"github.com/wandb/leetplot/internal/observability/errs"
)

// Tags are string key-value pairs attached to every message of a logger and
// to every report it sends.
type Tags map[string]string

// NewTags builds Tags from slog.Attr values and key-value pairs. Incomplete
// pairs and other types are ignored.
func NewTags(args ...any) Tags {
	tags := Tags{}
	for len(args) > 0 {
		switch x := args[0].(type) {
		case slog.Attr:
			tags[x.Key] = x.Value.String()
			args = args[1:]
		case string:
			if len(args) < 2 {
				return tags
			}
			attr := slog.Any(x, args[1])
			tags[attr.Key] = attr.Value.String()
			args = args[2:]
		default:
			args = args[1:]
		}
	}
	return tags
}

// CoreLoggerParams configures a CoreLogger.
type CoreLoggerParams struct {
	Reporter *Reporter
	Tags     Tags
}

// CoreLogger is a structured logger that can also report to Sentry.
type CoreLogger struct {
	*slog.Logger
	baseTags Tags
	reporter *Reporter
}

func NewCoreLogger(logger *slog.Logger, params *CoreLoggerParams) *CoreLogger {
	if params == nil {
		params = &CoreLoggerParams{}
	}

	tags := Tags{}
	var args []any
	for key, value := range params.Tags {
		args = append(args, slog.String(key, value))
		tags[key] = value
	}

	return &CoreLogger{
		Logger:   logger.With(args...),
		baseTags: tags,
		reporter: params.Reporter,
	}
}

// tagsFor merges args with the logger's base tags; base tags win.
func (cl *CoreLogger) tagsFor(args ...any) Tags {
	tags := NewTags(args...)
	maps.Copy(tags, cl.baseTags)
	return tags
}

// With returns a derived logger that includes the given attributes.
func (cl *CoreLogger) With(args ...any) *CoreLogger {
	return &CoreLogger{
		Logger:   cl.Logger.With(args...),
		baseTags: cl.baseTags,
		reporter: cl.reporter,
	}
}

// CaptureError logs err and reports it unless it is marked to be skipped.
//
// Attributes stored on an errs.Error are added to the log record.
func (cl *CoreLogger) CaptureError(err error, args ...any) {
	for _, attr := range errs.Attrs(err) {
		args = append(args, attr)
	}
	cl.Error(err.Error(), args...)

	if cl.reporter != nil && !errs.SkipReport(err) {
		tags := cl.tagsFor(args...)
		maps.Copy(tags, errs.Tags(err))
		cl.reporter.CaptureException(err, tags)
	}
}

// CaptureWarn logs a warning and reports it.
func (cl *CoreLogger) CaptureWarn(msg string, args ...any) {
	cl.Warn(msg, args...)

	if cl.reporter != nil {
		cl.reporter.CaptureMessage(msg, cl.tagsFor(args...))
	}
}

// Reraise reports a panic in progress and re-panics. Use with defer.
func (cl *CoreLogger) Reraise(args ...any) {
	if value := recover(); value != nil {
		cl.Error(fmt.Sprintf("panic: %v", value), args...)
		if cl.reporter == nil {
			panic(value)
		}
		cl.reporter.Reraise(value, cl.tagsFor(args...))
	}
}

// Tags returns the base tags of the logger.
func (cl *CoreLogger) Tags() Tags { return cl.baseTags }

// NewNoOpLogger returns a logger that discards all messages.
//
// Used for testing.
func NewNoOpLogger() *CoreLogger {
	return NewCoreLogger(slog.New(slog.NewJSONHandler(io.Discard, nil)), nil)
}

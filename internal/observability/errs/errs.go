// Package errs defines the error type used across leetplot.
//
// `fmt.Errorf` is replaced by Newf, Wrapf and Bubblef:
//
//   - Newf constructs an error from a formatted message.
//   - Wrapf prefixes an underlying error's message and keeps its data,
//     without exposing it through errors.Unwrap (like the `%v` verb).
//   - Bubblef is like Wrapf but exposes the underlying error (like `%w`).
//
// Attr and SkipReportIf enrich an error and return it for chaining:
//
//	return errs.Wrapf(err, "dataset: cannot read %s", path).
//		Attr(slog.String("path", path)).
//		SkipReportIf(os.IsNotExist(err))
package errs

import (
	"fmt"
	"log/slog"
	"maps"
)

// Error is an error with structured attributes for logging and reporting.
//
// Errors are not safe for concurrent mutation; build them in one statement.
type Error struct {
	msg string
	err error

	skipReport bool
	attrs      map[string]slog.Value
}

// Newf creates a new error using Sprintf to construct the message.
func Newf(format string, args ...any) *Error {
	return &Error{msg: fmt.Sprintf(format, args...)}
}

// Wrapf returns an error whose message is the formatted prefix, a colon and
// err's message. An empty format keeps err's message unchanged.
func Wrapf(err error, format string, args ...any) *Error {
	return wrap(fmt.Sprintf(format, args...), err, false)
}

// Bubblef is like Wrapf, but the result matches err with errors.Is.
//
// Use it only where callers are expected to inspect the inner error.
func Bubblef(err error, format string, args ...any) *Error {
	return wrap(fmt.Sprintf(format, args...), err, true)
}

func wrap(msg string, err error, unwrappable bool) *Error {
	if err == nil {
		panic("errs: cannot wrap nil error")
	}

	wrapped := &Error{}
	switch {
	case unwrappable:
		wrapped.msg = msg
		wrapped.err = err
	case msg == "":
		wrapped.msg = err.Error()
	default:
		wrapped.msg = fmt.Sprintf("%s: %v", msg, err)
	}

	if inner, ok := err.(*Error); ok {
		wrapped.skipReport = inner.skipReport
		wrapped.attrs = maps.Clone(inner.attrs)
	}

	return wrapped
}

// Attr attaches a structured attribute. An existing key is overwritten.
func (e *Error) Attr(attr slog.Attr) *Error {
	if e.attrs == nil {
		e.attrs = make(map[string]slog.Value)
	}
	e.attrs[attr.Key] = attr.Value
	return e
}

// SkipReportIf marks the error as not worth sending to the error reporter.
func (e *Error) SkipReportIf(condition bool) *Error {
	e.skipReport = e.skipReport || condition
	return e
}

func (e *Error) Error() string {
	switch {
	case e.err == nil:
		return e.msg
	case e.msg == "":
		return e.err.Error()
	default:
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
}

func (e *Error) Unwrap() error {
	return e.err
}

// Attrs returns the attributes stored in err, if it is an *Error.
func Attrs(err error) []slog.Attr {
	e, ok := err.(*Error)
	if !ok {
		return nil
	}

	attrs := make([]slog.Attr, 0, len(e.attrs))
	for key, value := range e.attrs {
		attrs = append(attrs, slog.Attr{Key: key, Value: value})
	}
	return attrs
}

// Tags returns the attributes of err as strings.
func Tags(err error) map[string]string {
	e, ok := err.(*Error)
	if !ok {
		return nil
	}

	tags := make(map[string]string, len(e.attrs))
	for key, value := range e.attrs {
		tags[key] = value.String()
	}
	return tags
}

// SkipReport reports whether err was marked with SkipReportIf.
func SkipReport(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.skipReport
	}
	return false
}

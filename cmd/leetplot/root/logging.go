package root

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/wandb/leetplot/internal/cliutil"
	"github.com/wandb/leetplot/internal/observability"
	"github.com/wandb/leetplot/internal/observability/errs"
	"github.com/wandb/leetplot/internal/version"
)

const (
	debugEnv     = "LEETPLOT_DEBUG"
	debugLogFile = "leetplot.debug.log"
	sentryDSNEnv = "LEETPLOT_SENTRY_DSN"
)

// newLogger builds the logger for cmd.
//
// With LEETPLOT_DEBUG set, JSON logs at debug level go to leetplot.debug.log.
// Otherwise logs go to stderr through charmbracelet/log, except for full
// screen commands which discard them.
func newLogger(cmd *cobra.Command) (*observability.CoreLogger, func(), error) {
	reporter := observability.NewReporter(observability.ReporterParams{
		DSN:         cliutil.GetString(cmd, "sentry-dsn", sentryDSNEnv),
		Release:     version.Version,
		Environment: version.Environment(),
	})

	var handler slog.Handler
	closeFn := func() { reporter.Flush(2 * time.Second) }

	switch {
	case os.Getenv(debugEnv) != "":
		file, err := os.OpenFile(debugLogFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
		if err != nil {
			return nil, nil, errs.Wrapf(err, "failed to open debug log")
		}
		handler = slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug})
		closeFn = func() {
			reporter.Flush(2 * time.Second)
			_ = file.Close()
		}

	case cmd.Annotations[cliutil.FullScreenAnnotation] != "":
		handler = slog.NewJSONHandler(io.Discard, nil)

	default:
		level := log.WarnLevel
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			level = log.DebugLevel
		}
		handler = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
			Level:           level,
			Prefix:          "leetplot",
			ReportTimestamp: true,
		})
	}

	logger := observability.NewCoreLogger(
		slog.New(handler),
		&observability.CoreLoggerParams{
			Reporter: reporter,
			Tags: observability.Tags{
				"command": cmd.Name(),
				"version": version.Version,
			},
		},
	)
	return logger, closeFn, nil
}

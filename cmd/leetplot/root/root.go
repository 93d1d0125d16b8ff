// Package root assembles the leetplot command tree.
package root

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/wandb/leetplot/cmd/leetplot/root/config"
	"github.com/wandb/leetplot/cmd/leetplot/root/render"
	"github.com/wandb/leetplot/cmd/leetplot/root/version"
	"github.com/wandb/leetplot/cmd/leetplot/root/view"
	"github.com/wandb/leetplot/internal/cliutil"
)

// NewRootCmd creates the leetplot command.
func NewRootCmd(env *cliutil.Env) *cobra.Command {
	var closeLog func()

	cmd := &cobra.Command{
		Use:   "leetplot <command> [flags]",
		Short: "Interactive charts for numeric datasets",
		Long: heredoc.Doc(`
			Plot point and interval datasets in the terminal.

			Zoom with the mouse wheel, select items by clicking or dragging,
			and see aggregates of the selection. Charts can also be rendered
			headlessly as drawing primitives.
		`),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, closeFn, err := newLogger(cmd)
			if err != nil {
				return err
			}
			env.Logger = logger
			closeLog = closeFn
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if closeLog != nil {
				closeLog()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug messages to stderr")
	cmd.PersistentFlags().String("sentry-dsn", "", "Sentry DSN for error reports (or set LEETPLOT_SENTRY_DSN)")

	cmd.AddCommand(view.NewViewCmd(env))
	cmd.AddCommand(render.NewRenderCmd(env))
	cmd.AddCommand(config.NewConfigCmd(env))
	cmd.AddCommand(version.NewVersionCmd())

	return cmd
}

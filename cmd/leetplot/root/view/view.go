package view

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/wandb/leetplot/internal/cliutil"
	"github.com/wandb/leetplot/internal/config"
	"github.com/wandb/leetplot/internal/dataset"
	"github.com/wandb/leetplot/internal/observability/errs"
	"github.com/wandb/leetplot/internal/tui"
	"github.com/wandb/leetplot/internal/watcher"
)

// NewViewCmd creates the interactive chart viewer command.
func NewViewCmd(env *cliutil.Env) *cobra.Command {
	var (
		noReload  bool
		overrides map[string]string
	)

	cmd := &cobra.Command{
		Use:   "view <dataset>",
		Short: "Show a dataset as an interactive chart",
		Long: heredoc.Doc(`
			Show a dataset as a full screen interactive chart.

			Scroll to zoom around the pointer, click or drag to select items,
			and ctrl+click to toggle single items. The chart reloads when the
			dataset file changes. Press h for all key bindings.
		`),
		Example: heredoc.Doc(`
			$ leetplot view losses.csv
			$ leetplot view spans.yaml --set kind=pillar
			$ leetplot view points.json --set x_milestones=divides --no-reload
		`),
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{cliutil.FullScreenAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cliutil.ApplyOverrides(env.Viper, overrides, config.Keys()); err != nil {
				return err
			}
			cfg, err := config.Load(env.Viper)
			if err != nil {
				return err
			}

			path := args[0]
			if _, err := dataset.FormatOf(path); err != nil {
				return err
			}

			var reloader *tui.Reloader
			if !noReload {
				reloader = tui.NewReloader(
					watcher.New(watcher.Params{Logger: env.Logger}),
					env.Logger,
				)
			}

			model := tui.NewModel(tui.Params{
				Path:     path,
				Loader:   dataset.NewLoader(env.Fs, cfg.Kind),
				Options:  cfg.ChartOptions(),
				Reloader: reloader,
				Logger:   env.Logger,
			})
			defer model.Finish()

			p := tea.NewProgram(
				model,
				tea.WithContext(cmd.Context()),
				tea.WithAltScreen(),
				tea.WithMouseAllMotion(),
			)
			if _, err := p.Run(); err != nil {
				env.Logger.Error(fmt.Sprintf("view: %v", err))
				return errs.Wrapf(err, "view: program failed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noReload, "no-reload", false, "Do not reload the chart when the dataset changes")
	cmd.Flags().StringToStringVar(&overrides, "set", nil, "Override configuration values (e.g. --set x_steps=10)")

	return cmd
}

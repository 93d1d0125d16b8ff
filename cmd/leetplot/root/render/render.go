package render

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/wandb/leetplot/internal/cliutil"
	"github.com/wandb/leetplot/internal/config"
	"github.com/wandb/leetplot/internal/dataset"
	"github.com/wandb/leetplot/internal/observability/errs"
	"github.com/wandb/leetplot/internal/plot"
	"github.com/wandb/leetplot/internal/tui"
)

// Result is the rendering of one dataset.
type Result struct {
	ID     string `json:"id" yaml:"id"`
	Path   string `json:"path" yaml:"path"`
	Points int    `json:"points" yaml:"points"`

	// Unplaced counts the visible items without a finite position.
	Unplaced int `json:"unplaced,omitempty" yaml:"unplaced,omitempty"`

	// Density and DensityPopulated are nil when not finite.
	Density          *float64 `json:"density,omitempty" yaml:"density,omitempty"`
	DensityPopulated *float64 `json:"densityPopulated,omitempty" yaml:"densityPopulated,omitempty"`

	Frame plot.Frame `json:"frame" yaml:"frame"`

	// Text is the chart drawn in terminal cells, set with --text.
	Text string `json:"text,omitempty" yaml:"text,omitempty"`
}

type renderOptions struct {
	selectAll bool
	text      bool
	columns   int
	rows      int
	zoom      int
}

// NewRenderCmd creates the headless render command.
func NewRenderCmd(env *cliutil.Env) *cobra.Command {
	var (
		opts      renderOptions
		overrides map[string]string
	)

	cmd := &cobra.Command{
		Use:   "render <dataset>...",
		Short: "Render datasets as drawing primitives",
		Long: heredoc.Doc(`
			Lay out one chart per dataset and print its frame: axes, divides,
			milestones, item shapes, connectors and the selection info.

			Datasets are loaded concurrently. With --text, the frame is also
			drawn in terminal cells.
		`),
		Example: heredoc.Doc(`
			$ leetplot render losses.csv
			$ leetplot render a.yaml b.yaml --format yaml --select-all
			$ leetplot render losses.csv --template '{{range .}}{{.path}}: {{.frame.domain.xMax}}{{"\n"}}{{end}}'
			$ leetplot render losses.csv --text --columns 100 --rows 30
		`),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cliutil.ApplyOverrides(env.Viper, overrides, config.Keys()); err != nil {
				return err
			}
			cfg, err := config.Load(env.Viper)
			if err != nil {
				return err
			}

			results, err := renderAll(env, cfg, args, opts)
			if err != nil {
				return err
			}

			if opts.text && !cmd.Flags().Changed("format") && !cmd.Flags().Changed("template") {
				for _, r := range results {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", r.Path, r.Text)
				}
				return nil
			}
			return cliutil.HandleOutput(cmd, results)
		},
	}

	cmd.Flags().BoolVar(&opts.selectAll, "select-all", false, "Activate every item so the frame includes the info block")
	cmd.Flags().IntVar(&opts.zoom, "zoom", 0, "Wheel notches to zoom in at the grid center (negative zooms out)")
	cmd.Flags().BoolVar(&opts.text, "text", false, "Lay out in terminal cells and draw the chart as text")
	cmd.Flags().IntVar(&opts.columns, "columns", 80, "Width in cells with --text")
	cmd.Flags().IntVar(&opts.rows, "rows", 24, "Height in cells with --text")
	cmd.Flags().StringToStringVar(&overrides, "set", nil, "Override configuration values (e.g. --set x_steps=10)")
	cliutil.AddOutputFlags(cmd)

	return cmd
}

// renderAll renders each path on its own goroutine.
//
// Results are in the order of paths.
func renderAll(
	env *cliutil.Env,
	cfg *config.Config,
	paths []string,
	opts renderOptions,
) ([]Result, error) {
	var measurer plot.TextMeasurer = plot.CharWidthMeasurer
	chartOpts := cfg.ChartOptions()
	if opts.text {
		if opts.columns < tui.MinChartWidth || opts.rows < tui.MinChartHeight {
			return nil, errs.Newf(
				"render: text size must be at least %dx%d",
				tui.MinChartWidth, tui.MinChartHeight)
		}
		measurer = tui.CellMeasurer
		chartOpts = tui.CellOptions(chartOpts, opts.columns, opts.rows)
	}

	// The cache is safe for concurrent use and shared by all charts.
	cached, err := plot.NewCachedMeasurer(measurer, 0)
	if err != nil {
		return nil, errs.Wrapf(err, "render: failed to create measurer")
	}

	loader := dataset.NewLoader(env.Fs, cfg.Kind)
	results := make([]Result, len(paths))

	var g errgroup.Group
	for i, path := range paths {
		g.Go(func() error {
			data, err := loader.Load(path)
			if err != nil {
				return err
			}

			result, err := renderOne(env, path, data, chartOpts, cached, opts)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		env.Logger.CaptureError(err)
		return nil, err
	}
	return results, nil
}

func renderOne(
	env *cliutil.Env,
	path string,
	data []plot.Datum,
	chartOpts plot.Options,
	measurer plot.TextMeasurer,
	opts renderOptions,
) (Result, error) {
	id := uuid.New().String()
	logger := env.Logger.With("chart", id, "path", path)

	chart := plot.NewChart(chartOpts, measurer, logger)
	chart.SetData(data)

	domain := chart.Domain()
	if !(domain.XMax > 0) || !(domain.YMax > 0) {
		return Result{}, errs.Newf("render: %s: no positive values to plot", path).
			Attr(slog.String("path", path))
	}

	if opts.zoom != 0 {
		grid := chart.Layout().Grid()
		cx, cy := (grid.X1+grid.X2)/2, (grid.Y1+grid.Y2)/2
		delta := -1.0
		if opts.zoom < 0 {
			delta = 1
		}
		for range abs(opts.zoom) {
			chart.Wheel(delta, cx, cy)
		}
	}
	if opts.selectAll {
		chart.SelectAll()
	}

	frame := chart.Frame()
	result := Result{
		ID:     id,
		Path:   path,
		Points: len(data),
		Density: finite(plot.Density(chart.Visible(), plot.DensityParams{
			Width:  chartOpts.Width,
			Height: chartOpts.Height,
			Domain: chart.Domain(),
		})),
		DensityPopulated: finite(plot.DensityPopulated(data, chartOpts.Width, chartOpts.Height)),
		Frame:            frame,
	}
	for _, shape := range frame.Items {
		if !shape.Valid {
			result.Unplaced++
		}
	}
	if opts.text {
		result.Text = strings.TrimRight(
			tui.RenderFrame(frame, opts.columns, opts.rows), "\n")
	}

	logger.Debug(fmt.Sprintf("render: %s has %d items", path, len(frame.Items)))
	return result, nil
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

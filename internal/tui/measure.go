package tui

import (
	"github.com/mattn/go-runewidth"

	"github.com/wandb/leetplot/internal/plot"
)

// CellMeasurer measures labels in terminal cells.
//
// Font sizes are ignored: every character is drawn at the size of one cell.
var CellMeasurer = plot.MeasurerFunc(func(label string, _ float64) float64 {
	return float64(runewidth.StringWidth(label))
})

// CellOptions adapts chart options to a surface measured in terminal cells.
//
// Text is one row high, ticks extend one cell to each side of an axis and
// a point covers a single cell.
func CellOptions(base plot.Options, width, height int) plot.Options {
	o := base
	o.Width = float64(width)
	o.Height = float64(height)
	o.FontSize = 1
	o.InfoFontSize = 1
	o.DivideLength = 2
	o.Spacing = 0
	o.PointRadius = 0.5
	return o
}

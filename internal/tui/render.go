package tui

import (
	"image"
	"math"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/canvas/graph"
	"github.com/charmbracelet/lipgloss"

	"github.com/wandb/leetplot/internal/plot"
)

const (
	runeHorizontal = '─'
	runeVertical   = '│'
	runeOrigin     = '└'
	runeXTick      = '┴'
	runeYTick      = '├'
	runeMilestoneX = '┊'
	runeMilestoneY = '┈'
	runeReference  = '╌'
	runePoint      = '●'
	runeActive     = '◉'
	runeBar        = '▒'
	runeActiveBar  = '█'
)

// RenderFrame rasterizes a frame laid out in cell units onto a
// width x height canvas.
//
// Later primitives overwrite earlier ones. Items are drawn over the grid
// lines, and the selection rectangle and text are drawn over everything.
func RenderFrame(f plot.Frame, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	c := canvas.New(width, height)

	// Braille dots merge with braille runes only, so connectors go first.
	drawConnectors(&c, f.Connectors, width, height)
	for _, m := range f.Milestones {
		drawMilestone(&c, m)
	}
	if f.Reference != nil {
		drawHorizontal(&c, *f.Reference, runeReference, referenceStyle, true)
	}
	drawAxes(&c, f)
	for _, s := range f.Items {
		drawShape(&c, s)
	}
	if f.Selection != nil {
		drawSelection(&c, *f.Selection)
	}
	for _, d := range f.XDivides {
		drawText(&c, d.Text, labelStyle)
	}
	for _, d := range f.YDivides {
		drawText(&c, d.Text, labelStyle)
	}
	if f.Info != nil {
		for i, line := range f.Info.Lines {
			c.SetStringWithStyle(
				canvas.Point{X: cell(f.Info.X), Y: cell(f.Info.Y) + i},
				line,
				infoStyle)
		}
	}

	return c.View()
}

// cell maps a surface coordinate onto the cell containing it.
func cell(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return -1
	}
	return int(math.Floor(v))
}

func drawAxes(c *canvas.Model, f plot.Frame) {
	for _, axis := range f.Axes {
		if axis.Y1 == axis.Y2 {
			drawHorizontal(c, axis, runeHorizontal, axisStyle, false)
		} else {
			drawVertical(c, axis, runeVertical, axisStyle, false)
		}
	}
	for _, d := range f.XDivides {
		c.SetCell(
			canvas.Point{X: cell(d.Coord), Y: cell(f.Origin.Y)},
			canvas.NewCellWithStyle(runeXTick, axisStyle))
	}
	for _, d := range f.YDivides {
		c.SetCell(
			canvas.Point{X: cell(f.Origin.X), Y: cell(d.Coord)},
			canvas.NewCellWithStyle(runeYTick, axisStyle))
	}
	c.SetCell(
		canvas.Point{X: cell(f.Origin.X), Y: cell(f.Origin.Y)},
		canvas.NewCellWithStyle(runeOrigin, axisStyle))
}

func drawMilestone(c *canvas.Model, m plot.Milestone) {
	switch m.Axis {
	case plot.AxisX:
		drawVertical(c, m.Line, runeMilestoneX, milestoneStyle, true)
	case plot.AxisY:
		drawHorizontal(c, m.Line, runeMilestoneY, milestoneStyle, true)
	}
}

// drawHorizontal draws l at the row of its Y1. With exclusive set the
// final cell is left out so that lines stop short of the far axis end.
func drawHorizontal(c *canvas.Model, l plot.Line, r rune, s lipgloss.Style, exclusive bool) {
	y := cell(l.Y1)
	x1, x2 := cell(math.Min(l.X1, l.X2)), cell(math.Max(l.X1, l.X2))
	if exclusive {
		x2--
	}
	for x := x1; x <= x2; x++ {
		c.SetCell(canvas.Point{X: x, Y: y}, canvas.NewCellWithStyle(r, s))
	}
}

func drawVertical(c *canvas.Model, l plot.Line, r rune, s lipgloss.Style, exclusive bool) {
	x := cell(l.X1)
	y1, y2 := cell(math.Min(l.Y1, l.Y2)), cell(math.Max(l.Y1, l.Y2))
	if exclusive {
		y2--
	}
	for y := y1; y <= y2; y++ {
		c.SetCell(canvas.Point{X: x, Y: y}, canvas.NewCellWithStyle(r, s))
	}
}

// drawConnectors draws the connection polyline with braille dots, which
// resolve 2x4 positions per cell.
func drawConnectors(c *canvas.Model, lines []plot.Line, width, height int) {
	if len(lines) == 0 {
		return
	}

	// The braille grid has its Y axis pointing up.
	grid := graph.NewBrailleGrid(width, height,
		0, float64(width), 0, float64(height))
	toGrid := func(x, y float64) canvas.Point {
		return grid.GridPoint(canvas.Float64Point{X: x, Y: float64(height) - y})
	}
	bounds := image.Rect(0, 0, width*2, height*4)
	for _, l := range lines {
		if !finite(l.X1, l.Y1, l.X2, l.Y2) {
			continue
		}
		from, to := toGrid(l.X1, l.Y1), toGrid(l.X2, l.Y2)
		for _, p := range graph.GetLinePoints(from, to) {
			if p.In(bounds) {
				grid.Set(p)
			}
		}
	}
	graph.DrawBraillePatterns(c, canvas.Point{}, grid.BraillePatterns(), connectorStyle)
}

func drawShape(c *canvas.Model, s plot.Shape) {
	if !s.Valid {
		return
	}
	style := itemStyle
	if s.Active {
		style = activeItemStyle
	}

	switch s.Kind {
	case plot.ShapeRect:
		r := runeBar
		if s.Active {
			r = runeActiveBar
		}
		// The bar stands on the x axis, which owns the bottom row.
		for y := cell(s.Box.Y1); y < cell(s.Box.Y2); y++ {
			for x := cell(s.Box.X1); x < max(cell(s.Box.X2), cell(s.Box.X1)+1); x++ {
				c.SetCell(canvas.Point{X: x, Y: y}, canvas.NewCellWithStyle(r, style))
			}
		}
	default:
		r := runePoint
		if s.Active {
			r = runeActive
		}
		center := canvas.Point{X: cell(s.Center.X), Y: cell(s.Center.Y)}
		radius := int(math.Round(s.Radius - 0.5))
		if radius <= 0 {
			c.SetCell(center, canvas.NewCellWithStyle(r, style))
			return
		}
		for _, p := range graph.GetFullCirclePoints(center, radius) {
			c.SetCell(p, canvas.NewCellWithStyle(r, style))
		}
	}
}

func drawSelection(c *canvas.Model, r plot.Rect) {
	x1, x2 := cell(r.X1), cell(r.X2)
	y1, y2 := cell(r.Y1), cell(r.Y2)
	for x := x1 + 1; x < x2; x++ {
		c.SetCell(canvas.Point{X: x, Y: y1}, canvas.NewCellWithStyle('─', selectionStyle))
		c.SetCell(canvas.Point{X: x, Y: y2}, canvas.NewCellWithStyle('─', selectionStyle))
	}
	for y := y1 + 1; y < y2; y++ {
		c.SetCell(canvas.Point{X: x1, Y: y}, canvas.NewCellWithStyle('│', selectionStyle))
		c.SetCell(canvas.Point{X: x2, Y: y}, canvas.NewCellWithStyle('│', selectionStyle))
	}
	corners := []struct {
		p canvas.Point
		r rune
	}{
		{canvas.Point{X: x1, Y: y1}, '┌'},
		{canvas.Point{X: x2, Y: y1}, '┐'},
		{canvas.Point{X: x1, Y: y2}, '└'},
		{canvas.Point{X: x2, Y: y2}, '┘'},
	}
	for _, corner := range corners {
		c.SetCell(corner.p, canvas.NewCellWithStyle(corner.r, selectionStyle))
	}
}

func drawText(c *canvas.Model, t plot.Text, s lipgloss.Style) {
	if !finite(t.X, t.Y) {
		return
	}
	x := int(math.Round(t.X))
	c.SetStringWithStyle(canvas.Point{X: max(x, 0), Y: cell(t.Y)}, t.Text, s)
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

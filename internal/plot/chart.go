package plot

import (
	"fmt"
	"log/slog"
	"math"
	"slices"

	"github.com/wandb/leetplot/internal/observability"
	"github.com/wandb/leetplot/internal/observability/errs"
)

// Chart ties the zoom, layout, selection and aggregation of one chart
// together.
//
// A Chart is driven by a single event loop and is not safe for concurrent
// use. Every change of the visible items (data, options, size or zoom)
// starts a new generation and clears the active set.
type Chart struct {
	opts     Options
	measurer TextMeasurer
	logger   *observability.CoreLogger

	data    []Datum
	visible []Datum

	zoomer *Zoomer
	layout Layout

	generation uint64
	items      ItemSet
	active     ActiveSet
	drag       SelectionDrag

	// hovered is the index of the item under the pointer, or -1.
	hovered int
}

// NewChart creates an empty chart.
//
// A nil measurer estimates label widths from their length.
func NewChart(
	opts Options,
	measurer TextMeasurer,
	logger *observability.CoreLogger,
) *Chart {
	if measurer == nil {
		measurer = CharWidthMeasurer
	}
	if logger == nil {
		logger = observability.NewNoOpLogger()
	}

	c := &Chart{
		opts:     opts,
		measurer: measurer,
		logger:   logger,
		zoomer:   NewZoomer(opts.ZoomXStep, opts.ZoomYStep, opts.initialDomain(nil)),
		hovered:  -1,
	}
	c.regenerate()
	return c
}

// SetData replaces the dataset and resets the zoom.
func (c *Chart) SetData(data []Datum) {
	c.data = slices.Clone(data)
	c.zoomer.Reset(c.opts.initialDomain(c.data))
	c.logger.Debug(fmt.Sprintf(
		"chart: data set with %d items, domain %+v", len(c.data), c.zoomer.Initial()))
	c.regenerate()
}

// SetOptions replaces the options and resets the zoom.
func (c *Chart) SetOptions(opts Options) {
	c.opts = opts
	c.zoomer.SetSteps(opts.ZoomXStep, opts.ZoomYStep)
	c.zoomer.Reset(opts.initialDomain(c.data))
	c.regenerate()
}

// Resize changes the surface size, keeping the zoom.
func (c *Chart) Resize(width, height float64) {
	if width == c.opts.Width && height == c.opts.Height {
		return
	}
	c.opts.Width = width
	c.opts.Height = height
	c.regenerate()
}

// ResetZoom returns to the unzoomed domain.
func (c *Chart) ResetZoom() bool {
	if !c.zoomer.IsZoomed() {
		return false
	}
	c.zoomer.Reset(c.zoomer.Initial())
	c.regenerate()
	return true
}

// regenerate recomputes the visible data, layout and items, starting a new
// generation.
func (c *Chart) regenerate() {
	domain := c.zoomer.Domain()
	c.visible = FilterVisible(c.data, domain)
	c.layout = SettleLayout(
		c.opts,
		domain,
		c.measurer,
		c.layout.XLabelWidths,
		c.layout.YLabelWidths,
	)

	c.generation++
	c.items = ItemSet{
		Generation: c.generation,
		Items:      c.plot(domain),
	}

	if c.active.Sync(c.generation) {
		c.logger.Debug("chart: active items cleared by regeneration")
	}
	c.hovered = -1
}

// pointRadius scales the configured radius up as the chart zooms in.
func (c *Chart) pointRadius(d Domain) float64 {
	initial := c.zoomer.Initial()
	scale := (d.XMax/initial.XMax + d.YMax/initial.YMax) / 2
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return c.opts.PointRadius
	}
	return c.opts.PointRadius / scale
}

func (c *Chart) plot(d Domain) []PlottedItem {
	l := c.layout
	r := c.pointRadius(d)

	items := make([]PlottedItem, 0, len(c.visible))
	for i, datum := range c.visible {
		item := PlottedItem{Index: i, Generation: c.generation, Datum: datum}

		switch v := datum.(type) {
		case ValuePoint:
			x := ToPixel(l.Origin.X, l.GridWidth, v.X, d.XMax)
			y := ToPixel(l.Origin.Y, -l.GridHeight, v.Y, d.YMax)
			item.Box = Rect{X1: x - r, X2: x + r, Y1: y - r, Y2: y + r}
		case ValueInterval:
			x1 := ToPixel(l.Origin.X, l.GridWidth, v.X1, d.XMax)
			x2 := ToPixel(l.Origin.X, l.GridWidth, v.X2, d.XMax)
			y := ToPixel(l.Origin.Y, -l.GridHeight, v.Y, d.YMax)
			item.Box = NormalizeRect(x1, y, x2, l.Origin.Y)
		}

		items = append(items, item)
	}
	return items
}

// Wheel zooms by one notch around the cursor at (x, y). Negative deltaY
// zooms in. It reports whether the domain changed.
func (c *Chart) Wheel(deltaY, x, y float64) bool {
	dir, ok := DirectionFromWheel(deltaY)
	if !ok {
		return false
	}

	l := c.layout
	prev := c.zoomer.Domain()
	next := c.zoomer.Zoom(
		AxisCursor{Cursor: x, Offset: l.XOffset, Borderline: l.XEnd()},
		AxisCursor{Cursor: y, Offset: l.TopOffset, Borderline: l.Origin.Y},
		dir,
	)
	if next == prev {
		return false
	}

	c.logger.Debug(fmt.Sprintf("chart: zoom %s to %+v", dir, next))
	c.regenerate()
	return true
}

// PointerDown starts a selection drag at (x, y).
func (c *Chart) PointerDown(x, y float64) {
	c.drag.Begin(x, y)
}

// PointerMove extends an active drag, replacing the active set with the
// items overlapping the drag rectangle. Without a drag it updates hover.
func (c *Chart) PointerMove(x, y float64) {
	rect, dragging := c.drag.Move(x, y)
	if !dragging {
		c.Hover(x, y)
		return
	}
	if !c.drag.Moved() {
		return
	}

	c.captureStale(c.active.Replace(SelectInRect(c.items.Items, rect)))
}

// PointerUp ends a drag. A release without movement is a click at (x, y);
// toggle is the state of the toggle modifier (ctrl).
func (c *Chart) PointerUp(x, y float64, toggle bool) {
	if !c.drag.Active() {
		return
	}
	if c.drag.End() {
		c.logger.Debug(fmt.Sprintf(
			"chart: drag selected %d items", c.active.Len()))
		return
	}

	if item, ok := c.items.HitTest(x, y); ok {
		c.captureStale(c.active.Click(item, toggle))
		return
	}
	c.ClickBackground()
}

// Click applies click semantics to the item with the given index of the
// current generation.
func (c *Chart) Click(index int, toggle bool) error {
	item, ok := c.items.Item(index)
	if !ok {
		return errs.Newf("plot: no item with index %d", index)
	}
	return c.active.Click(item, toggle)
}

// ClickBackground clears the active set.
func (c *Chart) ClickBackground() {
	c.active.Clear()
}

// SelectAll activates every visible item.
func (c *Chart) SelectAll() {
	c.captureStale(c.active.SelectAll(c.items))
}

// ClearSelection clears the active set and cancels any drag.
func (c *Chart) ClearSelection() {
	c.active.Clear()
	c.drag.End()
}

// Hover marks the topmost item at (x, y) as hovered, if any.
func (c *Chart) Hover(x, y float64) {
	if item, ok := c.items.HitTest(x, y); ok {
		c.hovered = item.Index
		return
	}
	c.hovered = -1
}

// captureStale reports a refused selection change. Items passed by the chart
// come from the current generation, so any error here is a bug.
func (c *Chart) captureStale(err error) {
	if err != nil {
		c.logger.CaptureError(errs.Wrapf(err, "plot: selection change refused").
			Attr(slog.Uint64("generation", c.generation)))
	}
}

// HoverEnd clears the hovered item.
func (c *Chart) HoverEnd() {
	c.hovered = -1
}

func (c *Chart) Options() Options { return c.opts }
func (c *Chart) Domain() Domain { return c.zoomer.Domain() }
func (c *Chart) Initial() Domain { return c.zoomer.Initial() }
func (c *Chart) Layout() Layout { return c.layout }
func (c *Chart) Items() ItemSet { return c.items }
func (c *Chart) Visible() []Datum { return slices.Clone(c.visible) }
func (c *Chart) Data() []Datum { return slices.Clone(c.data) }
func (c *Chart) Generation() uint64 { return c.generation }
func (c *Chart) IsZoomed() bool { return c.zoomer.IsZoomed() }
func (c *Chart) Dragging() bool { return c.drag.Moved() }

// Active returns the active items in activation order.
func (c *Chart) Active() []PlottedItem { return c.active.Items() }

// SelectionState is the state of the active set.
func (c *Chart) SelectionState() SelectionState { return c.active.State() }

// ActiveStats aggregates the y values of the active items.
func (c *Chart) ActiveStats() (Stats, bool) {
	items := c.active.Items()
	ys := make([]float64, len(items))
	for i, item := range items {
		ys[i] = item.Datum.YValue()
	}
	return Aggregate(ys)
}

// Frame returns the drawable state of the chart.
func (c *Chart) Frame() Frame {
	l := c.layout
	d := c.zoomer.Domain()

	f := Frame{
		Width:      c.opts.Width,
		Height:     c.opts.Height,
		Generation: c.generation,
		Domain:     d,
		Origin:     l.Origin,
		Axes: []Line{
			{X1: l.Origin.X, Y1: l.Origin.Y, X2: l.XEnd(), Y2: l.Origin.Y},
			{X1: l.Origin.X, Y1: l.Origin.Y, X2: l.Origin.X, Y2: l.YEnd()},
		},
		XDivides: l.XDivides.Divides,
		YDivides: l.YDivides.Divides,
	}

	f.Milestones = append(
		GenerateMilestones(c.opts.XMilestones, MilestoneParams{
			Axis:      AxisX,
			Origin:    l.Origin.X,
			Length:    l.GridWidth,
			Min:       0,
			Max:       d.XMax,
			CrossFrom: l.Origin.Y,
			CrossTo:   l.YEnd(),
		}, AxisValues(c.visible, AxisX), l.XDivides),
		GenerateMilestones(c.opts.YMilestones, MilestoneParams{
			Axis:      AxisY,
			Origin:    l.Origin.Y,
			Length:    -l.GridHeight,
			Min:       0,
			Max:       d.YMax,
			CrossFrom: l.Origin.X,
			CrossTo:   l.XEnd(),
		}, AxisValues(c.visible, AxisY), l.YDivides)...,
	)

	f.Items = make([]Shape, 0, len(c.items.Items))
	prev := l.Origin
	for _, item := range c.items.Items {
		shape := Shape{
			Index:  item.Index,
			Box:    item.Box,
			Active: c.active.Contains(item.Index),
			Valid:  item.Box.Finite(),
		}
		if !shape.Valid {
			shape.Box = Rect{}
			switch item.Datum.(type) {
			case ValuePoint:
				shape.Kind = ShapeCircle
			case ValueInterval:
				shape.Kind = ShapeRect
			}
			f.Items = append(f.Items, shape)
			continue
		}

		switch item.Datum.(type) {
		case ValuePoint:
			shape.Kind = ShapeCircle
			shape.Center = Vec{
				X: (item.Box.X1 + item.Box.X2) / 2,
				Y: (item.Box.Y1 + item.Box.Y2) / 2,
			}
			shape.Radius = item.Box.Width() / 2

			if c.opts.ConnectPoints {
				f.Connectors = append(f.Connectors, Line{
					X1: prev.X, Y1: prev.Y,
					X2: shape.Center.X, Y2: shape.Center.Y,
				})
				prev = shape.Center
			}
		case ValueInterval:
			shape.Kind = ShapeRect
			shape.Center = Vec{X: (item.Box.X1 + item.Box.X2) / 2, Y: item.Box.Y1}
		}
		f.Items = append(f.Items, shape)
	}

	if item, ok := c.items.Item(c.hovered); ok && f.Items[item.Index].Valid {
		y := f.Items[item.Index].Center.Y
		f.Reference = &Line{X1: l.Origin.X, Y1: y, X2: l.XEnd(), Y2: y}
	}

	if c.drag.Moved() {
		rect := c.drag.Rect()
		f.Selection = &rect
	}

	if lines := InfoLines(c.active.Items(), c.opts.InfoXPrecision, c.opts.InfoYPrecision); len(lines) > 0 {
		f.Info = &InfoBlock{
			X:        l.Origin.X + l.DivideOffset + c.opts.Spacing,
			Y:        0,
			FontSize: c.opts.InfoFontSize,
			Lines:    lines,
		}
	}

	return f
}

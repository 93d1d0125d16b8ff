package plot

import (
	"math"
	"slices"
)

// maxLayoutPasses bounds how often labels are re-measured per layout.
const maxLayoutPasses = 3

// Layout is the placement of the plotting grid on the surface.
type Layout struct {
	DivideOffset float64
	XOffset      float64
	TopOffset    float64
	BottomOffset float64
	GridWidth    float64
	GridHeight   float64
	Origin       Vec

	XDivides DivideSet
	YDivides DivideSet

	XLabelWidths []float64
	YLabelWidths []float64
}

// XEnd is the surface x of the far end of the x axis.
func (l Layout) XEnd() float64 { return l.Origin.X + l.GridWidth }

// YEnd is the surface y of the far end of the y axis.
func (l Layout) YEnd() float64 { return l.Origin.Y - l.GridHeight }

// Grid is the rectangle of the plotting grid.
func (l Layout) Grid() Rect {
	return NormalizeRect(l.Origin.X, l.Origin.Y, l.XEnd(), l.YEnd())
}

// ComputeLayout places the grid for the given label widths.
//
// The y labels sit left of the grid, so the widest one sets the left
// offset; half of the last x label may overhang the right edge.
func ComputeLayout(o Options, d Domain, xWidths, yWidths []float64) Layout {
	l := Layout{
		DivideOffset: o.DivideLength / 2,
		XLabelWidths: xWidths,
		YLabelWidths: yWidths,
	}

	l.XOffset = MaxWidth(yWidths) + o.Spacing + l.DivideOffset
	l.TopOffset = o.FontSize/2 + o.InfoFontSize*2
	l.BottomOffset = o.FontSize + o.Spacing + l.DivideOffset
	l.GridWidth = o.Width - l.XOffset - LastWidth(xWidths)/2
	l.GridHeight = o.Height - l.BottomOffset - l.TopOffset
	l.Origin = Vec{X: l.XOffset, Y: o.Height - l.BottomOffset}

	l.XDivides = GenerateDivides(DivideParams{
		Axis:         AxisX,
		Range:        AxisRange{Min: 0, Max: d.XMax},
		Steps:        o.XSteps,
		Length:       l.GridWidth,
		OriginX:      l.Origin.X,
		OriginY:      l.Origin.Y,
		Spacing:      o.Spacing,
		FontSize:     o.FontSize,
		DivideLength: o.DivideLength,
		Precision:    o.XPrecision,
		LabelWidths:  xWidths,
	})
	l.YDivides = GenerateDivides(DivideParams{
		Axis:         AxisY,
		Range:        AxisRange{Min: 0, Max: d.YMax},
		Steps:        o.YSteps,
		Length:       l.GridHeight,
		OriginX:      l.Origin.X,
		OriginY:      l.Origin.Y,
		Spacing:      o.Spacing,
		FontSize:     o.FontSize,
		DivideLength: o.DivideLength,
		Precision:    o.YPrecision,
		LabelWidths:  yWidths,
	})

	return l
}

// SettleLayout repeats ComputeLayout with re-measured label widths until
// the widths stop changing, starting from the given widths.
func SettleLayout(
	o Options,
	d Domain,
	measurer TextMeasurer,
	xWidths, yWidths []float64,
) Layout {
	l := ComputeLayout(o, d, xWidths, yWidths)
	for pass := 1; pass < maxLayoutPasses; pass++ {
		nx := measureRounded(measurer, l.XDivides.Labels(), o.FontSize)
		ny := measureRounded(measurer, l.YDivides.Labels(), o.FontSize)
		if slices.Equal(nx, l.XLabelWidths) && slices.Equal(ny, l.YLabelWidths) {
			break
		}
		l = ComputeLayout(o, d, nx, ny)
	}
	return l
}

func measureRounded(m TextMeasurer, labels []string, fontSize float64) []float64 {
	if len(labels) == 0 {
		return nil
	}
	widths := m.MeasureLabels(labels, fontSize)
	for i, w := range widths {
		widths[i] = math.Round(w)
	}
	return widths
}

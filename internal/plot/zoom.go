package plot

import "math"

// Domain is the visible upper bound of each axis. Lower bounds are 0.
type Domain struct {
	XMax float64 `json:"xMax" yaml:"xMax"`
	YMax float64 `json:"yMax" yaml:"yMax"`
}

// ZoomDirection is the direction of one wheel notch.
type ZoomDirection int

const (
	ZoomIn ZoomDirection = iota
	ZoomOut
)

func (d ZoomDirection) String() string {
	if d == ZoomIn {
		return "in"
	}
	return "out"
}

func (d ZoomDirection) vector() float64 {
	if d == ZoomIn {
		return 1
	}
	return -1
}

// DirectionFromWheel converts a wheel delta into a zoom direction.
//
// Scrolling up (negative delta) zooms in. A zero delta is no zoom.
func DirectionFromWheel(deltaY float64) (ZoomDirection, bool) {
	switch {
	case deltaY < 0:
		return ZoomIn, true
	case deltaY > 0:
		return ZoomOut, true
	default:
		return ZoomIn, false
	}
}

// AxisCursor locates the cursor along one axis of the plotting surface.
type AxisCursor struct {
	// Cursor is the cursor position on the surface.
	Cursor float64
	// Offset is where the axis starts on the surface.
	Offset float64
	// Borderline is the span the cursor position is clamped to.
	Borderline float64
}

// ZoomAxisMax computes the next visible maximum of one axis for a wheel
// notch.
//
// The cursor's fractional position p along the axis scales the step: by 1-p
// on x and by p on y. The result is clamped to [0, initialMax].
func ZoomAxisMax(
	axis Axis,
	step float64,
	cursor AxisCursor,
	prevMax, initialMax float64,
	dir ZoomDirection,
) float64 {
	pos := clamp(cursor.Cursor-cursor.Offset, 0, cursor.Borderline)

	var perc float64
	if cursor.Borderline > 0 {
		perc = pos / cursor.Borderline
	}

	scale := perc
	if axis == AxisX {
		scale = 1 - perc
	}

	newMax := prevMax - step*scale*dir.vector()
	if math.IsNaN(newMax) {
		return prevMax
	}
	return clamp(newMax, 0, initialMax)
}

// Zoomer owns the zoom state of one chart.
type Zoomer struct {
	xStep, yStep float64
	initial      Domain
	current      Domain
}

// NewZoomer returns a Zoomer showing the whole initial domain.
//
// A zero step freezes its axis at the initial bound.
func NewZoomer(xStep, yStep float64, initial Domain) *Zoomer {
	return &Zoomer{
		xStep:   xStep,
		yStep:   yStep,
		initial: initial,
		current: initial,
	}
}

// Reset replaces the initial domain and drops any zoom.
func (z *Zoomer) Reset(initial Domain) {
	z.initial = initial
	z.current = initial
}

// SetSteps changes the per-notch value deltas.
func (z *Zoomer) SetSteps(xStep, yStep float64) {
	z.xStep = xStep
	z.yStep = yStep
}

func (z *Zoomer) Domain() Domain { return z.current }
func (z *Zoomer) Initial() Domain { return z.initial }

// IsZoomed reports whether the visible domain differs from the initial one.
func (z *Zoomer) IsZoomed() bool { return z.current != z.initial }

// Zoom applies one wheel notch to both axes and returns the new domain.
//
// Both axes are computed from the same previous domain.
func (z *Zoomer) Zoom(x, y AxisCursor, dir ZoomDirection) Domain {
	prev := z.current
	z.current = Domain{
		XMax: ZoomAxisMax(AxisX, z.xStep, x, prev.XMax, z.initial.XMax, dir),
		YMax: ZoomAxisMax(AxisY, z.yStep, y, prev.YMax, z.initial.YMax, dir),
	}
	return z.current
}

// Visible reports whether datum lies inside d on both axes.
func (d Domain) Visible(datum Datum) bool {
	x1, x2 := datum.XSpan()
	y := datum.YValue()
	return x1 >= 0 && x2 <= d.XMax && y >= 0 && y <= d.YMax
}

// FilterVisible returns the data inside d, preserving order.
func FilterVisible(data []Datum, d Domain) []Datum {
	visible := make([]Datum, 0, len(data))
	for _, datum := range data {
		if d.Visible(datum) {
			visible = append(visible, datum)
		}
	}
	return visible
}

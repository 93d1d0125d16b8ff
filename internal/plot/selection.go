package plot

import "math"

// Rect is an axis-aligned rectangle on the plotting surface with
// X1 <= X2 and Y1 <= Y2.
type Rect struct {
	X1 float64 `json:"x1" yaml:"x1"`
	X2 float64 `json:"x2" yaml:"x2"`
	Y1 float64 `json:"y1" yaml:"y1"`
	Y2 float64 `json:"y2" yaml:"y2"`
}

// NormalizeRect builds the rectangle spanned by two corners in any order.
func NormalizeRect(ax, ay, bx, by float64) Rect {
	return Rect{
		X1: math.Min(ax, bx),
		X2: math.Max(ax, bx),
		Y1: math.Min(ay, by),
		Y2: math.Max(ay, by),
	}
}

func (r Rect) Width() float64 { return r.X2 - r.X1 }
func (r Rect) Height() float64 { return r.Y2 - r.Y1 }

// Finite reports whether every corner of r is a finite number.
func (r Rect) Finite() bool {
	for _, v := range [...]float64{r.X1, r.X2, r.Y1, r.Y2} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Contains reports whether (x, y) is inside r, boundaries included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X1 && x <= r.X2 && y >= r.Y1 && y <= r.Y2
}

// Overlaps reports whether r and q overlap on both axes.
//
// Touching edges count as overlap.
func (r Rect) Overlaps(q Rect) bool {
	return spanOverlaps(r.X1, r.X2, q.X1, q.X2) &&
		spanOverlaps(r.Y1, r.Y2, q.Y1, q.Y2)
}

// spanOverlaps tests box span [b1,b2] against query span [q1,q2].
func spanOverlaps(b1, b2, q1, q2 float64) bool {
	return (b1 <= q1 && b2 >= q2) ||
		(b1 >= q1 && b1 <= q2) ||
		(b2 >= q1 && b2 <= q2)
}

// SelectInRect returns the items whose boxes overlap q, in item order.
//
// This is a linear scan; it runs on every pointer move of a drag.
func SelectInRect(items []PlottedItem, q Rect) []PlottedItem {
	var selected []PlottedItem
	for _, item := range items {
		if item.Box.Overlaps(q) {
			selected = append(selected, item)
		}
	}
	return selected
}

// SelectionDrag tracks a rectangle drag with the primary pointer button.
type SelectionDrag struct {
	active bool
	moved  bool

	startX, startY float64
	curX, curY     float64
}

// Begin starts a drag at (x, y).
func (d *SelectionDrag) Begin(x, y float64) {
	*d = SelectionDrag{
		active: true,
		startX: x, startY: y,
		curX: x, curY: y,
	}
}

// Move updates the drag corner and returns the current rectangle.
//
// Returns false if no drag is active.
func (d *SelectionDrag) Move(x, y float64) (Rect, bool) {
	if !d.active {
		return Rect{}, false
	}
	if x != d.startX || y != d.startY {
		d.moved = true
	}
	d.curX, d.curY = x, y
	return d.Rect(), true
}

// End finishes the drag and reports whether the pointer moved at all.
func (d *SelectionDrag) End() (moved bool) {
	moved = d.active && d.moved
	*d = SelectionDrag{}
	return moved
}

func (d *SelectionDrag) Active() bool { return d.active }

// Moved reports whether the active drag has left its start position.
func (d *SelectionDrag) Moved() bool { return d.active && d.moved }

// Rect is the rectangle spanned by the drag so far.
func (d *SelectionDrag) Rect() Rect {
	return NormalizeRect(d.startX, d.startY, d.curX, d.curY)
}

package plot

// Vec is a position on the plotting surface.
type Vec struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Line is a segment between two surface positions.
type Line struct {
	X1 float64 `json:"x1" yaml:"x1"`
	Y1 float64 `json:"y1" yaml:"y1"`
	X2 float64 `json:"x2" yaml:"x2"`
	Y2 float64 `json:"y2" yaml:"y2"`
}

// Baseline is the vertical alignment of a text primitive relative to its Y.
type Baseline string

const (
	BaselineHanging Baseline = "hanging"
	BaselineMiddle  Baseline = "middle"
)

// Text is a single line of text anchored at its left edge.
type Text struct {
	X        float64  `json:"x" yaml:"x"`
	Y        float64  `json:"y" yaml:"y"`
	Text     string   `json:"text" yaml:"text"`
	Baseline Baseline `json:"baseline" yaml:"baseline"`
}

// ShapeKind tells the renderer how to draw a plotted item.
type ShapeKind string

const (
	ShapeCircle ShapeKind = "circle"
	ShapeRect   ShapeKind = "rect"
)

// Shape is the drawable form of a plotted item.
//
// Circles use Center and Radius, rectangles use Box. Box is always set and is
// the rectangle used for hit testing.
//
// Valid is false when the item has no finite position, which happens once an
// axis is zoomed down to a zero maximum. Its geometry is then zeroed.
type Shape struct {
	Index  int       `json:"index" yaml:"index"`
	Kind   ShapeKind `json:"kind" yaml:"kind"`
	Center Vec       `json:"center" yaml:"center"`
	Radius float64   `json:"radius,omitempty" yaml:"radius,omitempty"`
	Box    Rect      `json:"box" yaml:"box"`
	Active bool      `json:"active" yaml:"active"`
	Valid  bool      `json:"valid" yaml:"valid"`
}

// InfoBlock is the aggregate text shown for the active items.
type InfoBlock struct {
	X        float64  `json:"x" yaml:"x"`
	Y        float64  `json:"y" yaml:"y"`
	FontSize float64  `json:"fontSize" yaml:"fontSize"`
	Lines    []string `json:"lines" yaml:"lines"`
}

// Frame is everything a renderer needs to draw one chart state.
//
// It holds pure data only. Optional primitives are nil when absent.
type Frame struct {
	Width      float64     `json:"width" yaml:"width"`
	Height     float64     `json:"height" yaml:"height"`
	Generation uint64      `json:"generation" yaml:"generation"`
	Domain     Domain      `json:"domain" yaml:"domain"`
	Origin     Vec         `json:"origin" yaml:"origin"`
	Axes       []Line      `json:"axes" yaml:"axes"`
	XDivides   []Divide    `json:"xDivides" yaml:"xDivides"`
	YDivides   []Divide    `json:"yDivides" yaml:"yDivides"`
	Milestones []Milestone `json:"milestones,omitempty" yaml:"milestones,omitempty"`
	Items      []Shape     `json:"items" yaml:"items"`
	Connectors []Line      `json:"connectors,omitempty" yaml:"connectors,omitempty"`
	Reference  *Line       `json:"reference,omitempty" yaml:"reference,omitempty"`
	Selection  *Rect       `json:"selection,omitempty" yaml:"selection,omitempty"`
	Info       *InfoBlock  `json:"info,omitempty" yaml:"info,omitempty"`
}

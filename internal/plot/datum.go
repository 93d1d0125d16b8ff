package plot

// Datum is one input value of a chart: either a ValuePoint or a
// ValueInterval.
type Datum interface {
	// XSpan returns the lowest and highest x covered by the datum.
	XSpan() (float64, float64)
	// YValue returns the datum's y.
	YValue() float64

	isDatum()
}

// ValuePoint is a single (x, y) sample.
type ValuePoint struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

func (p ValuePoint) XSpan() (float64, float64) { return p.X, p.X }
func (p ValuePoint) YValue() float64 { return p.Y }
func (ValuePoint) isDatum() {}

// ValueInterval is an x interval with a y value, drawn as a pillar.
//
// X1 <= X2 is required.
type ValueInterval struct {
	X1 float64 `json:"x1" yaml:"x1"`
	X2 float64 `json:"x2" yaml:"x2"`
	Y  float64 `json:"y" yaml:"y"`
}

func (iv ValueInterval) XSpan() (float64, float64) { return iv.X1, iv.X2 }
func (iv ValueInterval) YValue() float64 { return iv.Y }
func (ValueInterval) isDatum() {}

// Length is the width of the interval on the x axis.
func (iv ValueInterval) Length() float64 { return iv.X2 - iv.X1 }

// DataBounds returns the largest x and y over data, used as the natural
// unzoomed domain. Empty input yields a zero domain.
func DataBounds(data []Datum) Domain {
	var d Domain
	for i, datum := range data {
		_, x2 := datum.XSpan()
		y := datum.YValue()
		if i == 0 || x2 > d.XMax {
			d.XMax = x2
		}
		if i == 0 || y > d.YMax {
			d.YMax = y
		}
	}
	return d
}

// AxisValues returns the coordinates of data along axis. Intervals
// contribute both of their ends on the x axis.
func AxisValues(data []Datum, axis Axis) []float64 {
	values := make([]float64, 0, len(data))
	for _, datum := range data {
		switch axis {
		case AxisX:
			switch d := datum.(type) {
			case ValuePoint:
				values = append(values, d.X)
			case ValueInterval:
				values = append(values, d.X1, d.X2)
			}
		case AxisY:
			values = append(values, datum.YValue())
		}
	}
	return values
}

package plot

import "math"

// DivideParams describes one axis for divide generation.
type DivideParams struct {
	Axis  Axis
	Range AxisRange
	Steps int

	// Length is the pixel length of the axis.
	Length float64

	// OriginX and OriginY locate the chart origin on the surface.
	OriginX float64
	OriginY float64

	Spacing      float64
	FontSize     float64
	DivideLength float64
	Precision    int

	// LabelWidths are measured label widths from a previous pass, in divide
	// order. Missing entries count as zero.
	LabelWidths []float64
}

// Divide is one tick on an axis together with its label.
type Divide struct {
	Coord float64 `json:"coord" yaml:"coord"`
	Value float64 `json:"value" yaml:"value"`
	Label string  `json:"label" yaml:"label"`
	Tick  Line    `json:"tick" yaml:"tick"`
	Text  Text    `json:"text" yaml:"text"`
}

// DivideSet holds the divides of one axis ordered from the origin outwards.
type DivideSet struct {
	Axis    Axis
	Divides []Divide
}

func (s DivideSet) Coords() []float64 {
	coords := make([]float64, len(s.Divides))
	for i, d := range s.Divides {
		coords[i] = d.Coord
	}
	return coords
}

func (s DivideSet) Values() []float64 {
	values := make([]float64, len(s.Divides))
	for i, d := range s.Divides {
		values[i] = d.Value
	}
	return values
}

func (s DivideSet) Labels() []string {
	labels := make([]string, len(s.Divides))
	for i, d := range s.Divides {
		labels[i] = d.Label
	}
	return labels
}

// GenerateDivides computes Steps evenly spaced divides along an axis.
//
// The origin itself gets no divide. The function is pure, so calling it again
// with measured LabelWidths is the second pass of the label layout.
// Steps <= 0 yields an empty set.
func GenerateDivides(p DivideParams) DivideSet {
	set := DivideSet{Axis: p.Axis}
	if p.Steps <= 0 {
		return set
	}

	valueStep := (p.Range.Max - p.Range.Min) / float64(p.Steps)
	pixelStep := p.Length / float64(p.Steps)
	divideOffset := p.DivideLength / 2

	set.Divides = make([]Divide, 0, p.Steps)
	for i := 1; i <= p.Steps; i++ {
		value := p.Range.Min + float64(i)*valueStep
		label := FormatFixed(value, p.Precision)

		var width float64
		if i-1 < len(p.LabelWidths) {
			width = p.LabelWidths[i-1]
		}

		d := Divide{Value: value, Label: label}
		switch p.Axis {
		case AxisX:
			d.Coord = p.OriginX + float64(i)*pixelStep
			d.Tick = Line{
				X1: d.Coord, Y1: p.OriginY + divideOffset,
				X2: d.Coord, Y2: p.OriginY - divideOffset,
			}
			d.Text = Text{
				X:        d.Coord - width/2,
				Y:        p.OriginY + divideOffset + p.Spacing,
				Text:     label,
				Baseline: BaselineHanging,
			}
		case AxisY:
			d.Coord = p.OriginY - float64(i)*pixelStep
			d.Tick = Line{
				X1: p.OriginX - divideOffset, Y1: d.Coord,
				X2: p.OriginX + divideOffset, Y2: d.Coord,
			}
			d.Text = Text{
				X:        p.OriginX - divideOffset - p.Spacing - width,
				Y:        d.Coord,
				Text:     label,
				Baseline: BaselineMiddle,
			}
		}
		set.Divides = append(set.Divides, d)
	}

	return set
}

// LayoutDivides runs the two-pass divide layout: generate with the given
// widths, measure the labels, and regenerate with the measured widths.
//
// Measured widths are rounded to whole pixels.
func LayoutDivides(p DivideParams, measurer TextMeasurer) (DivideSet, []float64) {
	first := GenerateDivides(p)
	if measurer == nil || len(first.Divides) == 0 {
		return first, p.LabelWidths
	}

	widths := measurer.MeasureLabels(first.Labels(), p.FontSize)
	rounded := make([]float64, len(widths))
	for i, w := range widths {
		rounded[i] = math.Round(w)
	}

	p.LabelWidths = rounded
	return GenerateDivides(p), rounded
}

// MaxWidth returns the largest width, or 0 for none.
func MaxWidth(widths []float64) float64 {
	var widest float64
	for _, w := range widths {
		widest = math.Max(widest, w)
	}
	return widest
}

// LastWidth returns the final width, or 0 for none.
func LastWidth(widths []float64) float64 {
	if len(widths) == 0 {
		return 0
	}
	return widths[len(widths)-1]
}

package plot

import "fmt"

// MilestoneMode selects where the milestones of an axis come from.
type MilestoneMode int

const (
	MilestonesNone MilestoneMode = iota
	// MilestonesValues places one milestone per visible datum coordinate.
	MilestonesValues
	// MilestonesDivides places one milestone per axis divide.
	MilestonesDivides
	// MilestonesExplicit places one milestone per configured value.
	MilestonesExplicit
)

// MilestoneSource is the milestone configuration of one axis.
type MilestoneSource struct {
	Mode   MilestoneMode
	Values []float64
}

func (s MilestoneSource) String() string {
	switch s.Mode {
	case MilestonesValues:
		return "values"
	case MilestonesDivides:
		return "divides"
	case MilestonesExplicit:
		return fmt.Sprintf("%v", s.Values)
	default:
		return "none"
	}
}

// milestonePrecision is the number of decimals compared by the
// exclusion policy.
const milestonePrecision = 3

// MilestoneParams describes the axis a milestone is placed on.
type MilestoneParams struct {
	Axis   Axis
	Origin float64
	Length float64
	Min    float64
	Max    float64

	// CrossFrom and CrossTo span the line on the opposite axis.
	CrossFrom float64
	CrossTo   float64
}

// Milestone is a marker line across the plotting surface at Value.
type Milestone struct {
	Axis  Axis    `json:"axis" yaml:"axis"`
	Coord float64 `json:"coord" yaml:"coord"`
	Value float64 `json:"value" yaml:"value"`
	Line  Line    `json:"line" yaml:"line"`
}

// Includes reports whether value passes the exclusion policy: after
// rounding everything to 3 decimals, the value must be in (Min, Max].
func (p MilestoneParams) Includes(value float64) bool {
	v := RoundTo(value, milestonePrecision)
	return v > RoundTo(p.Min, milestonePrecision) &&
		v <= RoundTo(p.Max, milestonePrecision)
}

// Place maps value onto the axis and returns its milestone, or false if
// the value is excluded.
func (p MilestoneParams) Place(value float64) (Milestone, bool) {
	return p.PlaceAt(value, ToPixel(p.Origin, p.Length, value, p.Max))
}

// PlaceAt is like Place but uses an already computed coordinate.
func (p MilestoneParams) PlaceAt(value, coord float64) (Milestone, bool) {
	if !p.Includes(value) {
		return Milestone{}, false
	}

	m := Milestone{Axis: p.Axis, Coord: coord, Value: value}
	switch p.Axis {
	case AxisX:
		m.Line = Line{X1: coord, Y1: p.CrossFrom, X2: coord, Y2: p.CrossTo}
	case AxisY:
		m.Line = Line{X1: p.CrossFrom, Y1: coord, X2: p.CrossTo, Y2: coord}
	}
	return m, true
}

// GenerateMilestones produces the milestones of one axis from its source.
//
// values are the visible data coordinates on the axis and divides the
// axis divides; each is used only by its matching mode.
func GenerateMilestones(
	src MilestoneSource,
	p MilestoneParams,
	values []float64,
	divides DivideSet,
) []Milestone {
	var out []Milestone
	add := func(m Milestone, ok bool) {
		if ok {
			out = append(out, m)
		}
	}

	switch src.Mode {
	case MilestonesValues:
		for _, v := range values {
			add(p.Place(v))
		}
	case MilestonesDivides:
		for _, d := range divides.Divides {
			add(p.PlaceAt(d.Value, d.Coord))
		}
	case MilestonesExplicit:
		for _, v := range src.Values {
			add(p.Place(v))
		}
	}

	return out
}

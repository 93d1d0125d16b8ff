package plot

// Axis identifies one of the two chart axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return "unknown"
	}
}

// MarshalText lets axes appear as "x" and "y" in exported frames.
func (a Axis) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// AxisRange is a closed value range. Min < Max is a precondition for every
// function taking one.
type AxisRange struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// ToPixel maps a value in [0, maxValue] onto [origin, origin+length].
//
// A negative length flips the axis (used for y, which grows upwards).
// maxValue == 0 is a caller error and yields a non-finite result.
func ToPixel(origin, length, value, maxValue float64) float64 {
	return origin + length*(value/maxValue)
}

// ToValue is the inverse of ToPixel.
func ToValue(origin, length, pixel, maxValue float64) float64 {
	return (pixel - origin) / length * maxValue
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

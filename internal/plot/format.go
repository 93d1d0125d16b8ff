package plot

import (
	"math"
	"strconv"
)

// RoundTo rounds v half away from zero to the given number of decimals.
//
// Negative precisions are treated as 0.
func RoundTo(v float64, precision int) float64 {
	if precision < 0 {
		precision = 0
	}
	p := math.Pow10(precision)
	scaled := v * p
	if math.IsInf(scaled, 0) && !math.IsInf(v, 0) {
		// Finite values this large have no fractional digits.
		return v
	}
	return math.Round(scaled) / p
}

// FormatFixed formats v as a fixed-point decimal with exactly precision
// digits after the point.
//
// Non-finite values are formatted as "NaN", "+Inf" and "-Inf" so a degenerate
// domain shows up in labels instead of panicking.
func FormatFixed(v float64, precision int) string {
	if precision < 0 {
		precision = 0
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	r := RoundTo(v, precision)
	if r == 0 {
		// Collapse -0 so "-0.00" is never shown.
		r = 0
	}
	return strconv.FormatFloat(r, 'f', precision, 64)
}

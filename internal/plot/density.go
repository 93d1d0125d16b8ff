package plot

import "math"

// DensityParams configures Density.
type DensityParams struct {
	Width  float64
	Height float64
	Domain Domain

	// XInterval and YInterval restrict the measured region in value space.
	// Nil means the whole axis.
	XInterval *AxisRange
	YInterval *AxisRange
}

// Density is the number of points per unit of surface area inside the
// region selected by p. Interval data are counted by their x span start.
func Density(data []Datum, p DensityParams) float64 {
	count := 0
	for _, datum := range data {
		x, _ := datum.XSpan()
		y := datum.YValue()
		if p.XInterval != nil && (x < p.XInterval.Min || x > p.XInterval.Max) {
			continue
		}
		if p.YInterval != nil && (y < p.YInterval.Min || y > p.YInterval.Max) {
			continue
		}
		count++
	}

	xr := AxisRange{Min: 0, Max: p.Domain.XMax}
	if p.XInterval != nil {
		xr = *p.XInterval
	}
	yr := AxisRange{Min: 0, Max: p.Domain.YMax}
	if p.YInterval != nil {
		yr = *p.YInterval
	}

	w := p.Width*(xr.Max/p.Domain.XMax) - p.Width*(xr.Min/p.Domain.XMax)
	h := p.Height*(yr.Max/p.Domain.YMax) - p.Height*(yr.Min/p.Domain.YMax)
	return float64(count) / (w * h)
}

// DensityPopulated is the number of points per unit of surface area inside
// the region from the smallest coordinates of data to the far edges.
//
// Returns NaN for no data.
func DensityPopulated(data []Datum, width, height float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}

	minX, _ := data[0].XSpan()
	maxX, minY, maxY := minX, data[0].YValue(), data[0].YValue()
	for _, datum := range data[1:] {
		x, _ := datum.XSpan()
		y := datum.YValue()
		minX = math.Min(minX, x)
		maxX = math.Max(maxX, x)
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}

	w := width - width*(minX/maxX)
	h := height - height*(minY/maxY)
	return float64(len(data)) / (w * h)
}

// PercentageOffset returns by how many percent a exceeds b.
func PercentageOffset(a, b float64) float64 {
	return a/b*100 - 100
}

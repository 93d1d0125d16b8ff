package plot_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wandb/leetplot/internal/plot"
)

func TestToPixel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 60.0, plot.ToPixel(10, 100, 1, 2))
	// Negative length flips the axis.
	assert.Equal(t, 250.0, plot.ToPixel(300, -200, 1, 4))
	assert.Equal(t, 10.0, plot.ToPixel(10, 100, 0, 2))
}

func TestToPixel_DegenerateDomainIsNotFinite(t *testing.T) {
	t.Parallel()

	assert.True(t, math.IsInf(plot.ToPixel(0, 100, 1, 0), 1))
	assert.True(t, math.IsNaN(plot.ToPixel(0, 100, 0, 0)))
}

func TestCoordinateRoundTrip(t *testing.T) {
	t.Parallel()

	axes := []struct {
		origin, length, maxValue float64
	}{
		{20, 375, 3},
		{280, -255, 4},
		{0, 1, 1e6},
		{5.5, -0.25, 0.001},
	}

	for _, axis := range axes {
		for i := 1; i <= 100; i++ {
			value := axis.maxValue * float64(i) / 100
			pixel := plot.ToPixel(axis.origin, axis.length, value, axis.maxValue)
			got := plot.ToValue(axis.origin, axis.length, pixel, axis.maxValue)
			assert.InDelta(t, value, got, 1e-9*math.Max(1, axis.maxValue))
		}
	}
}

func TestAxisString(t *testing.T) {
	t.Parallel()

	text, err := plot.AxisY.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "y", string(text))
	assert.Equal(t, "x", plot.AxisX.String())
}

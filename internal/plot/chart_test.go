package plot_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wandb/leetplot/internal/observabilitytest"
	"github.com/wandb/leetplot/internal/plot"
)

// fixedWidth measures every label as 10 units wide.
var fixedWidth = plot.MeasurerFunc(func(string, float64) float64 { return 10 })

func ptr(v float64) *float64 { return &v }

// newTestChart lays out a 400x300 chart whose grid is 375x255 with its
// origin at (20, 280).
func newTestChart(t *testing.T, data []plot.Datum) *plot.Chart {
	t.Helper()

	opts := plot.Options{
		Width:        400,
		Height:       300,
		XSteps:       3,
		YSteps:       4,
		DivideLength: 10,
		Spacing:      5,
		FontSize:     10,
		InfoFontSize: 10,
		ZoomXStep:    1,
		ZoomYStep:    1,
		XMaxValue:    ptr(3),
		YMaxValue:    ptr(4),
		PointRadius:  3,
	}
	c := plot.NewChart(opts, fixedWidth, observabilitytest.NewTestLogger(t))
	c.SetData(data)
	return c
}

func scenarioData() []plot.Datum {
	return []plot.Datum{
		plot.ValuePoint{X: 1, Y: 2},
		plot.ValuePoint{X: 2, Y: 4},
		plot.ValuePoint{X: 3, Y: 1},
	}
}

func TestChart_Layout(t *testing.T) {
	t.Parallel()

	c := newTestChart(t, scenarioData())
	l := c.Layout()

	assert.Equal(t, 5.0, l.DivideOffset)
	assert.Equal(t, 20.0, l.XOffset)
	assert.Equal(t, 25.0, l.TopOffset)
	assert.Equal(t, 20.0, l.BottomOffset)
	assert.Equal(t, 375.0, l.GridWidth)
	assert.Equal(t, 255.0, l.GridHeight)
	assert.Equal(t, plot.Vec{X: 20, Y: 280}, l.Origin)
	assert.Equal(t, []float64{145, 270, 395}, l.XDivides.Coords())
	assert.Equal(t, []string{"1", "2", "3"}, l.XDivides.Labels())
	assert.Len(t, l.YDivides.Divides, 4)
}

func TestChart_EndToEnd(t *testing.T) {
	t.Parallel()

	c := newTestChart(t, scenarioData())
	l := c.Layout()

	// (2, 4) sits at the top of the grid.
	top := c.Items().Items[1]
	assertRectInDelta(t, plot.Rect{X1: 267, X2: 273, Y1: 22, Y2: 28}, top.Box)
	assert.Equal(t, l.YEnd(), (top.Box.Y1+top.Box.Y2)/2)

	c.PointerDown(260, 15)
	c.PointerMove(280, 35)
	assert.True(t, c.Dragging())
	c.PointerUp(280, 35, false)

	active := c.Active()
	require.Len(t, active, 1)
	assert.Equal(t, 1, active[0].Index)

	stats, ok := c.ActiveStats()
	require.True(t, ok)
	assert.Equal(t, plot.Stats{Count: 1, Min: 4, Max: 4, Sum: 4, Avg: 4}, stats)
	assert.Nil(t, stats.Diff)

	// Zooming in at that point keeps yMax within [0, 4] and regenerates.
	gen := c.Generation()
	require.True(t, c.Wheel(-1, 270, 25))
	d := c.Domain()
	assert.Equal(t, 4.0, d.YMax)
	assert.InDelta(t, 3-(1-250.0/395), d.XMax, 1e-9)
	assert.Greater(t, c.Generation(), gen)
	assert.Empty(t, c.Active(), "regeneration clears the selection")
	assert.Len(t, c.Visible(), 2)

	for i := 0; i < 50; i++ {
		c.Wheel(-1, 270, 25)
		assert.GreaterOrEqual(t, c.Domain().XMax, 0.0)
		assert.GreaterOrEqual(t, c.Domain().YMax, 0.0)
	}

	assert.True(t, c.ResetZoom())
	assert.Equal(t, plot.Domain{XMax: 3, YMax: 4}, c.Domain())
	assert.False(t, c.ResetZoom())
}

func TestChart_ClickSemantics(t *testing.T) {
	t.Parallel()

	c := newTestChart(t, scenarioData())
	center := func(i int) (float64, float64) {
		box := c.Items().Items[i].Box
		return (box.X1 + box.X2) / 2, (box.Y1 + box.Y2) / 2
	}

	x, y := center(0)
	c.PointerDown(x, y)
	c.PointerUp(x, y, false)
	assert.Equal(t, []int{0}, activeIndices(c))

	x, y = center(2)
	c.PointerDown(x, y)
	c.PointerUp(x, y, true)
	assert.Equal(t, []int{0, 2}, activeIndices(c))
	assert.Equal(t, plot.StateMultiple, c.SelectionState())

	require.NoError(t, c.Click(2, true))
	assert.Equal(t, []int{0}, activeIndices(c))

	require.NoError(t, c.Click(0, false))
	assert.Empty(t, activeIndices(c))

	assert.Error(t, c.Click(9, false))

	c.SelectAll()
	assert.Equal(t, []int{0, 1, 2}, activeIndices(c))

	// Releasing over the background clears.
	c.PointerDown(30, 270)
	c.PointerUp(30, 270, false)
	assert.Empty(t, activeIndices(c))
}

func TestChart_Frame(t *testing.T) {
	t.Parallel()

	c := newTestChart(t, scenarioData())
	opts := c.Options()
	opts.ConnectPoints = true
	opts.XMilestones = plot.MilestoneSource{Mode: plot.MilestonesDivides}
	opts.YMilestones = plot.MilestoneSource{Mode: plot.MilestonesExplicit, Values: []float64{2, 5}}
	c.SetOptions(opts)

	require.NoError(t, c.Click(1, false))
	c.Hover(270, 25)

	f := c.Frame()
	assert.Equal(t, c.Generation(), f.Generation)
	assert.Len(t, f.Axes, 2)
	assert.Len(t, f.XDivides, 3)
	assert.Len(t, f.YDivides, 4)
	require.Len(t, f.Items, 3)
	assert.True(t, f.Items[1].Active)
	assert.False(t, f.Items[0].Active)
	assert.Equal(t, plot.ShapeCircle, f.Items[0].Kind)
	assert.InDelta(t, 3.0, f.Items[0].Radius, 1e-9)

	// 3 divide milestones on x, and y=2 (y=5 is out of range).
	assert.Len(t, f.Milestones, 4)

	require.Len(t, f.Connectors, 3)
	assert.Equal(t, 20.0, f.Connectors[0].X1)
	assert.Equal(t, 280.0, f.Connectors[0].Y1)
	assert.Equal(t, f.Items[0].Center.Y, f.Connectors[0].Y2)
	assert.Less(t, f.Connectors[0].Y2, 280.0, "points above the x axis")

	require.NotNil(t, f.Reference)
	assert.Equal(t, plot.Line{X1: 20, Y1: 25, X2: 395, Y2: 25}, *f.Reference)

	require.NotNil(t, f.Info)
	assert.Equal(t, []string{"x: 2", "y: 4"}, f.Info.Lines)
	assert.Equal(t, 30.0, f.Info.X)
	assert.Equal(t, 0.0, f.Info.Y)

	assert.Nil(t, f.Selection)
}

func TestChart_Intervals(t *testing.T) {
	t.Parallel()

	c := newTestChart(t, []plot.Datum{
		plot.ValueInterval{X1: 0, X2: 1, Y: 2},
		plot.ValueInterval{X1: 1.5, X2: 3, Y: 4},
	})

	box := c.Items().Items[0].Box
	assertRectInDelta(t, plot.Rect{X1: 20, X2: 145, Y1: 152.5, Y2: 280}, box)

	c.SelectAll()
	f := c.Frame()
	assert.Equal(t, plot.ShapeRect, f.Items[0].Kind)
	require.NotNil(t, f.Info)
	assert.Equal(t, []string{
		"x: Min: 1, Max: 2, Avg: 1, Sum: 3, diff: 1",
		"y: Min: 2, Max: 4, Avg: 3, Sum: 6, diff: 2",
	}, f.Info.Lines)
}

func TestChart_ResizeStartsNewGeneration(t *testing.T) {
	t.Parallel()

	c := newTestChart(t, scenarioData())
	c.SelectAll()
	gen := c.Generation()

	c.Resize(400, 300)
	assert.Equal(t, gen, c.Generation(), "same size is a no-op")

	c.Resize(800, 600)
	assert.Greater(t, c.Generation(), gen)
	assert.Empty(t, c.Active())
}

func assertRectInDelta(t *testing.T, want, got plot.Rect) {
	t.Helper()
	assert.InDelta(t, want.X1, got.X1, 1e-9)
	assert.InDelta(t, want.X2, got.X2, 1e-9)
	assert.InDelta(t, want.Y1, got.Y1, 1e-9)
	assert.InDelta(t, want.Y2, got.Y2, 1e-9)
}

func activeIndices(c *plot.Chart) []int {
	return indices(c.Active())
}

func TestChart_FrameAtZeroDomain(t *testing.T) {
	t.Parallel()

	c := newTestChart(t, append([]plot.Datum{plot.ValuePoint{X: 0, Y: 0}}, scenarioData()...))
	opts := c.Options()
	opts.ConnectPoints = true
	c.SetOptions(opts)

	// Zooming in at the bottom left corner drives both maxima to 0.
	for i := 0; i < 10; i++ {
		c.Wheel(-1, 20, 280)
	}
	require.Equal(t, plot.Domain{}, c.Domain())
	require.Len(t, c.Visible(), 1)

	c.SelectAll()
	f := c.Frame()
	require.Len(t, f.Items, 1)
	assert.False(t, f.Items[0].Valid)
	assert.Equal(t, plot.ShapeCircle, f.Items[0].Kind)
	assert.Equal(t, plot.Rect{}, f.Items[0].Box)
	assert.Equal(t, plot.Vec{}, f.Items[0].Center)
	assert.Empty(t, f.Connectors)

	_, err := json.Marshal(f)
	assert.NoError(t, err)
}

func TestChart_SelectionChangesLogNoErrors(t *testing.T) {
	t.Parallel()

	logger, logs := observabilitytest.NewRecordingTestLogger(t)
	c := plot.NewChart(newTestChart(t, nil).Options(), fixedWidth, logger)
	c.SetData(scenarioData())

	c.PointerDown(260, 15)
	c.PointerMove(280, 35)
	c.PointerUp(280, 35, false)
	c.SelectAll()
	c.Wheel(-1, 270, 25)
	c.SelectAll()
	box := c.Items().Items[0].Box
	c.PointerDown(box.X1, box.Y1)
	c.PointerUp(box.X1, box.Y1, true)

	for _, record := range observabilitytest.ExtractLogs(t, logs) {
		assert.NotEqual(t, "ERROR", record["level"], record["msg"])
	}
}

func TestChart_ZeroWheelDeltaIsIgnored(t *testing.T) {
	t.Parallel()

	c := newTestChart(t, scenarioData())
	gen := c.Generation()

	assert.False(t, c.Wheel(0, 200, 150))
	assert.Equal(t, plot.Domain{XMax: 3, YMax: 4}, c.Domain())
	assert.Equal(t, gen, c.Generation())
}

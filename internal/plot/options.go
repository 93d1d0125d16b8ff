package plot

// Options configures a Chart.
type Options struct {
	Width  float64
	Height float64

	XSteps int
	YSteps int

	DivideLength float64
	Spacing      float64
	FontSize     float64
	InfoFontSize float64

	// ZoomXStep and ZoomYStep are the value deltas of one wheel notch at
	// full scale. Zero disables zoom on that axis.
	ZoomXStep float64
	ZoomYStep float64

	XPrecision     int
	YPrecision     int
	InfoXPrecision int
	InfoYPrecision int

	// XMaxValue and YMaxValue override the data-derived axis maxima.
	XMaxValue *float64
	YMaxValue *float64

	XMilestones MilestoneSource
	YMilestones MilestoneSource

	// PointRadius is the radius of a point at zero zoom.
	PointRadius float64

	// ConnectPoints draws a polyline from the origin through the points.
	ConnectPoints bool
}

// DefaultOptions returns options for a 600x400 surface.
func DefaultOptions() Options {
	return Options{
		Width:        600,
		Height:       400,
		XSteps:       5,
		YSteps:       5,
		DivideLength: 10,
		Spacing:      5,
		FontSize:     12,
		InfoFontSize: 12,
		ZoomXStep:    1,
		ZoomYStep:    1,
		PointRadius:  3,
	}
}

// initialDomain is the unzoomed domain for data under these options.
func (o Options) initialDomain(data []Datum) Domain {
	d := DataBounds(data)
	if o.XMaxValue != nil {
		d.XMax = *o.XMaxValue
	}
	if o.YMaxValue != nil {
		d.YMax = *o.YMaxValue
	}
	return d
}

package plot

// Stats summarizes a sequence of values.
type Stats struct {
	Count int
	Min   float64
	Max   float64
	Sum   float64
	Avg   float64

	// Diff is Max-Min, set only for exactly two values.
	Diff *float64
}

// Aggregate reduces values to their Stats. It returns false for no values.
func Aggregate(values []float64) (Stats, bool) {
	if len(values) == 0 {
		return Stats{}, false
	}

	s := Stats{
		Count: len(values),
		Min:   values[0],
		Max:   values[0],
	}
	for _, v := range values {
		s.Min = min(s.Min, v)
		s.Max = max(s.Max, v)
		s.Sum += v
	}
	s.Avg = s.Sum / float64(s.Count)

	if s.Count == 2 {
		diff := s.Max - s.Min
		s.Diff = &diff
	}

	return s, true
}

package plot

import (
	"fmt"
	"strings"
)

// InfoLines describes the active items as text, one string per line.
//
// A single point or interval is shown as is. Several items are summarized
// with Aggregate over their y values; intervals additionally summarize their
// lengths. Mixed kinds are summarized by the first item's kind.
func InfoLines(items []PlottedItem, xPrecision, yPrecision int) []string {
	if len(items) == 0 {
		return nil
	}

	if len(items) == 1 {
		switch d := items[0].Datum.(type) {
		case ValuePoint:
			return []string{
				"x: " + FormatFixed(d.X, xPrecision),
				"y: " + FormatFixed(d.Y, yPrecision),
			}
		case ValueInterval:
			return []string{
				fmt.Sprintf("x: span: %s - %s, length: %s",
					FormatFixed(d.X1, xPrecision),
					FormatFixed(d.X2, xPrecision),
					FormatFixed(d.Length(), xPrecision)),
				"y: " + FormatFixed(d.Y, yPrecision),
			}
		}
		return nil
	}

	ys := make([]float64, 0, len(items))
	var lengths []float64
	for _, item := range items {
		ys = append(ys, item.Datum.YValue())
		if iv, ok := item.Datum.(ValueInterval); ok {
			lengths = append(lengths, iv.Length())
		}
	}

	yStats, _ := Aggregate(ys)
	yLine := "y: " + FormatStats(yStats, yPrecision)

	if _, ok := items[0].Datum.(ValueInterval); ok {
		xStats, _ := Aggregate(lengths)
		return []string{"x: " + FormatStats(xStats, xPrecision), yLine}
	}
	return []string{yLine}
}

// FormatStats renders s as "Min: .., Max: .., Avg: .., Sum: ..[, diff: ..]".
func FormatStats(s Stats, precision int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Min: %s, Max: %s, Avg: %s, Sum: %s",
		FormatFixed(s.Min, precision),
		FormatFixed(s.Max, precision),
		FormatFixed(s.Avg, precision),
		FormatFixed(s.Sum, precision))
	if s.Diff != nil {
		fmt.Fprintf(&b, ", diff: %s", FormatFixed(*s.Diff, precision))
	}
	return b.String()
}

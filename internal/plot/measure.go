package plot

import (
	"strconv"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru"
)

//go:generate mockgen -package=plotmock -source=measure.go -destination=plotmock/measure.go

// TextMeasurer reports the rendered widths of labels.
//
// Widths are returned in the same order as labels, in surface units.
type TextMeasurer interface {
	MeasureLabels(labels []string, fontSize float64) []float64
}

// MeasurerFunc adapts a per-label width function to TextMeasurer.
type MeasurerFunc func(label string, fontSize float64) float64

func (f MeasurerFunc) MeasureLabels(labels []string, fontSize float64) []float64 {
	widths := make([]float64, len(labels))
	for i, label := range labels {
		widths[i] = f(label, fontSize)
	}
	return widths
}

// CharWidthMeasurer estimates a label as half the font size per character.
//
// It is the measurer used when no real text metrics are available.
var CharWidthMeasurer = MeasurerFunc(func(label string, fontSize float64) float64 {
	return float64(utf8.RuneCountInString(label)) * fontSize / 2
})

const defaultMeasureCacheSize = 512

// CachedMeasurer memoizes per-label widths of another measurer.
//
// Divide labels repeat across zoom steps, so most lookups are hits.
type CachedMeasurer struct {
	delegate TextMeasurer
	cache    *lru.Cache
}

// NewCachedMeasurer wraps delegate with an LRU cache of the given size.
//
// A size <= 0 uses a default.
func NewCachedMeasurer(delegate TextMeasurer, size int) (*CachedMeasurer, error) {
	if size <= 0 {
		size = defaultMeasureCacheSize
	}
	cache, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &CachedMeasurer{delegate: delegate, cache: cache}, nil
}

func (m *CachedMeasurer) MeasureLabels(labels []string, fontSize float64) []float64 {
	widths := make([]float64, len(labels))

	var missing []string
	var missingIdx []int
	for i, label := range labels {
		if w, ok := m.cache.Get(cacheKey(label, fontSize)); ok {
			widths[i] = w.(float64)
			continue
		}
		missing = append(missing, label)
		missingIdx = append(missingIdx, i)
	}

	if len(missing) == 0 {
		return widths
	}

	measured := m.delegate.MeasureLabels(missing, fontSize)
	for j, i := range missingIdx {
		var w float64
		if j < len(measured) {
			w = measured[j]
		}
		widths[i] = w
		m.cache.Add(cacheKey(labels[i], fontSize), w)
	}
	return widths
}

func cacheKey(label string, fontSize float64) string {
	return strconv.FormatFloat(fontSize, 'g', -1, 64) + "\x00" + label
}

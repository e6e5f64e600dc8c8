package layoutmd

import (
	"math"
	"sort"
	"strings"
)

// median returns the median of a numeric sequence: the middle value, or
// the average of the two middle values for an even count. Empty input
// returns 0.
func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// normalizeWhitespace collapses runs of whitespace to single spaces and
// trims both ends.
func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// mergeBBox returns the bounding box covering both boxes.
func mergeBBox(a, b BBox) BBox {
	return BBox{
		X0:     math.Min(a.X0, b.X0),
		Top:    math.Min(a.Top, b.Top),
		X1:     math.Max(a.X1, b.X1),
		Bottom: math.Max(a.Bottom, b.Bottom),
	}
}

package layoutmd

import (
	"math"
	"sort"
)

// groupCharsIntoLines clusters a page's characters into ordered lines.
//
// Characters are first sorted by (top, x0) so that lines come out
// top-to-bottom. The scan keeps a running average of the current line's
// vertical centers; a character whose own center deviates from that
// average by more than tolerance starts a new line. On close, each
// line's characters are sorted left to right.
func groupCharsIntoLines(chars []Char, tolerance float64) []Line {
	if len(chars) == 0 {
		return nil
	}

	sorted := make([]Char, len(chars))
	copy(sorted, chars)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Top != sorted[j].Top {
			return sorted[i].Top < sorted[j].Top
		}
		return sorted[i].X0 < sorted[j].X0
	})

	var (
		lines     []Line
		current   []Char
		centerSum float64
	)
	for _, c := range sorted {
		if len(current) == 0 {
			current = []Char{c}
			centerSum = c.centerY()
			continue
		}

		avgCenter := centerSum / float64(len(current))
		if math.Abs(c.centerY()-avgCenter) <= tolerance {
			current = append(current, c)
			centerSum += c.centerY()
		} else {
			lines = append(lines, closeLine(current))
			current = []Char{c}
			centerSum = c.centerY()
		}
	}
	lines = append(lines, closeLine(current))

	return lines
}

// closeLine finalizes a line by ordering its characters left to right.
func closeLine(chars []Char) Line {
	sort.SliceStable(chars, func(i, j int) bool {
		return chars[i].X0 < chars[j].X0
	})
	return Line{Chars: chars}
}

package layoutmd

import "math"

// FontProfile is a histogram of rounded font sizes across an entire
// document. It is built once, before any page is rendered, and is
// read-only afterwards, so it is safe to share between pages rendered
// concurrently.
//
// Counting is insertion-ordered: when two sizes occur equally often,
// the one observed first wins the body-size election. This keeps the
// heading heuristics deterministic for documents with flat size
// distributions.
type FontProfile struct {
	order  []float64
	counts map[float64]int
}

// NewFontProfile returns an empty profile.
func NewFontProfile() *FontProfile {
	return &FontProfile{counts: make(map[float64]int)}
}

// roundSize rounds a font size to one decimal place so that near-equal
// sizes (11.98, 12.04) share a histogram bucket.
func roundSize(size float64) float64 {
	return math.Round(size*10) / 10
}

// Observe counts one character. Characters without a size are ignored.
func (p *FontProfile) Observe(c Char) {
	if !c.HasSize {
		return
	}
	p.Add(c.Size)
}

// Add counts one occurrence of the given size after rounding.
func (p *FontProfile) Add(size float64) {
	rounded := roundSize(size)
	if _, seen := p.counts[rounded]; !seen {
		p.order = append(p.order, rounded)
	}
	p.counts[rounded]++
}

// Count returns the number of occurrences recorded for the rounded
// bucket containing size.
func (p *FontProfile) Count(size float64) int {
	return p.counts[roundSize(size)]
}

// Empty reports whether no sized character has been observed.
func (p *FontProfile) Empty() bool {
	return len(p.order) == 0
}

// BodySize returns the most frequent rounded size, the document's
// normal paragraph text size. The second return value is false for an
// empty profile.
func (p *FontProfile) BodySize() (float64, bool) {
	if len(p.order) == 0 {
		return 0, false
	}
	best := p.order[0]
	for _, size := range p.order[1:] {
		if p.counts[size] > p.counts[best] {
			best = size
		}
	}
	return best, true
}

// BuildFontProfile runs the first conversion pass: one sweep over every
// character of every page. Page rendering must not start before this
// returns, since body size is a whole-document statistic.
func BuildFontProfile(pages []PageInput) *FontProfile {
	profile := NewFontProfile()
	for _, page := range pages {
		for _, c := range page.Chars {
			profile.Observe(c)
		}
	}
	return profile
}

package layoutmd

import (
	"strings"
	"unicode/utf8"
)

// headingSizeFactor is the minimum ratio of a line's dominant size to
// the document body size for the line to qualify as a heading.
const headingSizeFactor = 1.1

// maxHeadingLength is the length (in runes) under which a line counts
// as "short" for heading classification.
const maxHeadingLength = 100

// isHeading decides whether a line with the given dominant size and
// normalized text should be rendered as a heading.
//
// The heuristic: the line's size must be at least headingSizeFactor
// times the body size, strictly larger than the body size, and the text
// must be short or free of trailing sentence punctuation. With no font
// statistics at all, nothing is a heading.
//
// Note the OR: a short line ending in a comma can still classify as a
// heading. That combination is deliberate and tuned against real
// documents; do not tighten it without re-checking the corpus.
func isHeading(profile *FontProfile, dominantSize float64, text string) bool {
	body, ok := profile.BodySize()
	if !ok {
		return false
	}

	trimmed := strings.TrimSpace(text)
	isLarger := dominantSize >= body*headingSizeFactor
	isShort := utf8.RuneCountInString(trimmed) < maxHeadingLength
	noTrailingPunct := !strings.HasSuffix(trimmed, ".") && !strings.HasSuffix(trimmed, ",")

	return isLarger && dominantSize > body && (isShort || noTrailingPunct)
}

// headingDepth maps a heading's size ratio to a markdown heading level,
// 1 being the most prominent. An unusable body size defaults to level 2.
func headingDepth(profile *FontProfile, dominantSize float64) int {
	body, ok := profile.BodySize()
	if !ok || body <= 0 {
		return 2
	}

	ratio := dominantSize / body
	switch {
	case ratio >= 2.0:
		return 1
	case ratio >= 1.7:
		return 2
	case ratio >= 1.4:
		return 3
	case ratio >= 1.2:
		return 4
	default:
		return 5
	}
}

// renderBlock renders one paragraph block to markdown.
//
// Lines are processed in order: heading lines become their own output
// line ("#" x depth, a space, then the text); consecutive non-heading
// lines accumulate into a paragraph and are joined with single spaces
// when flushed. Whitespace is normalized before any classification and
// lines that normalize to nothing are dropped. The block's output lines
// are joined with a single line break.
func renderBlock(profile *FontProfile, block Block) string {
	var rendered []string
	for _, line := range block.Lines {
		text := normalizeWhitespace(line.Text())
		if text == "" {
			continue
		}

		if size, ok := line.DominantSize(); ok && isHeading(profile, size, text) {
			depth := headingDepth(profile, size)
			rendered = append(rendered, strings.Repeat("#", depth)+" "+text)
		} else {
			rendered = append(rendered, text)
		}
	}

	var (
		parts     []string
		paragraph []string
	)
	for _, item := range rendered {
		if strings.HasPrefix(item, "#") {
			if len(paragraph) > 0 {
				parts = append(parts, strings.Join(paragraph, " "))
				paragraph = nil
			}
			parts = append(parts, item)
		} else {
			paragraph = append(paragraph, item)
		}
	}
	if len(paragraph) > 0 {
		parts = append(parts, strings.Join(paragraph, " "))
	}

	return strings.Join(parts, "\n")
}

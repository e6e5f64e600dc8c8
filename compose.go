package layoutmd

import (
	"sort"
	"strings"
)

// composePage renders one page: text blocks and tables are merged into
// reading order by the top-left corner of their bounding boxes (top of
// page first, then left to right) and joined with blank lines.
//
// This is a best-effort single-column ordering. Multi-column layouts
// are not detected and may interleave across columns; that is a known
// limitation of the position sort, not something this function tries to
// correct.
func composePage(profile *FontProfile, page PageInput, config Config) string {
	var elements []pageElement

	if len(page.Chars) > 0 {
		lines := groupCharsIntoLines(page.Chars, config.LineTolerance)
		blocks := groupLinesIntoBlocks(lines, config.SpacingFactor, config.FallbackLineHeight)
		for _, block := range blocks {
			md := renderBlock(profile, block)
			if strings.TrimSpace(md) == "" {
				continue
			}
			elements = append(elements, pageElement{box: block.BBox(), markdown: md})
		}
	}

	for _, table := range page.Tables {
		md, err := renderTable(table)
		if err != nil {
			// Malformed grids degrade to nothing; a broken table must
			// never abort the page.
			continue
		}
		if strings.TrimSpace(md) == "" {
			continue
		}
		elements = append(elements, pageElement{box: table.BBox(), markdown: md})
	}

	sort.SliceStable(elements, func(i, j int) bool {
		if elements[i].box.Top != elements[j].box.Top {
			return elements[i].box.Top < elements[j].box.Top
		}
		return elements[i].box.X0 < elements[j].box.X0
	})

	parts := make([]string, 0, len(elements))
	for _, el := range elements {
		parts = append(parts, el.markdown)
	}
	return strings.Join(parts, "\n\n")
}

// assembleDocument joins per-page markdown into the final document.
// Empty pages are dropped; the remainder are separated by blank lines,
// in page order. A document with no content anywhere assembles to "".
func assembleDocument(pages []string) string {
	parts := make([]string, 0, len(pages))
	for _, page := range pages {
		if strings.TrimSpace(page) == "" {
			continue
		}
		parts = append(parts, page)
	}
	return strings.Join(parts, "\n\n")
}

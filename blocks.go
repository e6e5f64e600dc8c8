package layoutmd

// medianLineHeight estimates a page's typical line height as the median
// of each line's dominant font size. Lines without any sized character
// contribute nothing; when no line has a size at all, fallback is
// returned.
func medianLineHeight(lines []Line, fallback float64) float64 {
	var heights []float64
	for _, line := range lines {
		if size, ok := line.DominantSize(); ok {
			heights = append(heights, size)
		}
	}
	if len(heights) == 0 {
		return fallback
	}
	return median(heights)
}

// groupLinesIntoBlocks clusters ordered lines into paragraph blocks.
// A vertical gap between consecutive lines larger than
// spacingFactor x medianLineHeight closes the current block. Empty
// lines are skipped; every non-empty line lands in exactly one block,
// in the original order.
func groupLinesIntoBlocks(lines []Line, spacingFactor, fallbackLineHeight float64) []Block {
	if len(lines) == 0 {
		return nil
	}

	threshold := spacingFactor * medianLineHeight(lines, fallbackLineHeight)

	var (
		blocks     []Block
		current    []Line
		prevBottom float64
		havePrev   bool
	)
	for _, line := range lines {
		if len(line.Chars) == 0 {
			continue
		}

		box := line.BBox()
		if havePrev && box.Top-prevBottom > threshold {
			if len(current) > 0 {
				blocks = append(blocks, Block{Lines: current})
			}
			current = nil
		}

		current = append(current, line)
		prevBottom = box.Bottom
		havePrev = true
	}
	if len(current) > 0 {
		blocks = append(blocks, Block{Lines: current})
	}

	return blocks
}

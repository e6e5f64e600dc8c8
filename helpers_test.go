package layoutmd

// charRun builds the characters for a run of text on one line, each
// glyph 5 units wide with height equal to its font size.
func charRun(text string, size, x0, top float64) []Char {
	const width = 5.0
	runes := []rune(text)
	chars := make([]Char, 0, len(runes))
	for i, r := range runes {
		left := x0 + float64(i)*width
		height := size
		if height <= 0 {
			height = 10
		}
		chars = append(chars, Char{
			Text:    string(r),
			Size:    size,
			HasSize: size > 0,
			X0:      left,
			X1:      left + width,
			Top:     top,
			Bottom:  top + height,
		})
	}
	return chars
}

func strPtr(s string) *string {
	return &s
}

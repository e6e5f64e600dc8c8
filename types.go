package layoutmd

// BBox is an axis-aligned bounding box in page coordinates. The origin
// is at the top-left of the page, so Top < Bottom for any visible box.
type BBox struct {
	X0     float64 // Left
	Top    float64 // Upper edge
	X1     float64 // Right
	Bottom float64 // Lower edge
}

// Width returns the width of the box.
func (b BBox) Width() float64 {
	return b.X1 - b.X0
}

// Height returns the height of the box.
func (b BBox) Height() float64 {
	return b.Bottom - b.Top
}

// CenterY returns the vertical center of the box.
func (b BBox) CenterY() float64 {
	return (b.Top + b.Bottom) / 2
}

// Char is a single positioned character produced by the extraction
// collaborator. HasSize is false for glyphs without font information;
// such characters still take part in line and block grouping but are
// excluded from all font statistics.
type Char struct {
	Text    string
	Size    float64
	HasSize bool
	X0      float64
	X1      float64
	Top     float64
	Bottom  float64
}

// centerY returns the vertical center of the character box.
func (c Char) centerY() float64 {
	return (c.Top + c.Bottom) / 2
}

// bbox returns the character's bounding box.
func (c Char) bbox() BBox {
	return BBox{X0: c.X0, Top: c.Top, X1: c.X1, Bottom: c.Bottom}
}

// Line is a horizontal run of characters, sorted left to right.
type Line struct {
	Chars []Char
}

// Text returns the concatenated raw text of the line.
func (l Line) Text() string {
	var out string
	for _, c := range l.Chars {
		out += c.Text
	}
	return out
}

// DominantSize returns the most frequent character size within the
// line. Ties are broken by first occurrence. The second return value is
// false when no character in the line carries a size.
func (l Line) DominantSize() (float64, bool) {
	var (
		order  []float64
		counts = make(map[float64]int)
	)
	for _, c := range l.Chars {
		if !c.HasSize {
			continue
		}
		if _, seen := counts[c.Size]; !seen {
			order = append(order, c.Size)
		}
		counts[c.Size]++
	}
	if len(order) == 0 {
		return 0, false
	}
	best := order[0]
	for _, size := range order[1:] {
		if counts[size] > counts[best] {
			best = size
		}
	}
	return best, true
}

// BBox returns the bounding box covering every character in the line.
func (l Line) BBox() BBox {
	box := l.Chars[0].bbox()
	for _, c := range l.Chars[1:] {
		box = mergeBBox(box, c.bbox())
	}
	return box
}

// Block is a contiguous run of lines forming one paragraph-like unit,
// separated from its neighbors by an above-threshold vertical gap.
type Block struct {
	Lines []Line
}

// BBox returns the bounding box covering every line in the block.
func (b Block) BBox() BBox {
	box := b.Lines[0].BBox()
	for _, line := range b.Lines[1:] {
		box = mergeBBox(box, line.BBox())
	}
	return box
}

// TableSource supplies an externally detected table: a bounding box for
// page ordering and a grid of optional cell strings. Extract may fail;
// page composition always degrades a failed table to empty output
// rather than propagating the error.
type TableSource interface {
	BBox() BBox
	Extract() ([][]*string, error)
}

// GridTable is a TableSource over an in-memory grid. Nil cells render
// as empty strings.
type GridTable struct {
	Box  BBox
	Rows [][]*string
}

// BBox returns the table's bounding box.
func (t GridTable) BBox() BBox {
	return t.Box
}

// Extract returns the grid. It never fails.
func (t GridTable) Extract() ([][]*string, error) {
	return t.Rows, nil
}

// PageInput is one page of collaborator output: the positioned
// characters of the page plus any detected tables. An empty character
// list is valid and yields an empty page.
type PageInput struct {
	Chars  []Char
	Tables []TableSource
}

// pageElement is a rendered page fragment awaiting reading-order
// placement. The box is used solely for ordering.
type pageElement struct {
	box      BBox
	markdown string
}

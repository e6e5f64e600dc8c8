package layoutmd

import (
	"strings"

	"github.com/pkg/errors"
)

// renderTable converts an externally detected table into a
// pipe-delimited markdown table. A failing Extract is returned as an
// error so the degrade contract stays visible in the signature; the
// page compositor substitutes empty output and never propagates it.
func renderTable(src TableSource) (string, error) {
	rows, err := src.Extract()
	if err != nil {
		return "", errors.Wrap(err, "failed to extract table grid")
	}
	return renderGrid(rows), nil
}

// renderGrid renders a cell grid as markdown. Grids with fewer than two
// rows (no header plus data) render to nothing. Row 0 is the header,
// followed by a "---" separator per header column and one line per data
// row. Nil cells render as empty strings.
func renderGrid(rows [][]*string) string {
	if len(rows) < 2 {
		return ""
	}

	header := rows[0]
	if len(header) == 0 {
		return ""
	}

	out := make([]string, 0, len(rows)+1)
	out = append(out, renderRow(header))

	separators := make([]string, len(header))
	for i := range separators {
		separators[i] = "---"
	}
	out = append(out, "| "+strings.Join(separators, " | ")+" |")

	for _, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}
		out = append(out, renderRow(row))
	}

	return strings.Join(out, "\n")
}

// renderRow renders one table row, trimming each cell.
func renderRow(row []*string) string {
	cells := make([]string, len(row))
	for i, cell := range row {
		if cell != nil {
			cells[i] = strings.TrimSpace(*cell)
		}
	}
	return "| " + strings.Join(cells, " | ") + " |"
}

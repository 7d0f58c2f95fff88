package world

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
)

// Draw renders each grid row as a string of tile graphemes.
func Draw(g *Grid) []string {
	rows := make([]string, g.Height)
	var b strings.Builder
	for y, row := range g.Cells {
		b.Reset()
		for _, cell := range row {
			b.WriteString(string(cell))
		}
		rows[y] = b.String()
	}
	return rows
}

// Undraw parses rows produced by Draw back into a grid. Each grapheme is one
// cell and must belong to the tile set; every row must have the same width.
func Undraw(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidDimensions)
	}

	cells := make([][]Tile, len(rows))
	for y, line := range rows {
		gr := uniseg.NewGraphemes(line)
		for gr.Next() {
			t, err := ParseTile(gr.Str())
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", y, err)
			}
			cells[y] = append(cells[y], t)
		}
		if len(cells[y]) == 0 {
			return nil, fmt.Errorf("%w: row %d is empty", ErrInvalidDimensions, y)
		}
		if len(cells[y]) != len(cells[0]) {
			return nil, fmt.Errorf("%w: row %d has %d cells, row 0 has %d", ErrRaggedRows, y, len(cells[y]), len(cells[0]))
		}
	}

	return &Grid{Width: len(cells[0]), Height: len(cells), Cells: cells}, nil
}

// Parse splits newline-separated text into rows and undraws it.
func Parse(text string) (*Grid, error) {
	text = strings.TrimRight(text, "\n")
	return Undraw(strings.Split(text, "\n"))
}

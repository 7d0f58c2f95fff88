package world

// Step applies one majority-rule smoothing pass. Each cell looks at its 3x3
// neighborhood (itself included) in g: empty cells count +1, everything else,
// including positions off the grid, counts -1. A positive sum makes the cell
// empty. g is not modified.
func Step(g *Grid) *Grid {
	next := g.Clone()
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			next.Cells[y][x] = majority(g, x, y)
		}
	}
	return next
}

func majority(g *Grid, x, y int) Tile {
	sum := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if g.At(x+dx, y+dy) == TileEmpty {
				sum++
			} else {
				sum--
			}
		}
	}
	if sum > 0 {
		return TileEmpty
	}
	return TileBlocked
}

package world

import (
	"fmt"
	"strings"
)

// Point is a cell coordinate.
type Point struct {
	X, Y int
}

// Grid is a row-major tile map. Stages never mutate a grid they are given;
// they return a new one.
type Grid struct {
	Width  int
	Height int
	Cells  [][]Tile
}

// NewGrid creates a grid filled with the given tile.
func NewGrid(width, height int, fill Tile) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	cells := make([][]Tile, height)
	for y := range cells {
		cells[y] = make([]Tile, width)
		for x := range cells[y] {
			cells[y][x] = fill
		}
	}
	return &Grid{Width: width, Height: height, Cells: cells}, nil
}

// InBounds reports whether (x, y) is within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the tile at the given position. Out-of-bounds reads as blocked.
func (g *Grid) At(x, y int) Tile {
	if !g.InBounds(x, y) {
		return TileBlocked
	}
	return g.Cells[y][x]
}

// IsPassable returns true if the given position can be walked on.
func (g *Grid) IsPassable(x, y int) bool {
	return g.InBounds(x, y) && g.Cells[y][x].IsPassable()
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([][]Tile, g.Height)
	for y := range cells {
		cells[y] = make([]Tile, g.Width)
		copy(cells[y], g.Cells[y])
	}
	return &Grid{Width: g.Width, Height: g.Height, Cells: cells}
}

// Equal reports full structural equality.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.Width != other.Width || g.Height != other.Height || len(g.Cells) != len(other.Cells) {
		return false
	}
	for y := range g.Cells {
		if len(g.Cells[y]) != len(other.Cells[y]) {
			return false
		}
		for x := range g.Cells[y] {
			if g.Cells[y][x] != other.Cells[y][x] {
				return false
			}
		}
	}
	return true
}

// Find returns every position holding tile t, in row-major order.
func (g *Grid) Find(t Tile) []Point {
	var points []Point
	for y, row := range g.Cells {
		for x, cell := range row {
			if cell == t {
				points = append(points, Point{X: x, Y: y})
			}
		}
	}
	return points
}

// Count returns how many cells hold tile t.
func (g *Grid) Count(t Tile) int {
	n := 0
	for _, row := range g.Cells {
		for _, cell := range row {
			if cell == t {
				n++
			}
		}
	}
	return n
}

// openNeighbors counts empty cells among the 8 neighbors of (x, y).
func (g *Grid) openNeighbors(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.At(x+dx, y+dy) == TileEmpty {
				n++
			}
		}
	}
	return n
}

// String renders the grid as newline-separated rows.
func (g *Grid) String() string {
	return strings.Join(Draw(g), "\n")
}

package ui

// TileWidth is the number of terminal columns one map tile covers.
const TileWidth = 2

// Camera keeps a window of the map on screen, following a focus point.
type Camera struct {
	OffsetX, OffsetY int // map coordinates of the top-left visible tile
	Cols, Rows       int // visible tiles
}

// NewCamera sizes a camera for a viewport of width columns and height rows.
func NewCamera(width, height int) *Camera {
	return &Camera{Cols: max(width/TileWidth, 1), Rows: max(height, 1)}
}

// Follow centres (x, y) while keeping the view inside a mapW x mapH map.
func (c *Camera) Follow(x, y, mapW, mapH int) {
	c.OffsetX = clamp(x-c.Cols/2, 0, max(mapW-c.Cols, 0))
	c.OffsetY = clamp(y-c.Rows/2, 0, max(mapH-c.Rows, 0))
}

// ToScreen converts map (x, y) to screen columns and rows.
// visible is false when the tile falls outside the view.
func (c *Camera) ToScreen(x, y int) (sx, sy int, visible bool) {
	tx, ty := x-c.OffsetX, y-c.OffsetY
	visible = tx >= 0 && tx < c.Cols && ty >= 0 && ty < c.Rows
	return tx * TileWidth, ty, visible
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package ui

import (
	"sort"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeonle/internal/entity"
	"github.com/samdwyer/dungeonle/internal/gamedata"
	"github.com/samdwyer/dungeonle/internal/world"
)

// StatusLines is the number of rows reserved below the map.
const StatusLines = 2

// layer orders sprites sharing a tile; higher is drawn on top.
var layer = map[entity.Kind]int{
	entity.KindItem:   0,
	entity.KindChest:  1,
	entity.KindWarp:   2,
	entity.KindNPC:    3,
	entity.KindPlayer: 4,
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen  *Screen
	palette gamedata.Palette
	camera  *Camera
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, palette gamedata.Palette) *Renderer {
	return &Renderer{screen: screen, palette: palette}
}

// Camera returns the camera used by the last Render call.
func (r *Renderer) Camera() *Camera {
	return r.camera
}

// Render draws the visible part of the map, the sprites on it and the
// status lines, keeping focus in view.
func (r *Renderer) Render(grid *world.Grid, sprites entity.Map, focus entity.ID, status []string) {
	r.screen.Clear()

	w, h := r.screen.Size()
	r.camera = NewCamera(w, h-StatusLines)
	if s, ok := sprites[focus]; ok {
		r.camera.Follow(s.X, s.Y, grid.Width, grid.Height)
	}

	// Draw map tiles
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			sx, sy, visible := r.camera.ToScreen(x, y)
			if !visible {
				continue
			}
			tile := terrain(grid.At(x, y))
			r.screen.PutGlyph(sx, sy, string(tile), r.tileStyle(tile))
		}
	}

	// Draw sprites on top, lowest layer first
	ids := sprites.IDs()
	sort.SliceStable(ids, func(i, j int) bool {
		return layer[sprites[ids[i]].Kind] < layer[sprites[ids[j]].Kind]
	})
	for _, id := range ids {
		s := sprites[id]
		sx, sy, visible := r.camera.ToScreen(s.Position())
		if !visible {
			continue
		}
		r.screen.PutGlyph(sx, sy, s.Emoji, r.tileStyle(terrain(grid.At(s.X, s.Y))))
	}

	for i, line := range status {
		if i >= StatusLines {
			break
		}
		r.RenderMessage(line, h-StatusLines+i)
	}

	r.screen.Show()
}

// terrain hides markers: once sprites are placed the tile underneath reads
// as open floor.
func terrain(t world.Tile) world.Tile {
	if t.IsMarker() {
		return world.TileEmpty
	}
	return t
}

// tileStyle colours the background with the tile's palette entry.
func (r *Renderer) tileStyle(tile world.Tile) tcell.Style {
	return tcell.StyleDefault.Background(r.palette.Color(tile))
}

// RenderMessage displays a message at the bottom of the screen.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	r.screen.PutString(0, y, msg, style)
}

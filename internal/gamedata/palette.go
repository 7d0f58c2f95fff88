package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeonle/internal/world"
)

// TileColor pairs a tile name with a hex color.
type TileColor struct {
	Tile  string `json:"tile"`
	Color string `json:"color"`
}

// PaletteFile represents the structure of palette.json.
type PaletteFile struct {
	Tiles []TileColor `json:"tiles"`
}

// Palette maps tiles to display colors.
type Palette map[world.Tile]tcell.Color

// LoadPalette loads tile colors from the embedded palette.json file.
func LoadPalette() (Palette, error) {
	file, err := Load[PaletteFile]("palette.json")
	if err != nil {
		return nil, err
	}
	palette := make(Palette, len(file.Tiles))
	for _, tc := range file.Tiles {
		tile, err := world.TileByName(tc.Tile)
		if err != nil {
			return nil, fmt.Errorf("palette: %w", err)
		}
		color, err := ParseHexColor(tc.Color)
		if err != nil {
			return nil, fmt.Errorf("palette %s: %w", tc.Tile, err)
		}
		palette[tile] = color
	}
	return palette, nil
}

// Color returns the color for t, or the terminal default.
func (p Palette) Color(t world.Tile) tcell.Color {
	if c, ok := p[t]; ok {
		return c
	}
	return tcell.ColorDefault
}

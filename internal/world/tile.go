// Package world provides cave generation, tile classification and the grid text form.
package world

import "fmt"

// Tile is a single map cell, stored as the grapheme it is drawn with.
type Tile string

const (
	// TileEmpty is walkable terrain.
	TileEmpty Tile = "⬜️"
	// TileBlocked is solid terrain.
	TileBlocked Tile = "⬛️"

	TileChest    Tile = "🟫"
	TileBoss     Tile = "🟥"
	TileMiniboss Tile = "🟧"
	TileCoin     Tile = "🟨"
	TileMonster  Tile = "🟩"
	TileWarp     Tile = "🟦"
	TilePlayer   Tile = "🟪"
)

// Markers lists every special tile in the order sprites are populated.
var Markers = []Tile{
	TilePlayer,
	TileMonster,
	TileMiniboss,
	TileBoss,
	TileWarp,
	TileCoin,
	TileChest,
}

var tileNames = map[Tile]string{
	TileEmpty:    "empty",
	TileBlocked:  "blocked",
	TileChest:    "chest",
	TileBoss:     "boss",
	TileMiniboss: "miniboss",
	TileCoin:     "coin",
	TileMonster:  "monster",
	TileWarp:     "warp",
	TilePlayer:   "player",
}

// ParseTile validates a grapheme against the closed tile set.
func ParseTile(s string) (Tile, error) {
	t := Tile(s)
	if _, ok := tileNames[t]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTile, s)
	}
	return t, nil
}

// TileByName looks a tile up by its name (e.g. "warp").
func TileByName(name string) (Tile, error) {
	for t, n := range tileNames {
		if n == name {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: name %q", ErrUnknownTile, name)
}

// IsPassable returns true if the tile can be walked on.
// Markers sit on empty terrain, so they are passable too.
func (t Tile) IsPassable() bool {
	return t != TileBlocked && t.Valid()
}

// IsMarker reports whether t is a special tile rather than terrain.
func (t Tile) IsMarker() bool {
	return t.Valid() && t != TileEmpty && t != TileBlocked
}

// Valid reports whether t belongs to the tile set.
func (t Tile) Valid() bool {
	_, ok := tileNames[t]
	return ok
}

// Name returns the tile's name, or "unknown".
func (t Tile) Name() string {
	if n, ok := tileNames[t]; ok {
		return n
	}
	return "unknown"
}

// String returns the tile's grapheme.
func (t Tile) String() string {
	return string(t)
}

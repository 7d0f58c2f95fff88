package gamedata

import (
	"fmt"

	"github.com/samdwyer/dungeonle/internal/entity"
	"github.com/samdwyer/dungeonle/internal/world"
)

// SpriteDef describes the sprite spawned on one kind of marker tile.
type SpriteDef struct {
	Tile   string         `json:"tile"`   // Marker tile name (e.g., "monster")
	Emoji  []string       `json:"emoji"`  // Symbol per spawn index; the last one repeats
	Kind   string         `json:"kind"`   // Sprite kind (player, npc, item, chest, warp)
	Hearts int            `json:"hearts"` // Starting hearts for characters
	Items  map[string]int `json:"items"`  // Starting inventory for characters
}

// EmojiAt returns the symbol for the i-th spawn of this definition.
func (d *SpriteDef) EmojiAt(i int) string {
	if len(d.Emoji) == 0 {
		return "❓"
	}
	if i >= len(d.Emoji) {
		i = len(d.Emoji) - 1
	}
	return d.Emoji[i]
}

// validate checks the tile and kind names and the character fields.
func (d *SpriteDef) validate() (world.Tile, entity.Kind, error) {
	tile, err := world.TileByName(d.Tile)
	if err != nil {
		return "", "", err
	}
	if !tile.IsMarker() {
		return "", "", fmt.Errorf("sprite for terrain tile %q: %w", d.Tile, world.ErrUnknownTile)
	}
	kind, err := entity.ParseKind(d.Kind)
	if err != nil {
		return "", "", fmt.Errorf("sprite for %s: %w", d.Tile, err)
	}
	if kind.IsCharacter() && d.Hearts <= 0 {
		return "", "", fmt.Errorf("sprite for %s: character needs hearts, got %d", d.Tile, d.Hearts)
	}
	for emoji, n := range d.Items {
		if n <= 0 {
			return "", "", fmt.Errorf("sprite for %s: item %s has count %d", d.Tile, emoji, n)
		}
	}
	return tile, kind, nil
}

// SpritesFile represents the structure of sprites.json.
type SpritesFile struct {
	Sprites []SpriteDef `json:"sprites"`
}

// LoadSprites loads sprite definitions from the embedded sprites.json file.
func LoadSprites() ([]SpriteDef, error) {
	file, err := Load[SpritesFile]("sprites.json")
	if err != nil {
		return nil, err
	}
	return file.Sprites, nil
}

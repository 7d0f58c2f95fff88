package gamedata

import (
	"errors"
	"fmt"

	"github.com/samdwyer/dungeonle/internal/entity"
	"github.com/samdwyer/dungeonle/internal/world"
)

// SpriteRegistry holds loaded sprite definitions keyed by marker tile.
type SpriteRegistry struct {
	defs  map[world.Tile]*SpriteDef
	kinds map[world.Tile]entity.Kind
}

// NewSpriteRegistry creates a registry from loaded sprite definitions.
func NewSpriteRegistry(defs []SpriteDef) (*SpriteRegistry, error) {
	registry := &SpriteRegistry{
		defs:  make(map[world.Tile]*SpriteDef),
		kinds: make(map[world.Tile]entity.Kind),
	}
	for i := range defs {
		tile, kind, err := defs[i].validate()
		if err != nil {
			return nil, err
		}
		if _, dup := registry.defs[tile]; dup {
			return nil, fmt.Errorf("sprite for %s defined twice", defs[i].Tile)
		}
		registry.defs[tile] = &defs[i]
		registry.kinds[tile] = kind
	}
	return registry, nil
}

// LoadSpriteRegistry loads and creates a registry from the embedded sprites.json.
func LoadSpriteRegistry() (*SpriteRegistry, error) {
	defs, err := LoadSprites()
	if err != nil {
		return nil, err
	}
	if len(defs) == 0 {
		return nil, errors.New("no sprites loaded from sprites.json")
	}
	return NewSpriteRegistry(defs)
}

// MustLoadSpriteRegistry loads a registry, panicking on error.
func MustLoadSpriteRegistry() *SpriteRegistry {
	registry, err := LoadSpriteRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByTile returns the definition for a marker tile, or nil if not found.
func (r *SpriteRegistry) GetByTile(t world.Tile) *SpriteDef {
	return r.defs[t]
}

// Factory returns the sprite factory for a marker tile, or nil if the tile
// has no definition. A non-empty id is used for every spawn, which only makes
// sense for tiles that appear once (the player).
func (r *SpriteRegistry) Factory(t world.Tile, id entity.ID) entity.Factory {
	def, ok := r.defs[t]
	if !ok {
		return nil
	}
	kind := r.kinds[t]
	return func(p entity.Placement) entity.Spawn {
		s := entity.Sprite{
			Emoji: def.EmojiAt(p.I),
			Kind:  kind,
		}
		if kind.IsCharacter() {
			s.Hearts = def.Hearts
			s.Items = make(map[string]int, len(def.Items))
			for emoji, n := range def.Items {
				s.Items[emoji] = n
			}
		}
		if kind == entity.KindWarp {
			s.To = (p.I + 1) % p.N
		}
		return entity.Spawn{ID: id, Sprite: s}
	}
}

// Factories returns a factory for every defined tile. The player's sprite is
// keyed by playerID; everything else gets fresh identities.
func (r *SpriteRegistry) Factories(playerID entity.ID) map[world.Tile]entity.Factory {
	factories := make(map[world.Tile]entity.Factory, len(r.defs))
	for t := range r.defs {
		var id entity.ID
		if t == world.TilePlayer {
			id = playerID
		}
		factories[t] = r.Factory(t, id)
	}
	return factories
}

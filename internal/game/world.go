package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonle/internal/combat"
	"github.com/samdwyer/dungeonle/internal/entity"
	"github.com/samdwyer/dungeonle/internal/gamedata"
	"github.com/samdwyer/dungeonle/internal/telemetry"
	"github.com/samdwyer/dungeonle/internal/world"
)

// ErrUnknownSprite is returned for an intent addressed to no sprite.
var ErrUnknownSprite = errors.New("unknown sprite")

// World is one running session: a classified map, the sprites on it and the
// rules that move them.
type World struct {
	grid     *world.Grid
	warps    []world.Point
	sprites  entity.Map
	player   entity.ID
	resolver *combat.Resolver
	notifier Notifier
	turn     int
}

// NewWorld generates, classifies and populates a map for cfg.
func NewWorld(ctx context.Context, cfg Config, registry *gamedata.SpriteRegistry) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	terrain, err := world.NewGenerator().Generate(ctx, cfg.Params())
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	strategy, err := world.ParseStrategy(string(cfg.Strategy))
	if err != nil {
		return nil, err
	}
	grid, err := world.Classify(ctx, terrain, strategy)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("classify %q: %w", cfg.Seed, err)
	}

	player := entity.NewID()
	sprites, err := entity.PopulateAll(ctx, grid, registry.Factories(player))
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(
		attribute.String("game.seed", cfg.Seed),
		attribute.String("game.strategy", string(strategy)),
		attribute.Int("game.sprites", len(sprites)),
	)
	return newWorld(grid, sprites, player, combat.NewResolver(newRand(cfg.Seed))), nil
}

func newWorld(grid *world.Grid, sprites entity.Map, player entity.ID, resolver *combat.Resolver) *World {
	return &World{
		grid:     grid,
		warps:    grid.Find(world.TileWarp),
		sprites:  sprites,
		player:   player,
		resolver: resolver,
		notifier: discard{},
	}
}

// newRand seeds combat rolls from the map seed so a replayed session rolls
// the same damage. An empty seed draws a random source.
func newRand(seed string) *rand.Rand {
	if seed == "" {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(xxhash.Sum64String("combat/"+seed), xxhash.Sum64String(seed)))
}

// SetNotifier routes events to n. A nil n discards them.
func (w *World) SetNotifier(n Notifier) {
	if n == nil {
		n = discard{}
	}
	w.notifier = n
}

// Grid returns the classified map. Callers must not modify it.
func (w *World) Grid() *world.Grid {
	return w.grid
}

// Sprites returns the current sprite map. Updates replace the map rather
// than modify it, so the returned value stays consistent.
func (w *World) Sprites() entity.Map {
	return w.sprites
}

// PlayerID returns the identity of the session's player.
func (w *World) PlayerID() entity.ID {
	return w.player
}

// Player returns the player's sprite and whether it still exists.
func (w *World) Player() (entity.Sprite, bool) {
	s, ok := w.sprites[w.player]
	return s, ok
}

// Turn returns how many passes have resolved.
func (w *World) Turn() int {
	return w.turn
}

// Intend records an action for the sprite id.
func (w *World) Intend(id entity.ID, a entity.Action) error {
	if _, ok := w.sprites[id]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSprite, id)
	}
	w.sprites = Intend(w.sprites, id, a)
	return nil
}

// Intend returns m with the character id's action set to a. Unknown ids and
// sprites that cannot act leave m as it is.
func Intend(m entity.Map, id entity.ID, a entity.Action) entity.Map {
	s, ok := m[id]
	if !ok || !s.IsCharacter() {
		return m
	}
	next := m.Clone()
	s = next[id]
	s.Action = a
	next[id] = s
	return next
}

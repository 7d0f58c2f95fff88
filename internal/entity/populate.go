package entity

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonle/internal/telemetry"
	"github.com/samdwyer/dungeonle/internal/world"
)

var (
	// ErrMissingFactory is returned when a marker kind has no sprite factory.
	ErrMissingFactory = errors.New("missing sprite factory")
	// ErrDuplicateID is returned when two sprites would share an identity.
	ErrDuplicateID = errors.New("duplicate sprite id")
)

// Placement describes one matching cell: its position, its index I among the
// N cells of the same tile in row-major order.
type Placement struct {
	X, Y int
	I, N int
}

// Spawn is what a factory returns for one placement. An empty ID asks for a
// freshly generated identity. Position fields of Sprite are overwritten.
type Spawn struct {
	ID     ID
	Sprite Sprite
}

// Factory builds the sprite for one placement.
type Factory func(p Placement) Spawn

// Populate creates one sprite per cell of g holding tile.
func Populate(g *world.Grid, tile world.Tile, factory Factory) (Map, error) {
	if !tile.IsMarker() {
		return nil, fmt.Errorf("populate %q: %w", string(tile), world.ErrUnknownTile)
	}
	if factory == nil {
		return nil, fmt.Errorf("populate %s: %w", tile.Name(), ErrMissingFactory)
	}

	points := g.Find(tile)
	sprites := make(Map, len(points))
	for i, p := range points {
		spawn := factory(Placement{X: p.X, Y: p.Y, I: i, N: len(points)})
		id := spawn.ID
		if id == "" {
			id = NewID()
		}
		if _, taken := sprites[id]; taken {
			return nil, fmt.Errorf("populate %s: %w: %s", tile.Name(), ErrDuplicateID, id)
		}
		s := spawn.Sprite.Clone()
		s.X, s.Y = p.X, p.Y
		sprites[id] = s
	}
	return sprites, nil
}

// PopulateAll populates every marker kind present in g and unions the
// results. Either every sprite is returned or none is.
func PopulateAll(ctx context.Context, g *world.Grid, factories map[world.Tile]Factory) (Map, error) {
	tracer := telemetry.Tracer("entity")
	_, span := tracer.Start(ctx, "entity.populate")
	defer span.End()

	all := make(Map)
	for _, tile := range world.Markers {
		if g.Count(tile) == 0 {
			continue
		}
		part, err := Populate(g, tile, factories[tile])
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		for id, s := range part {
			if _, taken := all[id]; taken {
				err := fmt.Errorf("populate %s: %w: %s", tile.Name(), ErrDuplicateID, id)
				span.RecordError(err)
				return nil, err
			}
			all[id] = s
		}
		span.SetAttributes(attribute.Int("populate."+tile.Name(), len(part)))
	}

	span.SetAttributes(attribute.Int("populate.total", len(all)))
	return all, nil
}

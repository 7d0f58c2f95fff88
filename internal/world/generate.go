package world

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonle/internal/telemetry"
)

const (
	// Default map dimensions
	DefaultWidth  = 24
	DefaultHeight = 24

	// MaxIterations caps the number of smoothing passes.
	MaxIterations = 100
)

// Params describes one cave to generate.
type Params struct {
	Width  int
	Height int

	// WhiteLevel is the noise threshold in [0, 1]: a draw at or above it is
	// floor. The zero value is a valid level and yields an all-floor noise
	// grid; use DefaultWhiteLevel for an even split.
	WhiteLevel float64

	Seed string // empty means unseeded
}

// Generator turns seeded white noise into a smoothed cave grid.
type Generator struct {
	streams *Streams
}

// NewGenerator creates a generator with a fresh stream cache. Two generators
// given the same seed produce the same caves; one generator asked twice
// continues its stream and produces a different cave the second time.
func NewGenerator() *Generator {
	return &Generator{streams: NewStreams()}
}

// Noise builds the unsmoothed grid: one noise row per grid row, all drawn
// from the stream keyed by p.Seed.
func (gen *Generator) Noise(p Params) (*Grid, error) {
	if p.Width <= 0 || p.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, p.Width, p.Height)
	}
	cells := make([][]Tile, p.Height)
	for y := range cells {
		row, err := gen.streams.Noise(p.Width, p.WhiteLevel, p.Seed)
		if err != nil {
			return nil, err
		}
		cells[y] = row
	}
	return &Grid{Width: p.Width, Height: p.Height, Cells: cells}, nil
}

// Generate creates a cave by smoothing noise until it stops changing.
func (gen *Generator) Generate(ctx context.Context, p Params) (*Grid, error) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "world.generate")
	defer span.End()

	startTime := time.Now()

	initial, err := gen.Noise(p)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	grid, iterations, converged := converge(initial, MaxIterations)

	span.SetAttributes(
		attribute.Int("world.width", p.Width),
		attribute.Int("world.height", p.Height),
		attribute.Float64("world.white_level", p.WhiteLevel),
		attribute.String("world.seed", p.Seed),
		attribute.Int("world.iterations", iterations),
		attribute.Bool("world.converged", converged),
		attribute.Int("world.open_cells", grid.Count(TileEmpty)),
		attribute.Int64("world.generation_ms", time.Since(startTime).Milliseconds()),
	)
	return grid, nil
}

// converge steps g until two consecutive grids are equal or limit steps have
// run, returning the last grid and the number of steps taken.
func converge(g *Grid, limit int) (*Grid, int, bool) {
	current := g
	for i := 1; i <= limit; i++ {
		next := Step(current)
		if next.Equal(current) {
			return next, i, true
		}
		current = next
	}
	return current, limit, false
}

package world

import (
	"context"
	"fmt"
	"sort"

	"github.com/zyedidia/generic/mapset"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonle/internal/telemetry"
)

// Strategy selects how markers are laid over a generated cave.
type Strategy string

const (
	// StrategyDerived places markers from the shape of the cave itself.
	StrategyDerived Strategy = "derived"
	// StrategyLegacy copies markers from the hand-authored layout where they land on floor.
	StrategyLegacy Strategy = "legacy"
)

// Derived placement limits
const (
	maxChests     = 2
	maxMinibosses = 2
	maxWarps      = 4
	warpStride    = 6
	monsterStride = 7
	coinStride    = 5
)

// ParseStrategy converts a name into a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyDerived, StrategyLegacy:
		return Strategy(s), nil
	case "":
		return StrategyDerived, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

// Classify returns a copy of the terrain grid g with special tiles placed on
// empty cells. Exactly one player marker is always placed.
func Classify(ctx context.Context, g *Grid, strategy Strategy) (*Grid, error) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "world.classify")
	defer span.End()

	for _, t := range Markers {
		if g.Count(t) > 0 {
			span.RecordError(ErrAlreadyClassified)
			return nil, fmt.Errorf("%w: found %s", ErrAlreadyClassified, t.Name())
		}
	}
	if g.Count(TileEmpty) == 0 {
		span.RecordError(ErrNoOpenCell)
		return nil, ErrNoOpenCell
	}

	var out *Grid
	switch strategy {
	case StrategyLegacy:
		out = classifyLegacy(g)
	case StrategyDerived, "":
		out = classifyDerived(g)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}

	attrs := []attribute.KeyValue{attribute.String("classify.strategy", string(strategy))}
	for _, t := range Markers {
		attrs = append(attrs, attribute.Int("classify."+t.Name(), out.Count(t)))
	}
	span.SetAttributes(attrs...)
	return out, nil
}

// classifyLegacy copies every legacy marker whose position is empty in g.
func classifyLegacy(g *Grid) *Grid {
	out := g.Clone()
	placedPlayer := false
	for y, row := range legacyLayout.Cells {
		for x, t := range row {
			if !t.IsMarker() || g.At(x, y) != TileEmpty {
				continue
			}
			out.Cells[y][x] = t
			if t == TilePlayer {
				placedPlayer = true
			}
		}
	}
	if !placedPlayer {
		// The first floor cell wins, even if a legacy marker landed there.
		p := g.Find(TileEmpty)[0]
		out.Cells[p.Y][p.X] = TilePlayer
	}
	return out
}

// classifyDerived places markers by simple adjacency rules:
//   - player on the most open cell
//   - chests in nooks (one orthogonal floor neighbor), far from the player
//   - boss deep inside open floor, minibosses on other open cells, far from the player
//   - warps spaced along cells with a few open neighbors
//   - monsters and coins spread over what is left
func classifyDerived(g *Grid) *Grid {
	out := g.Clone()
	empties := g.Find(TileEmpty)
	occupied := mapset.New[Point]()

	place := func(points []Point, t Tile) {
		for _, p := range points {
			out.Cells[p.Y][p.X] = t
			occupied.Put(p)
		}
	}
	free := func(keep func(Point) bool) []Point {
		var points []Point
		for _, p := range empties {
			if !occupied.Has(p) && keep(p) {
				points = append(points, p)
			}
		}
		return points
	}
	open := func(lo, hi int) func(Point) bool {
		return func(p Point) bool {
			n := g.openNeighbors(p.X, p.Y)
			return n >= lo && n <= hi
		}
	}

	player := empties[0]
	best := g.openNeighbors(player.X, player.Y)
	for _, p := range empties[1:] {
		if n := g.openNeighbors(p.X, p.Y); n > best {
			player, best = p, n
		}
	}
	place([]Point{player}, TilePlayer)

	nook := func(p Point) bool { return orthogonalOpen(g, p) == 1 }
	place(farthest(free(nook), player, maxChests), TileChest)
	place(farthest(free(open(8, 8)), player, 1), TileBoss)
	place(farthest(free(open(6, 8)), player, maxMinibosses), TileMiniboss)

	if warps := every(free(open(3, 5)), warpStride, maxWarps); len(warps) >= 2 {
		place(warps, TileWarp)
	}

	place(every(free(open(5, 8)), monsterStride, 0), TileMonster)
	place(every(free(open(2, 7)), coinStride, 0), TileCoin)

	return out
}

func orthogonalOpen(g *Grid, p Point) int {
	n := 0
	for _, d := range [4]Point{{0, -1}, {-1, 0}, {0, 1}, {1, 0}} {
		if g.At(p.X+d.X, p.Y+d.Y) == TileEmpty {
			n++
		}
	}
	return n
}

// farthest returns up to limit points ordered by Manhattan distance from
// origin, farthest first. Ties keep row-major order.
func farthest(points []Point, origin Point, limit int) []Point {
	sorted := make([]Point, len(points))
	copy(sorted, points)
	dist := func(p Point) int { return abs(p.X-origin.X) + abs(p.Y-origin.Y) }
	sort.SliceStable(sorted, func(i, j int) bool {
		return dist(sorted[i]) > dist(sorted[j])
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

// every keeps every stride-th point starting with the first. A limit of 0
// means no limit.
func every(points []Point, stride, limit int) []Point {
	var picked []Point
	for i := 0; i < len(points); i += stride {
		if limit > 0 && len(picked) == limit {
			break
		}
		picked = append(picked, points[i])
	}
	return picked
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

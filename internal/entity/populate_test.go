package entity

import (
	"context"
	"errors"
	"testing"

	"github.com/samdwyer/dungeonle/internal/world"
)

var classified = []string{
	"⬛️⬛️⬛️⬛️⬛️⬛️",
	"⬛️🟦⬜️🟩🟦⬛️",
	"⬛️🟪🟨🟩⬜️⬛️",
	"⬛️🟦🟫⬜️🟩⬛️",
	"⬛️⬛️⬛️⬛️⬛️⬛️",
}

func mustUndraw(t *testing.T, rows []string) *world.Grid {
	t.Helper()
	g, err := world.Undraw(rows)
	if err != nil {
		t.Fatalf("Undraw failed: %v", err)
	}
	return g
}

func TestPopulateCountsAndPositions(t *testing.T) {
	g := mustUndraw(t, classified)

	var seen []Placement
	m, err := Populate(g, world.TileMonster, func(p Placement) Spawn {
		seen = append(seen, p)
		return Spawn{Sprite: Sprite{Emoji: "🍎", Kind: KindNPC, Hearts: 5000}}
	})
	if err != nil {
		t.Fatalf("Populate failed: %v", err)
	}

	want := g.Find(world.TileMonster)
	if len(m) != len(want) {
		t.Fatalf("got %d sprites, want %d", len(m), len(want))
	}

	used := make(map[world.Point]int)
	for _, s := range m {
		used[world.Point{X: s.X, Y: s.Y}]++
	}
	for _, p := range want {
		if used[p] != 1 {
			t.Errorf("position %v used %d times, want 1", p, used[p])
		}
	}

	for i, p := range seen {
		if p.I != i || p.N != len(want) || p.X != want[i].X || p.Y != want[i].Y {
			t.Errorf("placement %d = %+v, want index %d of %d at %v", i, p, i, len(want), want[i])
		}
	}
}

func TestPopulateWarpIndexing(t *testing.T) {
	g := mustUndraw(t, classified)
	m, err := Populate(g, world.TileWarp, func(p Placement) Spawn {
		return Spawn{Sprite: Sprite{Emoji: "🌐", Kind: KindWarp, To: (p.I + 1) % p.N}}
	})
	if err != nil {
		t.Fatalf("Populate failed: %v", err)
	}

	warps := g.Find(world.TileWarp)
	if len(m) != len(warps) {
		t.Fatalf("got %d warps, want %d", len(m), len(warps))
	}
	for _, s := range m {
		i := -1
		for j, p := range warps {
			if p.X == s.X && p.Y == s.Y {
				i = j
			}
		}
		if want := (i + 1) % len(warps); s.To != want {
			t.Errorf("warp %d at (%d,%d) points to %d, want %d", i, s.X, s.Y, s.To, want)
		}
	}
}

func TestPopulateCallerSuppliedID(t *testing.T) {
	g := mustUndraw(t, classified)
	m, err := Populate(g, world.TilePlayer, func(Placement) Spawn {
		return Spawn{ID: "me", Sprite: Sprite{Emoji: "😎", Kind: KindPlayer, Hearts: 10000}}
	})
	if err != nil {
		t.Fatalf("Populate failed: %v", err)
	}
	s, ok := m["me"]
	if !ok || s.X != 1 || s.Y != 2 {
		t.Errorf("player = %+v (found %v), want at (1,2)", s, ok)
	}
}

func TestPopulateErrors(t *testing.T) {
	g := mustUndraw(t, classified)
	noop := func(Placement) Spawn { return Spawn{Sprite: Sprite{Kind: KindItem}} }

	if _, err := Populate(g, world.TileEmpty, noop); !errors.Is(err, world.ErrUnknownTile) {
		t.Errorf("terrain tile error = %v, want ErrUnknownTile", err)
	}
	if _, err := Populate(g, world.Tile("🐉"), noop); !errors.Is(err, world.ErrUnknownTile) {
		t.Errorf("unknown tile error = %v, want ErrUnknownTile", err)
	}
	if _, err := Populate(g, world.TileCoin, nil); !errors.Is(err, ErrMissingFactory) {
		t.Errorf("nil factory error = %v, want ErrMissingFactory", err)
	}
	same := func(Placement) Spawn { return Spawn{ID: "dup", Sprite: Sprite{Kind: KindWarp}} }
	if _, err := Populate(g, world.TileWarp, same); !errors.Is(err, ErrDuplicateID) {
		t.Errorf("duplicate id error = %v, want ErrDuplicateID", err)
	}
}

func TestPopulateAll(t *testing.T) {
	g := mustUndraw(t, classified)
	item := func(Placement) Spawn { return Spawn{Sprite: Sprite{Kind: KindItem}} }
	factories := map[world.Tile]Factory{
		world.TilePlayer:  func(Placement) Spawn { return Spawn{ID: "me", Sprite: Sprite{Kind: KindPlayer, Hearts: 1}} },
		world.TileMonster: item,
		world.TileWarp:    item,
		world.TileCoin:    item,
		world.TileChest:   item,
	}

	m, err := PopulateAll(context.Background(), g, factories)
	if err != nil {
		t.Fatalf("PopulateAll failed: %v", err)
	}
	want := 0
	for _, tile := range world.Markers {
		want += g.Count(tile)
	}
	if len(m) != want {
		t.Errorf("got %d sprites, want %d", len(m), want)
	}

	delete(factories, world.TileChest)
	if m, err := PopulateAll(context.Background(), g, factories); !errors.Is(err, ErrMissingFactory) || m != nil {
		t.Errorf("missing chest factory: map %v, error %v", m, err)
	}

	factories[world.TileChest] = func(Placement) Spawn { return Spawn{ID: "me", Sprite: Sprite{Kind: KindChest}} }
	if m, err := PopulateAll(context.Background(), g, factories); !errors.Is(err, ErrDuplicateID) || m != nil {
		t.Errorf("colliding ids: map %v, error %v", m, err)
	}
}

func TestPopulateIsolatesInventories(t *testing.T) {
	g := mustUndraw(t, classified)
	shared := map[string]int{"❤️": 1}
	m, err := Populate(g, world.TileMonster, func(Placement) Spawn {
		return Spawn{Sprite: Sprite{Kind: KindNPC, Hearts: 1, Items: shared}}
	})
	if err != nil {
		t.Fatalf("Populate failed: %v", err)
	}
	for id := range m {
		m[id].Items["❤️"]++
	}
	if shared["❤️"] != 1 {
		t.Errorf("factory inventory mutated to %d", shared["❤️"])
	}
}

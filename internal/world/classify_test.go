package world

import (
	"context"
	"errors"
	"testing"
)

// cave is a small hand-drawn terrain grid with a nook, a hall and a corridor.
var cave = []string{
	"⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️",
	"⬛️⬜️⬜️⬜️⬜️⬜️⬛️⬛️⬜️⬛️",
	"⬛️⬜️⬜️⬜️⬜️⬜️⬜️⬜️⬜️⬛️",
	"⬛️⬜️⬜️⬜️⬜️⬜️⬛️⬛️⬛️⬛️",
	"⬛️⬜️⬜️⬜️⬜️⬜️⬛️⬛️⬛️⬛️",
	"⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️",
}

func TestClassifyMarkersOnEmptyCells(t *testing.T) {
	ctx := context.Background()
	grids := []*Grid{mustUndraw(cave)}
	for _, seed := range []string{"dungeonle-1", "dungeonle-2", "dungeonle-3"} {
		g, err := NewGenerator().Generate(ctx, Params{Width: 24, Height: 24, WhiteLevel: 0.5, Seed: seed})
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if g.Count(TileEmpty) > 0 {
			grids = append(grids, g)
		}
	}

	for _, strategy := range []Strategy{StrategyDerived, StrategyLegacy} {
		for i, terrain := range grids {
			before := terrain.Clone()
			out, err := Classify(ctx, terrain, strategy)
			if err != nil {
				t.Fatalf("%s grid %d: Classify failed: %v", strategy, i, err)
			}
			if !terrain.Equal(before) {
				t.Errorf("%s grid %d: Classify mutated its input", strategy, i)
			}
			checkDimensions(t, "classify", out, terrain.Width, terrain.Height)
			for y := range out.Cells {
				for x, c := range out.Cells[y] {
					if c.IsMarker() && terrain.Cells[y][x] != TileEmpty {
						t.Errorf("%s grid %d: %s at (%d,%d) covers %s", strategy, i, c.Name(), x, y, terrain.Cells[y][x].Name())
					}
					if !c.IsMarker() && c != terrain.Cells[y][x] {
						t.Errorf("%s grid %d: terrain changed at (%d,%d)", strategy, i, x, y)
					}
				}
			}
			if n := out.Count(TilePlayer); n != 1 {
				t.Errorf("%s grid %d: %d player markers, want 1", strategy, i, n)
			}
		}
	}
}

func TestClassifyDerivedRules(t *testing.T) {
	out, err := Classify(context.Background(), mustUndraw(cave), StrategyDerived)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}

	// (2,2) is the first cell with eight open neighbors
	if got := out.Find(TilePlayer); len(got) != 1 || got[0] != (Point{2, 2}) {
		t.Errorf("player at %v, want [(2,2)]", got)
	}
	// (8,1) is the only nook: one orthogonal floor neighbor
	if got := out.Find(TileChest); len(got) != 1 || got[0] != (Point{8, 1}) {
		t.Errorf("chests at %v, want [(8,1)]", got)
	}
	// (4,3) is the farthest fully enclosed cell from the player
	if got := out.Find(TileBoss); len(got) != 1 || got[0] != (Point{4, 3}) {
		t.Errorf("boss at %v, want [(4,3)]", got)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	ctx := context.Background()
	a, err := Classify(ctx, mustUndraw(cave), StrategyDerived)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	b, err := Classify(ctx, mustUndraw(cave), StrategyDerived)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if !a.Equal(b) {
		t.Errorf("Classify is not deterministic:\n%s\n\n%s", a, b)
	}
}

func TestClassifyLegacyFallsBackForPlayer(t *testing.T) {
	// The legacy player sits at (5,22); this grid is too small to hold it
	g := mustUndraw([]string{
		"⬛️⬛️⬛️",
		"⬛️⬛️⬜️",
	})
	out, err := Classify(context.Background(), g, StrategyLegacy)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if got := out.Find(TilePlayer); len(got) != 1 || got[0] != (Point{2, 1}) {
		t.Errorf("player at %v, want [(2,1)]", got)
	}
}

func TestClassifyLegacyKeepsLayoutOnOpenFloor(t *testing.T) {
	g, err := NewGrid(24, 24, TileEmpty)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	out, err := Classify(context.Background(), g, StrategyLegacy)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	for _, m := range Markers {
		if got, want := out.Count(m), legacyLayout.Count(m); got != want {
			t.Errorf("%s: %d markers, want %d", m.Name(), got, want)
		}
	}
}

func TestClassifyErrors(t *testing.T) {
	ctx := context.Background()
	solid, err := NewGrid(4, 4, TileBlocked)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	if _, err := Classify(ctx, solid, StrategyDerived); !errors.Is(err, ErrNoOpenCell) {
		t.Errorf("solid grid error = %v, want ErrNoOpenCell", err)
	}

	classified, err := Classify(ctx, mustUndraw(cave), StrategyDerived)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if _, err := Classify(ctx, classified, StrategyDerived); !errors.Is(err, ErrAlreadyClassified) {
		t.Errorf("reclassify error = %v, want ErrAlreadyClassified", err)
	}

	if _, err := Classify(ctx, mustUndraw(cave), Strategy("maze")); !errors.Is(err, ErrUnknownStrategy) {
		t.Errorf("unknown strategy error = %v, want ErrUnknownStrategy", err)
	}
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		in      string
		want    Strategy
		wantErr bool
	}{
		{"", StrategyDerived, false},
		{"derived", StrategyDerived, false},
		{"legacy", StrategyLegacy, false},
		{"bsp", "", true},
	}
	for _, tt := range tests {
		got, err := ParseStrategy(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseStrategy(%q) = %q, %v", tt.in, got, err)
		}
	}
}

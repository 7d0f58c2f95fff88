package world

import (
	"context"
	"errors"
	"testing"
)

func TestDrawUndrawRoundTrip(t *testing.T) {
	g, err := NewGenerator().Generate(context.Background(), Params{Width: 24, Height: 24, WhiteLevel: 0.5, Seed: "roundtrip"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	back, err := Undraw(Draw(g))
	if err != nil {
		t.Fatalf("Undraw failed: %v", err)
	}
	if !back.Equal(g) {
		t.Errorf("round trip changed the grid:\n%s\n\n%s", g, back)
	}

	parsed, err := Parse(g.String() + "\n")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !parsed.Equal(g) {
		t.Error("Parse(String()) changed the grid")
	}
}

func TestLegacyLayoutRoundTrip(t *testing.T) {
	legacy := LegacyLayout()
	if legacy.Width != 24 || legacy.Height != 24 {
		t.Fatalf("legacy layout is %dx%d, want 24x24", legacy.Width, legacy.Height)
	}
	back, err := Undraw(Draw(legacy))
	if err != nil {
		t.Fatalf("Undraw failed: %v", err)
	}
	if !back.Equal(legacy) {
		t.Error("legacy layout did not survive a round trip")
	}
	if n := legacy.Count(TilePlayer); n != 1 {
		t.Errorf("legacy layout has %d player markers, want 1", n)
	}
}

func TestUndrawErrors(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want error
	}{
		{"no rows", nil, ErrInvalidDimensions},
		{"empty row", []string{""}, ErrInvalidDimensions},
		{"ragged", []string{"⬛️⬛️", "⬛️"}, ErrRaggedRows},
		{"unknown grapheme", []string{"⬛️x"}, ErrUnknownTile},
		{"bare square without variation selector", []string{"⬛"}, ErrUnknownTile},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Undraw(tt.rows)
			if !errors.Is(err, tt.want) {
				t.Errorf("Undraw(%q) error = %v, want %v", tt.rows, err, tt.want)
			}
		})
	}
}

func TestTileLookup(t *testing.T) {
	for _, m := range Markers {
		if !m.IsMarker() {
			t.Errorf("%s should be a marker", m.Name())
		}
		got, err := TileByName(m.Name())
		if err != nil || got != m {
			t.Errorf("TileByName(%q) = %q, %v", m.Name(), got, err)
		}
	}
	if TileEmpty.IsMarker() || TileBlocked.IsMarker() {
		t.Error("terrain should not count as a marker")
	}
	if TileBlocked.IsPassable() || !TileEmpty.IsPassable() || !TileCoin.IsPassable() {
		t.Error("passability mismatch")
	}
	if _, err := TileByName("dragon"); !errors.Is(err, ErrUnknownTile) {
		t.Errorf("TileByName(dragon) error = %v, want ErrUnknownTile", err)
	}
}

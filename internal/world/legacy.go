package world

// legacyLayout is the hand-authored 24x24 dungeon the game shipped with before
// caves were generated. Only its markers are used; terrain comes from the
// generated grid.
var legacyLayout = mustUndraw([]string{
	"⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️",
	"⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️",
	"⬛️⬛️⬛️⬛️🟫⬜️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬜️⬜️⬜️⬛️⬛️⬛️",
	"⬛️⬛️⬛️⬜️⬜️⬜️⬜️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬜️⬜️⬜️🟫⬜️⬛️⬛️",
	"⬛️⬛️⬛️⬜️⬜️🟥⬜️⬜️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬜️⬜️🟧⬜️⬜️⬜️⬛️⬛️",
	"⬛️⬛️⬛️⬛️⬜️⬜️⬜️⬜️⬜️⬛️⬛️⬛️⬛️⬛️⬜️⬜️⬜️⬜️⬜️⬜️⬜️⬛️⬛️⬛️",
	"⬛️⬛️⬛️⬛️⬛️⬜️⬜️⬜️🟦⬛️⬛️⬛️⬛️🟦⬜️⬜️⬜️⬜️⬛️⬛️⬛️⬛️⬛️⬛️",
	"⬛️⬛️⬛️⬛️⬛️⬛️⬜️⬜️⬛️⬛️⬛️⬛️⬛️⬜️⬜️⬜️⬜️⬛️⬛️⬛️⬛️⬛️⬛️⬛️",
	"⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬜️🟦⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️",
	"⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️",
	"⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️🟦⬜️⬜️⬜️⬛️⬛️⬛️",
	"⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬜️⬜️⬜️⬜️🟩⬜️⬛️⬛️",
	"⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬜️⬜️⬜️⬜️⬜️⬜️⬜️⬛️⬛️",
	"⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬜️🟨⬜️⬜️⬜️⬜️⬜️⬜️⬛️⬛️",
	"⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬜️⬜️⬛️⬛️⬛️⬛️⬜️⬜️⬜️⬜️⬜️⬜️🟨⬜️⬜️⬛️⬛️",
	"⬛️⬛️⬛️⬛️⬛️⬛️⬜️⬜️🟨⬜️⬛️⬛️⬜️⬜️⬜️⬜️⬜️⬜️⬜️⬜️⬜️⬜️⬛️⬛️",
	"⬛️⬛️⬛️⬛️⬛️⬛️⬜️⬜️⬜️⬜️⬜️⬜️🟩🟨⬜️⬜️⬜️⬜️🟩⬜️⬜️⬜️⬛️⬛️",
	"⬛️⬛️⬛️⬛️⬛️⬛️⬜️⬜️🟨⬜️⬜️⬜️⬜️⬜️⬜️⬜️⬜️⬜️⬜️⬜️⬜️⬛️⬛️⬛️",
	"⬛️⬛️⬛️⬛️⬛️⬜️⬜️⬜️⬜️⬜️🟩⬜️⬜️⬜️🟩⬜️⬜️⬛️⬛️⬛️⬛️⬛️⬛️⬛️",
	"⬛️⬛️⬛️⬛️⬜️⬜️⬜️⬜️⬜️⬜️⬜️⬜️⬜️🟨⬜️⬜️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️",
	"⬛️⬛️⬛️⬜️🟩⬜️⬜️⬜️🟨⬜️⬜️⬜️⬜️⬜️⬜️⬜️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️",
	"⬛️⬛️⬛️⬜️⬜️⬜️⬜️⬜️⬜️⬜️⬜️⬜️⬜️⬜️⬜️⬜️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️",
	"⬛️⬛️⬛️⬛️⬜️🟪⬜️⬜️⬜️⬛️⬛️⬛️⬛️⬜️⬜️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️",
	"⬛️⬛️⬛️⬛️⬛️🟦⬜️⬜️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️⬛️",
})

func mustUndraw(rows []string) *Grid {
	g, err := Undraw(rows)
	if err != nil {
		panic(err)
	}
	return g
}

// LegacyLayout returns a copy of the hand-authored layout.
func LegacyLayout() *Grid {
	return legacyLayout.Clone()
}

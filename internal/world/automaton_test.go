package world

import "testing"

func TestStepMajority(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "isolated floor fills in",
			in: []string{
				"⬛️⬛️⬛️",
				"⬛️⬜️⬛️",
				"⬛️⬛️⬛️",
			},
			want: []string{
				"⬛️⬛️⬛️",
				"⬛️⬛️⬛️",
				"⬛️⬛️⬛️",
			},
		},
		{
			name: "open room keeps its interior and loses corners",
			in: []string{
				"⬜️⬜️⬜️",
				"⬜️⬜️⬜️",
				"⬜️⬜️⬜️",
			},
			want: []string{
				"⬛️⬜️⬛️",
				"⬜️⬜️⬜️",
				"⬛️⬜️⬛️",
			},
		},
		{
			name: "edges count as blocked",
			in: []string{
				"⬜️⬜️",
			},
			want: []string{
				"⬛️⬛️",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := mustUndraw(tt.in)
			before := in.Clone()
			got := Step(in)
			want := mustUndraw(tt.want)
			if !got.Equal(want) {
				t.Errorf("Step =\n%s\nwant\n%s", got, want)
			}
			if !in.Equal(before) {
				t.Error("Step mutated its input")
			}
		})
	}
}

func TestStepFixpoint(t *testing.T) {
	noise, err := NewGenerator().Noise(Params{Width: 20, Height: 12, WhiteLevel: 0.45, Seed: "fixpoint"})
	if err != nil {
		t.Fatalf("Noise failed: %v", err)
	}
	g, _, converged := converge(noise, MaxIterations)
	if !converged {
		t.Skip("noise did not settle within the cap")
	}
	again := Step(g)
	if !again.Equal(g) {
		t.Errorf("Step changed a fixpoint:\n%s\n\n%s", g, again)
	}
	if !Step(again).Equal(g) {
		t.Error("Step of a fixpoint should stay put")
	}
}

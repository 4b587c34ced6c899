package notation

import (
	"errors"
	"testing"

	"github.com/SeamusWaldron/nxcube"
)

func TestNormalizeTurn(t *testing.T) {
	tests := []struct {
		turn int
		want nxcube.Modifier
		ok   bool
	}{
		{-3, nxcube.Clockwise, true},
		{-2, nxcube.Double, true},
		{-1, nxcube.Prime, true},
		{0, nxcube.Clockwise, false},
		{1, nxcube.Clockwise, true},
		{2, nxcube.Double, true},
		{3, nxcube.Prime, true},
		{4, nxcube.Clockwise, false},
		{6, nxcube.Double, true},
	}
	for _, tt := range tests {
		got, ok := NormalizeTurn(tt.turn)
		if got != tt.want || ok != tt.ok {
			t.Errorf("NormalizeTurn(%d) = %v, %v; want %v, %v", tt.turn, got, ok, tt.want, tt.ok)
		}
	}
}

func TestSimplifyString(t *testing.T) {
	tests := []struct{ in, want string }{
		{"", ""},
		{"R R", "R2"},
		{"U U'", ""},
		{"F2 F", "F'"},
		{"R U U' R'", ""},
		{"R L R", "R L R"},
		{"D D D D", ""},
		{"B' B' B'", "B"},
	}
	for _, tt := range tests {
		got, err := SimplifyString(tt.in)
		if err != nil {
			t.Errorf("SimplifyString(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("SimplifyString(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSimplifyStringRejectsInvalidTokens(t *testing.T) {
	if _, err := SimplifyString("R Q"); !errors.Is(err, nxcube.ErrInvalidMove) {
		t.Errorf("want ErrInvalidMove, got %v", err)
	}
}

func TestSimplifyPreservesState(t *testing.T) {
	moves, err := nxcube.ParseMoves("R R U U' F2 F D D D L' L' B B2")
	if err != nil {
		t.Fatal(err)
	}

	a, _ := nxcube.New(3)
	b, _ := nxcube.New(3)
	a.Apply(moves...)
	b.Apply(Simplify(moves)...)

	want := map[string]nxcube.Cubelet{}
	for _, c := range a.Cubelets() {
		want[c.ID] = c
	}
	for _, c := range b.Cubelets() {
		if want[c.ID] != c {
			t.Errorf("cubelet %s differs after simplification", c.ID)
		}
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		m    nxcube.Move
		want string
	}{
		{nxcube.R, "Right clockwise"},
		{nxcube.UPrime, "Up counter-clockwise"},
		{nxcube.B2, "Back half turn"},
	}
	for _, tt := range tests {
		if got := Describe(tt.m); got != tt.want {
			t.Errorf("Describe(%v) = %q, want %q", tt.m, got, tt.want)
		}
	}
}

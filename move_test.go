package nxcube

import (
	"errors"
	"testing"
)

func TestParseMoveAllTokens(t *testing.T) {
	for _, m := range AllMoves {
		got, err := ParseMove(m.Notation())
		if err != nil {
			t.Errorf("ParseMove(%q): %v", m.Notation(), err)
			continue
		}
		if got != m {
			t.Errorf("ParseMove(%q) = %+v, want %+v", m.Notation(), got, m)
		}
	}
}

func TestParseMoveRejectsMalformedTokens(t *testing.T) {
	tests := []struct {
		token  string
		reason string
	}{
		{"X", "unknown face"},
		{"", "empty token"},
		{"   ", "empty token"},
		{"r", "unknown face"},
		{"R3", "unknown modifier"},
		{"R2'", "unknown modifier"},
		{"R''", "unknown modifier"},
		{"RU", "unknown modifier"},
		{"R`", "unknown modifier"},
	}

	for _, tt := range tests {
		_, err := ParseMove(tt.token)
		if !errors.Is(err, ErrInvalidMove) {
			t.Errorf("ParseMove(%q): want ErrInvalidMove, got %v", tt.token, err)
			continue
		}
		var moveErr *InvalidMoveError
		if !errors.As(err, &moveErr) {
			t.Errorf("ParseMove(%q): want *InvalidMoveError, got %T", tt.token, err)
			continue
		}
		if moveErr.Reason != tt.reason {
			t.Errorf("ParseMove(%q): reason %q, want %q", tt.token, moveErr.Reason, tt.reason)
		}
	}
}

func TestParseMoves(t *testing.T) {
	moves, err := ParseMoves("R U  R'\tU2\n")
	if err != nil {
		t.Fatal(err)
	}
	want := []Move{R, U, RPrime, U2}
	if len(moves) != len(want) {
		t.Fatalf("got %d moves, want %d", len(moves), len(want))
	}
	for i := range want {
		if moves[i] != want[i] {
			t.Errorf("move %d = %v, want %v", i, moves[i], want[i])
		}
	}
}

func TestParseMovesEmptyInput(t *testing.T) {
	for _, s := range []string{"", "   ", "\n\t"} {
		moves, err := ParseMoves(s)
		if err != nil {
			t.Errorf("ParseMoves(%q): %v", s, err)
		}
		if len(moves) != 0 {
			t.Errorf("ParseMoves(%q) = %v, want empty", s, moves)
		}
	}
}

func TestParseMovesFailsOnAnyInvalidToken(t *testing.T) {
	moves, err := ParseMoves("R U X D")
	if !errors.Is(err, ErrInvalidMove) {
		t.Fatalf("want ErrInvalidMove, got %v", err)
	}
	if moves != nil {
		t.Errorf("want no moves, got %v", moves)
	}
}

func TestFormatMoves(t *testing.T) {
	if got := FormatMoves(nil); got != "" {
		t.Errorf("FormatMoves(nil) = %q", got)
	}
	if got := FormatMoves(TPerm); got != "R U R' U' R' F R2 U' R' U' R U R' F'" {
		t.Errorf("FormatMoves(TPerm) = %q", got)
	}
}

func TestInverse(t *testing.T) {
	tests := []struct{ in, want Move }{
		{R, RPrime},
		{RPrime, R},
		{R2, R2},
		{FPrime, F},
	}
	for _, tt := range tests {
		if got := tt.in.Inverse(); got != tt.want {
			t.Errorf("%v.Inverse() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestInvertMovesUndoesSequence(t *testing.T) {
	if got := FormatMoves(InvertMoves(SexyMove)); got != "U R U' R'" {
		t.Errorf("InvertMoves(SexyMove) = %q", got)
	}

	e := mustNew(t, 4)
	e.Apply(TPerm...)
	e.Apply(InvertMoves(TPerm)...)
	if !e.IsSolved() {
		t.Error("sequence followed by its inverse should solve the cube")
	}
}

func TestParseFace(t *testing.T) {
	for _, f := range Faces {
		got, ok := ParseFace(f.String()[0])
		if !ok || got != f {
			t.Errorf("ParseFace(%q) = %v, %v", f.String(), got, ok)
		}
	}
	if _, ok := ParseFace('x'); ok {
		t.Error("ParseFace('x') should fail")
	}
}

package nxcube

import (
	"errors"
	"math/rand/v2"
	"testing"
)

func mustNew(t *testing.T, size int, opts ...Option) *Engine {
	t.Helper()
	e, err := New(size, opts...)
	if err != nil {
		t.Fatalf("New(%d): %v", size, err)
	}
	return e
}

func snapshotByID(e *Engine) map[string]Cubelet {
	out := make(map[string]Cubelet)
	for _, c := range e.Cubelets() {
		out[c.ID] = c
	}
	return out
}

func sameState(t *testing.T, want, got map[string]Cubelet) {
	t.Helper()
	if len(want) != len(got) {
		t.Fatalf("cubelet count: want %d, got %d", len(want), len(got))
	}
	for id, w := range want {
		g, ok := got[id]
		if !ok {
			t.Errorf("cubelet %s missing", id)
			continue
		}
		if w != g {
			t.Errorf("cubelet %s: want %+v, got %+v", id, w, g)
		}
	}
}

func TestNewCubeIsSolved(t *testing.T) {
	for size := 2; size <= 6; size++ {
		e := mustNew(t, size)
		if !e.IsSolved() {
			t.Errorf("new %dx%d cube should be solved", size, size)
		}
		if e.Size() != size {
			t.Errorf("Size() = %d, want %d", e.Size(), size)
		}
	}
}

func TestNewRejectsSmallSize(t *testing.T) {
	for _, size := range []int{1, 0, -3} {
		_, err := New(size)
		if !errors.Is(err, ErrConfiguration) {
			t.Errorf("New(%d): want ErrConfiguration, got %v", size, err)
		}
		var cfgErr *ConfigurationError
		if !errors.As(err, &cfgErr) || cfgErr.Value != size {
			t.Errorf("New(%d): want *ConfigurationError with value %d, got %v", size, size, err)
		}
	}
}

func TestCubeletCountsByClass(t *testing.T) {
	tests := []struct {
		size                         int
		corner, edge, center, inner int
	}{
		{2, 8, 0, 0, 0},
		{3, 8, 12, 6, 0},
		{4, 8, 24, 24, 8},
		{5, 8, 36, 54, 26},
	}

	for _, tt := range tests {
		e := mustNew(t, tt.size)
		counts := map[Class]int{}
		for _, c := range e.Cubelets() {
			counts[c.Class]++
		}
		if counts[Corner] != tt.corner || counts[Edge] != tt.edge ||
			counts[Center] != tt.center || counts[Inner] != tt.inner {
			t.Errorf("size %d: got %v", tt.size, counts)
		}

		total := tt.size * tt.size * tt.size
		if tt.size%2 == 1 {
			total--
		}
		if got := len(e.Cubelets()); got != total {
			t.Errorf("size %d: %d cubelets, want %d", tt.size, got, total)
		}
	}
}

func TestInnerCubeletsHaveNoStickers(t *testing.T) {
	e := mustNew(t, 4)
	for _, c := range e.Cubelets() {
		if got, want := c.Colors.Count(), int(c.Class); got != want {
			t.Errorf("%s (%s): %d stickers, want %d", c.ID, c.Class, got, want)
		}
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	for size := 2; size <= 4; size++ {
		for _, m := range AllMoves {
			e := mustNew(t, size)
			e.ApplyMove(m)
			if e.IsSolved() {
				t.Errorf("size %d: cube should not be solved after %s", size, m)
			}
		}
	}
}

func TestRR_ReturnsToSolved_AllFaces(t *testing.T) {
	for size := 2; size <= 5; size++ {
		for _, face := range Faces {
			e := mustNew(t, size)
			before := snapshotByID(e)
			m := Move{Face: face}
			e.Apply(m, m, m, m)
			if !e.IsSolved() {
				t.Errorf("size %d: %v x 4 should return to solved", size, face)
				t.Log(e.String())
			}
			sameState(t, before, snapshotByID(e))
		}
	}
}

func TestR2R2_ReturnsToSolved_AllFaces(t *testing.T) {
	for size := 2; size <= 5; size++ {
		for _, face := range Faces {
			e := mustNew(t, size)
			before := snapshotByID(e)
			m := Move{Face: face, Modifier: Double}
			e.Apply(m, m)
			sameState(t, before, snapshotByID(e))
		}
	}
}

func TestDoubleEqualsTwoQuarterTurnsEitherWay(t *testing.T) {
	for _, face := range Faces {
		a := mustNew(t, 3)
		b := mustNew(t, 3)
		c := mustNew(t, 3)
		a.ApplyMove(Move{Face: face, Modifier: Double})
		b.Apply(Move{Face: face}, Move{Face: face})
		c.Apply(Move{Face: face, Modifier: Prime}, Move{Face: face, Modifier: Prime})
		sameState(t, snapshotByID(a), snapshotByID(b))
		sameState(t, snapshotByID(a), snapshotByID(c))
	}
}

func TestMoveThenInverseRestoresState(t *testing.T) {
	for size := 2; size <= 4; size++ {
		e := mustNew(t, size, WithRand(rand.New(rand.NewPCG(7, 11))))
		e.Scramble(30)
		for _, m := range AllMoves {
			before := snapshotByID(e)
			e.ApplyMove(m)
			e.ApplyMove(m.Inverse())
			sameState(t, before, snapshotByID(e))
		}
	}
}

func TestRThenRPrimeScenario(t *testing.T) {
	e := mustNew(t, 3)
	before := snapshotByID(e)

	r, err := ParseMove("R")
	if err != nil {
		t.Fatal(err)
	}
	rp, err := ParseMove("R'")
	if err != nil {
		t.Fatal(err)
	}
	e.ApplyMove(r)
	e.ApplyMove(rp)

	if !e.IsSolved() {
		t.Error("cube should be solved after R R'")
		t.Log(e.String())
	}
	sameState(t, before, snapshotByID(e))
}

func TestSexyMove_6Times_ReturnsToSolved(t *testing.T) {
	// (R U R' U') x 6 = identity
	for _, size := range []int{2, 3} {
		e := mustNew(t, size)
		for i := 0; i < 6; i++ {
			e.Apply(SexyMove...)
		}
		if !e.IsSolved() {
			t.Errorf("size %d: sexy move x 6 should return to solved", size)
			t.Log(e.String())
		}
	}
}

func TestOnlyLayerMoves(t *testing.T) {
	for _, m := range AllMoves {
		e := mustNew(t, 4)
		before := snapshotByID(e)
		e.ApplyMove(m)
		for id, c := range snapshotByID(e) {
			prev := before[id]
			if prev.Position.InLayer(m.Face, 4) {
				if !c.Position.InLayer(m.Face, 4) {
					t.Errorf("%s: cubelet %s left the layer", m, id)
				}
				continue
			}
			if c != prev {
				t.Errorf("%s: cubelet %s outside the layer changed", m, id)
			}
		}
	}
}

// Every sticker label must point outward: a cubelet carries a sticker on
// face f only while it sits in f's outer layer.
func TestStickersFaceOutward(t *testing.T) {
	check := func(t *testing.T, e *Engine) {
		t.Helper()
		for _, c := range e.Cubelets() {
			for _, f := range Faces {
				_, has := c.Color(f)
				if has != c.Position.InLayer(f, e.Size()) {
					t.Fatalf("cubelet %s at %v: sticker on %s = %v", c.ID, c.Position, f, has)
				}
			}
		}
	}

	for size := 2; size <= 5; size++ {
		for _, m := range AllMoves {
			e := mustNew(t, size)
			e.ApplyMove(m)
			check(t, e)
		}
		e := mustNew(t, size, WithRand(rand.New(rand.NewPCG(3, 5))))
		e.Scramble(50)
		check(t, e)
	}
}

func TestUTurnMovesFrontEdgeToLeft(t *testing.T) {
	e := mustNew(t, 3)
	// Front-top edge: x=0, y=max, z=max.
	e.ApplyMove(U)

	c, ok := e.Cubelet("1-2-2")
	if !ok {
		t.Fatal("cubelet 1-2-2 missing")
	}
	if want := (Position{X: -2, Y: 2, Z: 0}); c.Position != want {
		t.Errorf("position = %v, want %v", c.Position, want)
	}
	if col, _ := c.Color(FaceL); col != Green {
		t.Errorf("L sticker = %v, want green", col)
	}
	if col, _ := c.Color(FaceU); col != White {
		t.Errorf("U sticker = %v, want white", col)
	}
	if _, has := c.Color(FaceF); has {
		t.Error("F sticker should have moved away")
	}
}

func TestInvariantsAfterScramble(t *testing.T) {
	for size := 2; size <= 5; size++ {
		e := mustNew(t, size, WithRand(rand.New(rand.NewPCG(uint64(size), 99))))
		before := snapshotByID(e)
		e.Scramble(60)

		for _, f := range Faces {
			if got := e.StickerCount(f); got != size*size {
				t.Errorf("size %d: face %s has %d stickers, want %d", size, f, got, size*size)
			}
		}

		seen := map[Position]string{}
		for _, c := range e.Cubelets() {
			prev := before[c.ID]
			if c.Colors.Palette() != prev.Colors.Palette() {
				t.Errorf("size %d: cubelet %s changed colors", size, c.ID)
			}
			if c.Class != prev.Class || classify(c.Position, size) != c.Class {
				t.Errorf("size %d: cubelet %s changed class", size, c.ID)
			}
			if other, dup := seen[c.Position]; dup {
				t.Errorf("size %d: cubelets %s and %s share %v", size, other, c.ID, c.Position)
			}
			seen[c.Position] = c.ID
		}
		if len(seen) != len(before) {
			t.Errorf("size %d: %d occupied positions, want %d", size, len(seen), len(before))
		}
	}
}

func TestSeededScrambleReplays(t *testing.T) {
	e := mustNew(t, 3, WithRand(rand.New(rand.NewPCG(42, 1))))
	scramble := e.Scramble(20)

	moves, err := ParseMoves(scramble)
	if err != nil {
		t.Fatalf("ParseMoves(%q): %v", scramble, err)
	}
	if len(moves) != 20 {
		t.Fatalf("scramble has %d moves, want 20", len(moves))
	}

	replay := mustNew(t, 3)
	for _, m := range moves {
		replay.ApplyMove(m)
	}
	sameState(t, snapshotByID(e), snapshotByID(replay))

	again := mustNew(t, 3, WithRand(rand.New(rand.NewPCG(42, 1))))
	if got := again.Scramble(20); got != scramble {
		t.Errorf("same seed gave %q, want %q", got, scramble)
	}
}

func TestScrambleNonPositiveCount(t *testing.T) {
	e := mustNew(t, 3)
	if s := e.Scramble(0); s != "" {
		t.Errorf("Scramble(0) = %q", s)
	}
	if s := e.Scramble(-4); s != "" {
		t.Errorf("Scramble(-4) = %q", s)
	}
	if !e.IsSolved() || len(e.History()) != 0 {
		t.Error("non-positive scramble should not change the cube")
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	e := mustNew(t, 3)
	snap := e.Cubelets()
	for i := range snap {
		snap[i].Position = Position{}
		snap[i].Colors[FaceU] = Red
		snap[i].ID = "x"
	}
	snap[0] = Cubelet{}

	if !e.IsSolved() {
		t.Error("mutating a snapshot changed the engine")
	}
	if _, ok := e.Cubelet("0-0-0"); !ok {
		t.Error("cubelet 0-0-0 missing after snapshot mutation")
	}
}

func TestApplyNotationIsAtomic(t *testing.T) {
	e := mustNew(t, 3)
	err := e.ApplyNotation("R U X")
	if !errors.Is(err, ErrInvalidMove) {
		t.Fatalf("want ErrInvalidMove, got %v", err)
	}
	if !e.IsSolved() || len(e.History()) != 0 {
		t.Error("no move should be applied when a token is invalid")
	}

	if err := e.ApplyNotation("R U R' U'"); err != nil {
		t.Fatal(err)
	}
	if got := FormatMoves(e.History()); got != "R U R' U'" {
		t.Errorf("history = %q", got)
	}
}

func TestResetRestoresSolved(t *testing.T) {
	e := mustNew(t, 4, WithRand(rand.New(rand.NewPCG(1, 2))))
	fresh := snapshotByID(e)
	e.Scramble(25)
	if e.IsSolved() {
		t.Fatal("scrambled cube reports solved")
	}
	e.Reset()
	if !e.IsSolved() {
		t.Error("cube should be solved after Reset")
	}
	if len(e.History()) != 0 {
		t.Error("Reset should clear history")
	}
	sameState(t, fresh, snapshotByID(e))
}

func TestUndo(t *testing.T) {
	e := mustNew(t, 3)
	if e.Undo() {
		t.Error("Undo on a fresh cube should report false")
	}
	e.Apply(R, U2, FPrime)
	for i := 0; i < 3; i++ {
		if !e.Undo() {
			t.Fatalf("Undo %d failed", i)
		}
	}
	if !e.IsSolved() || len(e.History()) != 0 {
		t.Error("undoing every move should restore the solved cube")
	}
}

func TestMoveHistoryDisabled(t *testing.T) {
	e := mustNew(t, 3, WithMoveHistory(false))
	e.Apply(R, U)
	if len(e.History()) != 0 {
		t.Error("history should stay empty when disabled")
	}
}

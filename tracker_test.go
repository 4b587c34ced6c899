package nxcube

import (
	"math/rand/v2"
	"testing"
)

func TestTrackerReset(t *testing.T) {
	tr, err := NewTracker(3)
	if err != nil {
		t.Fatal(err)
	}
	if !tr.IsSolved() {
		t.Error("New tracker should start solved")
	}

	tr.ApplyMove(R)
	if tr.IsSolved() {
		t.Error("Tracker should not be solved after move")
	}

	tr.Reset()
	if !tr.IsSolved() {
		t.Error("Tracker should be solved after reset")
	}
}

func TestTrackerCallbacks(t *testing.T) {
	tr, err := NewTracker(3)
	if err != nil {
		t.Fatal(err)
	}

	var moves []Move
	var snapshots int
	tr.OnMove(func(m Move, snapshot []Cubelet) {
		moves = append(moves, m)
		if len(snapshot) == 26 {
			snapshots++
		}
		// Observers may scribble on their snapshot.
		snapshot[0].Colors = Colors{}
	})

	var transitions []bool
	tr.OnSolvedChange(func(solved bool) {
		transitions = append(transitions, solved)
	})

	tr.ApplyMoves([]Move{R, U, UPrime, RPrime})

	if FormatMoves(moves) != "R U U' R'" || snapshots != 4 {
		t.Errorf("got moves %v, %d snapshots", moves, snapshots)
	}
	if len(transitions) != 2 || transitions[0] || !transitions[1] {
		t.Errorf("transitions = %v, want [false true]", transitions)
	}
	if !tr.Engine().IsSolved() {
		t.Error("observer mutation leaked into the engine")
	}
}

func TestTrackerScramble(t *testing.T) {
	tr, err := NewTracker(3, WithRand(rand.New(rand.NewPCG(9, 9))))
	if err != nil {
		t.Fatal(err)
	}
	count := 0
	tr.OnMove(func(Move, []Cubelet) { count++ })

	s := tr.Scramble(12)
	moves, err := ParseMoves(s)
	if err != nil {
		t.Fatal(err)
	}
	if len(moves) != 12 || count != 12 {
		t.Errorf("scramble %q: %d moves, %d callbacks", s, len(moves), count)
	}
}

func TestNewTrackerRejectsSmallSize(t *testing.T) {
	if _, err := NewTracker(1); err == nil {
		t.Error("want error for size 1")
	}
}

func TestTrackerUndo(t *testing.T) {
	tr, err := NewTracker(3)
	if err != nil {
		t.Fatal(err)
	}

	var seen []Move
	tr.OnMove(func(m Move, _ []Cubelet) { seen = append(seen, m) })

	if _, ok := tr.Undo(); ok {
		t.Error("Undo on empty history should report false")
	}

	tr.ApplyMove(F2)
	m, ok := tr.Undo()
	if !ok || m != F2 {
		t.Fatalf("Undo() = %v, %v; want F2, true", m, ok)
	}
	if !tr.IsSolved() {
		t.Error("cube should be solved after undoing its only move")
	}
	if len(seen) != 2 || seen[1] != F2.Inverse() {
		t.Errorf("observer saw %v", seen)
	}
	if len(tr.Engine().History()) != 0 {
		t.Error("history should be empty after undo")
	}
}

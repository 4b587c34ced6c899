package nxcube

// Tracker wraps an Engine and notifies observers, such as a renderer or an
// animation layer, after each move.
type Tracker struct {
	engine     *Engine
	solved     bool
	moveFunc   func(m Move, snapshot []Cubelet)
	solvedFunc func(solved bool)
}

// NewTracker creates a tracker over a new solved engine.
func NewTracker(size int, opts ...Option) (*Tracker, error) {
	e, err := New(size, opts...)
	if err != nil {
		return nil, err
	}
	return &Tracker{engine: e, solved: true}, nil
}

// OnMove sets a callback that fires after every applied move with a fresh
// snapshot of the cube.
func (t *Tracker) OnMove(cb func(m Move, snapshot []Cubelet)) {
	t.moveFunc = cb
}

// OnSolvedChange sets a callback that fires when the cube becomes solved or
// stops being solved.
func (t *Tracker) OnSolvedChange(cb func(solved bool)) {
	t.solvedFunc = cb
}

// ApplyMove applies a move and notifies observers.
func (t *Tracker) ApplyMove(m Move) {
	t.engine.ApplyMove(m)
	if t.moveFunc != nil {
		t.moveFunc(m, t.engine.Cubelets())
	}
	t.checkSolved()
}

// ApplyMoves applies multiple moves.
func (t *Tracker) ApplyMoves(moves []Move) {
	for _, m := range moves {
		t.ApplyMove(m)
	}
}

// Scramble scrambles the cube one move at a time so observers see every
// intermediate state.
func (t *Tracker) Scramble(count int) string {
	if count <= 0 {
		return ""
	}
	moves := make([]Move, 0, count)
	for i := 0; i < count; i++ {
		m := RandomMove(t.engine.cfg.rand)
		t.ApplyMove(m)
		moves = append(moves, m)
	}
	return FormatMoves(moves)
}

// Reset resets the tracker to a solved cube state.
func (t *Tracker) Reset() {
	t.engine.Reset()
	t.checkSolved()
}

func (t *Tracker) checkSolved() {
	solved := t.engine.IsSolved()
	if solved == t.solved {
		return
	}
	t.solved = solved
	if t.solvedFunc != nil {
		t.solvedFunc(solved)
	}
}

// IsSolved returns true if the cube is solved.
func (t *Tracker) IsSolved() bool {
	return t.solved
}

// Engine returns the underlying engine for inspection.
func (t *Tracker) Engine() *Engine {
	return t.engine
}

// CubeString returns a string representation of the cube.
func (t *Tracker) CubeString() string {
	return t.engine.String()
}

// Undo reverts the last move in history and returns it. Observers see the
// inverse move.
func (t *Tracker) Undo() (Move, bool) {
	h := t.engine.history
	if len(h) == 0 {
		return Move{}, false
	}
	last := h[len(h)-1]
	t.engine.Undo()
	if t.moveFunc != nil {
		t.moveFunc(last.Inverse(), t.engine.Cubelets())
	}
	t.checkSolved()
	return last, true
}

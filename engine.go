package nxcube

import (
	"fmt"

	"go.uber.org/zap"
)

// MinSize is the smallest representable cube.
const MinSize = 2

// Engine holds the state of an n×n×n cube.
//
// An Engine is not safe for concurrent use. Callers that share one across
// goroutines must guard the whole engine with a single lock.
type Engine struct {
	size     int
	cubelets []Cubelet
	history  []Move
	cfg      *config
}

// New creates a solved cube of the given size with standard orientation:
// White on top, Green in front.
func New(size int, opts ...Option) (*Engine, error) {
	if size < MinSize {
		return nil, &ConfigurationError{
			Field:  "size",
			Value:  size,
			Reason: fmt.Sprintf("must be at least %d", MinSize),
		}
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	e := &Engine{size: size, cfg: cfg}
	e.Reset()
	return e, nil
}

// buildLattice creates every cubelet of a solved n-cube. The odd-size
// center has no stickers and is never represented.
func buildLattice(n int) []Cubelet {
	count := n * n * n
	if n%2 == 1 {
		count--
	}
	cubelets := make([]Cubelet, 0, count)
	ext := n - 1

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				p := Position{X: 2*i - ext, Y: 2*j - ext, Z: 2*k - ext}
				if p == (Position{}) {
					continue
				}

				var colors Colors
				for _, f := range Faces {
					if p.InLayer(f, n) {
						colors[f] = SolvedColor(f)
					}
				}

				cubelets = append(cubelets, Cubelet{
					ID:       fmt.Sprintf("%d-%d-%d", i, j, k),
					Position: p,
					Colors:   colors,
					Class:    classify(p, n),
				})
			}
		}
	}
	return cubelets
}

// Size returns the cube size n.
func (e *Engine) Size() int {
	return e.size
}

// Cubelets returns an independent snapshot of every cubelet. Modifying the
// result never affects the engine.
func (e *Engine) Cubelets() []Cubelet {
	out := make([]Cubelet, len(e.cubelets))
	copy(out, e.cubelets)
	return out
}

// Cubelet returns the cubelet with the given id.
func (e *Engine) Cubelet(id string) (Cubelet, bool) {
	for _, c := range e.cubelets {
		if c.ID == id {
			return c, true
		}
	}
	return Cubelet{}, false
}

// ApplyMove turns the outer layer of m.Face. State is final when it returns.
func (e *Engine) ApplyMove(m Move) {
	e.cfg.logger.Debug("applying move",
		zap.String("move", m.Notation()),
		zap.Int("size", e.size),
	)

	count, dir := m.turns()
	for i := range e.cubelets {
		c := &e.cubelets[i]
		if !c.Position.InLayer(m.Face, e.size) {
			continue
		}
		for t := 0; t < count; t++ {
			c.Position = c.Position.Rotate(m.Face, dir)
			c.Colors = c.Colors.Permute(m.Face, dir)
		}
	}

	if e.cfg.moveHistory {
		e.history = append(e.history, m)
	}
}

// Apply applies a sequence of moves in order.
func (e *Engine) Apply(moves ...Move) {
	for _, m := range moves {
		e.ApplyMove(m)
	}
}

// ApplyNotation parses s and applies the moves. Nothing is applied if any
// token is invalid.
func (e *Engine) ApplyNotation(s string) error {
	moves, err := ParseMoves(s)
	if err != nil {
		return err
	}
	e.Apply(moves...)
	return nil
}

// Reset restores the solved state for the current size and clears history.
func (e *Engine) Reset() {
	e.cubelets = buildLattice(e.size)
	e.history = nil
}

// History returns the moves applied since construction or the last Reset.
// It is empty when move history is disabled.
func (e *Engine) History() []Move {
	out := make([]Move, len(e.history))
	copy(out, e.history)
	return out
}

// Undo reverts the last move in history. It reports false when there is
// nothing to undo.
func (e *Engine) Undo() bool {
	if len(e.history) == 0 {
		return false
	}
	last := e.history[len(e.history)-1]
	e.history = e.history[:len(e.history)-1]

	saved := e.cfg.moveHistory
	e.cfg.moveHistory = false
	e.ApplyMove(last.Inverse())
	e.cfg.moveHistory = saved
	return true
}

package nxcube

import "math/rand/v2"

// DefaultScrambleLength is the scramble length used when callers have no
// preference.
const DefaultScrambleLength = 20

// Rand is the random source used for scrambling. *math/rand/v2.Rand
// satisfies it.
type Rand interface {
	IntN(n int) int
}

// systemRand draws from the process-wide source.
type systemRand struct{}

func (systemRand) IntN(n int) int {
	return rand.IntN(n)
}

// RandomMove draws one move uniformly from AllMoves.
func RandomMove(r Rand) Move {
	return AllMoves[r.IntN(len(AllMoves))]
}

// Scramble applies count random moves, each immediately, and returns them as
// a space-separated notation string. A count of zero or less does nothing.
func (e *Engine) Scramble(count int) string {
	if count <= 0 {
		return ""
	}

	moves := make([]Move, count)
	for i := range moves {
		moves[i] = RandomMove(e.cfg.rand)
		e.ApplyMove(moves[i])
	}

	return FormatMoves(moves)
}

// Package notation provides move sequence helpers built on the nxcube move
// grammar.
package notation

import (
	"github.com/SeamusWaldron/nxcube"
)

// QuarterTurns returns the clockwise quarter-turn count of a modifier:
// 1 for clockwise, 2 for a half turn, 3 for prime.
func QuarterTurns(m nxcube.Modifier) int {
	switch m {
	case nxcube.Prime:
		return 3
	case nxcube.Double:
		return 2
	default:
		return 1
	}
}

// NormalizeTurn folds a clockwise quarter-turn count into a modifier.
// -3 -> clockwise, -2 -> double, -1 -> prime, 1 -> clockwise, 2 -> double,
// 3 -> prime. A multiple of four is no turn at all and reports false.
func NormalizeTurn(turn int) (nxcube.Modifier, bool) {
	turn = ((turn % 4) + 4) % 4
	switch turn {
	case 1:
		return nxcube.Clockwise, true
	case 2:
		return nxcube.Double, true
	case 3:
		return nxcube.Prime, true
	default:
		return nxcube.Clockwise, false
	}
}

// Simplify merges runs of consecutive turns of the same face into a single
// move and drops runs that cancel out. "R R" becomes "R2", "U U'" vanishes
// and "F2 F" becomes "F'". The result leaves any cube in the same state as
// the input.
func Simplify(moves []nxcube.Move) []nxcube.Move {
	out := make([]nxcube.Move, 0, len(moves))
	for _, m := range moves {
		if n := len(out); n > 0 && out[n-1].Face == m.Face {
			mod, ok := NormalizeTurn(QuarterTurns(out[n-1].Modifier) + QuarterTurns(m.Modifier))
			if !ok {
				out = out[:n-1]
				continue
			}
			out[n-1].Modifier = mod
			continue
		}
		out = append(out, m)
	}
	return out
}

// SimplifyString parses, simplifies and formats a move sequence.
func SimplifyString(s string) (string, error) {
	moves, err := nxcube.ParseMoves(s)
	if err != nil {
		return "", err
	}
	return nxcube.FormatMoves(Simplify(moves)), nil
}

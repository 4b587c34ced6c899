package nxcube

import (
	"strings"
)

// Face identifies one of the six outward directions of the cube. It is used
// both as a sticker label and as the target of a move.
type Face int

const (
	FaceU Face = iota // Up (+y)
	FaceD             // Down (-y)
	FaceF             // Front (+z)
	FaceB             // Back (-z)
	FaceR             // Right (+x)
	FaceL             // Left (-x)
)

// Faces lists every face in label order.
var Faces = [6]Face{FaceU, FaceD, FaceF, FaceB, FaceR, FaceL}

var faceLetters = [6]byte{
	FaceU: 'U',
	FaceD: 'D',
	FaceF: 'F',
	FaceB: 'B',
	FaceR: 'R',
	FaceL: 'L',
}

func (f Face) String() string {
	if f < FaceU || f > FaceL {
		return "?"
	}
	return string(faceLetters[f])
}

// ParseFace converts a face letter (U, D, F, B, R, L) to a Face.
func ParseFace(c byte) (Face, bool) {
	for f, letter := range faceLetters {
		if letter == c {
			return Face(f), true
		}
	}
	return 0, false
}

// Modifier is the turn amount attached to a move token.
type Modifier int

const (
	Clockwise Modifier = iota // no suffix, quarter turn clockwise
	Prime                     // ' suffix, quarter turn counter-clockwise
	Double                    // 2 suffix, half turn
)

// Suffix returns the notation suffix for the modifier.
func (m Modifier) Suffix() string {
	switch m {
	case Prime:
		return "'"
	case Double:
		return "2"
	default:
		return ""
	}
}

func (m Modifier) String() string {
	switch m {
	case Clockwise:
		return "clockwise"
	case Prime:
		return "prime"
	case Double:
		return "double"
	default:
		return "unknown"
	}
}

// Move is a single face turn.
type Move struct {
	Face     Face
	Modifier Modifier
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', R2, U, U', U2
func (m Move) Notation() string {
	return m.Face.String() + m.Modifier.Suffix()
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// Inverse returns the inverse of this move.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	inv := m
	switch m.Modifier {
	case Clockwise:
		inv.Modifier = Prime
	case Prime:
		inv.Modifier = Clockwise
	}
	return inv
}

// turns returns the number of quarter turns and their direction
// (+1 clockwise, -1 counter-clockwise).
func (m Move) turns() (count, dir int) {
	switch m.Modifier {
	case Prime:
		return 1, -1
	case Double:
		return 2, 1
	default:
		return 1, 1
	}
}

// ParseMove parses a single notation token into a Move.
// Examples: R, R', R2, U, U', U2
// Returns an *InvalidMoveError if the token is empty, starts with anything
// other than a face letter, or carries a suffix other than ' or 2.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, &InvalidMoveError{Token: s, Reason: "empty token"}
	}

	face, ok := ParseFace(s[0])
	if !ok {
		return Move{}, &InvalidMoveError{Token: s, Reason: "unknown face"}
	}

	var mod Modifier
	switch s[1:] {
	case "":
		mod = Clockwise
	case "'":
		mod = Prime
	case "2":
		mod = Double
	default:
		return Move{}, &InvalidMoveError{Token: s, Reason: "unknown modifier"}
	}

	return Move{Face: face, Modifier: mod}, nil
}

// ParseMoves parses a whitespace-separated sequence of moves.
// Example: "R U R' U'"
// Empty input yields an empty slice. A single invalid token fails the whole
// sequence and no moves are returned.
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for _, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, err
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// InvertMoves returns the sequence that undoes moves: each move inverted, in
// reverse order.
func InvertMoves(moves []Move) []Move {
	inv := make([]Move, len(moves))
	for i, m := range moves {
		inv[len(moves)-1-i] = m.Inverse()
	}
	return inv
}

package analysis

import (
	"github.com/SeamusWaldron/nxcube"
)

// Token encoding for n-gram detection.
// A move becomes one byte: face (0-5) * 3 + modifier (0-2), so the 18 outer
// moves map to 0..17.

// Token encodes a move as a single byte.
func Token(m nxcube.Move) uint8 {
	return uint8(m.Face)*3 + uint8(m.Modifier)
}

// FromToken decodes a token back to a move.
func FromToken(t uint8) nxcube.Move {
	face := nxcube.Face(t / 3)
	if int(face) >= len(nxcube.Faces) {
		face = nxcube.FaceU
	}
	return nxcube.Move{Face: face, Modifier: nxcube.Modifier(t % 3)}
}

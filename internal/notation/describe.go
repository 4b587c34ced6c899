package notation

import (
	"fmt"

	"github.com/SeamusWaldron/nxcube"
)

var faceNames = map[nxcube.Face]string{
	nxcube.FaceU: "Up",
	nxcube.FaceD: "Down",
	nxcube.FaceF: "Front",
	nxcube.FaceB: "Back",
	nxcube.FaceR: "Right",
	nxcube.FaceL: "Left",
}

// Describe spells a move out in words, viewed from outside the turning face.
//
// Mapping:
//
//	R  -> "Right clockwise"
//	R' -> "Right counter-clockwise"
//	R2 -> "Right half turn"
func Describe(m nxcube.Move) string {
	name := faceNames[m.Face]
	switch m.Modifier {
	case nxcube.Prime:
		return fmt.Sprintf("%s counter-clockwise", name)
	case nxcube.Double:
		return fmt.Sprintf("%s half turn", name)
	default:
		return fmt.Sprintf("%s clockwise", name)
	}
}

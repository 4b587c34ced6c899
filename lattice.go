package nxcube

import "fmt"

// Color represents a sticker color.
type Color byte

const (
	NoColor Color = iota // No sticker on this face of the cubelet
	White                // Up face when solved
	Yellow               // Down face when solved
	Green                // Front face when solved
	Blue                 // Back face when solved
	Red                  // Right face when solved
	Orange               // Left face when solved
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	case NoColor:
		return "."
	default:
		return "?"
	}
}

// Hex returns the display color used by renderers, or "" for NoColor.
func (c Color) Hex() string {
	switch c {
	case White:
		return "#ffffff"
	case Yellow:
		return "#ffed00"
	case Green:
		return "#4caf50"
	case Blue:
		return "#2196f3"
	case Red:
		return "#f44336"
	case Orange:
		return "#ff5722"
	default:
		return ""
	}
}

// SolvedColor returns the color a face shows when the cube is solved:
// White on top, Green in front.
func SolvedColor(f Face) Color {
	switch f {
	case FaceU:
		return White
	case FaceD:
		return Yellow
	case FaceF:
		return Green
	case FaceB:
		return Blue
	case FaceR:
		return Red
	case FaceL:
		return Orange
	default:
		return NoColor
	}
}

// Colors maps each face label to the sticker a cubelet carries on it.
// It is an array so copies never share state.
type Colors [6]Color

// On returns the color on face f and whether a sticker is present.
func (c Colors) On(f Face) (Color, bool) {
	col := c[f]
	return col, col != NoColor
}

// Count returns the number of stickers.
func (c Colors) Count() int {
	n := 0
	for _, col := range c {
		if col != NoColor {
			n++
		}
	}
	return n
}

// Palette returns the set of sticker colors as a bitmask indexed by Color.
// It is independent of which face each color sits on.
func (c Colors) Palette() uint8 {
	var mask uint8
	for _, col := range c {
		if col != NoColor {
			mask |= 1 << col
		}
	}
	return mask
}

// Position is a lattice point. Coordinates are stored doubled so that
// even-sized cubes, whose true coordinates are half-integers, stay on an
// integer grid: on a 4x4x4 the true x = -1.5 is stored as X = -3.
type Position struct {
	X, Y, Z int
}

// Coords returns the true coordinates, centered on the origin.
func (p Position) Coords() (x, y, z float64) {
	return float64(p.X) / 2, float64(p.Y) / 2, float64(p.Z) / 2
}

func (p Position) String() string {
	x, y, z := p.Coords()
	return fmt.Sprintf("(%g,%g,%g)", x, y, z)
}

// Class is the kind of cubelet, by how many boundary planes it touches.
type Class int

const (
	Inner  Class = iota // no boundary coordinate; never visible
	Center              // one boundary coordinate
	Edge                // two
	Corner              // three
)

func (c Class) String() string {
	switch c {
	case Corner:
		return "corner"
	case Edge:
		return "edge"
	case Center:
		return "center"
	case Inner:
		return "inner"
	default:
		return "unknown"
	}
}

// Cubelet is one sub-cube. It is a plain value: copying it copies everything.
type Cubelet struct {
	ID       string // grid indices of the solved position, "i-j-k"
	Position Position
	Colors   Colors
	Class    Class
}

// Color returns the color on face f and whether a sticker is present.
func (c Cubelet) Color(f Face) (Color, bool) {
	return c.Colors.On(f)
}

// classify counts the coordinates of p sitting on a boundary of an n-cube.
func classify(p Position, n int) Class {
	ext := n - 1
	count := 0
	for _, v := range [3]int{p.X, p.Y, p.Z} {
		if v == ext || v == -ext {
			count++
		}
	}
	return Class(count)
}

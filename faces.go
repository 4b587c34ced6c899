package nxcube

// axis is a coordinate axis of the lattice.
type axis int

const (
	axisX axis = iota
	axisY
	axisZ
)

// The three tables below drive the face selector, the rotation transform
// and the color permutation. They must agree with each other: rotating the
// outward normal of cycle[i] by a clockwise turn of the face yields the
// normal of cycle[i+1].

// faceAxis is the axis normal to each face.
var faceAxis = [6]axis{
	FaceU: axisY,
	FaceD: axisY,
	FaceF: axisZ,
	FaceB: axisZ,
	FaceR: axisX,
	FaceL: axisX,
}

// faceSign is the direction of each face's outward normal along its axis.
var faceSign = [6]int{
	FaceU: 1,
	FaceD: -1,
	FaceF: 1,
	FaceB: -1,
	FaceR: 1,
	FaceL: -1,
}

// faceCycle lists, for a clockwise quarter turn of each face, the labels
// whose stickers move: the sticker on cycle[i] ends on cycle[i+1].
var faceCycle = [6][4]Face{
	FaceU: {FaceF, FaceL, FaceB, FaceR},
	FaceD: {FaceF, FaceR, FaceB, FaceL},
	FaceF: {FaceU, FaceR, FaceD, FaceL},
	FaceB: {FaceU, FaceL, FaceD, FaceR},
	FaceR: {FaceU, FaceB, FaceD, FaceF},
	FaceL: {FaceU, FaceF, FaceD, FaceB},
}

// Normal returns the unit outward normal of f, in true (not doubled)
// coordinates.
func (f Face) Normal() Position {
	var p Position
	p.set(faceAxis[f], faceSign[f])
	return p
}

func (p Position) get(a axis) int {
	switch a {
	case axisX:
		return p.X
	case axisY:
		return p.Y
	default:
		return p.Z
	}
}

func (p *Position) set(a axis, v int) {
	switch a {
	case axisX:
		p.X = v
	case axisY:
		p.Y = v
	default:
		p.Z = v
	}
}

// InLayer reports whether p lies in the outer layer of face f on an
// n-cube.
func (p Position) InLayer(f Face, n int) bool {
	return p.get(faceAxis[f]) == faceSign[f]*(n-1)
}

// Rotate returns p after a quarter turn of face f about the cube center,
// dir +1 clockwise and -1 counter-clockwise, viewed from outside f.
func (p Position) Rotate(f Face, dir int) Position {
	e := faceSign[f] * dir
	switch faceAxis[f] {
	case axisY:
		return Position{X: -e * p.Z, Y: p.Y, Z: e * p.X}
	case axisZ:
		return Position{X: e * p.Y, Y: -e * p.X, Z: p.Z}
	default:
		return Position{X: p.X, Y: e * p.Z, Z: -e * p.Y}
	}
}

// Permute returns c after a quarter turn of face f, dir +1 clockwise and
// -1 counter-clockwise. Labels on the turning axis keep their colors.
func (c Colors) Permute(f Face, dir int) Colors {
	cycle := faceCycle[f]
	out := c
	for i := range cycle {
		next := cycle[(i+1)%4]
		if dir > 0 {
			out[next] = c[cycle[i]]
		} else {
			out[cycle[i]] = c[next]
		}
	}
	return out
}

// LayerPositions returns the n*n positions in the outer layer of face f on
// an n-cube.
func LayerPositions(f Face, n int) []Position {
	ext := n - 1
	a := faceAxis[f]
	var u, v axis
	switch a {
	case axisX:
		u, v = axisY, axisZ
	case axisY:
		u, v = axisX, axisZ
	default:
		u, v = axisX, axisY
	}

	base := f.Normal()
	base.set(a, base.get(a)*ext)

	positions := make([]Position, 0, n*n)
	for i := -ext; i <= ext; i += 2 {
		for j := -ext; j <= ext; j += 2 {
			p := base
			p.set(u, i)
			p.set(v, j)
			positions = append(positions, p)
		}
	}
	return positions
}

package nxcube

// Predefined moves for convenience.
// Use these instead of constructing Move structs manually.
//
// Example:
//
//	engine.Apply(nxcube.R, nxcube.U, nxcube.RPrime, nxcube.UPrime)
var (
	// Right face moves
	R      = Move{Face: FaceR, Modifier: Clockwise} // Right clockwise
	RPrime = Move{Face: FaceR, Modifier: Prime}     // Right counter-clockwise
	R2     = Move{Face: FaceR, Modifier: Double}    // Right 180

	// Left face moves
	L      = Move{Face: FaceL, Modifier: Clockwise}
	LPrime = Move{Face: FaceL, Modifier: Prime}
	L2     = Move{Face: FaceL, Modifier: Double}

	// Up face moves
	U      = Move{Face: FaceU, Modifier: Clockwise}
	UPrime = Move{Face: FaceU, Modifier: Prime}
	U2     = Move{Face: FaceU, Modifier: Double}

	// Down face moves
	D      = Move{Face: FaceD, Modifier: Clockwise}
	DPrime = Move{Face: FaceD, Modifier: Prime}
	D2     = Move{Face: FaceD, Modifier: Double}

	// Front face moves
	F      = Move{Face: FaceF, Modifier: Clockwise}
	FPrime = Move{Face: FaceF, Modifier: Prime}
	F2     = Move{Face: FaceF, Modifier: Double}

	// Back face moves
	B      = Move{Face: FaceB, Modifier: Clockwise}
	BPrime = Move{Face: FaceB, Modifier: Prime}
	B2     = Move{Face: FaceB, Modifier: Double}
)

// AllMoves is the 18-move space scrambles draw from: every face with every
// modifier.
var AllMoves = []Move{
	U, UPrime, U2,
	D, DPrime, D2,
	L, LPrime, L2,
	R, RPrime, R2,
	F, FPrime, F2,
	B, BPrime, B2,
}

// Sexy move: R U R' U' - one of the most common algorithms
var SexyMove = []Move{R, U, RPrime, UPrime}

// Inverse sexy move: U R U' R'
var InverseSexyMove = []Move{U, R, UPrime, RPrime}

// T-perm algorithm
var TPerm = []Move{R, U, RPrime, UPrime, RPrime, F, R2, UPrime, RPrime, UPrime, R, U, RPrime, FPrime}

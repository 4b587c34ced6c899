// Package nxcube models the logical state of an n×n×n Rubik's-type cube.
//
// # Features
//
//   - Any size from 2×2×2 upward
//   - Cubelet-level state: stable identity, position and stickers
//   - Standard move notation (R, R', R2, ...) with strict parsing
//   - Reproducible scrambles through an injectable random source
//   - Solved-state detection
//
// # Quick Start
//
//	cube, err := nxcube.New(3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Apply moves using predefined constants
//	cube.Apply(nxcube.R, nxcube.U, nxcube.RPrime, nxcube.UPrime)
//
//	// Or from notation
//	if err := cube.ApplyNotation("F B2 L' D"); err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Solved:", cube.IsSolved())
//	fmt.Print(cube)
//
// # Coordinates
//
// The cube is centered on the origin with x to the right, y up and z toward
// the viewer: U is +y, R is +x and F is +z. Positions are stored doubled so
// that even sizes stay on an integer grid; use Position.Coords for the true
// values.
//
// # Snapshots
//
// Cubelet is a plain value type. Engine.Cubelets returns a freshly
// allocated copy that callers may modify freely.
//
// # Reproducible Scrambles
//
//	r := rand.New(rand.NewPCG(1, 2))
//	cube, _ := nxcube.New(3, nxcube.WithRand(r))
//	scramble := cube.Scramble(nxcube.DefaultScrambleLength)
package nxcube

// nxcube - CLI for simulating, scrambling, recording and serving N×N×N cubes.
package main

import (
	"github.com/SeamusWaldron/nxcube/internal/cli"
)

func main() {
	cli.Execute()
}

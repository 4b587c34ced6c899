package nxcube

import "math/bits"

// IsSolved reports whether every face label carries at most one distinct
// color across all cubelets.
//
// This checks color grouping only. It does not verify where each sticker
// sits within its face, so it is a necessary rather than sufficient test of
// a solved cube.
func (e *Engine) IsSolved() bool {
	var seen [6]uint8
	for _, c := range e.cubelets {
		for f, col := range c.Colors {
			if col != NoColor {
				seen[f] |= 1 << col
			}
		}
	}

	for _, mask := range seen {
		if bits.OnesCount8(mask) > 1 {
			return false
		}
	}
	return true
}

// StickerCount returns the number of cubelets carrying a sticker on face f.
// It is always size*size.
func (e *Engine) StickerCount(f Face) int {
	n := 0
	for _, c := range e.cubelets {
		if c.Colors[f] != NoColor {
			n++
		}
	}
	return n
}

package nxcube

import "strings"

// faceView says how a face is laid out when unfolded: which axis runs down
// the rows and which across the columns, and in which direction.
type faceView struct {
	row, col         axis
	rowSign, colSign int
}

// Unfolded net orientation: U above F with B at its top edge, D below F
// with F at its top edge, and L F R B left to right.
var faceViews = [6]faceView{
	FaceU: {row: axisZ, rowSign: 1, col: axisX, colSign: 1},
	FaceD: {row: axisZ, rowSign: -1, col: axisX, colSign: 1},
	FaceF: {row: axisY, rowSign: -1, col: axisX, colSign: 1},
	FaceB: {row: axisY, rowSign: -1, col: axisX, colSign: -1},
	FaceR: {row: axisY, rowSign: -1, col: axisZ, colSign: -1},
	FaceL: {row: axisY, rowSign: -1, col: axisZ, colSign: 1},
}

// FaceGrid returns the stickers of face f as rows top to bottom, as seen in
// the unfolded net.
func (e *Engine) FaceGrid(f Face) [][]Color {
	n := e.size
	grid := make([][]Color, n)
	for i := range grid {
		grid[i] = make([]Color, n)
	}

	view := faceViews[f]
	for _, c := range e.cubelets {
		col, ok := c.Colors.On(f)
		if !ok {
			continue
		}
		r := (view.rowSign*c.Position.get(view.row) + n - 1) / 2
		k := (view.colSign*c.Position.get(view.col) + n - 1) / 2
		grid[r][k] = col
	}
	return grid
}

// String returns a text representation of the cube as an unfolded net.
func (e *Engine) String() string {
	var b strings.Builder
	indent := strings.Repeat(" ", 2*e.size)

	// U face (indented)
	for _, row := range e.FaceGrid(FaceU) {
		b.WriteString(indent)
		writeRow(&b, row)
		b.WriteString("\n")
	}

	// L, F, R, B faces (side by side)
	sides := [][][]Color{
		e.FaceGrid(FaceL),
		e.FaceGrid(FaceF),
		e.FaceGrid(FaceR),
		e.FaceGrid(FaceB),
	}
	for r := 0; r < e.size; r++ {
		for _, grid := range sides {
			writeRow(&b, grid[r])
		}
		b.WriteString("\n")
	}

	// D face (indented)
	for _, row := range e.FaceGrid(FaceD) {
		b.WriteString(indent)
		writeRow(&b, row)
		b.WriteString("\n")
	}

	return b.String()
}

func writeRow(b *strings.Builder, row []Color) {
	for _, col := range row {
		b.WriteString(col.String())
		b.WriteString(" ")
	}
}

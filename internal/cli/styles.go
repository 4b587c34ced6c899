package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/nxcube"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	solvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// stickerStyles paints each cube color as a two-cell block.
var stickerStyles = map[nxcube.Color]lipgloss.Style{}

func init() {
	for _, c := range []nxcube.Color{nxcube.White, nxcube.Yellow, nxcube.Green, nxcube.Blue, nxcube.Red, nxcube.Orange} {
		stickerStyles[c] = lipgloss.NewStyle().Background(lipgloss.Color(c.Hex()))
	}
}

func sticker(c nxcube.Color) string {
	style, ok := stickerStyles[c]
	if !ok {
		return "  "
	}
	return style.Render("  ")
}

// renderNet draws the unfolded net with colored stickers: U on top, then
// L F R B, then D.
func renderNet(e *nxcube.Engine) string {
	var b strings.Builder
	n := e.Size()
	indent := strings.Repeat(" ", 2*n+1)

	writeFace := func(grid [][]nxcube.Color) {
		for _, row := range grid {
			b.WriteString(indent)
			for _, c := range row {
				b.WriteString(sticker(c))
			}
			b.WriteString("\n")
		}
	}

	writeFace(e.FaceGrid(nxcube.FaceU))
	sides := [][][]nxcube.Color{
		e.FaceGrid(nxcube.FaceL),
		e.FaceGrid(nxcube.FaceF),
		e.FaceGrid(nxcube.FaceR),
		e.FaceGrid(nxcube.FaceB),
	}
	for r := 0; r < n; r++ {
		for i, grid := range sides {
			if i > 0 {
				b.WriteString(" ")
			}
			for _, c := range grid[r] {
				b.WriteString(sticker(c))
			}
		}
		b.WriteString("\n")
	}
	writeFace(e.FaceGrid(nxcube.FaceD))

	return b.String()
}

// solvedLabel renders the solved flag.
func solvedLabel(solved bool) string {
	if solved {
		return solvedStyle.Render("SOLVED")
	}
	return statusStyle.Render("not solved")
}

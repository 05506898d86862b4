package theme

import (
	"github.com/charmbracelet/lipgloss"

	"walrus/palette"
)

const swatch = "   "

// Preview renders p as two rows of eight swatches.
func Preview(p palette.Palette) string {
	rows := make([]string, 0, 2)
	for row := range 2 {
		cells := make([]string, 0, palette.Size/2)
		for _, c := range p[row*8 : row*8+8] {
			cells = append(cells, lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render(swatch))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/chotto/board"
)

var (
	headerStyle = lipgloss.NewStyle().
			PaddingLeft(1).PaddingRight(1).
			Bold(true).
			Foreground(lipgloss.Color("212"))

	numberStyle = lipgloss.NewStyle().
			PaddingLeft(1).PaddingRight(1).
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("15"))

	freeStyle = lipgloss.NewStyle().
			PaddingLeft(1).PaddingRight(1).
			Background(lipgloss.Color("34")).
			Foreground(lipgloss.Color("15"))
)

// renderGrid renders one sheet as a styled terminal block: BINGO header row,
// numbers on dark cells, the free cell highlighted.
func renderGrid(g board.Grid) string {
	var rows []string

	header := make([]string, board.Size)
	for x := 0; x < board.Size; x++ {
		header[x] = headerStyle.Render(fmt.Sprintf("%2c", board.Letters[x]))
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, header...))

	for y := 0; y < board.Size; y++ {
		cells := make([]string, board.Size)
		for x := 0; x < board.Size; x++ {
			if g.IsFree(x, y) {
				cells[x] = freeStyle.Render("**")

				continue
			}
			cells[x] = numberStyle.Render(fmt.Sprintf("%2d", g.At(x, y)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return strings.Join(rows, "\n")
}

package console

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	mb "github.com/som1414/sea-battle/models/battleship"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	shipStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	shotStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	boardGap    = strings.Repeat(" ", 5)
)

func cellIcon(s mb.CellState) string {
	switch s {
	case mb.CellShip:
		return shipStyle.Render("■")
	case mb.CellHit, mb.CellSunk:
		return shotStyle.Render("X")
	case mb.CellMiss:
		return shotStyle.Render(".")
	default:
		return "O"
	}
}

// RenderBoard draws a grid snapshot with 1-based row and column headers.
func RenderBoard(title string, grid mb.Grid) string {
	width := len(fmt.Sprint(len(grid)))

	var sb strings.Builder
	sb.WriteString(title)
	sb.WriteString("\n")

	header := strings.Repeat(" ", width+2)
	for col := range grid {
		header += fmt.Sprintf(" %*d ", width, col+1)
	}
	sb.WriteString(headerStyle.Render(header))
	sb.WriteString("\n")

	for row := range grid {
		sb.WriteString(headerStyle.Render(fmt.Sprintf("%*d", width, row+1)))
		sb.WriteString(" |")
		for col := range grid[row] {
			sb.WriteString(fmt.Sprintf(" %s%s|", strings.Repeat(" ", width-1), cellIcon(grid[row][col])))
		}
		if row < len(grid)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// RenderBoards puts the user's board and the concealed computer board
// side by side.
func RenderBoards(user, computer *mb.Board) string {
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		RenderBoard("Your board:", user.Render()),
		boardGap,
		RenderBoard("Computer's board:", computer.Render()),
	)
}

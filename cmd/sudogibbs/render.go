package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/gibbsudoku/board"
)

var (
	clueStyle     = lipgloss.NewStyle().Bold(true)
	sampledStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	conflictStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	ruleStyle     = lipgloss.NewStyle().Faint(true)
)

// renderBoard prints the solved board with 3×3 banding. Given clues render
// bold, sampled digits in color, and residual conflicts highlighted; plain
// mode falls back to the board's unstyled rendering.
func renderBoard(clues, solved board.Grid, plain bool) string {
	if plain {
		return strings.TrimRight(solved.String(), "\n")
	}

	conflicted := map[board.Coord]bool{}
	for _, cc := range solved.Conflicts() {
		conflicted[cc] = true
	}

	var sb strings.Builder
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			if c > 0 {
				if c%board.Box == 0 {
					sb.WriteString("  |  ")
				} else {
					sb.WriteByte(' ')
				}
			}
			cell := string('0' + rune(solved[r][c]))
			switch {
			case conflicted[board.Coord{Row: r, Col: c}]:
				cell = conflictStyle.Render(cell)
			case clues[r][c] != 0:
				cell = clueStyle.Render(cell)
			default:
				cell = sampledStyle.Render(cell)
			}
			sb.WriteString(cell)
		}
		if r < board.Size-1 {
			sb.WriteByte('\n')
			if r == 2 || r == 5 {
				sb.WriteString(ruleStyle.Render(strings.Repeat("-", 27)))
				sb.WriteByte('\n')
			}
		}
	}

	return sb.String()
}

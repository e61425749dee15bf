package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-particles/internal/core"
	"github.com/vovakirdan/tui-particles/internal/particle"
)

// colorStyle returns the lipgloss foreground style for a palette index.
func colorStyle(c core.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Code()))
}

// RenderScreen converts a Screen buffer to a styled string for static display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Cols()*s.Rows()*2 + s.Rows())

	for row := range s.Rows() {
		if row > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		col := 0
		for col < s.Cols() {
			start := s.Cell(row, col)

			var run strings.Builder
			for col < s.Cols() {
				cell := s.Cell(row, col)
				if cell.Set != start.Set || (cell.Set && cell.Color != start.Color) {
					break
				}
				if cell.Set {
					run.WriteRune(cell.Glyph)
				} else {
					run.WriteRune(' ')
				}
				col++
			}

			if !start.Set {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(colorStyle(start.Color).Render(run.String()))
		}
	}
	return sb.String()
}

// RenderTheme draws a theme as a strip of width cells, oldest age on the
// left and youngest on the right, labelled with its name.
func RenderTheme(name string, th particle.Theme, width int, styles PreviewTheme) string {
	var sb strings.Builder
	sb.WriteString(styles.Label.Render(fmt.Sprintf("%-10s", name)))
	sb.WriteString(styles.Frame.Render("["))
	for i := range width {
		age := float64(i+1) / float64(width)
		glyph := th.Glyphs.Value(age)
		sb.WriteString(colorStyle(th.Colors.Value(age)).Render(string(glyph)))
	}
	sb.WriteString(styles.Frame.Render("]"))
	return sb.String()
}

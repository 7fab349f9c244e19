package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bounce/internal/core"
)

// styleCache maps colors to lipgloss styles so each color is built once.
type styleCache map[core.RGB]lipgloss.Style

func (c styleCache) get(rgb core.RGB) lipgloss.Style {
	if st, ok := c[rgb]; ok {
		return st
	}
	st := lipgloss.NewStyle().Foreground(lipgloss.Color(rgb.Hex()))
	c[rgb] = st
	return st
}

// cellKey identifies the style of a cell; untinted cells share one key.
func cellKey(cell core.Cell) (core.RGB, bool) {
	if !cell.Tint {
		return core.RGB{}, false
	}
	return cell.Color, true
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	styles := make(styleCache)

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor, tinted := cellKey(s.GetCell(x, y))

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if c, t := cellKey(cell); c != startColor || t != tinted {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if !tinted {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styles.get(startColor).Render(run.String()))
		}
	}
	return sb.String()
}

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rundash/internal/core"
)

// styleKey identifies a foreground/background pair.
type styleKey struct {
	fg, bg core.Color
}

// styleCache maps color pairs to lipgloss styles so a frame only builds
// each style once.
type styleCache map[styleKey]lipgloss.Style

func (sc styleCache) get(fg, bg core.Color) lipgloss.Style {
	k := styleKey{fg, bg}
	if st, ok := sc[k]; ok {
		return st
	}
	st := lipgloss.NewStyle()
	if !fg.IsDefault() {
		st = st.Foreground(lipgloss.Color(fg.String()))
	}
	if !bg.IsDefault() {
		st = st.Background(lipgloss.Color(bg.String()))
	}
	sc[k] = st
	return st
}

// renderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func renderScreen(s *core.Screen, styles styleCache) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colors for efficiency
		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != start.Fg || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styles.get(start.Fg, start.Bg).Render(run.String()))
		}
	}
	return sb.String()
}

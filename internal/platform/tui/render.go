package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/crystal-quest/internal/core"
)

// colorStyles maps core.Color to lipgloss styles. Play-field colors use the
// classic hex palette; lipgloss degrades them on terminals without true color.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorRed:       lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:     lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:    lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:      lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:   lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:      lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:     lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorGray:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorCoral:     lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
	core.ColorBrown:     lipgloss.NewStyle().Foreground(lipgloss.Color("#8B4513")),
	core.ColorLime:      lipgloss.NewStyle().Foreground(lipgloss.Color("#32CD32")),
	core.ColorGold:      lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")),
	core.ColorDarkRed:   lipgloss.NewStyle().Foreground(lipgloss.Color("#8B0000")),
	core.ColorIndigo:    lipgloss.NewStyle().Foreground(lipgloss.Color("#4B0082")),
	core.ColorDarkGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("#006400")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

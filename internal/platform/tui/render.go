package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// ansiColors maps core.Color to terminal color codes.
// ColorDefault is absent: it takes the theme foreground.
var ansiColors = map[core.Color]lipgloss.Color{
	core.ColorRed:     lipgloss.Color("1"),
	core.ColorGreen:   lipgloss.Color("2"),
	core.ColorYellow:  lipgloss.Color("3"),
	core.ColorBlue:    lipgloss.Color("4"),
	core.ColorMagenta: lipgloss.Color("5"),
	core.ColorCyan:    lipgloss.Color("6"),
	core.ColorOrange:  lipgloss.Color("208"),
	core.ColorGray:    lipgloss.Color("245"),
}

// Palette holds the lipgloss styles for one theme.
type Palette struct {
	base   lipgloss.Style
	styles map[core.Color]lipgloss.Style
}

// NewPalette builds cell styles on top of the theme background.
func NewPalette(theme config.Theme) Palette {
	base := lipgloss.NewStyle().
		Background(lipgloss.Color(theme.Background)).
		Foreground(lipgloss.Color(theme.Foreground))

	styles := make(map[core.Color]lipgloss.Style, len(ansiColors)+1)
	styles[core.ColorDefault] = base
	for c, ansi := range ansiColors {
		styles[c] = base.Foreground(ansi)
	}
	return Palette{base: base, styles: styles}
}

// Base returns the plain theme style.
func (p Palette) Base() lipgloss.Style {
	return p.base
}

func (p Palette) style(c core.Color) lipgloss.Style {
	if s, ok := p.styles[c]; ok {
		return s
	}
	return p.base
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, p Palette) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		if c, ok := uniformColor(s, y); ok {
			sb.WriteString(p.style(c).Render(s.Row(y)))
			continue
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(p.style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}

// uniformColor reports the color of row y when every cell shares it.
func uniformColor(s *core.Screen, y int) (core.Color, bool) {
	c := s.GetCell(0, y).Color
	for x := 1; x < s.Width(); x++ {
		if s.GetCell(x, y).Color != c {
			return c, false
		}
	}
	return c, true
}

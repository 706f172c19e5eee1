package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pacdfa/internal/config"
	"github.com/vovakirdan/pacdfa/internal/core"
)

// Palette maps color roles to lipgloss styles for one output.
type Palette map[core.Color]lipgloss.Style

// NewPalette builds styles for every color role from the theme.
// A nil renderer uses lipgloss' default renderer; SSH sessions pass their own
// so colors follow the remote terminal's profile.
func NewPalette(r *lipgloss.Renderer, theme config.Theme) Palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	p := make(Palette)
	for c := core.ColorDefault; c <= core.ColorSuccess; c++ {
		style := r.NewStyle()
		if code := theme.Color(c); code != "" {
			style = style.Foreground(lipgloss.Color(code))
		}
		p[c] = style
	}
	if s, ok := p[core.ColorAlert]; ok {
		p[core.ColorAlert] = s.Bold(true)
	}
	if s, ok := p[core.ColorSuccess]; ok {
		p[core.ColorSuccess] = s.Bold(true)
	}
	return p
}

// Style returns the style for c, falling back to the default role.
func (p Palette) Style(c core.Color) lipgloss.Style {
	if s, ok := p[c]; ok {
		return s
	}
	return p[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of the same color share one styled run.
func (p Palette) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(p.Style(color).Render(run.String()))
		}
	}
	return sb.String()
}

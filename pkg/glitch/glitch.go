// Package glitch renders text with per-rune randomized styling.
//
// Styling is re-rolled on every render and carries no state between calls.
// [StyleFor] is the pure generator; [Render] applies it to a whole string
// with lipgloss. Spaces and newlines pass through unstyled so layout is
// preserved for any input.
package glitch

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/chaosnote/pkg/random"
)

// Palette holds the neon colours a rune may be drawn in.
var Palette = []lipgloss.Color{
	"#FF00FF", "#00FFFF", "#FFFF00", "#FF0000", "#00FF00",
	"#FFFFFF", "#8A2BE2", "#FF4500", "#7FFF00", "#FF69B4",
	"#ADFF2F", "#1E90FF", "#FF6347", "#BA55D3", "#40E0D0",
}

// Style is the look of one rune.
type Style struct {
	Color  lipgloss.Color
	Glow   lipgloss.Color // background, empty when the rune does not glow
	Bold   bool
	Italic bool
	Faint  bool
}

// StyleFor draws a style for c.
func StyleFor(r random.Source, c rune) Style {
	s := Style{
		Color:  random.Choice(r, Palette),
		Bold:   random.Chance(r, 40),
		Italic: random.Chance(r, 25),
	}
	if random.Chance(r, 20) {
		s.Glow = random.Choice(r, Palette)
	}
	s.Faint = random.Chance(r, 20)
	return s
}

// Lipgloss converts s to a lipgloss style.
func (s Style) Lipgloss() lipgloss.Style {
	st := lipgloss.NewStyle().
		Foreground(s.Color).
		Bold(s.Bold).
		Italic(s.Italic).
		Faint(s.Faint)
	if s.Glow != "" {
		st = st.Background(s.Glow)
	}
	return st
}

// Render styles every rune of text independently.
func Render(r random.Source, text string) string {
	var b strings.Builder
	for _, c := range text {
		switch c {
		case '\n', ' ', '\t', '\r':
			b.WriteRune(c)
		default:
			b.WriteString(StyleFor(r, c).Lipgloss().Render(string(c)))
		}
	}
	return b.String()
}

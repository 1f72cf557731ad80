// Package style composes lipgloss styles on top of the active palette.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/pokedex-cli/pokedex/color"
)

// New returns an empty lipgloss.Style used as a foundation for visual composition.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Colored initializes a new style with the specified foreground and background colors.
func Colored(fg, bg lipgloss.Color) lipgloss.Style {
	return New().Foreground(fg).Background(bg)
}

// Fg returns a rendering function that applies the foreground color.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(c, "").Render(s) }
}

// Bg returns a rendering function that applies the background color.
func Bg(c lipgloss.Color) func(string) string {
	return func(s string) string { return Colored("", c).Render(s) }
}

var (
	Faint     = func(s string) string { return New().Faint(true).Render(s) }
	Bold      = func(s string) string { return New().Bold(true).Render(s) }
	Italic    = func(s string) string { return New().Italic(true).Render(s) }
	Underline = func(s string) string { return New().Underline(true).Render(s) }
)

// Title renders a heading block in the accent color.
func Title(s string) string {
	p := Current()
	return Colored(p.Base, p.Accent).Bold(true).Padding(0, 1).Render(s)
}

// ErrorTitle renders a heading block in the error color.
func ErrorTitle(s string) string {
	p := Current()
	return Colored(p.Base, p.Error).Bold(true).Padding(0, 1).Render(s)
}

// Tag returns a rendering function that wraps a string in a colored, padded block.
func Tag(fg, bg lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(fg, bg).Padding(0, 1).Render(s) }
}

// Badge renders s on bg with a readable foreground.
func Badge(bg lipgloss.Color, s string) string {
	return Tag(color.Contrast(bg), bg)(s)
}

// Text renders s in the palette's text color.
func Text(s string) string {
	return Fg(Current().Text)(s)
}

// Subtle renders s in the palette's secondary text color.
func Subtle(s string) string {
	return Fg(Current().Subtext)(s)
}

// Accent renders s in the palette's accent color.
func Accent(s string) string {
	return Fg(Current().Accent)(s)
}

// Warning renders s in the palette's warning color.
func Warning(s string) string {
	return Fg(Current().Warning)(s)
}

// Border returns a rounded border style, highlighted when active.
func Border(active bool) lipgloss.Style {
	p := Current()
	c := p.Surface
	if active {
		c = p.Accent
	}
	return New().Border(lipgloss.RoundedBorder()).BorderForeground(c)
}

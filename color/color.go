// Package color provides the basic terminal colors and light/dark color pairs.
package color

import "github.com/charmbracelet/lipgloss"

// New initializes a lipgloss.Color from a string value.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// Standard ANSI palette, used for plain CLI output.
var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")
	White  = New("7")
	Black  = New("8")
)

// Pair holds the variants of one color for both appearances.
type Pair struct {
	Light lipgloss.Color
	Dark  lipgloss.Color
}

// NewPair builds a Pair from two hex values.
func NewPair(light, dark string) Pair {
	return Pair{Light: New(light), Dark: New(dark)}
}

// Pick returns the variant for the given appearance.
func (p Pair) Pick(dark bool) lipgloss.Color {
	if dark {
		return p.Dark
	}
	return p.Light
}

// Contrast returns black or white, whichever reads better on the hex background.
// Non-hex values get white.
func Contrast(bg lipgloss.Color) lipgloss.Color {
	s := string(bg)
	if len(s) != 7 || s[0] != '#' {
		return New("#FFFFFF")
	}

	var r, g, b int
	for i, dst := range []*int{&r, &g, &b} {
		*dst = hexByte(s[1+2*i], s[2+2*i])
	}

	// ITU-R BT.601 luma
	if (299*r+587*g+114*b)/1000 > 150 {
		return New("#000000")
	}
	return New("#FFFFFF")
}

func hexByte(hi, lo byte) int {
	return hexDigit(hi)<<4 | hexDigit(lo)
}

func hexDigit(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return 0
}

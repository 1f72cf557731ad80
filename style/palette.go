package style

import (
	"sync/atomic"

	"github.com/charmbracelet/lipgloss"
	"github.com/pokedex-cli/pokedex/color"
)

// Palette is the set of semantic colors for one appearance.
type Palette struct {
	Base    lipgloss.Color
	Surface lipgloss.Color
	Text    lipgloss.Color
	Subtext lipgloss.Color
	Overlay lipgloss.Color

	Accent    lipgloss.Color
	Secondary lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
}

// Catppuccin latte (light) and mocha (dark).
var (
	base     = color.NewPair("#eff1f5", "#1e1e2e")
	surface  = color.NewPair("#ccd0da", "#313244")
	text     = color.NewPair("#4c4f69", "#cdd6f4")
	subtext  = color.NewPair("#6c6f85", "#a6adc8")
	overlay  = color.NewPair("#9ca0b0", "#6c7086")
	mauve    = color.NewPair("#8839ef", "#cba6f7")
	lavender = color.NewPair("#7287fd", "#b4befe")
	green    = color.NewPair("#40a02b", "#a6e3a1")
	yellow   = color.NewPair("#df8e1d", "#f9e2af")
	red      = color.NewPair("#d20f39", "#f38ba8")
)

func paletteFor(dark bool) *Palette {
	return &Palette{
		Base:      base.Pick(dark),
		Surface:   surface.Pick(dark),
		Text:      text.Pick(dark),
		Subtext:   subtext.Pick(dark),
		Overlay:   overlay.Pick(dark),
		Accent:    mauve.Pick(dark),
		Secondary: lavender.Pick(dark),
		Success:   green.Pick(dark),
		Warning:   yellow.Pick(dark),
		Error:     red.Pick(dark),
	}
}

var (
	lightPalette = paletteFor(false)
	darkPalette  = paletteFor(true)
	current      atomic.Pointer[Palette]
)

func init() {
	current.Store(lightPalette)
}

// Use switches the active palette.
func Use(dark bool) {
	if dark {
		current.Store(darkPalette)
	} else {
		current.Store(lightPalette)
	}
}

// Current returns the active palette.
func Current() *Palette {
	return current.Load()
}

// IsDark reports whether the dark palette is active.
func IsDark() bool {
	return current.Load() == darkPalette
}

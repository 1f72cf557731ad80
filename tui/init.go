package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Init starts the catalog load and, until a theme is chosen, the desktop appearance polling.
func (b *statefulBubble) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		b.spinnerC.Tick,
		b.loadCatalog(),
		b.waitForProgress(),
		b.pollSystemTheme(),
	)
}

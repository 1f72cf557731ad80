// Package tui provides the interactive terminal browser.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pokedex-cli/pokedex/pokeapi"
	"github.com/pokedex-cli/pokedex/theme"
)

// Options configures the browser. Zero values fall back to configuration.
type Options struct {
	// Client overrides the configured catalog client.
	Client *pokeapi.Client
	// Limit overrides catalog.limit when positive.
	Limit int
	// Tab overrides tui.default_tab.
	Tab string
	// Theme overrides the persisted theme controller.
	Theme *theme.Controller
	// Detector reports the OS preference on focus regain and on every poll.
	// It must not read from the terminal.
	Detector theme.Detector
}

// Run starts the browser and blocks until the user quits.
func Run(ctx context.Context, options *Options) error {
	bubble := newBubble(ctx, options)
	defer bubble.cancel()

	_, err := tea.NewProgram(bubble, tea.WithAltScreen(), tea.WithReportFocus()).Run()
	return err
}

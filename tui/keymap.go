package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

type statefulKeymap struct {
	state state

	quit, forceQuit,
	nextTab, pokedexTab, typesTab, aboutTab,
	cycleType, cycleRarity, resetFilters,
	acceptSearchSuggestion, confirm,
	up, down, left, right,
	pageUp, pageDown,
	openSprite,
	toggleTheme key.Binding
}

func (k *statefulKeymap) setState(newState state) {
	k.state = newState
}

func newStatefulKeymap() *statefulKeymap {
	return &statefulKeymap{
		quit: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		nextTab: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "next tab"),
		),
		pokedexTab: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "pokedex"),
		),
		typesTab: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("f2", "types"),
		),
		aboutTab: key.NewBinding(
			key.WithKeys("f3"),
			key.WithHelp("f3", "about"),
		),
		cycleType: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "type"),
		),
		cycleRarity: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "rarity"),
		),
		resetFilters: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "reset"),
		),
		acceptSearchSuggestion: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "accept suggestion"),
		),
		confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "remember search"),
		),
		up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		left: key.NewBinding(
			key.WithKeys("shift+left"),
			key.WithHelp("shift+←", "left"),
		),
		right: key.NewBinding(
			key.WithKeys("shift+right"),
			key.WithHelp("shift+→", "right"),
		),
		pageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		pageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdown", "page down"),
		),
		openSprite: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "open sprite"),
		),
		toggleTheme: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "theme"),
		),
	}
}

func (k *statefulKeymap) help() ([]key.Binding, []key.Binding) {
	h := func(bindings ...key.Binding) []key.Binding {
		return bindings
	}

	to2 := func(a []key.Binding) ([]key.Binding, []key.Binding) {
		return a, a
	}

	switch k.state {
	case loadingState:
		return to2(h(k.toggleTheme, k.forceQuit))
	case browseState:
		return h(k.cycleType, k.cycleRarity, k.resetFilters, k.nextTab, k.toggleTheme, k.quit),
			h(k.cycleType, k.cycleRarity, k.resetFilters, k.acceptSearchSuggestion, k.confirm,
				k.up, k.down, k.left, k.right, k.pageUp, k.pageDown, k.openSprite,
				k.nextTab, k.pokedexTab, k.typesTab, k.aboutTab, k.toggleTheme, k.quit)
	case errorState:
		return to2(h(k.quit))
	default:
		return to2(h())
	}
}

func (k *statefulKeymap) ShortHelp() []key.Binding {
	short, _ := k.help()
	return short
}

func (k *statefulKeymap) FullHelp() [][]key.Binding {
	_, full := k.help()
	return [][]key.Binding{full}
}

package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pokedex-cli/pokedex/render"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	notice := b.notifier.Update(msg)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
		b.refreshGrid()
		return b, notice
	case tea.FocusMsg:
		return b, b.detectSystemTheme()
	case systemPollMsg:
		return b, tea.Batch(b.detectSystemTheme(), b.pollSystemTheme())
	case systemThemeMsg:
		if b.theme.SystemChanged(msg.appearance) {
			b.applyTheme()
		}
		return b, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, b.keymap.forceQuit):
			return b, b.quit()
		case key.Matches(msg, b.keymap.toggleTheme):
			return b, b.toggleTheme()
		}
	}

	var (
		model tea.Model
		cmd   tea.Cmd
	)

	switch b.state {
	case loadingState:
		model, cmd = b.updateLoading(msg)
	case browseState:
		model, cmd = b.updateBrowse(msg)
	case errorState:
		model, cmd = b.updateError(msg)
	default:
		model = b
	}

	return model, tea.Batch(notice, cmd)
}

func (b *statefulBubble) updateLoading(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, b.keymap.quit) {
			return b, b.quit()
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		b.spinnerC, cmd = b.spinnerC.Update(msg)
		return b, cmd
	case progressMsg:
		if msg.total > 0 {
			b.progressPercent = float64(msg.done) / float64(msg.total)
		}
		b.progressStatus = fmt.Sprintf("%d/%d", msg.done, msg.total)
		return b, b.waitForProgress()
	case catalogLoadedMsg:
		return b, b.onCatalogLoaded(msg.result)
	case error:
		b.raiseError(msg)
	}

	return b, nil
}

func (b *statefulBubble) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		b.inputC, cmd = b.inputC.Update(msg)
		return b, cmd
	}

	switch {
	case key.Matches(keyMsg, b.keymap.quit):
		return b, b.quit()
	case key.Matches(keyMsg, b.keymap.nextTab):
		b.tabs.next()
		return b, nil
	case key.Matches(keyMsg, b.keymap.pokedexTab):
		b.tabs.selectTab(pokedexTab)
		return b, nil
	case key.Matches(keyMsg, b.keymap.typesTab):
		b.tabs.selectTab(typesTab)
		return b, nil
	case key.Matches(keyMsg, b.keymap.aboutTab):
		b.tabs.selectTab(aboutTab)
		return b, nil
	}

	if !b.tabs.isActive(pokedexTab) {
		return b, nil
	}

	columns := render.Columns(b.gridC.Width)

	switch {
	case key.Matches(keyMsg, b.keymap.cycleType):
		b.typeSelector.next()
		b.refilter()
		return b, nil
	case key.Matches(keyMsg, b.keymap.cycleRarity):
		b.raritySelector.next()
		b.refilter()
		return b, nil
	case key.Matches(keyMsg, b.keymap.resetFilters):
		b.resetFilters()
		return b, nil
	case key.Matches(keyMsg, b.keymap.acceptSearchSuggestion):
		b.acceptSuggestion()
		return b, nil
	case key.Matches(keyMsg, b.keymap.confirm):
		b.rememberQuery()
		return b, nil
	case key.Matches(keyMsg, b.keymap.up):
		b.moveCursor(-columns)
		return b, nil
	case key.Matches(keyMsg, b.keymap.down):
		b.moveCursor(columns)
		return b, nil
	case key.Matches(keyMsg, b.keymap.left):
		b.moveCursor(-1)
		return b, nil
	case key.Matches(keyMsg, b.keymap.right):
		b.moveCursor(1)
		return b, nil
	case key.Matches(keyMsg, b.keymap.pageUp, b.keymap.pageDown):
		var cmd tea.Cmd
		b.gridC, cmd = b.gridC.Update(msg)
		return b, cmd
	case key.Matches(keyMsg, b.keymap.openSprite):
		return b, b.openSprite()
	}

	before := b.inputC.Value()

	var cmd tea.Cmd
	b.inputC, cmd = b.inputC.Update(msg)

	if b.inputC.Value() != before {
		b.cursor = 0
		b.gridC.GotoTop()
		b.refilter()
	}

	return b, cmd
}

func (b *statefulBubble) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, b.keymap.quit) {
		return b, b.quit()
	}
	return b, nil
}

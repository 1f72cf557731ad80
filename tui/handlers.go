package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pokedex-cli/pokedex/filter"
	"github.com/pokedex-cli/pokedex/internal/ui"
	"github.com/pokedex-cli/pokedex/log"
	"github.com/pokedex-cli/pokedex/open"
	"github.com/pokedex-cli/pokedex/pokeapi"
	"github.com/pokedex-cli/pokedex/pokemon"
	"github.com/pokedex-cli/pokedex/query"
	"github.com/pokedex-cli/pokedex/render"
	"github.com/pokedex-cli/pokedex/style"
	"github.com/pokedex-cli/pokedex/theme"
	"github.com/pokedex-cli/pokedex/util"
	"github.com/samber/lo"
)

type (
	progressMsg struct {
		done, total int
	}

	catalogLoadedMsg struct {
		result *pokeapi.Result
	}

	systemThemeMsg struct {
		appearance theme.Appearance
	}

	systemPollMsg struct{}
)

// systemPollInterval is how often the desktop appearance is re-read while following it.
const systemPollInterval = 10 * time.Second

var errEmptyCatalog = errors.New("no entries could be loaded")

func (b *statefulBubble) loadCatalog() tea.Cmd {
	return func() tea.Msg {
		result, err := b.client.Catalog(b.ctx, b.limit)
		if err != nil {
			return err
		}
		return catalogLoadedMsg{result: result}
	}
}

// reportProgress is called from the fetch goroutines. Updates are dropped
// rather than blocking a request when the UI falls behind.
func (b *statefulBubble) reportProgress(done, total int) {
	select {
	case b.progressChannel <- progressMsg{done: done, total: total}:
	default:
	}
}

func (b *statefulBubble) waitForProgress() tea.Cmd {
	return func() tea.Msg {
		select {
		case p := <-b.progressChannel:
			return p
		case <-b.ctx.Done():
			return nil
		}
	}
}

func (b *statefulBubble) onCatalogLoaded(result *pokeapi.Result) tea.Cmd {
	b.catalog = result.Pokemon
	b.failures = result.Failures

	if len(b.catalog) == 0 {
		err := errEmptyCatalog
		if n := len(result.Failures); n > 0 {
			err = fmt.Errorf("%w: %w", errEmptyCatalog, result.Failures[n-1])
		}
		b.raiseError(err)
		return nil
	}

	b.typeSelector.setOptions(filter.ObservedTypes(b.catalog))
	b.setState(browseState)
	b.refilter()

	cmds := []tea.Cmd{ui.FetchFailures(len(b.failures))}

	if unmapped := pokemon.Unmapped(b.catalog); len(unmapped) > 0 {
		labels := lo.Map(unmapped, func(t pokemon.Type, _ int) string { return t.String() })
		log.Warnf("types without a color: %s", strings.Join(labels, ", "))
		cmds = append(cmds, ui.UnmappedTypes(labels))
	}

	return tea.Sequence(cmds...)
}

func (b *statefulBubble) criteria() filter.Criteria {
	return filter.Criteria{
		Query:  b.inputC.Value(),
		Type:   b.typeSelector.value(),
		Rarity: b.raritySelector.value(),
	}
}

// refilter recomputes the visible list from the snapshot and redraws the grid.
func (b *statefulBubble) refilter() {
	b.filtered = filter.Apply(b.catalog, b.criteria())
	b.cursor = util.Max(util.Min(b.cursor, len(b.filtered)-1), 0)
	b.searchSuggestion = query.Suggest(b.inputC.Value())
	b.refreshGrid()
}

func (b *statefulBubble) resetFilters() {
	b.inputC.SetValue("")
	b.typeSelector.reset()
	b.raritySelector.reset()
	b.cursor = 0
	b.gridC.GotoTop()
	b.refilter()
}

// refreshGrid replaces the viewport content and keeps the highlighted card visible.
func (b *statefulBubble) refreshGrid() {
	if len(b.filtered) == 0 {
		b.gridC.SetContent(style.Subtle(render.EmptyMessage))
		b.gridC.GotoTop()
		return
	}

	rows := render.Rows(b.filtered, b.gridC.Width, b.cursor)
	b.gridC.SetContent(lipgloss.JoinVertical(lipgloss.Left, rows...))

	row := b.cursor / render.Columns(b.gridC.Width)
	if row >= len(rows) {
		return
	}

	top := 0
	for _, r := range rows[:row] {
		top += lipgloss.Height(r)
	}
	bottom := top + lipgloss.Height(rows[row])

	switch {
	case top < b.gridC.YOffset:
		b.gridC.SetYOffset(top)
	case bottom > b.gridC.YOffset+b.gridC.Height:
		b.gridC.SetYOffset(bottom - b.gridC.Height)
	}
}

func (b *statefulBubble) moveCursor(delta int) {
	if len(b.filtered) == 0 {
		return
	}
	b.cursor = util.Max(util.Min(b.cursor+delta, len(b.filtered)-1), 0)
	b.refreshGrid()
}

func (b *statefulBubble) highlighted() (*pokemon.Pokemon, bool) {
	if b.cursor < 0 || b.cursor >= len(b.filtered) {
		return nil, false
	}
	return b.filtered[b.cursor], true
}

func (b *statefulBubble) acceptSuggestion() bool {
	suggestion, ok := b.searchSuggestion.Get()
	if !ok {
		return false
	}
	b.inputC.SetValue(suggestion)
	b.inputC.CursorEnd()
	b.refilter()
	return true
}

func (b *statefulBubble) rememberQuery() {
	q := strings.TrimSpace(b.inputC.Value())
	if q == "" {
		return
	}
	if err := query.Remember(q, 1); err != nil {
		log.Warnf("remember query: %v", err)
	}
}

func (b *statefulBubble) openSprite() tea.Cmd {
	p, ok := b.highlighted()
	if !ok {
		return nil
	}
	if !p.HasSprite() {
		return ui.Notify(fmt.Sprintf("%s has no sprite", util.Capitalize(p.Name)))
	}

	sprite := p.Sprite
	return func() tea.Msg {
		if err := open.URL(sprite); err != nil {
			log.Warnf("open sprite: %v", err)
			return ui.NoticeMsg{Text: "could not open sprite", Warn: true}
		}
		return nil
	}
}

func (b *statefulBubble) toggleTheme() tea.Cmd {
	appearance, err := b.theme.Toggle()
	b.applyTheme()
	if err != nil {
		return ui.ThemeSaveFailed()
	}
	return ui.Notify("theme: " + appearance.String())
}

// detectSystemTheme re-queries the OS preference. It is a no-op once the user chose explicitly.
func (b *statefulBubble) detectSystemTheme() tea.Cmd {
	if b.detect == nil || b.theme.Explicit() {
		return nil
	}

	detect := b.detect
	return func() tea.Msg {
		if appearance, ok := detect(); ok {
			return systemThemeMsg{appearance: appearance}
		}
		return nil
	}
}

// pollSystemTheme schedules the next desktop appearance check.
func (b *statefulBubble) pollSystemTheme() tea.Cmd {
	if b.detect == nil || b.theme.Explicit() {
		return nil
	}
	return tea.Tick(systemPollInterval, func(time.Time) tea.Msg {
		return systemPollMsg{}
	})
}

func (b *statefulBubble) quit() tea.Cmd {
	b.cancel()
	return tea.Quit
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
	"github.com/pokedex-cli/pokedex/constant"
	"github.com/pokedex-cli/pokedex/icon"
	"github.com/pokedex-cli/pokedex/key"
	"github.com/pokedex-cli/pokedex/render"
	"github.com/pokedex-cli/pokedex/style"
	"github.com/pokedex-cli/pokedex/theme"
	"github.com/pokedex-cli/pokedex/util"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

var paddingStyle = lipgloss.NewStyle().Padding(1, 2)

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case loadingState:
		output = b.viewLoading()
	case browseState:
		output = b.viewBrowse()
	case errorState:
		output = b.viewError()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewLoading() string {
	status := b.progressStatus
	if status == "" {
		status = fmt.Sprintf("0/%d", b.limit)
	}

	return b.renderLines(
		true,
		[]string{
			style.Title("Loading"),
			"",
			b.spinnerC.View() + " " + style.Text("Catching "+util.Quantify(b.limit, "Pokémon", "Pokémon")) + " " + style.Subtle(status),
			"",
			b.progressC.ViewAs(b.progressPercent),
		},
	)
}

func (b *statefulBubble) viewBrowse() string {
	var body []string

	switch b.tabs.active {
	case pokedexTab:
		body = b.viewPokedex()
	case typesTab:
		body = b.viewTypes()
	case aboutTab:
		body = b.viewAbout()
	}

	return b.renderLines(true, append([]string{b.viewTabs(), ""}, body...))
}

func (b *statefulBubble) viewTabs() string {
	labels := lo.Map(allTabs(), func(t tab, i int) string {
		name := fmt.Sprintf("F%d %s", i+1, util.Capitalize(t.String()))
		if b.tabs.isActive(t) {
			return style.Title(name)
		}
		return style.Subtle(" " + name + " ")
	})

	themeIcon := icon.Get(icon.Light)
	if b.theme.Current() == theme.Dark {
		themeIcon = icon.Get(icon.Dark)
	}

	return strings.Join(labels, " ") + "  " + style.Subtle(themeIcon+" "+b.theme.Current().String())
}

func (b *statefulBubble) viewPokedex() []string {
	input := b.inputC.View()
	if suggestion, ok := b.searchSuggestion.Get(); ok {
		input += "  " + style.Faint(icon.Get(icon.Search)+" "+suggestion)
	}

	selectors := fmt.Sprintf(
		"%s %s   %s %s   %s",
		style.Subtle(b.typeSelector.title+":"),
		style.Accent(b.typeSelector.label()),
		style.Subtle(b.raritySelector.title+":"),
		style.Accent(b.raritySelector.label()),
		style.Subtle(fmt.Sprintf("%d of %d", len(b.filtered), len(b.catalog))),
	)

	return []string{input, selectors, "", b.gridC.View()}
}

func (b *statefulBubble) viewTypes() []string {
	return []string{
		style.Bold(style.Text("Types")),
		"",
		render.Legend(),
		"",
		style.Bold(style.Text("Rarity")),
		"",
		render.RarityLegend(),
	}
}

func (b *statefulBubble) viewAbout() []string {
	source := viper.GetString(key.CatalogBaseURL)

	lines := []string{
		style.Accent(constant.AsciiArtLogo),
		"",
		style.Text(fmt.Sprintf("%s v%s", constant.Pokedex, constant.Version)),
		style.Subtle("Data: " + source),
		style.Subtle(fmt.Sprintf("Loaded %s", util.Quantify(len(b.catalog), "entry", "entries"))),
	}

	if n := len(b.failures); n > 0 {
		lines = append(lines, style.Warning(fmt.Sprintf("%s could not be loaded", util.Quantify(n, "entry", "entries"))))
	}

	mode := "following the system"
	if b.theme.Explicit() {
		mode = "chosen"
	}
	lines = append(lines, style.Subtle(fmt.Sprintf("Theme: %s (%s)", b.theme.Current(), mode)))

	return lines
}

func (b *statefulBubble) viewError() string {
	errorMsg := wrap.String(style.Fg(style.Current().Error)(b.lastError.Error()), b.width)
	return b.renderLines(
		true,
		[]string{
			style.ErrorTitle("Error"),
			"",
			icon.Get(icon.Fail) + " " + style.Text("The catalog could not be loaded:"),
			"",
			errorMsg,
		},
	)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	l := strings.Join(lines, "\n")
	h := lipgloss.Height(l)
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}

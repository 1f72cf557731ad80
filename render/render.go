// Package render draws catalog entries as terminal cards, lines and the type legend.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/pokedex-cli/pokedex/icon"
	"github.com/pokedex-cli/pokedex/key"
	"github.com/pokedex-cli/pokedex/pokemon"
	"github.com/pokedex-cli/pokedex/rarity"
	"github.com/pokedex-cli/pokedex/style"
	"github.com/pokedex-cli/pokedex/util"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

const (
	// SpritePlaceholder is shown when an entry has no sprite URL.
	SpritePlaceholder = "no sprite"

	// EmptyMessage is shown when no entry matches the current criteria.
	EmptyMessage = "No Pokémon match the current filters"

	defaultFallback = "#68A090"
	minCardWidth    = 16
)

// FallbackColor returns the configured badge color for unknown types.
func FallbackColor() lipgloss.Color {
	if c := viper.GetString(key.RenderFallbackColor); c != "" {
		return lipgloss.Color(c)
	}
	return defaultFallback
}

// TypeColor returns the badge color of t, or the fallback color for unknown types.
func TypeColor(t pokemon.Type) lipgloss.Color {
	if c, ok := t.Color(); ok {
		return c
	}
	return FallbackColor()
}

// TypeBadge renders a type label on its color.
func TypeBadge(t pokemon.Type) string {
	return style.Badge(TypeColor(t), t.String())
}

// RarityBadge renders the tier label on its color.
func RarityBadge(t rarity.Tier) string {
	return style.Badge(t.Color(), t.DisplayName())
}

// CardWidth returns the configured card width.
func CardWidth() int {
	return util.Max(viper.GetInt(key.RenderCardWidth), minCardWidth)
}

// Card renders one bordered card, width columns wide including the border.
func Card(p *pokemon.Pokemon, width int) string {
	return card(p, width, false)
}

// HighlightedCard renders a card with the accent border.
func HighlightedCard(p *pokemon.Pokemon, width int) string {
	return card(p, width, true)
}

func card(p *pokemon.Pokemon, width int, highlighted bool) string {
	width = util.Max(width, minCardWidth)
	inner := width - 4

	var sprite string
	if p.HasSprite() {
		sprite = style.Subtle(truncate.StringWithTail(p.Sprite, uint(inner), "…"))
	} else {
		sprite = style.Subtle(icon.Get(icon.Sprite) + " " + SpritePlaceholder)
	}

	badges := lo.Map(p.Types, func(t pokemon.Type, _ int) string {
		return TypeBadge(t)
	})

	body := lipgloss.JoinVertical(
		lipgloss.Left,
		sprite,
		style.Bold(style.Text(util.Capitalize(p.Name))),
		style.Subtle(p.Number()),
		strings.Join(badges, " "),
		RarityBadge(rarity.Classify(p.ID)),
	)

	return style.Border(highlighted).
		Width(width-2).
		Padding(0, 1).
		Render(body)
}

// Columns returns how many cards fit side by side in width.
func Columns(width int) int {
	return util.Max(width/CardWidth(), 1)
}

// Grid renders every entry as a card, packed into rows that fit width.
// The whole grid is rebuilt on every call.
func Grid(list []*pokemon.Pokemon, width int) string {
	if len(list) == 0 {
		return style.Subtle(EmptyMessage)
	}
	return lipgloss.JoinVertical(lipgloss.Left, Rows(list, width, -1)...)
}

// Rows renders the grid row by row. The card at index highlight, if any, gets the
// accent border.
func Rows(list []*pokemon.Pokemon, width, highlight int) []string {
	cardWidth := CardWidth()
	columns := Columns(width)

	return lo.Map(lo.Chunk(list, columns), func(row []*pokemon.Pokemon, r int) string {
		cards := lo.Map(row, func(p *pokemon.Pokemon, c int) string {
			return card(p, cardWidth, r*columns+c == highlight)
		})
		return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	})
}

// Line renders an entry on a single line.
func Line(p *pokemon.Pokemon) string {
	types := lo.Map(p.Types, func(t pokemon.Type, _ int) string {
		return TypeBadge(t)
	})

	return fmt.Sprintf(
		"%s %s %s %s",
		style.Subtle(p.Number()),
		style.Bold(util.Capitalize(p.Name)),
		strings.Join(types, " "),
		RarityBadge(rarity.Classify(p.ID)),
	)
}

// Legend renders every canonical type with its color, in legend order.
func Legend() string {
	var b strings.Builder
	for _, t := range pokemon.Types() {
		c, _ := t.Color()
		b.WriteString(TypeBadge(t))
		b.WriteString(" ")
		b.WriteString(style.Subtle(string(c)))
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// RarityLegend renders every tier badge in precedence order.
func RarityLegend() string {
	return strings.Join(lo.Map(rarity.All(), func(t rarity.Tier, _ int) string {
		return RarityBadge(t)
	}), " ")
}

// Package icon renders UI symbols in the configured variant.
//
// Icons can be displayed as emoji, nerd-font glyphs, plain ASCII, kaomoji,
// or Unicode squares depending on user preference.
package icon

import (
	"github.com/pokedex-cli/pokedex/key"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants returns a slice of all registered icon style identifiers.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// Icon identifies a symbol.
type Icon int

const (
	Fail Icon = iota
	Success
	Warn
	Progress
	Search
	Mark
	Sprite
	Theme
	Light
	Dark
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case kaomoji:
		return d.kaomoji
	case squares:
		return d.squares
	default:
		return ""
	}
}

var icons = map[Icon]*iconDef{
	Fail:     {emoji: "💥", nerd: "", plain: "x", kaomoji: "(×_×)", squares: "🟥"},
	Success:  {emoji: "🎉", nerd: "", plain: "✓", kaomoji: "(ᵔ◡ᵔ)", squares: "🟩"},
	Warn:     {emoji: "⚠️", nerd: "", plain: "!", kaomoji: "(・_・;)", squares: "🟨"},
	Progress: {emoji: "⏳", nerd: "", plain: "…", kaomoji: "(・ω・)", squares: "🟦"},
	Search:   {emoji: "🔍", nerd: "", plain: "?", kaomoji: "(⊙_⊙)", squares: "🟪"},
	Mark:     {emoji: "⭐", nerd: "", plain: "*", kaomoji: "☆", squares: "⬛"},
	Sprite:   {emoji: "🖼️", nerd: "", plain: "[ ]", kaomoji: "(◕‿◕)", squares: "⬜"},
	Theme:    {emoji: "🎨", nerd: "", plain: "~", kaomoji: "(✿◠‿◠)", squares: "🟫"},
	Light:    {emoji: "☀️", nerd: "", plain: "o", kaomoji: "(☀)", squares: "⬜"},
	Dark:     {emoji: "🌙", nerd: "", plain: "c", kaomoji: "(☾)", squares: "⬛"},
}

// Get returns the icon rendered in the configured variant.
func Get(i Icon) string {
	if d, ok := icons[i]; ok {
		return d.Get()
	}
	return ""
}

// Package rarity assigns a static rarity tier to each dex number.
package rarity

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
)

// Tier is a rarity classification label.
type Tier string

const (
	Mythical  Tier = "mythical"
	Legendary Tier = "legendary"
	Rare      Tier = "rare"
	Uncommon  Tier = "uncommon"
	Common    Tier = "common"
)

// Membership tables. 151 appears in both mythical and legendary;
// precedence makes it mythical.
var (
	mythical  = []int{151}
	legendary = []int{144, 145, 146, 150, 151}
	rare      = []int{149, 134, 135, 136, 143, 131, 130, 142, 141, 139}
	uncommon  = []int{133, 132, 127, 123, 115, 113, 108, 107, 106, 105}
)

// precedence order, first match wins
var tables = []lo.Tuple2[Tier, []int]{
	{A: Mythical, B: mythical},
	{A: Legendary, B: legendary},
	{A: Rare, B: rare},
	{A: Uncommon, B: uncommon},
}

// Classify returns the tier of a dex number. Numbers outside every table are Common.
func Classify(id int) Tier {
	for _, table := range tables {
		if lo.Contains(table.B, id) {
			return table.A
		}
	}
	return Common
}

// All returns every tier in precedence order.
func All() []Tier {
	return []Tier{Mythical, Legendary, Rare, Uncommon, Common}
}

// Parse reads a tier label.
func Parse(s string) (Tier, error) {
	t := Tier(s)
	if lo.Contains(All(), t) {
		return t, nil
	}
	return "", fmt.Errorf("unknown rarity %q", s)
}

// DisplayName returns a capitalized label for badges and selectors.
func (t Tier) DisplayName() string {
	switch t {
	case Mythical:
		return "Mythical"
	case Legendary:
		return "Legendary"
	case Rare:
		return "Rare"
	case Uncommon:
		return "Uncommon"
	case Common:
		return "Common"
	default:
		return string(t)
	}
}

// Color returns the badge color of the tier.
func (t Tier) Color() lipgloss.Color {
	switch t {
	case Mythical:
		return "#FF6EC7"
	case Legendary:
		return "#FFD700"
	case Rare:
		return "#9B59B6"
	case Uncommon:
		return "#3498DB"
	default:
		return "#95A5A6"
	}
}

func (t Tier) String() string {
	return string(t)
}

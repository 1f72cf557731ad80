package pokemon

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
)

// Type is an elemental type label such as "fire" or "psychic".
// Values outside the canonical vocabulary can still appear when the API
// introduces new labels; Known reports whether a value is canonical.
type Type string

const (
	Normal   Type = "normal"
	Fire     Type = "fire"
	Water    Type = "water"
	Electric Type = "electric"
	Grass    Type = "grass"
	Ice      Type = "ice"
	Fighting Type = "fighting"
	Poison   Type = "poison"
	Ground   Type = "ground"
	Flying   Type = "flying"
	Psychic  Type = "psychic"
	Bug      Type = "bug"
	Rock     Type = "rock"
	Ghost    Type = "ghost"
	Dragon   Type = "dragon"
	Dark     Type = "dark"
	Steel    Type = "steel"
	Fairy    Type = "fairy"
)

type typeDef struct {
	t     Type
	color lipgloss.Color
}

// canonical order, which is also the legend order
var typeTable = []typeDef{
	{Normal, "#A8A878"},
	{Fire, "#F08030"},
	{Water, "#6890F0"},
	{Electric, "#F8D030"},
	{Grass, "#78C850"},
	{Ice, "#98D8D8"},
	{Fighting, "#C03028"},
	{Poison, "#A040A0"},
	{Ground, "#E0C068"},
	{Flying, "#A890F0"},
	{Psychic, "#F85888"},
	{Bug, "#A8B820"},
	{Rock, "#B8A038"},
	{Ghost, "#705898"},
	{Dragon, "#7038F8"},
	{Dark, "#705848"},
	{Steel, "#B8B8D0"},
	{Fairy, "#EE99AC"},
}

var typeIndex = func() map[Type]int {
	index := make(map[Type]int, len(typeTable))
	for i, d := range typeTable {
		index[d.t] = i
	}
	return index
}()

// Types returns the canonical vocabulary in legend order.
func Types() []Type {
	return lo.Map(typeTable, func(d typeDef, _ int) Type { return d.t })
}

// Known reports whether t belongs to the canonical vocabulary.
func (t Type) Known() bool {
	_, ok := typeIndex[t]
	return ok
}

// Color returns the badge color of t. The second value is false for unknown types,
// in which case the color is empty and callers must pick a fallback.
func (t Type) Color() (lipgloss.Color, bool) {
	i, ok := typeIndex[t]
	if !ok {
		return "", false
	}
	return typeTable[i].color, true
}

// Order returns the legend position of t, unknown types sort last.
func (t Type) Order() int {
	if i, ok := typeIndex[t]; ok {
		return i
	}
	return len(typeTable)
}

func (t Type) String() string {
	return string(t)
}

// Unmapped lists the distinct type labels in list that have no color, in first-seen order.
func Unmapped(list []*Pokemon) []Type {
	var unknown []Type
	for _, p := range list {
		for _, t := range p.Types {
			if !t.Known() {
				unknown = append(unknown, t)
			}
		}
	}
	return lo.Uniq(unknown)
}

package tui

import (
	"strings"

	"github.com/samber/lo"
)

// tab is one of the fixed panels.
type tab int

const (
	pokedexTab tab = iota
	typesTab
	aboutTab
)

var tabNames = []string{"pokedex", "types", "about"}

func allTabs() []tab {
	return []tab{pokedexTab, typesTab, aboutTab}
}

func parseTab(s string) (tab, bool) {
	i := lo.IndexOf(tabNames, strings.ToLower(strings.TrimSpace(s)))
	if i < 0 {
		return pokedexTab, false
	}
	return tab(i), true
}

func (t tab) String() string {
	return tabNames[t]
}

// tabs is an exclusive selection: exactly one tab is active at any time.
type tabs struct {
	active tab
}

func (ts *tabs) selectTab(t tab) {
	if t < pokedexTab || t > aboutTab {
		return
	}
	ts.active = t
}

func (ts *tabs) next() {
	ts.active = (ts.active + 1) % tab(len(tabNames))
}

func (ts *tabs) isActive(t tab) bool {
	return ts.active == t
}

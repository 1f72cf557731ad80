// Package filter narrows a catalog by name, type and rarity.
package filter

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/pokedex-cli/pokedex/pokemon"
	"github.com/pokedex-cli/pokedex/rarity"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// All is the selector value that disables a criterion.
const All = "all"

// Criteria is the current combination of search text, type and rarity.
// A None option matches everything.
type Criteria struct {
	Query  string
	Type   mo.Option[pokemon.Type]
	Rarity mo.Option[rarity.Tier]
}

// Any returns criteria that match every entry.
func Any() Criteria {
	return Criteria{
		Type:   mo.None[pokemon.Type](),
		Rarity: mo.None[rarity.Tier](),
	}
}

// IsAny reports whether c matches every entry.
func (c Criteria) IsAny() bool {
	return c.Query == "" && c.Type.IsAbsent() && c.Rarity.IsAbsent()
}

// TypeLabel returns the selected type or All.
func (c Criteria) TypeLabel() string {
	if t, ok := c.Type.Get(); ok {
		return t.String()
	}
	return All
}

// RarityLabel returns the selected tier or All.
func (c Criteria) RarityLabel() string {
	if r, ok := c.Rarity.Get(); ok {
		return r.String()
	}
	return All
}

// Matches reports whether p satisfies every criterion.
func Matches(p *pokemon.Pokemon, c Criteria) bool {
	if !strings.Contains(strings.ToLower(p.Name), strings.ToLower(c.Query)) {
		return false
	}

	if t, ok := c.Type.Get(); ok && !p.HasType(t) {
		return false
	}

	if r, ok := c.Rarity.Get(); ok && rarity.Classify(p.ID) != r {
		return false
	}

	return true
}

// Apply returns the entries of catalog matching c, in their original order.
// The input slice is never modified.
func Apply(catalog []*pokemon.Pokemon, c Criteria) []*pokemon.Pokemon {
	result := make([]*pokemon.Pokemon, 0, len(catalog))
	for _, p := range catalog {
		if Matches(p, c) {
			result = append(result, p)
		}
	}
	return result
}

// ObservedTypes returns the distinct types present in catalog, canonical types first
// in legend order, then unknown labels alphabetically.
func ObservedTypes(catalog []*pokemon.Pokemon) []pokemon.Type {
	seen := lo.Uniq(lo.FlatMap(catalog, func(p *pokemon.Pokemon, _ int) []pokemon.Type {
		return p.Types
	}))

	sort.Slice(seen, func(i, j int) bool {
		oi, oj := seen[i].Order(), seen[j].Order()
		if oi != oj {
			return oi < oj
		}
		return seen[i] < seen[j]
	})

	return seen
}

// ErrUnknownLabel is wrapped by ParseType and ParseRarity.
var ErrUnknownLabel = errors.New("unknown label")

// ParseType reads a type selector value. All (or an empty string) yields None.
func ParseType(s string) (mo.Option[pokemon.Type], error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == All {
		return mo.None[pokemon.Type](), nil
	}

	t := pokemon.Type(s)
	if t.Known() {
		return mo.Some(t), nil
	}

	labels := lo.Map(pokemon.Types(), func(t pokemon.Type, _ int) string { return t.String() })
	return mo.None[pokemon.Type](), unknown("type", s, labels)
}

// ParseRarity reads a rarity selector value. All (or an empty string) yields None.
func ParseRarity(s string) (mo.Option[rarity.Tier], error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == All {
		return mo.None[rarity.Tier](), nil
	}

	if t, err := rarity.Parse(s); err == nil {
		return mo.Some(t), nil
	}

	labels := lo.Map(rarity.All(), func(t rarity.Tier, _ int) string { return t.String() })
	return mo.None[rarity.Tier](), unknown("rarity", s, labels)
}

// Closest returns the candidate with the smallest edit distance to s.
func Closest(s string, candidates []string) string {
	return lo.MinBy(candidates, func(a, b string) bool {
		return levenshtein.Distance(s, a) < levenshtein.Distance(s, b)
	})
}

func unknown(kind, value string, candidates []string) error {
	return fmt.Errorf("%w: %s %q, did you mean %q?", ErrUnknownLabel, kind, value, Closest(value, candidates))
}

// Package pokemon defines the creature record fetched from the catalog API
// and the closed vocabulary of elemental types.
package pokemon

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Pokemon is a single catalog entry.
type Pokemon struct {
	// ID is the national dex number, starting at 1.
	ID int `json:"id" jsonschema:"description=National dex number, starting at 1."`
	// Name is the lowercase display name as returned by the API.
	Name string `json:"name" jsonschema:"description=Display name."`
	// Types lists the elemental types in slot order.
	Types []Type `json:"types" jsonschema:"description=Elemental types in slot order."`
	// Sprite is the front sprite URL. Empty when the API has none.
	Sprite string `json:"sprite,omitempty" jsonschema:"description=Front sprite URL. Absent when the API has none."`
}

// Number returns the zero-padded dex number, e.g. "#001".
func (p *Pokemon) Number() string {
	return fmt.Sprintf("#%03d", p.ID)
}

// HasSprite reports whether a sprite URL is available.
func (p *Pokemon) HasSprite() bool {
	return p.Sprite != ""
}

// HasType reports whether t is one of the entry's types.
func (p *Pokemon) HasType(t Type) bool {
	for _, own := range p.Types {
		if own == t {
			return true
		}
	}
	return false
}

// apiPokemon mirrors the subset of the /pokemon/{id} document this package reads.
type apiPokemon struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Sprites struct {
		FrontDefault *string `json:"front_default"`
	} `json:"sprites"`
	Types []struct {
		Slot int `json:"slot"`
		Type struct {
			Name string `json:"name"`
		} `json:"type"`
	} `json:"types"`
}

var (
	ErrInvalidID  = errors.New("invalid id")
	ErrEmptyName  = errors.New("empty name")
	ErrEmptyTypes = errors.New("no types")
)

// Decode parses an API document into a Pokemon and validates the required fields.
func Decode(data []byte) (*Pokemon, error) {
	var raw apiPokemon
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode pokemon: %w", err)
	}
	return raw.toPokemon()
}

func (a *apiPokemon) toPokemon() (*Pokemon, error) {
	switch {
	case a.ID <= 0:
		return nil, fmt.Errorf("%w: %d", ErrInvalidID, a.ID)
	case strings.TrimSpace(a.Name) == "":
		return nil, ErrEmptyName
	case len(a.Types) == 0:
		return nil, ErrEmptyTypes
	}

	slots := a.Types
	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].Slot < slots[j].Slot
	})

	p := &Pokemon{
		ID:    a.ID,
		Name:  a.Name,
		Types: make([]Type, 0, len(slots)),
	}
	for _, s := range slots {
		p.Types = append(p.Types, Type(strings.ToLower(s.Type.Name)))
	}
	if a.Sprites.FrontDefault != nil {
		p.Sprite = *a.Sprites.FrontDefault
	}

	return p, nil
}

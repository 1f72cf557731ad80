// Package export writes a filtered catalog as json, yaml, html or xlsx.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/pokedex-cli/pokedex/pokemon"
	"github.com/pokedex-cli/pokedex/rarity"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// Format is a structured output encoding.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	HTML Format = "html"
	XLSX Format = "xlsx"
)

// Formats returns every supported format.
func Formats() []Format {
	return []Format{JSON, YAML, HTML, XLSX}
}

// ErrUnknownFormat is wrapped by ParseFormat.
var ErrUnknownFormat = errors.New("unknown format")

// ParseFormat reads a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if lo.Contains(Formats(), f) {
		return f, nil
	}

	closest := lo.MinBy(Formats(), func(a, b Format) bool {
		return levenshtein.Distance(string(f), string(a)) < levenshtein.Distance(string(f), string(b))
	})
	return "", fmt.Errorf("%w %q, did you mean %q?", ErrUnknownFormat, s, closest)
}

// Binary reports whether the format should not be written to a terminal.
func (f Format) Binary() bool {
	return f == XLSX
}

// Entry is one exported record.
type Entry struct {
	ID     int      `json:"id" yaml:"id" jsonschema:"description=National dex number."`
	Number string   `json:"number" yaml:"number" jsonschema:"description=Zero-padded dex number, e.g. #001."`
	Name   string   `json:"name" yaml:"name"`
	Types  []string `json:"types" yaml:"types" jsonschema:"description=Elemental types in slot order."`
	Rarity string   `json:"rarity" yaml:"rarity" jsonschema:"enum=mythical,enum=legendary,enum=rare,enum=uncommon,enum=common"`
	Sprite string   `json:"sprite,omitempty" yaml:"sprite,omitempty" jsonschema:"description=Front sprite URL."`
}

// Output is the document written by every format.
type Output struct {
	Query  string   `json:"query" yaml:"query" jsonschema:"description=Name substring used to filter."`
	Type   string   `json:"type" yaml:"type" jsonschema:"description=Selected type or all."`
	Rarity string   `json:"rarity" yaml:"rarity" jsonschema:"description=Selected rarity or all."`
	Total  int      `json:"total" yaml:"total" jsonschema:"description=Number of entries in result."`
	Result []*Entry `json:"result" yaml:"result"`

	// Theme selects the html appearance. Empty follows the reader's OS.
	Theme string `json:"-" yaml:"-"`
}

// NewEntry converts a catalog record.
func NewEntry(p *pokemon.Pokemon) *Entry {
	return &Entry{
		ID:     p.ID,
		Number: p.Number(),
		Name:   p.Name,
		Types:  lo.Map(p.Types, func(t pokemon.Type, _ int) string { return t.String() }),
		Rarity: rarity.Classify(p.ID).String(),
		Sprite: p.Sprite,
	}
}

// NewOutput wraps a filtered list in an Output.
func NewOutput(list []*pokemon.Pokemon) *Output {
	return &Output{
		Type:   "all",
		Rarity: "all",
		Total:  len(list),
		Result: lo.Map(list, func(p *pokemon.Pokemon, _ int) *Entry { return NewEntry(p) }),
	}
}

// Write encodes out to w in the given format.
func Write(w io.Writer, format Format, out *Output) error {
	if out.Result == nil {
		out.Result = []*Entry{}
	}

	switch format {
	case JSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(out)
	case YAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(out); err != nil {
			return err
		}
		return encoder.Close()
	case HTML:
		return writeHTML(w, out)
	case XLSX:
		return writeXLSX(w, out)
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
}

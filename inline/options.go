package inline

import (
	"fmt"
	"io"

	"github.com/pokedex-cli/pokedex/export"
	"github.com/pokedex-cli/pokedex/filter"
	"github.com/pokedex-cli/pokedex/pokeapi"
	"github.com/pokedex-cli/pokedex/theme"
	"github.com/pokedex-cli/pokedex/util"
	"github.com/samber/mo"
)

// Options configures a non-interactive run.
type Options struct {
	// Out receives the result. Ignored when Output is set.
	Out io.Writer
	// Err receives notices and progress.
	Err io.Writer

	Query  string
	Type   string
	Rarity string

	// Format is empty for text lines, or one of export.Formats.
	Format string
	// Output is a file path. When Format is empty it is inferred from the extension.
	Output string
	// Theme forces the html appearance, light or dark. Empty follows the reader's system.
	Theme string

	// Limit overrides catalog.limit when positive.
	Limit int
	// Progress shows an erasable progress line on Err.
	Progress bool

	// Client overrides the configured catalog client.
	Client *pokeapi.Client
}

// Criteria parses the selector values.
func (o *Options) Criteria() (filter.Criteria, error) {
	t, err := filter.ParseType(o.Type)
	if err != nil {
		return filter.Criteria{}, err
	}

	r, err := filter.ParseRarity(o.Rarity)
	if err != nil {
		return filter.Criteria{}, err
	}

	return filter.Criteria{Query: o.Query, Type: t, Rarity: r}, nil
}

// OutputFormat resolves the structured format, None meaning text lines.
func (o *Options) OutputFormat() (mo.Option[export.Format], error) {
	name := o.Format
	if name == "" && o.Output != "" {
		name = util.FileExt(o.Output)
		if name == "" {
			return mo.None[export.Format](), nil
		}
	}

	if name == "" || name == "text" {
		return mo.None[export.Format](), nil
	}

	f, err := export.ParseFormat(name)
	if err != nil {
		return mo.None[export.Format](), err
	}
	return mo.Some(f), nil
}

// Validate checks every option that can fail before the catalog is fetched.
func (o *Options) Validate() error {
	if _, err := o.Criteria(); err != nil {
		return err
	}

	f, err := o.OutputFormat()
	if err != nil {
		return err
	}

	if o.Theme != "" {
		if _, err := theme.Parse(o.Theme); err != nil {
			return err
		}
	}

	if format, ok := f.Get(); ok && format.Binary() && o.Output == "" && o.Out == nil {
		return fmt.Errorf("%s output needs --output", format)
	}
	return nil
}

// Package inline runs the non-interactive mode: fetch, filter, then print or export.
package inline

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/pokedex-cli/pokedex/export"
	"github.com/pokedex-cli/pokedex/filesystem"
	"github.com/pokedex-cli/pokedex/filter"
	"github.com/pokedex-cli/pokedex/key"
	"github.com/pokedex-cli/pokedex/log"
	"github.com/pokedex-cli/pokedex/pokeapi"
	"github.com/pokedex-cli/pokedex/pokemon"
	"github.com/pokedex-cli/pokedex/render"
	"github.com/pokedex-cli/pokedex/util"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Run loads the catalog, applies the criteria and writes the result.
func Run(ctx context.Context, options *Options) error {
	if options.Err == nil {
		options.Err = os.Stderr
	}

	if err := options.Validate(); err != nil {
		return err
	}

	criteria, _ := options.Criteria()
	format, _ := options.OutputFormat()

	limit := options.Limit
	if limit <= 0 {
		limit = viper.GetInt(key.CatalogLimit)
	}

	client := options.Client
	if client == nil {
		var opts []pokeapi.Option
		if options.Progress {
			opts = append(opts, pokeapi.WithProgress(progress()))
		}
		client = pokeapi.FromConfig(opts...)
	}

	result, err := client.Catalog(ctx, limit)
	if err != nil {
		return err
	}

	notify(options.Err, result)

	if len(result.Pokemon) == 0 && len(result.Failures) > 0 {
		return fmt.Errorf("no entries could be loaded: %w", lo.LastOrEmpty(result.Failures))
	}

	filtered := filter.Apply(result.Pokemon, criteria)
	log.Infof("inline: %d of %d entries match", len(filtered), len(result.Pokemon))

	out, closeOut, err := destination(options)
	if err != nil {
		return err
	}
	defer util.Ignore(closeOut)

	if f, ok := format.Get(); ok {
		doc := export.NewOutput(filtered)
		doc.Query = criteria.Query
		doc.Type = criteria.TypeLabel()
		doc.Rarity = criteria.RarityLabel()
		doc.Theme = options.Theme
		if err := export.Write(out, f, doc); err != nil {
			return fmt.Errorf("write %s: %w", f, err)
		}
		return closeOut()
	}

	for _, p := range filtered {
		if _, err := fmt.Fprintln(out, render.Line(p)); err != nil {
			return err
		}
	}
	return closeOut()
}

func notify(w io.Writer, result *pokeapi.Result) {
	if n := len(result.Failures); n > 0 {
		fmt.Fprintf(w, "%s could not be loaded\n", util.Quantify(n, "entry", "entries"))
	}

	if unmapped := pokemon.Unmapped(result.Pokemon); len(unmapped) > 0 {
		log.Warnf("types without a color: %v", unmapped)
		labels := lo.Map(unmapped, func(t pokemon.Type, _ int) string { return t.String() })
		fmt.Fprintf(w, "no color for type %s\n", strings.Join(labels, ", "))
	}
}

func destination(options *Options) (io.Writer, func() error, error) {
	noop := func() error { return nil }

	if options.Output == "" {
		if options.Out == nil {
			return os.Stdout, noop, nil
		}
		return options.Out, noop, nil
	}

	file, err := filesystem.API().Create(options.Output)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}

	var closed bool
	return file, func() error {
		if closed {
			return nil
		}
		closed = true
		return file.Close()
	}, nil
}

func progress() pokeapi.ProgressFunc {
	var (
		mu    sync.Mutex
		last  int
		erase = func() {}
	)
	return func(done, total int) {
		mu.Lock()
		defer mu.Unlock()

		if done <= last {
			return
		}
		last = done
		erase()
		erase = util.PrintErasable(fmt.Sprintf("loading %d/%d", done, total))
		if done == total {
			erase()
		}
	}
}

package pokeapi

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/pokedex-cli/pokedex/log"
	"github.com/pokedex-cli/pokedex/pokemon"
	"github.com/samber/lo"
)

// Result is the outcome of a catalog load.
type Result struct {
	// Pokemon holds every successfully loaded entry in id order.
	Pokemon []*pokemon.Pokemon
	// Failures holds one error per dropped id, in id order.
	Failures []*FetchError
}

// Catalog fetches ids 1..n. All requests are started without waiting for each other
// (bounded by WithMaxParallel when set) and the call returns once every one has finished.
// A failing id is logged and left out of the result; it never aborts the batch.
func (c *Client) Catalog(ctx context.Context, n int) (*Result, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrEmptyRange, n)
	}

	var cached map[int]*pokemon.Pokemon
	if c.cache != nil {
		cached = c.cache.All()
	}

	var (
		entries = make([]*pokemon.Pokemon, n)
		errs    = make([]error, n)
		done    atomic.Int64
		wg      sync.WaitGroup
		slots   chan struct{}
	)

	if c.maxParallel > 0 {
		slots = make(chan struct{}, c.maxParallel)
	}

	report := func() {
		finished := int(done.Add(1))
		if c.progress != nil {
			c.progress(finished, n)
		}
	}

	log.Infof("loading catalog of %d entries", n)

	wg.Add(n)
	for i := 0; i < n; i++ {
		id := i + 1

		if p, ok := cached[id]; ok {
			entries[i] = p
			wg.Done()
			report()
			continue
		}

		go func(i, id int) {
			defer wg.Done()
			defer report()

			if slots != nil {
				select {
				case slots <- struct{}{}:
					defer func() { <-slots }()
				case <-ctx.Done():
					errs[i] = ctx.Err()
					return
				}
			}

			p, err := c.fetch(ctx, id)
			if err != nil {
				errs[i] = err
				return
			}
			entries[i] = p
		}(i, id)
	}
	wg.Wait()

	result := &Result{}
	for i := range entries {
		if errs[i] != nil {
			failure := &FetchError{ID: i + 1, Err: errs[i]}
			log.With(log.Fields{"id": failure.ID}).Warn(failure.Err)
			result.Failures = append(result.Failures, failure)
			continue
		}
		result.Pokemon = append(result.Pokemon, entries[i])
	}

	if len(result.Pokemon) == 0 && ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if c.cache != nil {
		fresh := lo.Filter(result.Pokemon, func(p *pokemon.Pokemon, _ int) bool {
			_, hit := cached[p.ID]
			return !hit
		})
		if len(fresh) > 0 {
			if err := c.cache.SetMany(fresh); err != nil {
				log.Warnf("cache catalog: %v", err)
			}
		}
	}

	log.Infof("catalog loaded: %d entries, %d failures", len(result.Pokemon), len(result.Failures))
	return result, nil
}

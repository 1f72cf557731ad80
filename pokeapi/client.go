// Package pokeapi fetches catalog entries from the public creature data API.
package pokeapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pokedex-cli/pokedex/key"
	"github.com/pokedex-cli/pokedex/log"
	"github.com/pokedex-cli/pokedex/network"
	"github.com/pokedex-cli/pokedex/pokemon"
	"github.com/pokedex-cli/pokedex/util"
	"github.com/spf13/viper"
)

// DefaultBaseURL is the public API root.
const DefaultBaseURL = "https://pokeapi.co/api/v2"

// ProgressFunc is called after every finished request with the number of completed
// requests so far. It is invoked from multiple goroutines.
type ProgressFunc func(done, total int)

// Client issues catalog requests.
type Client struct {
	baseURL     string
	http        *http.Client
	maxParallel int
	cache       *recordCache
	progress    ProgressFunc
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API root, e.g. to point at a test server.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(url, "/")
	}
}

// WithHTTPClient replaces network.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.http = h
	}
}

// WithMaxParallel bounds the number of requests in flight. Zero or less means unbounded.
func WithMaxParallel(n int) Option {
	return func(c *Client) {
		c.maxParallel = n
	}
}

// WithCache enables the on-disk record cache.
func WithCache(enabled bool) Option {
	return func(c *Client) {
		if enabled {
			c.cache = newRecordCache()
		} else {
			c.cache = nil
		}
	}
}

// WithProgress registers a progress callback for Catalog.
func WithProgress(fn ProgressFunc) Option {
	return func(c *Client) {
		c.progress = fn
	}
}

// New returns a client for DefaultBaseURL using network.Client.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		http:    network.Client,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// With returns a copy of c with opts applied.
func (c *Client) With(opts ...Option) *Client {
	clone := *c
	for _, opt := range opts {
		opt(&clone)
	}
	return &clone
}

// FromConfig builds a client from the catalog.* configuration keys, followed by opts.
func FromConfig(opts ...Option) *Client {
	base := []Option{
		WithBaseURL(viper.GetString(key.CatalogBaseURL)),
		WithMaxParallel(viper.GetInt(key.CatalogMaxParallel)),
		WithCache(viper.GetBool(key.CatalogCache)),
	}
	if seconds := viper.GetInt(key.CatalogTimeoutSeconds); seconds > 0 {
		base = append(base, WithHTTPClient(network.New(time.Duration(seconds)*time.Second)))
	}
	return New(append(base, opts...)...)
}

// Get fetches and decodes a single entry.
func (c *Client) Get(ctx context.Context, id int) (*pokemon.Pokemon, error) {
	if c.cache != nil {
		if p, ok := c.cache.Get(id).Get(); ok {
			return p, nil
		}
	}

	p, err := c.fetch(ctx, id)
	if err != nil {
		return nil, &FetchError{ID: id, Err: err}
	}

	if c.cache != nil {
		if err := c.cache.SetMany([]*pokemon.Pokemon{p}); err != nil {
			log.Warnf("cache entry %d: %v", id, err)
		}
	}

	return p, nil
}

func (c *Client) fetch(ctx context.Context, id int) (*pokemon.Pokemon, error) {
	url := fmt.Sprintf("%s/pokemon/%d", c.baseURL, id)
	log.Debugf("GET %s", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d", ErrStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	p, err := pokemon.Decode(body)
	if err != nil {
		return nil, err
	}

	if p.ID != id {
		return nil, fmt.Errorf("%w: requested %d, got %d", ErrIDMismatch, id, p.ID)
	}

	return p, nil
}

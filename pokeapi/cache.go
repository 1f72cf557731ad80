package pokeapi

import (
	"sync"
	"time"

	"github.com/metafates/gache"
	"github.com/pokedex-cli/pokedex/filesystem"
	"github.com/pokedex-cli/pokedex/pokemon"
	"github.com/pokedex-cli/pokedex/where"
	"github.com/samber/mo"
)

// cacheLifetime bounds how long fetched entries are reused before refetching.
const cacheLifetime = 7 * 24 * time.Hour

type cacheData struct {
	Pokemon map[int]*pokemon.Pokemon `json:"pokemon"`
}

// recordCache persists fetched entries keyed by id.
type recordCache struct {
	internal *gache.Cache[*cacheData]
	mu       sync.RWMutex
}

func newRecordCache() *recordCache {
	return &recordCache{
		internal: gache.New[*cacheData](&gache.Options{
			Path:       where.Catalog(),
			Lifetime:   cacheLifetime,
			FileSystem: &filesystem.GacheFs{},
		}),
	}
}

func (c *recordCache) load() map[int]*pokemon.Pokemon {
	data, expired, err := c.internal.Get()
	if err != nil || expired || data == nil || data.Pokemon == nil {
		return make(map[int]*pokemon.Pokemon)
	}
	return data.Pokemon
}

// Get returns the cached entry for id, if any.
func (c *recordCache) Get(id int) mo.Option[*pokemon.Pokemon] {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if p, ok := c.load()[id]; ok {
		return mo.Some(p)
	}
	return mo.None[*pokemon.Pokemon]()
}

// All returns every cached entry.
func (c *recordCache) All() map[int]*pokemon.Pokemon {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.load()
}

// SetMany stores entries in a single write.
func (c *recordCache) SetMany(list []*pokemon.Pokemon) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data := c.load()
	for _, p := range list {
		data[p.ID] = p
	}
	return c.internal.Set(&cacheData{Pokemon: data})
}

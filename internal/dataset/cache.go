package dataset

import (
	"strconv"

	"github.com/drakos74/edu-cluster/internal/model"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
)

// Cache keeps the tables of an underlying provider in memory, keyed by seed.
type Cache struct {
	provider Provider
	tables   *cache.Cache
}

// NewCache wraps the given provider with an in-memory cache that never expires.
func NewCache(provider Provider) *Cache {
	return &Cache{
		provider: provider,
		tables:   cache.New(cache.NoExpiration, 0),
	}
}

// Load returns a copy of the cached table for the seed, loading it on first access.
func (c *Cache) Load(seed int64) model.Table {
	key := strconv.FormatInt(seed, 10)
	if t, ok := c.tables.Get(key); ok {
		return t.(model.Table).Copy()
	}
	table := c.provider.Load(seed)
	c.tables.Set(key, table.Copy(), cache.NoExpiration)
	log.Debug().
		Int64("seed", seed).
		Int("rows", len(table)).
		Msg("cached dataset")
	return table
}

// Size returns the number of cached tables.
func (c *Cache) Size() int {
	return c.tables.ItemCount()
}

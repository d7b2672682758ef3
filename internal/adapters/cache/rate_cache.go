package cache

import (
	"fmt"

	"currencyconverter/internal/domain"

	"github.com/dgraph-io/ristretto"
)

// RistrettoRateCache keeps the last read rate per pair so repeated pair
// lookups skip the database. The synchronizer cleans touched pairs after
// every run, so a stale entry lives at most one sync interval.
type RistrettoRateCache struct {
	cache *ristretto.Cache
}

func NewRateCache(maxItems int64) (*RistrettoRateCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10 * maxItems,
		MaxCost:     maxItems,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create rate cache failed: %w", err)
	}
	return &RistrettoRateCache{cache: c}, nil
}

func (c *RistrettoRateCache) Get(pair domain.RatePair) (domain.ExchangeRate, bool) {
	if v, ok := c.cache.Get(toKey(pair)); ok {
		rate, ok := v.(domain.ExchangeRate)
		return rate, ok
	}
	return domain.ExchangeRate{}, false
}

func (c *RistrettoRateCache) Set(pair domain.RatePair, rate domain.ExchangeRate) {
	c.cache.Set(toKey(pair), rate, 1)
}

func (c *RistrettoRateCache) CleanBatch(pairs []domain.RatePair) {
	for _, pair := range pairs {
		c.cache.Del(toKey(pair))
	}
}

func (c *RistrettoRateCache) Close() { c.cache.Close() }

func toKey(p domain.RatePair) string { return p.Base + ":" + p.Quote }

package cache

import (
	"testing"
	"time"

	"currencyconverter/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestRateCache_SetAndGet(t *testing.T) {
	c, err := NewRateCache(128)
	require.NoError(t, err)
	defer c.Close()

	pair := domain.RatePair{Base: "USD", Quote: "EUR"}
	rate := domain.ExchangeRate{ID: 1, BaseCurrency: "USD", QuoteCurrency: "EUR", Rate: 0.92, UpdateTime: time.Now()}

	c.Set(pair, rate)
	c.cache.Wait()

	got, ok := c.Get(pair)
	require.True(t, ok)
	require.Equal(t, rate.ID, got.ID)
	require.InDelta(t, 0.92, got.Rate, 1e-9)
}

func TestRateCache_GetMissWhenEmpty(t *testing.T) {
	c, err := NewRateCache(64)
	require.NoError(t, err)
	defer c.Close()

	rate, ok := c.Get(domain.RatePair{Base: "EUR", Quote: "USD"})
	require.False(t, ok)
	require.Zero(t, rate)
}

func TestRateCache_CleanBatchEvictsOnlySpecifiedPairs(t *testing.T) {
	c, err := NewRateCache(256)
	require.NoError(t, err)
	defer c.Close()

	usdeur := domain.RatePair{Base: "USD", Quote: "EUR"}
	eurusd := domain.RatePair{Base: "EUR", Quote: "USD"}
	usdjpy := domain.RatePair{Base: "USD", Quote: "JPY"}

	c.Set(usdeur, domain.ExchangeRate{ID: 1, Rate: 0.92})
	c.Set(eurusd, domain.ExchangeRate{ID: 2, Rate: 1.09})
	c.Set(usdjpy, domain.ExchangeRate{ID: 3, Rate: 147.2})
	c.cache.Wait()

	c.CleanBatch([]domain.RatePair{usdeur, eurusd})

	_, ok := c.Get(usdeur)
	require.False(t, ok)
	_, ok = c.Get(eurusd)
	require.False(t, ok)

	kept, ok := c.Get(usdjpy)
	require.True(t, ok)
	require.Equal(t, int64(3), kept.ID)
}

// Package cache keeps recently fetched series in memory.
package cache

import (
	"sync"
	"time"

	"github.com/guttosm/b3charts/internal/domain/models"
)

// DefaultTTL matches the refresh rate of the market data backend.
const DefaultTTL = 5 * time.Minute

type entry struct {
	bars     []models.Bar
	storedAt time.Time
}

// SeriesCache is a TTL cache of series keyed by ticker and period.
// It is safe for concurrent use.
type SeriesCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]entry
	now     func() time.Time
}

// New returns an empty cache. A non-positive ttl falls back to DefaultTTL.
func New(ttl time.Duration) *SeriesCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &SeriesCache{
		ttl:     ttl,
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

func key(ticker, period string) string {
	return ticker + "|" + period
}

// Get returns the cached series, dropping it if it has expired.
// The returned slice is shared and must not be modified.
func (c *SeriesCache) Get(ticker, period string) ([]models.Bar, bool) {
	k := key(ticker, period)

	c.mu.RLock()
	e, ok := c.entries[k]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if c.now().Sub(e.storedAt) > c.ttl {
		c.mu.Lock()
		// another goroutine may have refreshed it in between
		if cur, ok := c.entries[k]; ok && cur.storedAt.Equal(e.storedAt) {
			delete(c.entries, k)
		}
		c.mu.Unlock()
		return nil, false
	}
	return e.bars, true
}

// Set stores bars for ticker and period.
func (c *SeriesCache) Set(ticker, period string, bars []models.Bar) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key(ticker, period)] = entry{bars: bars, storedAt: c.now()}
}

// Purge removes every expired entry and returns how many were removed.
func (c *SeriesCache) Purge() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	n := 0
	for k, e := range c.entries {
		if now.Sub(e.storedAt) > c.ttl {
			delete(c.entries, k)
			n++
		}
	}
	return n
}

// Len reports the number of entries, expired ones included.
func (c *SeriesCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Package stats serves the page's subscriber-count figure from a small TTL
// cache so rendering never waits on Postgres in the hot path.
package stats

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/singleflight"

	"github.com/essenza-parfums/web/internal/domain"
	"github.com/essenza-parfums/web/internal/metrics"
)

// SubscriberCountCache caches the subscriber count with a TTL. Concurrent
// refreshes collapse into a single database query via singleflight, and a
// failed refresh falls back to the last known value rather than breaking the
// page.
type SubscriberCountCache struct {
	source domain.SubscriberRepository
	ttl    time.Duration
	clock  clockwork.Clock

	group singleflight.Group

	mu        sync.RWMutex
	value     int64
	loaded    bool
	expiresAt time.Time
}

func NewSubscriberCountCache(source domain.SubscriberRepository, ttl time.Duration, clock clockwork.Clock) *SubscriberCountCache {
	return &SubscriberCountCache{
		source: source,
		ttl:    ttl,
		clock:  clock,
	}
}

// Get returns the cached count, refreshing it when the TTL has lapsed.
func (c *SubscriberCountCache) Get(ctx context.Context) (int64, error) {
	if value, ok := c.fresh(); ok {
		metrics.SubscriberCountCacheHits.WithLabelValues("hit").Inc()
		return value, nil
	}
	metrics.SubscriberCountCacheHits.WithLabelValues("miss").Inc()

	result, err, _ := c.group.Do("subscriber_count", func() (any, error) {
		// Another caller may have refreshed while we waited on the flight.
		if value, ok := c.fresh(); ok {
			return value, nil
		}

		count, err := c.source.Count(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.value = count
		c.loaded = true
		c.expiresAt = c.clock.Now().Add(c.ttl)
		c.mu.Unlock()

		return count, nil
	})
	if err != nil {
		c.mu.RLock()
		loaded, value := c.loaded, c.value
		c.mu.RUnlock()
		if loaded {
			metrics.SubscriberCountCacheHits.WithLabelValues("stale").Inc()
			slog.Warn("Subscriber count refresh failed, serving stale value", "error", err)
			return value, nil
		}
		return 0, err
	}

	return result.(int64), nil
}

// Invalidate drops the cached value so the next Get refreshes immediately.
// Called after a successful signup so the hero figure keeps up.
func (c *SubscriberCountCache) Invalidate() {
	c.mu.Lock()
	c.expiresAt = time.Time{}
	c.mu.Unlock()
}

func (c *SubscriberCountCache) fresh() (int64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.loaded && c.clock.Now().Before(c.expiresAt) {
		return c.value, true
	}
	return 0, false
}

package cache

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/2beens/motivly/internal/telemetry/metrics"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const megabyte = 1024 * 1024

// MonthCache keeps serialized month calendar responses. Keys must change whenever the
// underlying rows do, so entries are never invalidated explicitly.
type MonthCache struct {
	cache   *freecache.Cache
	ttl     time.Duration
	metrics *metrics.Manager
}

func NewMonthCache(sizeMB int, ttl time.Duration, metrics *metrics.Manager) *MonthCache {
	if sizeMB <= 0 {
		sizeMB = 1
	}
	return &MonthCache{
		cache:   freecache.NewCache(sizeMB * megabyte),
		ttl:     ttl,
		metrics: metrics,
	}
}

// Fetch returns the cached JSON for key, or computes, marshals and stores it.
// A nil MonthCache always computes.
func (c *MonthCache) Fetch(key string, compute func() (any, error)) ([]byte, error) {
	if c != nil {
		if cached, err := c.cache.Get([]byte(key)); err == nil {
			c.count("hit")
			return cached, nil
		}
		c.count("miss")
	}

	v, err := compute()
	if err != nil {
		return nil, err
	}
	respBytes, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal month response: %w", err)
	}

	if c != nil {
		if err := c.cache.Set([]byte(key), respBytes, int(c.ttl.Seconds())); err != nil {
			log.Warnf("month cache set %s: %s", key, err)
		}
	}
	return respBytes, nil
}

func (c *MonthCache) Clear() {
	c.cache.Clear()
}

func (c *MonthCache) EntryCount() int64 {
	return c.cache.EntryCount()
}

func (c *MonthCache) count(result string) {
	if c.metrics != nil {
		c.metrics.CounterMonthCache.WithLabelValues(result).Inc()
	}
}

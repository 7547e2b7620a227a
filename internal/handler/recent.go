package handler

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/tavernworks/lootsmith/internal/domain"
)

// recentCache keeps a bounded, time-limited window of the most recently
// generated items for the recent-items endpoint. Entries fall out on size
// pressure or after the TTL, whichever comes first.
type recentCache struct {
	lru *expirable.LRU[string, *domain.GeneratedItem]
}

func newRecentCache(size int, ttl time.Duration) *recentCache {
	return &recentCache{
		lru: expirable.NewLRU[string, *domain.GeneratedItem](size, nil, ttl),
	}
}

// Add records a generated item under a fresh opaque key.
func (c *recentCache) Add(item *domain.GeneratedItem) {
	c.lru.Add(uuid.NewString(), item)
}

// Items returns up to limit items, most recent first. Values() reports
// zero values for entries that expired but have not been purged yet, so
// nil slots are skipped.
func (c *recentCache) Items(limit int) []*domain.GeneratedItem {
	values := c.lru.Values()
	items := make([]*domain.GeneratedItem, 0, limit)
	for i := len(values) - 1; i >= 0 && len(items) < limit; i-- {
		if values[i] == nil {
			continue
		}
		items = append(items, values[i])
	}
	return items
}

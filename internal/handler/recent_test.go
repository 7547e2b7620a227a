package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tavernworks/lootsmith/internal/domain"
)

func TestRecentCache_SizeEviction(t *testing.T) {
	cache := newRecentCache(2, time.Minute)

	for _, seed := range []string{"first", "second", "third"} {
		cache.Add(&domain.GeneratedItem{Seed: seed})
	}

	items := cache.Items(10)
	require.Len(t, items, 2, "oldest entry should be evicted at capacity")
	assert.Equal(t, "third", items[0].Seed)
	assert.Equal(t, "second", items[1].Seed)
}

func TestRecentCache_TTLEviction(t *testing.T) {
	cache := newRecentCache(10, 20*time.Millisecond)

	cache.Add(&domain.GeneratedItem{Seed: "ephemeral"})
	time.Sleep(60 * time.Millisecond)

	assert.Empty(t, cache.Items(10))
}

func TestRecentCache_LimitShortensWindow(t *testing.T) {
	cache := newRecentCache(10, time.Minute)
	for _, seed := range []string{"a", "b", "c"} {
		cache.Add(&domain.GeneratedItem{Seed: seed})
	}

	items := cache.Items(2)
	require.Len(t, items, 2)
	assert.Equal(t, "c", items[0].Seed)
}

package memo

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetMissThenHit(t *testing.T) {
	cache := New[string, string](8)

	_, ok := cache.Get("a")
	assert.False(t, ok)

	cache.Put("a", "1")

	value, ok := cache.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "1", value)

	stats := cache.Stats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(2), stats.Misses)
	assert.Equal(t, 1, stats.Size)
	assert.Equal(t, 8, stats.Capacity)
}

func TestGetOrCompute(t *testing.T) {
	cache := New[string, int](4)

	calls := 0
	compute := func(key string) int {
		calls++
		return len(key)
	}

	assert.Equal(t, 5, cache.GetOrCompute("hello", compute))
	assert.Equal(t, 5, cache.GetOrCompute("hello", compute))
	assert.Equal(t, 1, calls)

	stats := cache.Stats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.InDelta(t, 0.5, stats.HitRate, 0.001)
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	cache := New[int, int](3)

	cache.Put(1, 1)
	cache.Put(2, 2)
	cache.Put(3, 3)

	// Touch 1 so 2 becomes the eviction candidate.
	_, ok := cache.Get(1)
	assert.True(t, ok)

	cache.Put(4, 4)

	assert.Equal(t, 3, cache.Len())
	_, ok = cache.Get(2)
	assert.False(t, ok)
	_, ok = cache.Get(1)
	assert.True(t, ok)
	_, ok = cache.Get(4)
	assert.True(t, ok)
}

func TestCapacityBoundUnderChurn(t *testing.T) {
	cache := New[string, string](16)

	for i := 0; i < 100; i++ {
		cache.Put(fmt.Sprintf("key-%d", i), "value")
	}

	assert.LessOrEqual(t, cache.Len(), 16)
	assert.LessOrEqual(t, cache.Stats().Size, 16)
}

func TestPutExistingKeyUpdatesValue(t *testing.T) {
	cache := New[string, string](2)

	cache.Put("a", "old")
	cache.Put("a", "new")

	value, ok := cache.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "new", value)
	assert.Equal(t, 1, cache.Len())
}

func TestClearResetsEntriesAndStats(t *testing.T) {
	cache := New[string, int](4)

	cache.Put("a", 1)
	cache.Get("a")
	cache.Get("missing")
	cache.Clear()

	assert.Equal(t, 0, cache.Len())

	stats := cache.Stats()
	assert.Equal(t, int64(0), stats.Hits)
	assert.Equal(t, int64(0), stats.Misses)
	assert.Equal(t, 0.0, stats.HitRate)
}

func TestConcurrentAccess(t *testing.T) {
	cache := New[int, int](32)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(seed int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := (seed + i) % 64
				value := cache.GetOrCompute(key, func(k int) int { return k * 2 })
				assert.Equal(t, key*2, value)
			}
		}(g)
	}
	wg.Wait()

	assert.LessOrEqual(t, cache.Len(), 32)
}

// MoodFlix - Mood-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}

func newTestCache(ttl time.Duration) (*Cache[string], *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	return newCache[string](ttl, time.Hour, clock.Now), clock
}

func TestCacheBasicOperations(t *testing.T) {
	c, _ := newTestCache(time.Minute)
	defer c.Stop()

	c.Set("key1", "value1")
	value, exists := c.Get("key1")
	if !exists {
		t.Error("Expected key1 to exist")
	}
	if value != "value1" {
		t.Errorf("Expected value1, got %v", value)
	}

	if _, exists = c.Get("key2"); exists {
		t.Error("Expected key2 to not exist")
	}
}

func TestCacheExpiration(t *testing.T) {
	c, clock := newTestCache(100 * time.Millisecond)
	defer c.Stop()

	c.Set("key1", "value1")
	if _, exists := c.Get("key1"); !exists {
		t.Error("Expected key1 to exist immediately after set")
	}

	clock.Advance(150 * time.Millisecond)

	if _, exists := c.Get("key1"); exists {
		t.Error("Expected key1 to be expired")
	}
	if c.Len() != 0 {
		t.Errorf("Expected expired entry to be removed, %d entries remain", c.Len())
	}

	stats := c.GetStats()
	if stats.Evictions != 1 {
		t.Errorf("Expected 1 eviction, got %d", stats.Evictions)
	}
}

func TestCacheDeleteAndClear(t *testing.T) {
	c, _ := newTestCache(time.Minute)
	defer c.Stop()

	c.Set("a", "1")
	c.Set("b", "2")
	c.Set("c", "3")

	c.Delete("a")
	c.Delete("missing")
	if c.Len() != 2 {
		t.Fatalf("Expected 2 entries after delete, got %d", c.Len())
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Expected empty cache after clear, got %d", c.Len())
	}

	stats := c.GetStats()
	if stats.Evictions != 3 {
		t.Errorf("Expected 3 evictions, got %d", stats.Evictions)
	}
	if stats.TotalKeys != 0 {
		t.Errorf("Expected 0 total keys, got %d", stats.TotalKeys)
	}
}

func TestCacheCleanup(t *testing.T) {
	c, clock := newTestCache(time.Second)
	defer c.Stop()

	c.Set("old", "x")
	clock.Advance(2 * time.Second)
	c.Set("fresh", "y")

	c.cleanup()

	if c.Len() != 1 {
		t.Fatalf("Expected 1 entry after cleanup, got %d", c.Len())
	}
	if _, ok := c.Get("fresh"); !ok {
		t.Error("Expected fresh entry to survive cleanup")
	}
	if got := c.GetStats().LastCleanup; !got.Equal(clock.Now()) {
		t.Errorf("Expected LastCleanup %v, got %v", clock.Now(), got)
	}
}

func TestCacheHitRate(t *testing.T) {
	c, _ := newTestCache(time.Minute)
	defer c.Stop()

	if c.HitRate() != 0 {
		t.Errorf("Expected 0%% hit rate on empty stats, got %.2f", c.HitRate())
	}

	c.Set("k", "v")
	c.Get("k")
	c.Get("k")
	c.Get("k")
	c.Get("missing")

	if got := c.HitRate(); got != 75.0 {
		t.Errorf("Expected 75%% hit rate, got %.2f", got)
	}
}

func TestCacheConcurrentAccess(t *testing.T) {
	c := New[int](time.Minute)
	defer c.Stop()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("key-%d", n%5)
			c.Set(key, n)
			c.Get(key)
		}(i)
	}
	wg.Wait()

	if c.Len() != 5 {
		t.Errorf("Expected 5 keys, got %d", c.Len())
	}
}

func TestCacheStopIdempotent(t *testing.T) {
	c := New[string](time.Minute)
	c.Stop()
	c.Stop()
}

// Package cache provides the TTL caches used by the extraction and
// generation stages: an in-process LRU and a JSON file cache for results
// that should survive a restart of the server process.
package cache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// DefaultTTL matches the historical one-hour default for cached results.
const DefaultTTL = time.Hour

// Memory is a bounded in-process cache with per-entry TTL. Safe for
// concurrent use.
type Memory[V any] struct {
	lru *expirable.LRU[string, V]
}

// NewMemory builds a memory cache holding at most size entries, each expiring
// ttl after it was written. A non-positive ttl disables expiry entirely, which
// also keeps the LRU from starting its background reaper goroutine.
func NewMemory[V any](size int, ttl time.Duration) *Memory[V] {
	if size <= 0 {
		size = 1024
	}
	if ttl < 0 {
		ttl = 0
	}
	return &Memory[V]{lru: expirable.NewLRU[string, V](size, nil, ttl)}
}

// Get returns the cached value and whether it was present and unexpired.
func (m *Memory[V]) Get(key string) (V, bool) {
	return m.lru.Get(key)
}

// Set stores or refreshes a value.
func (m *Memory[V]) Set(key string, value V) {
	m.lru.Add(key, value)
}

// Delete drops a single entry.
func (m *Memory[V]) Delete(key string) {
	m.lru.Remove(key)
}

// Purge drops every entry.
func (m *Memory[V]) Purge() {
	m.lru.Purge()
}

// Len returns the current entry count.
func (m *Memory[V]) Len() int {
	return m.lru.Len()
}

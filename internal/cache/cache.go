package cache

import (
	"crypto/md5"
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrCacheMiss indicates a key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

// Stats reports cache usage counters.
type Stats struct {
	Entries   int   `json:"entries"`
	HitCount  int64 `json:"hit_count"`
	MissCount int64 `json:"miss_count"`
}

type entry struct {
	vector    []float64
	expiresAt time.Time
}

// Memory is an in-memory TTL cache for embedding vectors. Embedding the
// same document twice within the TTL costs one upstream call.
type Memory struct {
	mu        sync.Mutex
	entries   map[string]entry
	ttl       time.Duration
	hitCount  int64
	missCount int64
}

// NewMemory creates a cache whose entries expire after ttl.
func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		entries: make(map[string]entry),
		ttl:     ttl,
	}
}

// Key derives the cache key for a document text.
func Key(text string) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(text)))
}

// Get returns the cached vector for key, or ErrCacheMiss.
func (c *Memory) Get(key string) ([]float64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		c.missCount++
		return nil, ErrCacheMiss
	}
	if time.Now().After(e.expiresAt) {
		delete(c.entries, key)
		c.missCount++
		return nil, ErrCacheMiss
	}

	c.hitCount++
	return e.vector, nil
}

// Set stores a vector under key.
func (c *Memory) Set(key string, vector []float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{
		vector:    vector,
		expiresAt: time.Now().Add(c.ttl),
	}
}

// PurgeExpired drops expired entries and returns how many were removed.
func (c *Memory) PurgeExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	removed := 0
	for key, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

// GetStats returns a snapshot of the cache counters.
func (c *Memory) GetStats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Stats{
		Entries:   len(c.entries),
		HitCount:  c.hitCount,
		MissCount: c.missCount,
	}
}

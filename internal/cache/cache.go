// Package cache keeps recent tool results keyed by tool name and normalized arguments.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sync"
	"time"

	"github.com/golovatskygroup/mcp-frontend/pkg/mcp"
)

// ResultCache is an in-memory TTL cache for successful tool results.
type ResultCache struct {
	mu      sync.RWMutex
	results map[string]*cachedResult
	ttl     time.Duration
	maxSize int
	now     func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

type cachedResult struct {
	result    *mcp.CallToolResult
	expiresAt time.Time
}

// New creates a cache and starts its cleanup goroutine. Call Close to stop it.
func New(ttl time.Duration, maxSize int) *ResultCache {
	if maxSize <= 0 {
		maxSize = 1
	}
	c := &ResultCache{
		results: make(map[string]*cachedResult),
		ttl:     ttl,
		maxSize: maxSize,
		now:     time.Now,
		stop:    make(chan struct{}),
	}

	go c.cleanup(time.Minute)

	return c
}

// Key derives the cache key. encoding/json sorts map keys, so equal argument maps
// produce equal keys regardless of insertion order.
func Key(tool string, args map[string]any) (string, bool) {
	b, err := json.Marshal(args)
	if err != nil {
		return "", false
	}
	h := sha256.New()
	h.Write([]byte(tool))
	h.Write([]byte{0})
	h.Write(b)
	return tool + ":" + hex.EncodeToString(h.Sum(nil)), true
}

// Get returns a copy of the cached result, or nil when absent or expired.
func (c *ResultCache) Get(key string) *mcp.CallToolResult {
	c.mu.RLock()
	defer c.mu.RUnlock()

	cached, exists := c.results[key]
	if !exists {
		return nil
	}
	if c.now().After(cached.expiresAt) {
		return nil
	}
	return clone(cached.result)
}

// Set stores a result. Error results are never cached.
func (c *ResultCache) Set(key string, result *mcp.CallToolResult) {
	if result == nil || result.IsError {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.results[key]; !exists && len(c.results) >= c.maxSize {
		c.evictOldest()
	}

	c.results[key] = &cachedResult{
		result:    clone(result),
		expiresAt: c.now().Add(c.ttl),
	}
}

// Close stops the cleanup goroutine.
func (c *ResultCache) Close() {
	c.stopOnce.Do(func() { close(c.stop) })
}

func (c *ResultCache) evictOldest() {
	var oldestKey string
	var oldestTime time.Time

	for key, cached := range c.results {
		if oldestKey == "" || cached.expiresAt.Before(oldestTime) {
			oldestKey = key
			oldestTime = cached.expiresAt
		}
	}

	if oldestKey != "" {
		delete(c.results, oldestKey)
	}
}

func (c *ResultCache) purgeExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for key, cached := range c.results {
		if now.After(cached.expiresAt) {
			delete(c.results, key)
		}
	}
}

func (c *ResultCache) cleanup(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.purgeExpired()
		}
	}
}

func clone(r *mcp.CallToolResult) *mcp.CallToolResult {
	out := &mcp.CallToolResult{IsError: r.IsError}
	out.Content = append([]mcp.ContentBlock(nil), r.Content...)
	return out
}

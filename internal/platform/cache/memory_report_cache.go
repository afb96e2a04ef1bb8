package cache

import (
	"context"
	"sync"
	"time"

	portsrepo "github.com/wiradata/bukubesar_app/internal/core/ports/repositories"
)

type memoryEntry struct {
	payload   []byte
	expiresAt time.Time
}

// memoryReportCache is a process-local ReportCache used when Redis is not
// configured or unreachable. Expired entries are dropped lazily on read.
type memoryReportCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

// NewMemoryReportCache returns an in-memory ReportCache.
func NewMemoryReportCache() portsrepo.ReportCache {
	return &memoryReportCache{entries: make(map[string]memoryEntry)}
}

var _ portsrepo.ReportCache = (*memoryReportCache)(nil)

func (c *memoryReportCache) Get(_ context.Context, key string) ([]byte, bool) {
	c.mu.RLock()
	entry, found := c.entries[key]
	c.mu.RUnlock()
	if !found {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, false
	}
	return entry.payload, true
}

func (c *memoryReportCache) Set(_ context.Context, key string, payload []byte, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	c.mu.Lock()
	c.entries[key] = memoryEntry{payload: payload, expiresAt: time.Now().Add(ttl)}
	c.mu.Unlock()
}

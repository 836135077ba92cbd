package cache

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	name      string
	expiresAt time.Time
}

// MemoryNameCache é o cache local do processo, com expiração por entrada
type MemoryNameCache struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

func NewMemoryNameCache() *MemoryNameCache {
	return &MemoryNameCache{entries: make(map[string]entry), now: time.Now}
}

func (c *MemoryNameCache) Get(_ context.Context, code string) (string, bool, error) {
	c.mu.RLock()
	e, ok := c.entries[code]
	c.mu.RUnlock()

	if !ok {
		return "", false, nil
	}
	if !e.expiresAt.IsZero() && !c.now().Before(e.expiresAt) {
		c.mu.Lock()
		delete(c.entries, code)
		c.mu.Unlock()
		return "", false, nil
	}
	return e.name, true, nil
}

// Set com ttl <= 0 não expira
func (c *MemoryNameCache) Set(_ context.Context, code, name string, ttl time.Duration) error {
	e := entry{name: name}
	if ttl > 0 {
		e.expiresAt = c.now().Add(ttl)
	}

	c.mu.Lock()
	c.entries[code] = e
	c.mu.Unlock()
	return nil
}

func (c *MemoryNameCache) Delete(_ context.Context, code string) error {
	c.mu.Lock()
	delete(c.entries, code)
	c.mu.Unlock()
	return nil
}

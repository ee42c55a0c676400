package cache

import (
	"context"
	"strings"
	"sync"
	"time"
)

type entry struct {
	payload  []byte
	storedAt time.Time
}

// Memory is a mutex-guarded in-process cache with lazy expiry on read and
// explicit prefix-based invalidation on write. Staleness up to the TTL window
// is an accepted trade-off.
type Memory struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]entry
	now     func() time.Time
}

func NewMemory(ttl time.Duration) *Memory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Memory{
		ttl:     ttl,
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// NewMemoryWithClock creates a memory cache with an injected clock.
func NewMemoryWithClock(ttl time.Duration, now func() time.Time) *Memory {
	c := NewMemory(ttl)
	c.now = now
	return c
}

func (c *Memory) Get(_ context.Context, key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}

	// Expiry is checked-and-deleted on read.
	if c.now().Sub(e.storedAt) >= c.ttl {
		delete(c.entries, key)
		return nil, false
	}

	return e.payload, true
}

func (c *Memory) Set(_ context.Context, key string, payload []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{payload: payload, storedAt: c.now()}
}

func (c *Memory) Invalidate(_ context.Context, prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
}

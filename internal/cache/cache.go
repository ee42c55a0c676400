package cache

import (
	"context"
	"time"
)

// DefaultTTL is how long a cached payload stays fresh.
const DefaultTTL = 5 * time.Minute

// Cache stores immutable response payloads under string keys with a TTL.
// A Set is always a full replacement; entries are never mutated in place.
type Cache interface {
	// Get returns the payload stored under key if it has not expired.
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set stores payload under key, superseding any stale entry.
	Set(ctx context.Context, key string, payload []byte)

	// Invalidate removes every entry whose key begins with prefix.
	Invalidate(ctx context.Context, prefix string)
}

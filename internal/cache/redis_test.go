package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedis(client, 5*time.Minute, zerolog.Nop()), mr
}

func TestRedis_GetSet(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestRedis(t)

	_, ok := c.Get(ctx, "missing")
	assert.False(t, ok)

	c.Set(ctx, "k", []byte("v"))
	payload, ok := c.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, []byte("v"), payload)
}

func TestRedis_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestRedis(t)

	c.Set(ctx, "k", []byte("v"))

	mr.FastForward(4 * time.Minute)
	_, ok := c.Get(ctx, "k")
	assert.True(t, ok)

	mr.FastForward(2 * time.Minute)
	_, ok = c.Get(ctx, "k")
	assert.False(t, ok)
}

func TestRedis_InvalidatePrefix(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestRedis(t)

	c.Set(ctx, "properties:nearest:a", []byte("1"))
	c.Set(ctx, "properties:nearest:b", []byte("2"))
	c.Set(ctx, "property:prop-1", []byte("3"))

	c.Invalidate(ctx, "properties")

	_, ok := c.Get(ctx, "properties:nearest:a")
	assert.False(t, ok)
	_, ok = c.Get(ctx, "properties:nearest:b")
	assert.False(t, ok)
	_, ok = c.Get(ctx, "property:prop-1")
	assert.True(t, ok)
}

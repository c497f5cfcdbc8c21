package cache

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return New(rdb, time.Minute, slog.New(slog.DiscardHandler)), mr
}

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestCache_RoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	var miss payload
	hit, err := c.GetJSON(ctx, "k", &miss)
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, c.SetJSON(ctx, "k", payload{Name: "lists", Count: 3}))

	var got payload
	hit, err = c.GetJSON(ctx, "k", &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, payload{Name: "lists", Count: 3}, got)
}

func TestCache_TTL(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetJSON(ctx, "k", payload{Name: "x"}))
	mr.FastForward(2 * time.Minute)

	var got payload
	hit, err := c.GetJSON(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestCache_Invalidate(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetJSON(ctx, "a", payload{Name: "a"}))
	require.NoError(t, c.SetJSON(ctx, "b", payload{Name: "b"}))

	c.Invalidate(ctx, "a", "b")

	var got payload
	hit, err := c.GetJSON(ctx, "a", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestCache_NilIsNoOp(t *testing.T) {
	var c *Cache
	ctx := context.Background()

	var got payload
	hit, err := c.GetJSON(ctx, "k", &got)
	assert.NoError(t, err)
	assert.False(t, hit)
	assert.NoError(t, c.SetJSON(ctx, "k", payload{}))
	c.Invalidate(ctx, "k")
}

func TestCache_RedisDownReadsAsMiss(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetJSON(ctx, "k", payload{Name: "x"}))
	mr.Close()

	var got payload
	hit, err := c.GetJSON(ctx, "k", &got)
	assert.NoError(t, err)
	assert.False(t, hit)
}

func TestTitleKey(t *testing.T) {
	assert.Equal(t, "popview:title:42", TitleKey(42))
}

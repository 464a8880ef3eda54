package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID   int64  `json:"id"`
	City string `json:"city"`
}

func TestMemoryCache_SaveGet(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	require.NoError(t, c.Save(ctx, BuildCacheKey("schools", "list"), []row{{ID: 1, City: "Ankara"}}, 60))

	var got []row
	require.NoError(t, c.Get(ctx, "schools:list", &got))
	assert.Equal(t, []row{{ID: 1, City: "Ankara"}}, got)

	var s string
	require.NoError(t, c.Save(ctx, "plain", "value", 0))
	require.NoError(t, c.Get(ctx, "plain", &s))
	assert.Equal(t, "value", s)
}

func TestMemoryCache_Expiry(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache().(*memoryCache)

	now := time.Date(2024, 11, 20, 10, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	require.NoError(t, c.Save(ctx, "session:abc", "x", 30))

	now = now.Add(31 * time.Second)

	var s string
	err := c.Get(ctx, "session:abc", &s)
	assert.True(t, errors.Is(err, Nil))
}

func TestMemoryCache_DeleteAndClear(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	require.NoError(t, c.Save(ctx, "limiter:1", 1, 0))
	require.NoError(t, c.Save(ctx, "limiter:2", 2, 0))
	require.NoError(t, c.Save(ctx, "session:1", 3, 0))

	require.NoError(t, c.Clear(ctx, "limiter"))
	require.NoError(t, c.Delete(ctx, "missing"))

	var n int
	assert.True(t, errors.Is(c.Get(ctx, "limiter:1", &n), Nil))
	assert.NoError(t, c.Get(ctx, "session:1", &n))
	assert.Equal(t, 3, n)
}

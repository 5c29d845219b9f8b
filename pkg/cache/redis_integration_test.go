//go:build integration

package cache_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailgate/pkg/cache"
	"github.com/dmitrymomot/mailgate/pkg/redis"
)

func TestRedis(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		url = "redis://localhost:6379/0"
	}

	ctx := context.Background()
	client, err := redis.Open(ctx, redis.Config{URL: url})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	c := cache.NewRedis[map[string]string](client, nil, cache.WithPrefix("mailgate-test"))

	_, err = c.Get(ctx, "missing")
	require.ErrorIs(t, err, cache.ErrNotFound)

	want := map[string]string{"example.com": "re_1"}
	require.NoError(t, c.Set(ctx, "tokens", want, time.Minute))

	got, err := c.Get(ctx, "tokens")
	require.NoError(t, err)
	require.Equal(t, want, got)

	ttl, err := client.TTL(ctx, "mailgate-test:tokens").Result()
	require.NoError(t, err)
	require.Greater(t, ttl, time.Duration(0))

	require.NoError(t, c.Delete(ctx, "tokens"))
	_, err = c.Get(ctx, "tokens")
	require.ErrorIs(t, err, cache.ErrNotFound)
}

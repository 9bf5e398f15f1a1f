package middleware

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckRateLimit(t *testing.T) {
	// The test-env escape hatch would short-circuit the limiter.
	require.NoError(t, os.Unsetenv("APP_ENV"))

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	ctx := context.Background()

	t.Run("Allows under the limit", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			allowed, err := CheckRateLimit(ctx, rdb, "login", "ip:1.2.3.4", 3, time.Minute)
			require.NoError(t, err)
			assert.True(t, allowed)
		}
	})

	t.Run("Blocks over the limit", func(t *testing.T) {
		allowed, err := CheckRateLimit(ctx, rdb, "login", "ip:1.2.3.4", 3, time.Minute)
		require.NoError(t, err)
		assert.False(t, allowed)
	})

	t.Run("Window expiry resets the counter", func(t *testing.T) {
		mr.FastForward(2 * time.Minute)
		allowed, err := CheckRateLimit(ctx, rdb, "login", "ip:1.2.3.4", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("Separate identities are independent", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			allowed, err := CheckRateLimit(ctx, rdb, "login", "ip:5.6.7.8", 3, time.Minute)
			require.NoError(t, err)
			assert.True(t, allowed)
		}
	})
}

func TestCheckRateLimitFailOpen(t *testing.T) {
	require.NoError(t, os.Unsetenv("APP_ENV"))

	t.Run("Nil client", func(t *testing.T) {
		allowed, err := CheckRateLimit(context.Background(), nil, "login", "ip:1.2.3.4", 1, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("Unreachable redis", func(t *testing.T) {
		mr := miniredis.RunT(t)
		rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		mr.Close()

		allowed, err := CheckRateLimit(context.Background(), rdb, "login", "ip:1.2.3.4", 1, time.Minute)
		assert.Error(t, err)
		assert.True(t, allowed)
	})
}

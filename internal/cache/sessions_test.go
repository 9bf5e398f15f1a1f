package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

func TestRevokeToken(t *testing.T) {
	mr := withMiniredis(t)
	ctx := context.Background()

	require.NoError(t, RevokeToken(ctx, "jti-1", time.Now().Add(time.Hour)))
	assert.True(t, IsTokenRevoked(ctx, "jti-1"))
	assert.False(t, IsTokenRevoked(ctx, "jti-2"))

	// The denylist entry ages out with the token's own expiry.
	mr.FastForward(2 * time.Hour)
	assert.False(t, IsTokenRevoked(ctx, "jti-1"))
}

func TestRevokeExpiredTokenIsNoOp(t *testing.T) {
	withMiniredis(t)
	ctx := context.Background()

	require.NoError(t, RevokeToken(ctx, "jti-old", time.Now().Add(-time.Minute)))
	assert.False(t, IsTokenRevoked(ctx, "jti-old"))
}

func TestRevocationWithoutRedis(t *testing.T) {
	SetClient(nil)
	ctx := context.Background()

	assert.NoError(t, RevokeToken(ctx, "jti-1", time.Now().Add(time.Hour)))
	assert.False(t, IsTokenRevoked(ctx, "jti-1"))
}

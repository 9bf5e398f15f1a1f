package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedPrefix = "session:revoked:"

// RevokeToken adds a token's JTI to the denylist until the token would have
// expired anyway. Without Redis this is a no-op: the token then simply ages
// out at its expiry.
func RevokeToken(ctx context.Context, jti string, expiresAt time.Time) error {
	if client == nil || jti == "" {
		return nil
	}
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return client.Set(ctx, revokedPrefix+jti, "1", ttl).Err()
}

// IsTokenRevoked reports whether a JTI has been revoked. Redis errors fail
// open so that a cache outage does not lock everyone out.
func IsTokenRevoked(ctx context.Context, jti string) bool {
	if client == nil || jti == "" {
		return false
	}
	err := client.Get(ctx, revokedPrefix+jti).Err()
	if errors.Is(err, redis.Nil) {
		return false
	}
	if err != nil {
		return false
	}
	return true
}

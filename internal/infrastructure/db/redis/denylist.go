package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/userhub/accounts-api/internal/api/metrics"
)

// Denylist tracks revoked bearer token ids in Redis. Entries carry a TTL
// equal to the token's remaining lifetime, so the denylist never outgrows the
// set of tokens that could still be presented.
// Key format: denylist:<jti>
type Denylist struct {
	client *redis.Client
}

// NewDenylist creates a Denylist wrapping the given Redis client.
func NewDenylist(client *redis.Client) *Denylist {
	return &Denylist{client: client}
}

// Revoke marks jti as revoked for ttl.
func (d *Denylist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if err := d.client.Set(ctx, d.key(jti), "1", ttl).Err(); err != nil {
		return fmt.Errorf("denylist revoke: %w", err)
	}
	metrics.TokensRevokedTotal.Inc()
	return nil
}

// IsRevoked reports whether jti has been revoked and not yet expired.
func (d *Denylist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("denylist check: %w", err)
	}
	return n > 0, nil
}

func (d *Denylist) key(jti string) string {
	return "denylist:" + jti
}

package ports

import (
	"context"
	"time"
)

// TokenDenylist tracks revoked token ids. Tokens are stateless by default;
// a denylist is the one isolated addition that makes logout effective.
type TokenDenylist interface {
	// Revoke marks jti as revoked for ttl (the token's remaining lifetime).
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	// IsRevoked reports whether jti has been revoked.
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

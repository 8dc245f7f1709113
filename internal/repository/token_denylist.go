package repository

// TokenDenylist revokes individual access tokens before their natural
// expiry.  Verification stays stateless in the common case: only the jti of
// explicitly logged-out tokens is stored, with a Redis TTL matching the
// token's remaining lifetime so entries clean themselves up.  When Redis is
// unavailable the denylist is inert and expiry remains the only
// invalidation mechanism.

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

type TokenDenylist struct {
	rdb    *redis.Client
	prefix string
}

// NewTokenDenylist wraps a Redis client.  A nil client is allowed and
// produces a denylist that never matches and silently drops revocations.
func NewTokenDenylist(rdb *redis.Client) *TokenDenylist {
	return &TokenDenylist{rdb: rdb, prefix: "denylist:jti:"}
}

// Revoke marks a token id as rejected until its expiry.  Tokens already
// past expiry need no entry.
func (d *TokenDenylist) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	if d.rdb == nil || jti == "" {
		return nil
	}
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return d.rdb.Set(ctx, d.prefix+jti, "1", ttl).Err()
}

// IsRevoked reports whether a token id has been revoked.  Redis errors are
// treated as "not revoked" so an outage degrades availability of logout,
// not of every protected endpoint.
func (d *TokenDenylist) IsRevoked(ctx context.Context, jti string) bool {
	if d.rdb == nil || jti == "" {
		return false
	}
	n, err := d.rdb.Exists(ctx, d.prefix+jti).Result()
	if err != nil {
		return false
	}
	return n > 0
}

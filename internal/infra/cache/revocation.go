package cache

import (
	"context"
	"time"

	"github.com/docvault-io/docvault/internal/pkg/tokens"
	"github.com/redis/go-redis/v9"
)

// RevocationStore denylists token ids until their natural expiry.
type RevocationStore struct {
	rdb *redis.Client
}

func NewRevocationStore(rdb *redis.Client) *RevocationStore {
	return &RevocationStore{rdb: rdb}
}

func (s *RevocationStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	return s.rdb.Set(ctx, tokens.RevocationKey(jti), "1", ttl).Err()
}

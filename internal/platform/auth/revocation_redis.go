package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

type redisRevocationStore struct {
	rdb *redis.Client
}

// NewRedisRevocationStore backs revocation with Redis so that logout is
// visible to every server instance. Keys carry a TTL equal to the remaining
// token lifetime, so Redis expires them on its own.
func NewRedisRevocationStore(rdb *redis.Client) RevocationStore {
	return &redisRevocationStore{rdb: rdb}
}

func revocationKey(jti string) string {
	return "session:revoked:" + jti
}

func (s *redisRevocationStore) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		// Already expired, nothing to track.
		return nil
	}
	return s.rdb.Set(ctx, revocationKey(jti), "1", ttl).Err()
}

func (s *redisRevocationStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := s.rdb.Exists(ctx, revocationKey(jti)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *redisRevocationStore) Close() error {
	return s.rdb.Close()
}

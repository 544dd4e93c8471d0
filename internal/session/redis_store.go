package session

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed session store. Entries expire
// after ttl; a fresh Set restarts the clock.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: "session:",
		ttl:    ttl,
	}
}

func (r *RedisStore) key(token string) string {
	return r.prefix + token
}

func (r *RedisStore) Set(ctx context.Context, token string, userID int64) error {
	if token == "" {
		return fmt.Errorf("session: missing token")
	}
	return r.client.Set(ctx, r.key(token), strconv.FormatInt(userID, 10), r.ttl).Err()
}

func (r *RedisStore) Get(ctx context.Context, token string) (int64, bool, error) {
	val, err := r.client.Get(ctx, r.key(token)).Result()
	if err == redis.Nil {
		return 0, false, nil // no session
	}
	if err != nil {
		return 0, false, err
	}
	if val == "" {
		return 0, false, nil // cleared session, token still alive
	}

	userID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("session: corrupt payload: %w", err)
	}

	return userID, true, nil
}

// Clear empties the payload while keeping the token and its remaining
// TTL. Unknown tokens are left untouched.
func (r *RedisStore) Clear(ctx context.Context, token string) error {
	return r.client.SetXX(ctx, r.key(token), "", redis.KeepTTL).Err()
}

package storage

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// RedisStore persists the slot as a single Redis key. No TTL: the event data
// must survive until explicitly cleared.
type RedisStore struct {
	Client *redis.Client
	Key    string
}

func NewRedisStore(client *redis.Client, key string) *RedisStore {
	return &RedisStore{Client: client, Key: key}
}

func (r *RedisStore) Load(ctx context.Context) ([]byte, error) {
	val, err := r.Client.Get(ctx, r.Key).Bytes()
	if err == redis.Nil {
		return nil, ErrSlotEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", r.Key, err)
	}
	return val, nil
}

func (r *RedisStore) Save(ctx context.Context, payload []byte) error {
	if err := r.Client.Set(ctx, r.Key, payload, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", r.Key, err)
	}
	return nil
}

package settings

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// ErrNotFound reports an absent key, as distinct from a backend failure.
var ErrNotFound = errors.New("settings key not found")

// KV is the minimal persistence contract the store needs: a plain string
// get/set with no versioning and last-writer-wins semantics.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

type redisKV struct {
	client *redis.Client
}

func NewRedisKV(client *redis.Client) KV {
	return &redisKV{client: client}
}

func (r *redisKV) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	return value, err
}

func (r *redisKV) Set(ctx context.Context, key, value string) error {
	return r.client.Set(ctx, key, value, 0).Err()
}

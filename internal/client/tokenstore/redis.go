package tokenstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
)

const RedisKeyPrefix = "shiftboard:token:"

// Redis persists the token of one origin under RedisKeyPrefix+origin.
type Redis struct {
	rdb *redis.Client
	key string
}

func NewRedis(rdb *redis.Client, origin string) *Redis {
	return &Redis{rdb: rdb, key: RedisKeyPrefix + origin}
}

func (r *Redis) Get(ctx context.Context) (string, error) {
	token, err := r.rdb.Get(ctx, r.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get %s: %w", r.key, err)
	}
	return token, nil
}

func (r *Redis) Set(ctx context.Context, token string) error {
	var err error
	if token == "" {
		err = r.rdb.Del(ctx, r.key).Err()
	} else {
		err = r.rdb.Set(ctx, r.key, token, 0).Err()
	}
	if err != nil {
		return fmt.Errorf("failed to set %s: %w", r.key, err)
	}
	return nil
}

func (r *Redis) Close() error {
	return r.rdb.Close()
}

package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/seriousplay/MegaSpace/pkg/types"
)

type redisCache struct {
	client *redis.Client
}

// NewRedisCache types.Cache 的 redis 实现
func NewRedisCache(addr, password string, db int) types.Cache {
	return &redisCache{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

func (c *redisCache) Get(ctx context.Context, key string) (string, error) {
	res, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	return res, err
}

func (c *redisCache) SetEx(ctx context.Context, key, value string, expiresAt time.Duration) error {
	return c.client.SetEx(ctx, key, value, expiresAt).Err()
}

func (c *redisCache) Expire(ctx context.Context, key string, expiration time.Duration) error {
	return c.client.Expire(ctx, key, expiration).Err()
}

func (c *redisCache) Del(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

package storage

import (
	"context"
	"errors"
	"time"

	"dronemeds/storefront-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

// PopularProductsKey is maintained by dispatch-svc.
const PopularProductsKey = "products:popular"

type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func (c *RedisCache) locationKey(ip string) string {
	if ip == "" {
		ip = "self"
	}
	return "geo:" + ip
}

func (c *RedisCache) GetLocation(ctx context.Context, ip string) (string, bool, error) {
	loc, err := c.Client.Get(ctx, c.locationKey(ip)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return loc, true, nil
}

func (c *RedisCache) SetLocation(ctx context.Context, ip, location string) error {
	return c.Client.Set(ctx, c.locationKey(ip), location, c.TTL).Err()
}

func (c *RedisCache) PopularProducts(ctx context.Context, limit int) ([]domain.ProductPopularity, error) {
	results, err := c.Client.ZRevRangeWithScores(ctx, PopularProductsKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	popular := make([]domain.ProductPopularity, 0, len(results))
	for _, z := range results {
		name, _ := z.Member.(string)
		popular = append(popular, domain.ProductPopularity{Name: name, Dispatches: z.Score})
	}
	return popular, nil
}

package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient conecta a partir de uma URL redis:// e valida com PING
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("cache: REDIS_URL inválida: %w", err)
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("cache: ping: %w", err)
	}

	return client, nil
}

// RedisNameCache compartilha os nomes entre instâncias da API
type RedisNameCache struct {
	client *redis.Client
}

func NewRedisNameCache(client *redis.Client) *RedisNameCache {
	return &RedisNameCache{client: client}
}

func (c *RedisNameCache) Get(ctx context.Context, code string) (string, bool, error) {
	name, err := c.client.Get(ctx, salespersonKeyPrefix+code).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return name, true, nil
}

func (c *RedisNameCache) Set(ctx context.Context, code, name string, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	return c.client.Set(ctx, salespersonKeyPrefix+code, name, ttl).Err()
}

func (c *RedisNameCache) Delete(ctx context.Context, code string) error {
	return c.client.Del(ctx, salespersonKeyPrefix+code).Err()
}

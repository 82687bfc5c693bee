// Package cache adaptador Redis para el caché del resumen del dashboard.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/application/analytics"
	"github.com/brettsimpson1971-buildai/ride1dashboard/pkg/config"
)

var _ analytics.SummaryCache = (*RedisCache)(nil)

// RedisCache implementa analytics.SummaryCache sobre go-redis.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache conecta a Redis y verifica con un ping. Si Redis no está
// disponible devuelve error; el caller decide seguir sin caché (el caché es
// un acelerador, no una dependencia dura).
func NewRedisCache(ctx context.Context, cfg config.RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &RedisCache{client: client}, nil
}

// Get devuelve el valor cacheado o nil, nil en miss.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cache get %s: %w", key, err)
	}
	return val, nil
}

// Set guarda el valor con TTL.
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

// Close cierra la conexión.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

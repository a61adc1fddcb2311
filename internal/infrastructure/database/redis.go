package database

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/orlhatundji/schoolos-backend-sub000/internal/config"
)

// NewRedis creates a Redis client for the queue and progress events.
func NewRedis(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return client, nil
}

// RedisHealthCheck checks if the Redis connection is healthy.
func RedisHealthCheck(ctx context.Context, client *redis.Client) error {
	return client.Ping(ctx).Err()
}

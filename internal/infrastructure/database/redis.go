package database

import (
	"context"
	"fmt"

	"github.com/faithbliss/backend/internal/config"
	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects the client used for presence keys and the push
// pub/sub channel, verifying reachability up front so a misconfigured
// redis fails at startup rather than on the first delivery.
func NewRedisClient(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetAddr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return client, nil
}

package database

import (
	"context"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// InitializeRedisClient returns nil without error when REDIS_URL is unset;
// callers treat a nil client as caching disabled.
func InitializeRedisClient() (*redis.Client, error) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return client, nil
}

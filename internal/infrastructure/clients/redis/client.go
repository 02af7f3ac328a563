package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/stayhaven/hotel-booking/backend/pkg/config"
)

const connectTimeout = 3 * time.Second

// Client wraps the shared Redis connection backing the room listing
// cache. The cache is optional: callers treat a failed connect as
// "run without caching" rather than a startup fault, so the ping here
// is bounded instead of retried.
type Client struct {
	client *redis.Client
}

// NewClient connects to Redis and verifies the connection with a
// single bounded ping.
func NewClient(ctx context.Context, cfg *config.RedisConfig) (*Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.RedisAddr(), err)
	}

	return &Client{client: client}, nil
}

// Client returns the underlying Redis client
func (c *Client) Client() *redis.Client {
	return c.client
}

// Close closes the Redis connection
func (c *Client) Close() error {
	return c.client.Close()
}

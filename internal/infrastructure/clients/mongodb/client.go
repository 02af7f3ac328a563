package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stayhaven/hotel-booking/backend/pkg/config"
	"github.com/stayhaven/hotel-booking/backend/pkg/retry"
)

// Client wraps the process-wide MongoDB connection. It is established
// once at startup and shared by all requests; the surrounding process
// owns its lifecycle.
type Client struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewClient connects to MongoDB and verifies the connection with a
// retried ping.
func NewClient(ctx context.Context, cfg *config.MongoConfig) (*Client, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(cfg.MaxPoolSize)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := retry.Do(ctx, retry.DefaultConfig(), func() error {
		return client.Ping(ctx, nil)
	}); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return &Client{
		client: client,
		db:     client.Database(cfg.Database),
	}, nil
}

// Collection returns a handle to the named collection.
func (c *Client) Collection(name string) *mongo.Collection {
	return c.db.Collection(name)
}

// Ping verifies the connection to MongoDB
func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx, nil)
}

// Close disconnects the underlying client.
func (c *Client) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}

package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Client holds the MongoDB connection and the database handle the
// repositories work against.
type Client struct {
	client *mongo.Client
	db     *mongo.Database
}

// Config holds MongoDB connection details.
type Config struct {
	URL      string
	Database string
}

// NewClient connects to MongoDB and verifies the connection with a ping.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URL))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return &Client{
		client: client,
		db:     client.Database(cfg.Database),
	}, nil
}

// Database returns the database handle.
func (c *Client) Database() *mongo.Database {
	return c.db
}

// DatabaseName returns the name of the connected database.
func (c *Client) DatabaseName() string {
	return c.db.Name()
}

// Ping verifies store connectivity.
func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx, nil)
}

// ListCollections returns up to limit collection names in the database.
func (c *Client) ListCollections(ctx context.Context, limit int) ([]string, error) {
	names, err := c.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}
	return names, nil
}

// Close disconnects from MongoDB.
func (c *Client) Close(ctx context.Context) error {
	if err := c.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from MongoDB: %w", err)
	}
	return nil
}

package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	appName        = "storefront-api"
	defaultTimeout = 10 * time.Second
)

// Config captures the settings for the storefront's MongoDB backend.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

func clientOptions(cfg Config, timeout time.Duration) *options.ClientOptions {
	return options.Client().
		ApplyURI(cfg.URI).
		SetAppName(appName).
		SetServerSelectionTimeout(timeout)
}

// Connect establishes the client backing the identity, catalog, and order
// repositories, verifies connectivity against the primary, and returns both
// the client and the selected database. A default timeout is applied when
// none is provided.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, clientOptions(cfg, timeout))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect %q: %w", cfg.Database, err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping %q: %w", cfg.Database, err)
	}

	return client, client.Database(cfg.Database), nil
}

package database

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/kalpavruksha/eduhub-admin/pkg/config"
)

// Mongo is an explicitly owned handle on the document database. The client is
// connected on first use and stays open until Close.
type Mongo struct {
	uri     string
	name    string
	timeout time.Duration

	mu     sync.Mutex
	client *mongo.Client
}

// NewMongo prepares a handle without touching the network.
func NewMongo(cfg config.MongoConfig) *Mongo {
	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Mongo{uri: cfg.URI, name: cfg.Database, timeout: timeout}
}

// Database returns the configured database, connecting if this is the first use.
// A failed attempt leaves the handle unconnected so the next call tries again.
func (m *Mongo) Database(ctx context.Context) (*mongo.Database, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.client != nil {
		return m.client.Database(m.name), nil
	}

	connectCtx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(m.uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	m.client = client
	return client.Database(m.name), nil
}

// Collection is a shortcut for Database(ctx).Collection(name).
func (m *Mongo) Collection(ctx context.Context, name string) (*mongo.Collection, error) {
	db, err := m.Database(ctx)
	if err != nil {
		return nil, err
	}
	return db.Collection(name), nil
}

// Ping verifies the database is reachable.
func (m *Mongo) Ping(ctx context.Context) error {
	db, err := m.Database(ctx)
	if err != nil {
		return err
	}
	return db.Client().Ping(ctx, readpref.Primary())
}

// Close disconnects the client if one was opened.
func (m *Mongo) Close(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.client == nil {
		return nil
	}
	err := m.client.Disconnect(ctx)
	m.client = nil
	return err
}

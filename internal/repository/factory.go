package repository

import (
	"context"
	"fmt"

	"github.com/kalpavruksha/eduhub-admin/pkg/clock"
	"github.com/kalpavruksha/eduhub-admin/pkg/config"
	"github.com/kalpavruksha/eduhub-admin/pkg/database"
)

// Stores is the Entity Store selected by configuration.
type Stores struct {
	Driver    string
	Resources ResourceStore
	Classes   ClassStore

	ping  func(ctx context.Context) error
	close func(ctx context.Context) error
}

// Ping reports whether the backing database is reachable.
func (s *Stores) Ping(ctx context.Context) error {
	if s.ping == nil {
		return nil
	}
	return s.ping(ctx)
}

// Close releases the backing connection.
func (s *Stores) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

// NewStores builds the resource and class stores for the configured driver. The
// mongo driver connects lazily; postgres connects and prepares its tables here.
func NewStores(ctx context.Context, cfg *config.Config, clk clock.Clock) (*Stores, error) {
	switch cfg.Store.Driver {
	case config.StoreMongo, "":
		mongo := database.NewMongo(cfg.Mongo)
		return &Stores{
			Driver:    config.StoreMongo,
			Resources: NewResourceMongoRepository(mongo, clk),
			Classes:   NewClassMongoRepository(mongo, clk),
			ping:      mongo.Ping,
			close:     mongo.Close,
		}, nil
	case config.StorePostgres:
		db, err := database.NewPostgres(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err := database.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
		return &Stores{
			Driver:    config.StorePostgres,
			Resources: NewResourceRepository(db, clk),
			Classes:   NewClassRepository(db, clk),
			ping:      db.PingContext,
			close:     func(context.Context) error { return db.Close() },
		}, nil
	case config.StoreMemory:
		return &Stores{
			Driver:    config.StoreMemory,
			Resources: NewMemoryResourceRepository(clk),
			Classes:   NewMemoryClassRepository(clk),
		}, nil
	default:
		return nil, fmt.Errorf("unknown store driver: %s", cfg.Store.Driver)
	}
}

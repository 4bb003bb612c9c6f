package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalpavruksha/eduhub-admin/pkg/config"
)

func TestNewStoresMemory(t *testing.T) {
	stores, err := NewStores(context.Background(), &config.Config{Store: config.StoreConfig{Driver: config.StoreMemory}}, nil)
	require.NoError(t, err)
	assert.IsType(t, &MemoryResourceRepository{}, stores.Resources)
	assert.IsType(t, &MemoryClassRepository{}, stores.Classes)
	assert.NoError(t, stores.Ping(context.Background()))
	assert.NoError(t, stores.Close(context.Background()))
}

func TestNewStoresMongoIsLazy(t *testing.T) {
	cfg := &config.Config{
		Store: config.StoreConfig{Driver: config.StoreMongo},
		Mongo: config.MongoConfig{URI: "mongodb://127.0.0.1:1", Database: "test"},
	}
	stores, err := NewStores(context.Background(), cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, config.StoreMongo, stores.Driver)
	assert.IsType(t, &ResourceMongoRepository{}, stores.Resources)
	assert.NoError(t, stores.Close(context.Background()))
}

func TestNewStoresUnknownDriver(t *testing.T) {
	_, err := NewStores(context.Background(), &config.Config{Store: config.StoreConfig{Driver: "sqlite"}}, nil)
	assert.Error(t, err)
}

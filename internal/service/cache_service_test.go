package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalpavruksha/eduhub-admin/pkg/jobs"
)

type brokenCacheRepo struct{}

func (brokenCacheRepo) Get(context.Context, string, interface{}) error {
	return errors.New("connection refused")
}
func (brokenCacheRepo) Set(context.Context, string, interface{}, time.Duration) error {
	return errors.New("connection refused")
}
func (brokenCacheRepo) DeleteByPattern(context.Context, string) error {
	return errors.New("connection refused")
}

func TestCacheServiceRecordsHitsAndMisses(t *testing.T) {
	metrics := NewMetricsService()
	cache := newTestCache()
	cache.metrics = metrics
	ctx := context.Background()

	var out []string
	assert.False(t, cache.Get(ctx, "resources:list:all", &out))
	cache.Set(ctx, "resources:list:all", []string{"a"}, 0)
	require.True(t, cache.Get(ctx, "resources:list:all", &out))
	assert.Equal(t, []string{"a"}, out)

	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.cacheHits))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.cacheMisses))

	cache.Invalidate(ctx, "resources:*")
	assert.False(t, cache.Get(ctx, "resources:list:all", &out))
}

func TestCacheServiceDisabledOrBroken(t *testing.T) {
	ctx := context.Background()
	var out []string

	disabled := NewCacheService(brokenCacheRepo{}, nil, 0, nil, false)
	assert.False(t, disabled.Enabled())
	assert.False(t, disabled.Get(ctx, "k", &out))

	broken := NewCacheService(brokenCacheRepo{}, nil, 0, nil, true)
	assert.False(t, broken.Get(ctx, "k", &out))
	broken.Set(ctx, "k", 1, 0)
	broken.Invalidate(ctx, "*")

	var nilCache *CacheService
	assert.False(t, nilCache.Get(ctx, "k", &out))
}

// flakyCacheRepo fails the first n invalidations.
type flakyCacheRepo struct {
	*brokenCacheRepo
	failures atomic.Int32
	deleted  atomic.Int32
}

func (r *flakyCacheRepo) DeleteByPattern(context.Context, string) error {
	if r.failures.Add(-1) >= 0 {
		return errors.New("connection reset")
	}
	r.deleted.Add(1)
	return nil
}

func TestCacheServiceRetriesFailedInvalidation(t *testing.T) {
	repo := &flakyCacheRepo{brokenCacheRepo: &brokenCacheRepo{}}
	repo.failures.Store(2)
	cache := NewCacheService(repo, nil, time.Minute, nil, true)

	queue := jobs.NewQueue("cache-invalidation", cache.ProcessInvalidation, jobs.QueueConfig{RetryDelay: time.Millisecond})
	queue.Start(context.Background())
	defer queue.Stop()
	cache.RetryInvalidations(queue)

	cache.Invalidate(context.Background(), "resources:*")

	assert.Eventually(t, func() bool { return repo.deleted.Load() == 1 }, time.Second, 5*time.Millisecond)
	assert.Eventually(t, func() bool { return queue.Pending() == 0 }, time.Second, 5*time.Millisecond)
}

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/require"

	"github.com/kalpavruksha/eduhub-admin/internal/models"
	"github.com/kalpavruksha/eduhub-admin/internal/repository"
	"github.com/kalpavruksha/eduhub-admin/pkg/clock"
	appErrors "github.com/kalpavruksha/eduhub-admin/pkg/errors"
)

var testNow = time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

func newTestCache() *CacheService {
	repo := repository.NewMemoryCacheRepository(gocache.New(time.Minute, time.Minute))
	return NewCacheService(repo, nil, time.Minute, nil, true)
}

// countingResourceRepo wraps the in-memory store and counts List calls.
type countingResourceRepo struct {
	*repository.MemoryResourceRepository
	lists int
	err   error
}

func newCountingResourceRepo() *countingResourceRepo {
	return &countingResourceRepo{MemoryResourceRepository: repository.NewMemoryResourceRepository(clock.NewStub(testNow))}
}

func (r *countingResourceRepo) List(ctx context.Context, filter models.ResourceFilter) ([]models.Resource, error) {
	r.lists++
	if r.err != nil {
		return nil, r.err
	}
	return r.MemoryResourceRepository.List(ctx, filter)
}

func (r *countingResourceRepo) Create(ctx context.Context, resource *models.Resource) error {
	if r.err != nil {
		return r.err
	}
	return r.MemoryResourceRepository.Create(ctx, resource)
}

func requireCode(t *testing.T, err error, want *appErrors.Error) *appErrors.Error {
	t.Helper()
	require.Error(t, err)
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr), "expected *errors.Error, got %T", err)
	require.Equal(t, want.Code, appErr.Code)
	require.Equal(t, want.Status, appErr.Status)
	return appErr
}

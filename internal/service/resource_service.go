package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/kalpavruksha/eduhub-admin/internal/dto"
	"github.com/kalpavruksha/eduhub-admin/internal/models"
)

const resourceCachePattern = "resources:*"

type resourceRepository interface {
	List(ctx context.Context, filter models.ResourceFilter) ([]models.Resource, error)
	FindByID(ctx context.Context, id string) (*models.Resource, error)
	Create(ctx context.Context, resource *models.Resource) error
	Update(ctx context.Context, resource *models.Resource) error
	Delete(ctx context.Context, id string) error
}

// ResourceService implements catalog resource operations.
type ResourceService struct {
	repo      resourceRepository
	cache     *CacheService
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewResourceService constructs ResourceService. cache and metrics may be nil.
func NewResourceService(repo resourceRepository, cache *CacheService, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger) *ResourceService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResourceService{repo: repo, cache: cache, metrics: metrics, validator: validate, logger: logger}
}

// List returns resources matching filter, newest upload first.
func (s *ResourceService) List(ctx context.Context, filter models.ResourceFilter) ([]models.Resource, error) {
	key := resourceCacheKey(filter)
	var cached []models.Resource
	if s.cache.Get(ctx, key, &cached) {
		return cached, nil
	}

	start := time.Now()
	resources, err := s.repo.List(ctx, filter)
	s.metrics.ObserveStoreOperation("resources.list", time.Since(start), err)
	if err != nil {
		return nil, storeFailure(err, "Failed to fetch resources")
	}
	s.cache.Set(ctx, key, resources, 0)
	return resources, nil
}

// Get returns one resource.
func (s *ResourceService) Get(ctx context.Context, id string) (*models.Resource, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	start := time.Now()
	resource, err := s.repo.FindByID(ctx, id)
	s.metrics.ObserveStoreOperation("resources.get", time.Since(start), err)
	if err != nil {
		return nil, storeFailure(err, "Failed to fetch resource")
	}
	return resource, nil
}

// Create validates the payload and stores a new resource.
func (s *ResourceService) Create(ctx context.Context, req dto.CreateResourceRequest) (*models.Resource, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, missingFields(err)
	}

	resource := &models.Resource{
		Name:        req.Name,
		SubjectCode: req.SubjectCode,
		Header:      req.Header,
		University:  models.University(req.University),
		Scheme:      models.Scheme(req.Scheme),
		College:     req.College,
		Branch:      models.Branch(req.Branch),
		Semester:    models.Semester(req.Semester),
		Type:        models.ResourceType(req.Type),
		FileURL:     req.FileURL,
	}

	start := time.Now()
	err := s.repo.Create(ctx, resource)
	s.metrics.ObserveStoreOperation("resources.create", time.Since(start), err)
	if err != nil {
		s.logger.Warn("resource create failed", zap.String("name", req.Name), zap.Error(err))
		return nil, storeFailure(err, "Failed to create resource")
	}
	s.cache.Invalidate(ctx, resourceCachePattern)
	s.logger.Info("resource created", zap.String("id", resource.ID), zap.String("type", string(resource.Type)))
	return resource, nil
}

// Update merges the supplied fields into the stored resource and re-validates
// the whole document.
func (s *ResourceService) Update(ctx context.Context, id string, req dto.UpdateResourceRequest) (*models.Resource, error) {
	resource, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	pick(&resource.Name, req.Name)
	pick(&resource.SubjectCode, req.SubjectCode)
	pick(&resource.Header, req.Header)
	pick(&resource.University, req.University)
	pick(&resource.Scheme, req.Scheme)
	pick(&resource.College, req.College)
	pick(&resource.Branch, req.Branch)
	pick(&resource.Semester, req.Semester)
	pick(&resource.Type, req.Type)
	pick(&resource.FileURL, req.FileURL)

	start := time.Now()
	err = s.repo.Update(ctx, resource)
	s.metrics.ObserveStoreOperation("resources.update", time.Since(start), err)
	if err != nil {
		return nil, storeFailure(err, "Failed to update resource")
	}
	s.cache.Invalidate(ctx, resourceCachePattern)
	s.logger.Info("resource updated", zap.String("id", resource.ID))
	return resource, nil
}

// Delete removes a resource.
func (s *ResourceService) Delete(ctx context.Context, id string) error {
	if err := requireID(id); err != nil {
		return err
	}
	start := time.Now()
	err := s.repo.Delete(ctx, id)
	s.metrics.ObserveStoreOperation("resources.delete", time.Since(start), err)
	if err != nil {
		return storeFailure(err, "Failed to delete resource")
	}
	s.cache.Invalidate(ctx, resourceCachePattern)
	s.logger.Info("resource deleted", zap.String("id", id))
	return nil
}

func resourceCacheKey(f models.ResourceFilter) string {
	return fmt.Sprintf("resources:list:%s:%s:%s:%s", norm(f.University), norm(f.Branch), norm(f.Semester), norm(f.Type))
}

func norm(v string) string {
	if v == "" {
		return models.FilterAll
	}
	return v
}

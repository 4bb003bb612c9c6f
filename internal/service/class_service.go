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

const classCachePattern = "classes:*"

type classRepository interface {
	List(ctx context.Context, filter models.ClassFilter) ([]models.Class, error)
	FindByID(ctx context.Context, id string) (*models.Class, error)
	Create(ctx context.Context, class *models.Class) error
	Update(ctx context.Context, class *models.Class) error
	Delete(ctx context.Context, id string) error
}

// ClassService coordinates live class operations.
type ClassService struct {
	repo      classRepository
	cache     *CacheService
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewClassService constructs ClassService.
func NewClassService(repo classRepository, cache *CacheService, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger) *ClassService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClassService{repo: repo, cache: cache, metrics: metrics, validator: validate, logger: logger}
}

// List returns classes matching filter, newest first.
func (s *ClassService) List(ctx context.Context, filter models.ClassFilter) ([]models.Class, error) {
	key := fmt.Sprintf("classes:list:%s:%s:%s:%s", norm(filter.University), norm(filter.Branch), norm(filter.Semester), norm(filter.Status))
	var cached []models.Class
	if s.cache.Get(ctx, key, &cached) {
		return cached, nil
	}

	start := time.Now()
	classes, err := s.repo.List(ctx, filter)
	s.metrics.ObserveStoreOperation("classes.list", time.Since(start), err)
	if err != nil {
		return nil, storeFailure(err, "Failed to fetch classes")
	}
	s.cache.Set(ctx, key, classes, 0)
	return classes, nil
}

// Get returns one class.
func (s *ClassService) Get(ctx context.Context, id string) (*models.Class, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	start := time.Now()
	class, err := s.repo.FindByID(ctx, id)
	s.metrics.ObserveStoreOperation("classes.get", time.Since(start), err)
	if err != nil {
		return nil, storeFailure(err, "Failed to fetch class")
	}
	return class, nil
}

// Create adds a new class.
func (s *ClassService) Create(ctx context.Context, req dto.CreateClassRequest) (*models.Class, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, missingFields(err)
	}

	class := &models.Class{
		Name:       req.Name,
		Status:     models.ClassStatus(req.Status),
		Schedule:   req.Schedule,
		Time:       req.Time,
		University: models.University(req.University),
		College:    req.College,
		Branch:     models.Branch(req.Branch),
		Semester:   models.Semester(req.Semester),
	}

	start := time.Now()
	err := s.repo.Create(ctx, class)
	s.metrics.ObserveStoreOperation("classes.create", time.Since(start), err)
	if err != nil {
		s.logger.Warn("class create failed", zap.String("name", req.Name), zap.Error(err))
		return nil, storeFailure(err, "Failed to create class")
	}
	s.cache.Invalidate(ctx, classCachePattern)
	s.logger.Info("class created", zap.String("id", class.ID), zap.String("status", string(class.Status)))
	return class, nil
}

// Update merges the supplied fields into the stored class.
func (s *ClassService) Update(ctx context.Context, id string, req dto.UpdateClassRequest) (*models.Class, error) {
	class, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	pick(&class.Name, req.Name)
	pick(&class.Status, req.Status)
	pick(&class.Schedule, req.Schedule)
	pick(&class.Time, req.Time)
	pick(&class.University, req.University)
	pick(&class.College, req.College)
	pick(&class.Branch, req.Branch)
	pick(&class.Semester, req.Semester)

	start := time.Now()
	err = s.repo.Update(ctx, class)
	s.metrics.ObserveStoreOperation("classes.update", time.Since(start), err)
	if err != nil {
		return nil, storeFailure(err, "Failed to update class")
	}
	s.cache.Invalidate(ctx, classCachePattern)
	s.logger.Info("class updated", zap.String("id", class.ID))
	return class, nil
}

// Delete removes a class.
func (s *ClassService) Delete(ctx context.Context, id string) error {
	if err := requireID(id); err != nil {
		return err
	}
	start := time.Now()
	err := s.repo.Delete(ctx, id)
	s.metrics.ObserveStoreOperation("classes.delete", time.Since(start), err)
	if err != nil {
		return storeFailure(err, "Failed to delete class")
	}
	s.cache.Invalidate(ctx, classCachePattern)
	s.logger.Info("class deleted", zap.String("id", id))
	return nil
}

package service

import (
	"context"

	"github.com/kalpavruksha/eduhub-admin/internal/dto"
	"github.com/kalpavruksha/eduhub-admin/internal/models"
)

const recentResourceLimit = 5

type resourceLister interface {
	List(ctx context.Context, filter models.ResourceFilter) ([]models.Resource, error)
}

type classLister interface {
	List(ctx context.Context, filter models.ClassFilter) ([]models.Class, error)
}

// DashboardService aggregates catalog statistics.
type DashboardService struct {
	resources resourceLister
	classes   classLister
}

// NewDashboardService constructs DashboardService.
func NewDashboardService(resources resourceLister, classes classLister) *DashboardService {
	return &DashboardService{resources: resources, classes: classes}
}

// Summary counts resources and classes and lists the latest uploads.
func (s *DashboardService) Summary(ctx context.Context) (*dto.DashboardSummary, error) {
	resources, err := s.resources.List(ctx, models.ResourceFilter{})
	if err != nil {
		return nil, err
	}
	classes, err := s.classes.List(ctx, models.ClassFilter{})
	if err != nil {
		return nil, err
	}

	summary := &dto.DashboardSummary{
		TotalResources: len(resources),
		TotalClasses:   len(classes),
	}
	for _, c := range classes {
		switch c.Status {
		case models.ClassOngoing:
			summary.OngoingClasses++
		case models.ClassUpcoming:
			summary.UpcomingClasses++
		}
	}

	byType := map[string]int{}
	byUniversity := map[string]int{}
	for _, r := range resources {
		byType[string(r.Type)]++
		byUniversity[string(r.University)]++
	}
	summary.ByType = buckets(models.ResourceTypeOptions, byType)
	summary.ByUniversity = buckets(models.UniversityOptions, byUniversity)

	recent := resources
	if len(recent) > recentResourceLimit {
		recent = recent[:recentResourceLimit]
	}
	summary.RecentResources = append([]models.Resource{}, recent...)
	return summary, nil
}

// buckets reports a count for every option, in option order.
func buckets(options []models.Option, counts map[string]int) []dto.CountBucket {
	out := make([]dto.CountBucket, 0, len(options))
	for _, opt := range options {
		out = append(out, dto.CountBucket{Key: opt.Value, Label: opt.Label, Count: counts[opt.Value]})
	}
	return out
}

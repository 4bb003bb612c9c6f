package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalpavruksha/eduhub-admin/internal/dto"
	"github.com/kalpavruksha/eduhub-admin/internal/models"
)

type stubClassLister struct {
	items []models.Class
	err   error
}

func (s stubClassLister) List(context.Context, models.ClassFilter) ([]models.Class, error) {
	return s.items, s.err
}

func TestDashboardSummary(t *testing.T) {
	repo := newCountingResourceRepo()
	resources := NewResourceService(repo, nil, nil, nil, nil)
	ctx := context.Background()
	for i := 0; i < 6; i++ {
		req := validCreateResource()
		req.Name = fmt.Sprintf("resource-%d", i)
		if i%2 == 0 {
			req.Type = "pyq"
		}
		_, err := resources.Create(ctx, req)
		require.NoError(t, err)
	}
	classes := stubClassLister{items: []models.Class{
		{Status: models.ClassOngoing}, {Status: models.ClassUpcoming}, {Status: models.ClassUpcoming},
	}}

	summary, err := NewDashboardService(resources, classes).Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, summary.TotalResources)
	assert.Equal(t, 3, summary.TotalClasses)
	assert.Equal(t, 1, summary.OngoingClasses)
	assert.Equal(t, 2, summary.UpcomingClasses)
	assert.Len(t, summary.RecentResources, 5)
	assert.Equal(t, "resource-5", summary.RecentResources[0].Name)
	assert.Contains(t, summary.ByType, dto.CountBucket{Key: "pyq", Label: "Previous Year Questions", Count: 3})
	assert.Contains(t, summary.ByType, dto.CountBucket{Key: "syllabus", Label: "Syllabus", Count: 0})
	assert.Contains(t, summary.ByUniversity, dto.CountBucket{Key: "vtu", Label: "VTU", Count: 6})
}

func TestDashboardSummaryPropagatesErrors(t *testing.T) {
	resources := NewResourceService(newCountingResourceRepo(), nil, nil, nil, nil)
	_, err := NewDashboardService(resources, stubClassLister{err: errors.New("boom")}).Summary(context.Background())
	assert.Error(t, err)
}

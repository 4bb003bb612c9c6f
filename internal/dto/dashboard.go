package dto

import "github.com/kalpavruksha/eduhub-admin/internal/models"

// DashboardSummary aggregates catalog counts for the admin landing page.
type DashboardSummary struct {
	TotalResources  int               `json:"totalResources"`
	TotalClasses    int               `json:"totalClasses"`
	OngoingClasses  int               `json:"ongoingClasses"`
	UpcomingClasses int               `json:"upcomingClasses"`
	ByType          []CountBucket     `json:"byType"`
	ByUniversity    []CountBucket     `json:"byUniversity"`
	RecentResources []models.Resource `json:"recentResources"`
}

// CountBucket is a labelled tally.
type CountBucket struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

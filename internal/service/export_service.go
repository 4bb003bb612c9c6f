package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kalpavruksha/eduhub-admin/internal/models"
	"github.com/kalpavruksha/eduhub-admin/pkg/clock"
	appErrors "github.com/kalpavruksha/eduhub-admin/pkg/errors"
	"github.com/kalpavruksha/eduhub-admin/pkg/export"
)

// ExportFile is a rendered download.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}

// ExportService renders catalog listings as CSV or PDF.
type ExportService struct {
	resources resourceLister
	classes   classLister
	clock     clock.Clock
	logger    *zap.Logger
}

// NewExportService constructs ExportService.
func NewExportService(resources resourceLister, classes classLister, clk clock.Clock, logger *zap.Logger) *ExportService {
	if clk == nil {
		clk = clock.Real{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{resources: resources, classes: classes, clock: clk, logger: logger}
}

// ExportResources renders the filtered resource list.
func (s *ExportService) ExportResources(ctx context.Context, format string, filter models.ResourceFilter) (*ExportFile, error) {
	renderer, err := s.renderer(format)
	if err != nil {
		return nil, err
	}
	items, err := s.resources.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	dataset := export.Dataset{
		Title:   "Kalpavruksha Resources",
		Headers: []string{"name", "subjectCode", "university", "scheme", "college", "branch", "semester", "type", "fileUrl", "uploadedAt"},
	}
	for _, r := range items {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"name":        r.Name,
			"subjectCode": r.SubjectCode,
			"university":  string(r.University),
			"scheme":      string(r.Scheme),
			"college":     r.College,
			"branch":      string(r.Branch),
			"semester":    string(r.Semester),
			"type":        string(r.Type),
			"fileUrl":     r.FileURL,
			"uploadedAt":  r.UploadedAt.Format("2006-01-02 15:04"),
		})
	}
	return s.render(renderer, "resources", dataset)
}

// ExportClasses renders the filtered class list.
func (s *ExportService) ExportClasses(ctx context.Context, format string, filter models.ClassFilter) (*ExportFile, error) {
	renderer, err := s.renderer(format)
	if err != nil {
		return nil, err
	}
	items, err := s.classes.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	dataset := export.Dataset{
		Title:   "Kalpavruksha Live Classes",
		Headers: []string{"name", "status", "schedule", "time", "university", "college", "branch", "semester"},
	}
	for _, c := range items {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"name":       c.Name,
			"status":     string(c.Status),
			"schedule":   c.Schedule,
			"time":       c.Time,
			"university": string(c.University),
			"college":    c.College,
			"branch":     string(c.Branch),
			"semester":   string(c.Semester),
		})
	}
	return s.render(renderer, "classes", dataset)
}

func (s *ExportService) renderer(format string) (export.Renderer, error) {
	renderer, err := export.ForFormat(format)
	if err != nil {
		return nil, appErrors.WithDetails(appErrors.Clone(appErrors.ErrValidation, "unsupported export format"), err.Error())
	}
	return renderer, nil
}

func (s *ExportService) render(renderer export.Renderer, prefix string, dataset export.Dataset) (*ExportFile, error) {
	content, err := renderer.Render(dataset)
	if err != nil {
		s.logger.Error("export render failed", zap.String("dataset", prefix), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}
	return &ExportFile{
		Filename:    fmt.Sprintf("%s-%s.%s", prefix, s.clock.Now().Format("20060102-150405"), renderer.Extension()),
		ContentType: renderer.ContentType(),
		Content:     content,
	}, nil
}

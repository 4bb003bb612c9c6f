package service

import (
	"bytes"
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/kalpavruksha/eduhub-admin/internal/dto"
	appErrors "github.com/kalpavruksha/eduhub-admin/pkg/errors"
	"github.com/kalpavruksha/eduhub-admin/pkg/storage"
)

// UploadSink persists an uploaded object and returns its public URL.
type UploadSink interface {
	Save(ctx context.Context, name string, r io.Reader, size int64) (string, error)
	Delete(ctx context.Context, name string) error
}

// UploadService accepts PDF files and hands them to the configured sink.
type UploadService struct {
	sink    UploadSink
	namer   *storage.Namer
	metrics *MetricsService
	logger  *zap.Logger
}

// NewUploadService constructs UploadService. A nil namer uses the wall clock.
func NewUploadService(sink UploadSink, namer *storage.Namer, metrics *MetricsService, logger *zap.Logger) *UploadService {
	if namer == nil {
		namer = storage.NewNamer(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UploadService{sink: sink, namer: namer, metrics: metrics, logger: logger}
}

// Upload stores a file whose declared name ends in ".pdf". Nothing is written
// for rejected files. Page counting is best effort and never fails the upload.
func (s *UploadService) Upload(ctx context.Context, filename string, r io.Reader) (*dto.UploadResult, error) {
	if filename == "" || r == nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "No file uploaded")
	}
	if !storage.IsPDFName(filename) {
		return nil, appErrors.ErrUnsupportedType
	}

	content, err := io.ReadAll(r)
	if err != nil {
		s.metrics.ObserveUpload(0, err)
		return nil, appErrors.WithDetails(appErrors.Wrap(err, appErrors.ErrUploadFailed.Code, appErrors.ErrUploadFailed.Status, appErrors.ErrUploadFailed.Message), err.Error())
	}

	name := s.namer.Name(filename)
	size := int64(len(content))
	url, err := s.sink.Save(ctx, name, bytes.NewReader(content), size)
	s.metrics.ObserveUpload(size, err)
	if err != nil {
		s.logger.Error("upload failed", zap.String("filename", name), zap.Error(err))
		return nil, appErrors.WithDetails(appErrors.Wrap(err, appErrors.ErrUploadFailed.Code, appErrors.ErrUploadFailed.Status, appErrors.ErrUploadFailed.Message), err.Error())
	}

	result := &dto.UploadResult{
		URL:      url,
		Filename: name,
		Size:     size,
		Message:  "File uploaded successfully",
	}
	if pages, err := storage.PageCount(content); err == nil {
		result.Pages = pages
	} else {
		s.logger.Debug("pdf page count unavailable", zap.String("filename", name), zap.Error(err))
	}

	s.logger.Info("file uploaded", zap.String("filename", name), zap.Int64("size", size), zap.Int("pages", result.Pages))
	return result, nil
}

// Discard removes a previously stored upload, for example when the record that
// was meant to reference it is rejected.
func (s *UploadService) Discard(ctx context.Context, filename string) error {
	if err := s.sink.Delete(ctx, filename); err != nil {
		s.logger.Warn("discard upload failed", zap.String("filename", filename), zap.Error(err))
		return appErrors.WithDetails(appErrors.Wrap(err, appErrors.ErrUploadFailed.Code, appErrors.ErrUploadFailed.Status, appErrors.ErrUploadFailed.Message), err.Error())
	}
	s.logger.Info("upload discarded", zap.String("filename", filename))
	return nil
}

package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalpavruksha/eduhub-admin/internal/dto"
	appErrors "github.com/kalpavruksha/eduhub-admin/pkg/errors"
	"github.com/kalpavruksha/eduhub-admin/pkg/storage"
)

type recordingSink struct {
	names   []string
	deleted []string
	err     error
}

func (s *recordingSink) Save(_ context.Context, name string, r io.Reader, _ int64) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if _, err := io.Copy(io.Discard, r); err != nil {
		return "", err
	}
	s.names = append(s.names, name)
	return "/uploads/" + name, nil
}

func (s *recordingSink) Delete(_ context.Context, name string) error {
	if s.err != nil {
		return s.err
	}
	s.deleted = append(s.deleted, name)
	return nil
}

func twoPagePDF(t *testing.T) []byte {
	t.Helper()
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetFont("Arial", "", 12)
	doc.AddPage()
	doc.Cell(40, 10, "one")
	doc.AddPage()
	doc.Cell(40, 10, "two")
	buf := &bytes.Buffer{}
	require.NoError(t, doc.Output(buf))
	return buf.Bytes()
}

func fixedNamer() *storage.Namer {
	return storage.NewNamer(func() time.Time { return testNow })
}

func TestUploadServiceStoresPDF(t *testing.T) {
	dir := t.TempDir()
	sink := storage.NewLocalStorage(filepath.Join(dir, "uploads"), "/uploads")
	svc := NewUploadService(sink, fixedNamer(), NewMetricsService(), nil)

	content := twoPagePDF(t)
	result, err := svc.Upload(context.Background(), "OS unit 1.pdf", bytes.NewReader(content))
	require.NoError(t, err)

	assert.Equal(t, "1748764800000-OS_unit_1.pdf", result.Filename)
	assert.Equal(t, "/uploads/1748764800000-OS_unit_1.pdf", result.URL)
	assert.Equal(t, int64(len(content)), result.Size)
	assert.Equal(t, 2, result.Pages)
	assert.Equal(t, "File uploaded successfully", result.Message)

	stored, err := os.ReadFile(filepath.Join(dir, "uploads", result.Filename))
	require.NoError(t, err)
	assert.Equal(t, content, stored)
}

func TestUploadServiceRejectsNonPDFBeforeWriting(t *testing.T) {
	sink := &recordingSink{}
	svc := NewUploadService(sink, fixedNamer(), nil, nil)

	for _, name := range []string{"photo.png", "notes.PDF", "archive.pdf.zip"} {
		_, err := svc.Upload(context.Background(), name, strings.NewReader("%PDF-1.4"))
		appErr := requireCode(t, err, appErrors.ErrUnsupportedType)
		assert.Equal(t, "Only PDF files are allowed", appErr.Message)
	}
	assert.Empty(t, sink.names)

	_, err := svc.Upload(context.Background(), "", nil)
	requireCode(t, err, appErrors.ErrValidation)
}

func TestUploadServiceAcceptsUnparseablePDF(t *testing.T) {
	sink := &recordingSink{}
	svc := NewUploadService(sink, fixedNamer(), nil, nil)

	result, err := svc.Upload(context.Background(), "scan.pdf", strings.NewReader("not really a pdf"))
	require.NoError(t, err)
	assert.Zero(t, result.Pages)
	assert.Len(t, sink.names, 1)
}

func TestUploadServiceNamesNeverCollide(t *testing.T) {
	sink := &recordingSink{}
	svc := NewUploadService(sink, fixedNamer(), nil, nil)

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		result, err := svc.Upload(context.Background(), "same.pdf", strings.NewReader("x"))
		require.NoError(t, err)
		assert.False(t, seen[result.Filename])
		seen[result.Filename] = true
	}
}

func TestUploadServiceSinkFailure(t *testing.T) {
	svc := NewUploadService(&recordingSink{err: errors.New("disk full")}, fixedNamer(), nil, nil)

	_, err := svc.Upload(context.Background(), "a.pdf", strings.NewReader("x"))
	appErr := requireCode(t, err, appErrors.ErrUploadFailed)
	assert.Equal(t, "disk full", appErr.Details)
}

func TestUploadServiceAcceptsCorruptPDFBody(t *testing.T) {
	dir := t.TempDir()
	sink := storage.NewLocalStorage(dir, "/uploads")
	svc := NewUploadService(sink, fixedNamer(), nil, nil)

	content := corruptCatalogPDF()
	var (
		result *dto.UploadResult
		err    error
	)
	require.NotPanics(t, func() {
		result, err = svc.Upload(context.Background(), "notes.pdf", bytes.NewReader(content))
	})
	require.NoError(t, err)
	assert.Equal(t, "/uploads/1748764800000-notes.pdf", result.URL)
	assert.Equal(t, "File uploaded successfully", result.Message)
	assert.Zero(t, result.Pages)

	stored, err := os.ReadFile(filepath.Join(dir, result.Filename))
	require.NoError(t, err)
	assert.Equal(t, content, stored)
}

func TestUploadServiceDiscard(t *testing.T) {
	dir := t.TempDir()
	svc := NewUploadService(storage.NewLocalStorage(dir, "/uploads"), fixedNamer(), nil, nil)

	result, err := svc.Upload(context.Background(), "draft.pdf", strings.NewReader("%PDF-1.4"))
	require.NoError(t, err)
	require.NoError(t, svc.Discard(context.Background(), result.Filename))

	_, err = os.Stat(filepath.Join(dir, result.Filename))
	assert.True(t, os.IsNotExist(err))

	failing := NewUploadService(&recordingSink{err: errors.New("bucket gone")}, fixedNamer(), nil, nil)
	appErr := requireCode(t, failing.Discard(context.Background(), "x.pdf"), appErrors.ErrUploadFailed)
	assert.Equal(t, "bucket gone", appErr.Details)
}

// corruptCatalogPDF is a structurally valid file whose catalog has a bare
// keyword where a name key is expected.
func corruptCatalogPDF() []byte {
	objects := []string{
		"<< /Type /Catalog 5Pages 2 0 R >>",
		"<< /Type /Pages /Kids [] /Count 1 >>",
	}
	buf := &bytes.Buffer{}
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	xref := buf.Len()
	fmt.Fprintf(buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return buf.Bytes()
}

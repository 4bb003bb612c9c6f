package console

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalpavruksha/eduhub-admin/internal/dto"
	"github.com/kalpavruksha/eduhub-admin/internal/models"
	"github.com/kalpavruksha/eduhub-admin/internal/repository"
	"github.com/kalpavruksha/eduhub-admin/internal/service"
	"github.com/kalpavruksha/eduhub-admin/pkg/clock"
	"github.com/kalpavruksha/eduhub-admin/pkg/storage"
)

type consoleFixture struct {
	router    *gin.Engine
	resources *service.ResourceService
	classes   *service.ClassService
	uploadDir string
}

func newConsoleFixture(t *testing.T) *consoleFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	clk := clock.NewStub(time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC))
	resources := service.NewResourceService(repository.NewMemoryResourceRepository(clk), nil, nil, nil, nil)
	classes := service.NewClassService(repository.NewMemoryClassRepository(clk), nil, nil, nil, nil)

	uploadDir := filepath.Join(t.TempDir(), "uploads")
	uploads := service.NewUploadService(storage.NewLocalStorage(uploadDir, "/uploads"), storage.NewNamer(clk.Now), nil, nil)

	h, err := New(Config{
		Resources: resources,
		Classes:   classes,
		Uploads:   uploads,
		Dashboard: service.NewDashboardService(resources, classes),
		ExportURL: "/api/resources/export",
	})
	require.NoError(t, err)

	r := gin.New()
	h.Register(r.Group("/console"))
	return &consoleFixture{router: r, resources: resources, classes: classes, uploadDir: uploadDir}
}

func (f *consoleFixture) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func postForm(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func vtuNotesForm(name string) url.Values {
	return url.Values{
		"name":       {name},
		"university": {"vtu"},
		"scheme":     {"2022"},
		"branch":     {"cse"},
		"semester":   {"3rd"},
		"type":       {"notes"},
		"mode":       {"url"},
		"fileUrl":    {"https://cdn.example.com/os.pdf"},
	}
}

func TestDashboardRendersTotals(t *testing.T) {
	f := newConsoleFixture(t)
	_, err := f.resources.Create(context.Background(), dto.CreateResourceRequest{
		Name: "DBMS Notes", University: "vtu", Scheme: "2021", Branch: "cse", Semester: "4th",
		Type: "notes", FileURL: "/uploads/dbms.pdf",
	})
	require.NoError(t, err)

	w := f.do(httptest.NewRequest(http.MethodGet, "/console/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "DBMS Notes")
	assert.Contains(t, w.Body.String(), "Latest uploads")
}

func TestCreateResourceRedirectsWithFilters(t *testing.T) {
	f := newConsoleFixture(t)
	form := vtuNotesForm("OS Unit 1")
	form.Set("return", "branch=cse&type=all&evil=1")

	w := f.do(postForm("/console/resources", form))

	require.Equal(t, http.StatusSeeOther, w.Code)
	loc, err := url.Parse(w.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "/console/resources", loc.Path)
	assert.Equal(t, "cse", loc.Query().Get("branch"))
	assert.Empty(t, loc.Query().Get("type"))
	assert.Empty(t, loc.Query().Get("evil"))
	assert.Equal(t, "Resource created", loc.Query().Get("notice"))

	items, err := f.resources.List(context.Background(), models.ResourceFilter{})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "OS Unit 1", items[0].Name)

	page := f.do(httptest.NewRequest(http.MethodGet, loc.String(), nil))
	require.Equal(t, http.StatusOK, page.Code)
	assert.Contains(t, page.Body.String(), "Resource created")
	assert.Contains(t, page.Body.String(), "OS Unit 1")
}

func TestCreateResourceValidationErrorKeepsInput(t *testing.T) {
	f := newConsoleFixture(t)
	form := vtuNotesForm("Half filled")
	form.Del("fileUrl")

	w := f.do(postForm("/console/resources", form))

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Missing required fields")
	assert.Contains(t, body, `value="Half filled"`)

	items, err := f.resources.List(context.Background(), models.ResourceFilter{})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCreateResourceFromUploadedFile(t *testing.T) {
	f := newConsoleFixture(t)

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for key, vals := range vtuNotesForm("Scanned notes") {
		if key == "mode" || key == "fileUrl" {
			continue
		}
		require.NoError(t, mw.WriteField(key, vals[0]))
	}
	require.NoError(t, mw.WriteField("mode", "file"))
	part, err := mw.CreateFormFile("file", "Scanned notes.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4\n%%EOF\n"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/console/resources", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := f.do(req)

	require.Equal(t, http.StatusSeeOther, w.Code, w.Body.String())

	items, err := f.resources.List(context.Background(), models.ResourceFilter{})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "/uploads/1748764800000-Scanned_notes.pdf", items[0].FileURL)

	_, err = os.Stat(filepath.Join(f.uploadDir, "1748764800000-Scanned_notes.pdf"))
	assert.NoError(t, err)
}

func TestUploadModeDiscardsFileWhenResourceRejected(t *testing.T) {
	f := newConsoleFixture(t)

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	require.NoError(t, mw.WriteField("name", "Unlabelled scan"))
	require.NoError(t, mw.WriteField("university", "vtu"))
	require.NoError(t, mw.WriteField("mode", "file"))
	part, err := mw.CreateFormFile("file", "scan.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4\n%%EOF\n"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/console/resources", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := f.do(req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing required fields")
	assert.NotContains(t, w.Body.String(), "1748764800000-scan.pdf")

	_, err = os.Stat(filepath.Join(f.uploadDir, "1748764800000-scan.pdf"))
	assert.True(t, os.IsNotExist(err))
	entries, err := os.ReadDir(f.uploadDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestMalformedMultipartIsRejected(t *testing.T) {
	f := newConsoleFixture(t)

	for _, target := range []string{"/console/resources", "/console/classes"} {
		req := httptest.NewRequest(http.MethodPost, target, strings.NewReader("this is not multipart"))
		req.Header.Set("Content-Type", "multipart/form-data; boundary=xyz")
		w := f.do(req)

		require.Equal(t, http.StatusBadRequest, w.Code, target)
		assert.Contains(t, w.Body.String(), "invalid form", target)
	}

	items, err := f.resources.List(context.Background(), models.ResourceFilter{})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestUploadModeRejectsNonPDF(t *testing.T) {
	f := newConsoleFixture(t)

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	require.NoError(t, mw.WriteField("name", "Slides"))
	require.NoError(t, mw.WriteField("mode", "file"))
	part, err := mw.CreateFormFile("file", "slides.pptx")
	require.NoError(t, err)
	_, err = part.Write([]byte("not a pdf"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/console/resources", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := f.do(req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Only PDF files are allowed")
	_, err = os.Stat(f.uploadDir)
	assert.True(t, os.IsNotExist(err))
}

func TestEditResourcePrefillsAndUpdates(t *testing.T) {
	f := newConsoleFixture(t)
	created, err := f.resources.Create(context.Background(), dto.CreateResourceRequest{
		Name: "CN Notes", University: "vtu", Scheme: "2022", Branch: "ece", Semester: "5th",
		Type: "notes", FileURL: "/uploads/cn.pdf",
	})
	require.NoError(t, err)

	w := f.do(httptest.NewRequest(http.MethodGet, "/console/resources?edit="+created.ID, nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Edit resource")
	assert.Contains(t, w.Body.String(), `value="CN Notes"`)

	form := vtuNotesForm("CN Notes v2")
	form.Set("id", created.ID)
	w = f.do(postForm("/console/resources", form))
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "notice=Resource+updated")

	got, err := f.resources.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "CN Notes v2", got.Name)
	assert.Equal(t, created.UploadedAt, got.UploadedAt)
}

func TestDeleteResource(t *testing.T) {
	f := newConsoleFixture(t)
	created, err := f.resources.Create(context.Background(), dto.CreateResourceRequest{
		Name: "Syllabus", University: "autonomous", College: "rv", Branch: "mech", Semester: "1st",
		Type: "syllabus", FileURL: "https://example.com/s.pdf",
	})
	require.NoError(t, err)

	w := f.do(postForm("/console/resources/delete", url.Values{"id": {created.ID}}))
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "notice=Resource+deleted")

	w = f.do(postForm("/console/resources/delete", url.Values{"id": {created.ID}}))
	require.Equal(t, http.StatusSeeOther, w.Code)
	loc, err := url.Parse(w.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "Resource not found", loc.Query().Get("error"))
}

func TestResourceFiltersNarrowTable(t *testing.T) {
	f := newConsoleFixture(t)
	ctx := context.Background()
	_, err := f.resources.Create(ctx, dto.CreateResourceRequest{
		Name: "CSE Notes", University: "vtu", Scheme: "2022", Branch: "cse", Semester: "3rd",
		Type: "notes", FileURL: "/uploads/a.pdf",
	})
	require.NoError(t, err)
	_, err = f.resources.Create(ctx, dto.CreateResourceRequest{
		Name: "Civil PYQ", University: "vtu", Scheme: "2022", Branch: "civil", Semester: "3rd",
		Type: "pyq", FileURL: "/uploads/b.pdf",
	})
	require.NoError(t, err)

	w := f.do(httptest.NewRequest(http.MethodGet, "/console/resources?branch=civil&type=all", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Civil PYQ")
	assert.NotContains(t, w.Body.String(), "CSE Notes")
	assert.Contains(t, w.Body.String(), "/api/resources/export?branch=civil&amp;format=csv")
}

func TestClassLifecycle(t *testing.T) {
	f := newConsoleFixture(t)
	form := url.Values{
		"name":       {"DSA Crash Course"},
		"status":     {"upcoming"},
		"schedule":   {"Mon, Wed"},
		"time":       {"6:00 PM"},
		"university": {"vtu"},
		"branch":     {"cse"},
		"semester":   {"3rd"},
	}

	w := f.do(postForm("/console/classes", form))
	require.Equal(t, http.StatusSeeOther, w.Code)

	items, err := f.classes.List(context.Background(), models.ClassFilter{})
	require.NoError(t, err)
	require.Len(t, items, 1)

	page := f.do(httptest.NewRequest(http.MethodGet, "/console/classes?status=upcoming", nil))
	require.Equal(t, http.StatusOK, page.Code)
	assert.Contains(t, page.Body.String(), "DSA Crash Course")

	form.Set("id", items[0].ID)
	form.Set("status", "ongoing")
	w = f.do(postForm("/console/classes", form))
	require.Equal(t, http.StatusSeeOther, w.Code)

	got, err := f.classes.Get(context.Background(), items[0].ID)
	require.NoError(t, err)
	assert.Equal(t, models.ClassOngoing, got.Status)

	w = f.do(postForm("/console/classes/delete", url.Values{"id": {items[0].ID}}))
	require.Equal(t, http.StatusSeeOther, w.Code)
	items, err = f.classes.List(context.Background(), models.ClassFilter{})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestClassValidationErrorRendersForm(t *testing.T) {
	f := newConsoleFixture(t)

	w := f.do(postForm("/console/classes", url.Values{"name": {"No schedule"}, "status": {"ongoing"}}))

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing required fields")
	assert.Contains(t, w.Body.String(), `value="No schedule"`)
}

func TestLabelFallsBackToValue(t *testing.T) {
	assert.Equal(t, "Previous Year Questions", label(models.ResourceTypeOptions, "pyq"))
	assert.Equal(t, "custom", label(models.ResourceTypeOptions, "custom"))
}

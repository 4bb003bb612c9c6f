package service

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsServiceStoreAndUploadCounters(t *testing.T) {
	m := NewMetricsService()
	m.ObserveStoreOperation("resources.create", time.Millisecond, nil)
	m.ObserveStoreOperation("resources.create", time.Millisecond, errors.New("down"))
	m.ObserveUpload(1024, nil)
	m.ObserveUpload(0, errors.New("disk full"))

	assert.Equal(t, float64(1), testutil.ToFloat64(m.storeErrors.WithLabelValues("resources.create")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.uploadsTotal.WithLabelValues("stored")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.uploadsTotal.WithLabelValues("failed")))
}

func TestMetricsServiceHandler(t *testing.T) {
	m := NewMetricsService()
	m.ObserveHTTPRequest(http.MethodGet, "/api/resources", http.StatusOK, 5*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `http_requests_total{method="GET",path="/api/resources",status="200"} 1`))
}

func TestNilMetricsServiceIsSafe(t *testing.T) {
	var m *MetricsService
	m.ObserveHTTPRequest("GET", "/", 200, time.Millisecond)
	m.ObserveStoreOperation("x", time.Millisecond, nil)
	m.ObserveUpload(1, nil)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

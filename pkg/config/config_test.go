package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	chdirForTest(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "/api", cfg.APIPrefix)
	assert.Equal(t, StoreMongo, cfg.Store.Driver)
	assert.Equal(t, "kalpavruksha", cfg.Mongo.Database)
	assert.Equal(t, UploadLocal, cfg.Upload.Driver)
	assert.Equal(t, "/uploads", cfg.Upload.PublicPath)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	assert.False(t, cfg.Cache.Enabled)
	assert.True(t, cfg.Console.Enabled)
}

func TestLoadFromEnvironment(t *testing.T) {
	chdirForTest(t, t.TempDir())
	t.Setenv("STORE_DRIVER", "Postgres")
	t.Setenv("API_PREFIX", "/v2/")
	t.Setenv("CACHE_TTL", "not-a-duration")
	t.Setenv("ENABLE_CACHE", "true")
	t.Setenv("UPLOAD_DRIVER", "minio")
	t.Setenv("MINIO_PUBLIC_URL", "https://cdn.example.com/")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StorePostgres, cfg.Store.Driver)
	assert.Equal(t, "/v2", cfg.APIPrefix)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, UploadMinIO, cfg.Upload.Driver)
	assert.Equal(t, "https://cdn.example.com", cfg.MinIO.PublicURL)
}

// chdirForTest changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdirForTest(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}

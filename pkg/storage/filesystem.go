package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
)

// LocalStorage writes uploads under a directory that is served as static files.
type LocalStorage struct {
	baseDir    string
	publicPath string
}

// NewLocalStorage returns a sink rooted at baseDir whose objects are reachable
// under publicPath (for example "/uploads").
func NewLocalStorage(baseDir, publicPath string) *LocalStorage {
	if baseDir == "" {
		baseDir = "./public/uploads"
	}
	if publicPath == "" {
		publicPath = "/uploads"
	}
	return &LocalStorage{baseDir: baseDir, publicPath: publicPath}
}

// Save copies r into baseDir/name, creating the directory on demand, and returns
// the public URL of the stored file.
func (s *LocalStorage) Save(_ context.Context, name string, r io.Reader, _ int64) (string, error) {
	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return "", fmt.Errorf("prepare upload directory: %w", err)
	}
	file, err := os.Create(s.resolve(name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer file.Close() //nolint:errcheck
	if _, err := io.Copy(file, r); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}
	return path.Join(s.publicPath, name), nil
}

// Delete removes a stored file if present.
func (s *LocalStorage) Delete(_ context.Context, name string) error {
	if err := os.Remove(s.resolve(name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete upload file: %w", err)
	}
	return nil
}

// Dir exposes the directory the sink writes to.
func (s *LocalStorage) Dir() string {
	return s.baseDir
}

// PublicPath is the URL prefix under which Dir is served.
func (s *LocalStorage) PublicPath() string {
	return s.publicPath
}

func (s *LocalStorage) resolve(name string) string {
	return filepath.Join(s.baseDir, filepath.Base(name))
}

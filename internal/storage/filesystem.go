package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileSystem stores artifacts as plain files under a base directory.
type FileSystem struct {
	baseDir string
}

func NewFileSystem(baseDir string) *FileSystem {
	return &FileSystem{baseDir: baseDir}
}

// BaseDir returns the root under which all artifacts live.
func (fs *FileSystem) BaseDir() string {
	return fs.baseDir
}

// resolve validates a relative artifact path and anchors it under the
// base directory. Scene and asset names feed into artifact paths, so
// traversal out of the base dir is rejected rather than normalized.
func (fs *FileSystem) resolve(path string) (string, error) {
	cleaned := filepath.Clean(path)

	if strings.Contains(cleaned, "..") {
		return "", fmt.Errorf("invalid artifact path %q: parent directory reference", path)
	}
	if filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("invalid artifact path %q: must be relative", path)
	}

	full := filepath.Join(fs.baseDir, cleaned)
	if !strings.HasPrefix(full, fs.baseDir+string(filepath.Separator)) && full != fs.baseDir {
		return "", fmt.Errorf("invalid artifact path %q: escapes base directory", path)
	}
	return full, nil
}

func (fs *FileSystem) Save(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	full, err := fs.resolve(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return fmt.Errorf("creating artifact directory: %w", err)
	}
	if err := os.WriteFile(full, data, 0644); err != nil {
		return fmt.Errorf("writing artifact: %w", err)
	}
	return nil
}

func (fs *FileSystem) Load(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	full, err := fs.resolve(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(full)
	if err != nil {
		return nil, fmt.Errorf("reading artifact: %w", err)
	}
	return data, nil
}

// List returns artifact paths, relative to the base directory, that
// match a glob pattern.
func (fs *FileSystem) List(ctx context.Context, pattern string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cleaned := filepath.Clean(pattern)
	if strings.Contains(cleaned, "..") || filepath.IsAbs(cleaned) {
		return nil, fmt.Errorf("invalid pattern %q", pattern)
	}

	matches, err := filepath.Glob(filepath.Join(fs.baseDir, cleaned))
	if err != nil {
		return nil, fmt.Errorf("listing artifacts: %w", err)
	}

	var results []string
	for _, match := range matches {
		rel, err := filepath.Rel(fs.baseDir, match)
		if err != nil {
			continue
		}
		results = append(results, rel)
	}
	return results, nil
}

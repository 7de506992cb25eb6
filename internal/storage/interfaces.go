package storage

import "context"

// Store persists pipeline artifacts (subtitles, manifests) under a
// base directory addressed by relative paths.
type Store interface {
	Save(ctx context.Context, path string, data []byte) error
	Load(ctx context.Context, path string) ([]byte, error)
	List(ctx context.Context, pattern string) ([]string, error)
	BaseDir() string
}

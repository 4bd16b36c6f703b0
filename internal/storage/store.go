// Package storage abstracts the object store that holds generated landing pages
// and background images.
package storage

import "context"

// SaveOptions carries blob metadata for Save.
type SaveOptions struct {
	ContentType  string
	CacheControl string
}

// Store is the narrow artifact-store contract the pipeline depends on.
type Store interface {
	Save(ctx context.Context, path string, data []byte, opts SaveOptions) error
	Exists(ctx context.Context, path string) (bool, error)
	MakePublic(ctx context.Context, path string) error
	PublicURL(path string) string
}

package adapter

import (
	"context"

	"github.com/Ning0612/fspreview/internal/domain"
)

// Browser defines the read-only view of a storage backend used by the file browser.
// Paths are slash-separated and relative to the backend's root.
type Browser interface {
	// List returns the entries directly under the given path
	// Returns domain.ErrNotFound if path doesn't exist
	// Returns domain.ErrNotDirectory if path is a file
	List(ctx context.Context, path string) ([]domain.PathItem, error)

	// Stat returns metadata for a single path without following a final symlink
	// Returns domain.ErrNotFound if path doesn't exist
	Stat(ctx context.Context, path string) (domain.PathItemMetadata, error)

	// Close releases any resources held by the backend
	Close() error
}

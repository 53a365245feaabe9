package local

import (
	"context"
	"errors"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"syscall"

	"github.com/Ning0612/fspreview/internal/domain"
)

// Adapter implements adapter.Browser for the local filesystem
type Adapter struct {
	root   string
	owners OwnerLookup
}

// Option configures an Adapter
type Option func(*Adapter)

// WithOwnerLookup replaces the lookup used to fill LastWriter
func WithOwnerLookup(lookup OwnerLookup) Option {
	return func(a *Adapter) {
		a.owners = lookup
	}
}

// New creates a new local filesystem adapter
// root must be an existing directory
func New(root string, opts ...Option) (*Adapter, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, domain.ErrNotDirectory
	}

	a := &Adapter{root: absRoot, owners: LookupOwner}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// resolvePath safely resolves a relative path to absolute path within root
// Returns error if path attempts to escape root directory
func (a *Adapter) resolvePath(relPath string) (string, error) {
	if relPath == "" || relPath == "." || relPath == "/" {
		return a.root, nil
	}

	relPath = filepath.Clean(filepath.FromSlash(relPath))

	// Browser paths are rooted at the adapter, so a leading slash is allowed
	relPath = strings.TrimPrefix(relPath, string(filepath.Separator))
	if filepath.IsAbs(relPath) || filepath.VolumeName(relPath) != "" {
		return "", domain.ErrPermissionDenied
	}

	fullPath := filepath.Join(a.root, relPath)

	rel, err := filepath.Rel(a.root, fullPath)
	if err != nil {
		return "", domain.ErrPermissionDenied
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", domain.ErrPermissionDenied
	}

	return fullPath, nil
}

// List returns the entries directly under the given path, sorted by name
func (a *Adapter) List(ctx context.Context, dir string) ([]domain.PathItem, error) {
	fullPath, err := a.resolvePath(dir)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(fullPath)
	if err != nil {
		return nil, a.mapError(err)
	}
	if !info.IsDir() {
		return nil, domain.ErrNotDirectory
	}

	entries, err := os.ReadDir(fullPath)
	if err != nil {
		return nil, a.mapError(err)
	}

	result := make([]domain.PathItem, 0, len(entries))
	for _, entry := range entries {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		info, err := entry.Info()
		if err != nil {
			continue // Skip entries removed since ReadDir
		}

		result = append(result, domain.PathItem{
			Path: path.Join("/", filepath.ToSlash(dir), entry.Name()),
			Meta: a.metadataFromOS(info),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Path < result[j].Path
	})
	return result, nil
}

// Stat returns metadata for a single path
func (a *Adapter) Stat(ctx context.Context, p string) (domain.PathItemMetadata, error) {
	if err := ctx.Err(); err != nil {
		return domain.PathItemMetadata{}, err
	}

	fullPath, err := a.resolvePath(p)
	if err != nil {
		return domain.PathItemMetadata{}, err
	}

	info, err := os.Lstat(fullPath)
	if err != nil {
		return domain.PathItemMetadata{}, a.mapError(err)
	}

	return a.metadataFromOS(info), nil
}

// Close releases any resources (no-op for local adapter)
func (a *Adapter) Close() error {
	return nil
}

// Root returns the root path of this adapter
func (a *Adapter) Root() string {
	return a.root
}

// metadataFromOS converts os.FileInfo to domain metadata
func (a *Adapter) metadataFromOS(info os.FileInfo) domain.PathItemMetadata {
	kind := domain.PathKindFile
	size := info.Size()
	if info.IsDir() {
		kind = domain.PathKindFolder
		size = 0
	} else if info.Mode()&os.ModeSymlink != 0 {
		kind = domain.PathKindSymlink
	}

	meta := domain.PathItemMetadata{
		Kind:         kind,
		Size:         size,
		LastModified: info.ModTime(),
		Progress:     domain.ProgressCompleted,
	}
	if a.owners != nil {
		meta.LastWriter = a.owners(info)
	}
	return meta
}

// mapError converts OS errors to domain errors
func (a *Adapter) mapError(err error) error {
	if err == nil {
		return nil
	}

	if os.IsNotExist(err) {
		return domain.ErrNotFound
	}
	if os.IsPermission(err) {
		return domain.ErrPermissionDenied
	}
	if errors.Is(err, syscall.ENOTDIR) {
		return domain.ErrNotDirectory
	}

	return err
}

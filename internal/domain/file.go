package domain

import (
	"fmt"
	"path"
	"strings"
	"time"
)

// PathKind classifies a filesystem entry
type PathKind int

const (
	PathKindFile PathKind = iota
	PathKindFolder
	PathKindSymlink
)

// String returns the lowercase name used in configs and on the command line
func (k PathKind) String() string {
	switch k {
	case PathKindFile:
		return "file"
	case PathKindFolder:
		return "folder"
	case PathKindSymlink:
		return "symlink"
	default:
		return fmt.Sprintf("PathKind(%d)", int(k))
	}
}

// IsValid checks if the kind is one of the known values
func (k PathKind) IsValid() bool {
	switch k {
	case PathKindFile, PathKindFolder, PathKindSymlink:
		return true
	}
	return false
}

// ParsePathKind parses a kind name (case-insensitive)
func ParsePathKind(s string) (PathKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "file":
		return PathKindFile, nil
	case "folder", "dir", "directory":
		return PathKindFolder, nil
	case "symlink", "link":
		return PathKindSymlink, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPathKind, s)
}

// MarshalYAML writes the kind by name
func (k PathKind) MarshalYAML() (interface{}, error) {
	if !k.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPathKind, int(k))
	}
	return k.String(), nil
}

// UnmarshalYAML reads a kind name
func (k *PathKind) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParsePathKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// SyncProgress is the sync state of a path as reported by the sync engine
type SyncProgress string

const (
	ProgressPending   SyncProgress = "pending"
	ProgressCompleted SyncProgress = "completed"
)

// PathItemMetadata represents metadata about a file or folder shown in the browser
type PathItemMetadata struct {
	// Kind indicates if this is a file, folder, or symlink
	Kind PathKind `yaml:"kind"`

	// Size in bytes (0 for folders)
	Size int64 `yaml:"size"`

	// LastModified is the last modification time
	LastModified time.Time `yaml:"last_modified"`

	// LastWriter is the name of the user who last wrote the path
	LastWriter string `yaml:"last_writer"`

	// Progress is informational only; the preview does not act on it
	Progress SyncProgress `yaml:"progress,omitempty"`
}

// IsFolder returns true if this is a folder
func (m PathItemMetadata) IsFolder() bool {
	return m.Kind == PathKindFolder
}

// PathItem pairs a slash-separated path with its metadata
type PathItem struct {
	Path string           `yaml:"path"`
	Meta PathItemMetadata `yaml:"meta"`
}

// Name returns the last element of the item's path
func (i PathItem) Name() string {
	return PathName(i.Path)
}

// PathName returns the last element of a slash-separated path.
// The root path "/" is returned unchanged.
func PathName(p string) string {
	if p == "" {
		return ""
	}
	return path.Base(p)
}

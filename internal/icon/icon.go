// Package icon maps path kinds to the icon identifiers understood by the asset layer.
package icon

import (
	"fmt"
	"strconv"

	"github.com/Ning0612/fspreview/internal/domain"
)

// Type is an icon identifier of the form "<base-name>-<size>"
type Type string

// DefaultSize is used when no size (0) is given
const DefaultSize = 24

const (
	baseFile          = "icon-file"
	baseFolderPrivate = "icon-folder-private"
)

// Resolver resolves icons for a single platform
type Resolver struct {
	platform domain.Platform
}

// NewResolver creates a resolver for the given platform
func NewResolver(platform domain.Platform) (*Resolver, error) {
	if !platform.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownPlatform, platform)
	}
	return &Resolver{platform: platform}, nil
}

// Platform returns the platform this resolver was built for
func (r *Resolver) Platform() domain.Platform {
	return r.platform
}

// Resolve returns the icon for kind at the given pixel size.
// Returns domain.ErrUnknownPathKind for kinds outside the closed set.
func (r *Resolver) Resolve(kind domain.PathKind, size int) (Type, error) {
	if size < 0 {
		return "", fmt.Errorf("%w: %d", domain.ErrInvalidIconSize, size)
	}
	if size == 0 {
		size = DefaultSize
	}

	base, err := baseName(kind, r.platform.IsMobile())
	if err != nil {
		return "", err
	}
	return Type(base + "-" + strconv.Itoa(size)), nil
}

// MustResolve is like Resolve but panics on error
func (r *Resolver) MustResolve(kind domain.PathKind, size int) Type {
	t, err := r.Resolve(kind, size)
	if err != nil {
		panic(err)
	}
	return t
}

// baseName keeps a column per platform. Both columns are currently the same;
// mobile gets its own entries once dedicated assets ship.
func baseName(kind domain.PathKind, mobile bool) (string, error) {
	switch kind {
	case domain.PathKindFile:
		if mobile {
			return baseFile, nil
		}
		return baseFile, nil
	case domain.PathKindFolder:
		if mobile {
			return baseFolderPrivate, nil
		}
		return baseFolderPrivate, nil
	case domain.PathKindSymlink:
		if mobile {
			return baseFile, nil
		}
		return baseFile, nil
	}
	return "", fmt.Errorf("%w: %v", domain.ErrUnknownPathKind, kind)
}

var desktop = &Resolver{platform: domain.PlatformDesktop}

// PathToIcon resolves an icon with the desktop table. Pass 0 for the default size.
func PathToIcon(kind domain.PathKind, size int) (Type, error) {
	return desktop.Resolve(kind, size)
}

// MustPathToIcon is like PathToIcon but panics on error
func MustPathToIcon(kind domain.PathKind, size int) Type {
	return desktop.MustResolve(kind, size)
}

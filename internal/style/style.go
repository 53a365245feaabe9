// Package style holds the read-only theme values shared by the preview renderers.
package style

import (
	"fmt"

	"github.com/Ning0612/fspreview/internal/domain"
)

// Colors used by the file browser
type Colors struct {
	Black   string
	Black05 string
	Black40 string
	White   string
	Blue    string
	Red     string
}

// Margins used by the file browser, in points
type Margins struct {
	Tiny   int
	Small  int
	Medium int
	Large  int
}

// Theme is built once at startup and passed by value
type Theme struct {
	Platform        domain.Platform
	Colors          Colors
	Margins         Margins
	HeaderMinHeight int
	BackOffset      int
}

var defaultColors = Colors{
	Black:   "#000000",
	Black05: "rgba(0, 0, 0, 0.05)",
	Black40: "rgba(0, 0, 0, 0.40)",
	White:   "#ffffff",
	Blue:    "#4c8eff",
	Red:     "#ff4d61",
}

var defaultMargins = Margins{
	Tiny:   4,
	Small:  8,
	Medium: 16,
	Large:  24,
}

// Default returns the theme for a platform
func Default(platform domain.Platform) (Theme, error) {
	if !platform.IsValid() {
		return Theme{}, fmt.Errorf("%w: %q", domain.ErrUnknownPlatform, platform)
	}

	minHeight := 40
	if platform.IsMobile() {
		minHeight = 64
	}

	return Theme{
		Platform:        platform,
		Colors:          defaultColors,
		Margins:         defaultMargins,
		HeaderMinHeight: minHeight,
		BackOffset:      16,
	}, nil
}

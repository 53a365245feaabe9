package domain

import (
	"fmt"
	"strings"
)

// Platform identifies the form factor the client runs on
type Platform string

const (
	PlatformDesktop Platform = "desktop"
	PlatformMobile  Platform = "mobile"
)

// IsValid checks if the platform is a known value
func (p Platform) IsValid() bool {
	switch p {
	case PlatformDesktop, PlatformMobile:
		return true
	}
	return false
}

// IsMobile returns true for the mobile form factor
func (p Platform) IsMobile() bool {
	return p == PlatformMobile
}

// ParsePlatform parses a platform name (case-insensitive)
func ParsePlatform(s string) (Platform, error) {
	p := Platform(strings.ToLower(strings.TrimSpace(s)))
	if !p.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownPlatform, s)
	}
	return p, nil
}

package domain

import "errors"

// Adapter errors - 儲存適配器層錯誤
var (
	// ErrNotFound indicates the requested path does not exist
	ErrNotFound = errors.New("path not found")

	// ErrPermissionDenied indicates insufficient permissions or a path outside the root
	ErrPermissionDenied = errors.New("permission denied")

	// ErrNotDirectory indicates expected a directory but got a file
	ErrNotDirectory = errors.New("not a directory")
)

// Preview errors - 預覽層錯誤
var (
	// ErrUnknownPathKind indicates a PathKind outside the closed set
	ErrUnknownPathKind = errors.New("unknown path kind")

	// ErrUnknownPlatform indicates a platform other than desktop or mobile
	ErrUnknownPlatform = errors.New("unknown platform")

	// ErrInvalidIconSize indicates a negative icon size
	ErrInvalidIconSize = errors.New("invalid icon size")

	// ErrStoryNotFound indicates a catalog story id that is not registered
	ErrStoryNotFound = errors.New("story not found")
)

// Config errors - 設定檔錯誤
var (
	// ErrConfigNotFound indicates config file not found
	ErrConfigNotFound = errors.New("config file not found")

	// ErrConfigInvalid indicates config file is malformed
	ErrConfigInvalid = errors.New("invalid config")
)

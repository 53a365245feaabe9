// Package preview builds the view model of the file preview pane and the
// folder listing, and renders both as plain text.
package preview

import (
	"fmt"
	"time"

	"github.com/Ning0612/fspreview/internal/domain"
	"github.com/Ning0612/fspreview/internal/format"
	"github.com/Ning0612/fspreview/internal/icon"
	"github.com/Ning0612/fspreview/internal/style"
)

// PreviewIconSize is the icon size of the preview pane
const PreviewIconSize = 48

// TimeFormatter formats the last modification time shown in the header
type TimeFormatter func(time.Time) string

// DefaultTimeFormat formats t in local time with a fixed layout
func DefaultTimeFormat(t time.Time) string {
	return t.Local().Format("Jan 2 2006 3:04 PM")
}

// Navigator receives the back button's navigation request
type Navigator interface {
	NavigateUp()
}

// NavigatorFunc adapts a function to Navigator
type NavigatorFunc func()

// NavigateUp calls f
func (f NavigatorFunc) NavigateUp() { f() }

// ButtonType selects the visual weight of a button
type ButtonType string

const (
	ButtonPrimary   ButtonType = "Primary"
	ButtonSecondary ButtonType = "Secondary"
)

// ActionID identifies an action button
type ActionID string

const (
	ActionShare      ActionID = "share"
	ActionOpenFolder ActionID = "open-folder"
)

// Button is an action button below the preview
type Button struct {
	ID        ActionID
	Label     string
	Type      ButtonType
	MarginTop int
}

// BackButton sits at a fixed offset in the top-left corner
type BackButton struct {
	Left int
	Top  int
	nav  Navigator
}

// Click requests navigation to the parent folder
func (b BackButton) Click() {
	if b.nav != nil {
		b.nav.NavigateUp()
	}
}

// Header is the title block of the preview
type Header struct {
	Title     string
	Desc      string
	MinHeight int
}

// FilePreview is the view model of the preview pane
type FilePreview struct {
	Path      string
	Back      BackButton
	Header    Header
	Icon      icon.Type
	Name      string
	SizeLabel string
	Actions   []Button
	// NameMarginTop separates the name from the icon
	NameMarginTop int
}

// Builder builds view models. It holds no mutable state and is safe for concurrent use.
type Builder struct {
	icons      *icon.Resolver
	theme      style.Theme
	formatTime TimeFormatter
	nav        Navigator
}

// Option configures a Builder
type Option func(*Builder)

// WithTimeFormatter overrides DefaultTimeFormat
func WithTimeFormatter(f TimeFormatter) Option {
	return func(b *Builder) {
		if f != nil {
			b.formatTime = f
		}
	}
}

// WithNavigator sets the target of the back button
func WithNavigator(nav Navigator) Option {
	return func(b *Builder) {
		b.nav = nav
	}
}

// NewBuilder creates a builder for the resolver's platform
func NewBuilder(icons *icon.Resolver, theme style.Theme, opts ...Option) (*Builder, error) {
	if icons == nil {
		return nil, fmt.Errorf("icon resolver cannot be nil")
	}
	if icons.Platform() != theme.Platform {
		return nil, fmt.Errorf("theme platform %q does not match icon platform %q", theme.Platform, icons.Platform())
	}

	b := &Builder{
		icons:      icons,
		theme:      theme,
		formatTime: DefaultTimeFormat,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Theme returns the builder's theme
func (b *Builder) Theme() style.Theme {
	return b.theme
}

// Build creates the preview of the file at path
func (b *Builder) Build(path string, meta domain.PathItemMetadata) (*FilePreview, error) {
	// the pane always shows the file icon, whatever the entry kind
	fileIcon, err := b.icons.Resolve(domain.PathKindFile, PreviewIconSize)
	if err != nil {
		return nil, fmt.Errorf("resolve preview icon: %w", err)
	}

	name := domain.PathName(path)
	desc := "Modified on " + b.formatTime(meta.LastModified) + " by " + meta.LastWriter

	return &FilePreview{
		Path: path,
		Back: BackButton{
			Left: b.theme.BackOffset,
			Top:  b.theme.BackOffset,
			nav:  b.nav,
		},
		Header: Header{
			Title:     name,
			Desc:      desc,
			MinHeight: b.theme.HeaderMinHeight,
		},
		Icon:          fileIcon,
		Name:          name,
		SizeLabel:     format.HumanReadableFileSize(meta.Size),
		NameMarginTop: b.theme.Margins.Small,
		Actions: []Button{
			{ID: ActionShare, Label: "Share", Type: ButtonPrimary, MarginTop: b.theme.Margins.Medium},
			{ID: ActionOpenFolder, Label: "Open folder", Type: ButtonSecondary, MarginTop: b.theme.Margins.Small},
		},
	}, nil
}

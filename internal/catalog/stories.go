package catalog

import (
	"fmt"
	"io"
	"time"

	"github.com/Ning0612/fspreview/internal/domain"
	"github.com/Ning0612/fspreview/internal/preview"
)

// Component names used in samples
const (
	ComponentFiles       = "Files"
	ComponentFilePreview = "FilePreview"
)

// RootSamples are the inputs of the Files/Root story
func RootSamples() []Sample {
	return []Sample{
		{Component: ComponentFiles, Path: "/keybase", Items: []domain.PathItem{}},
		{Component: ComponentFiles, Path: "/keybase/private", Items: []domain.PathItem{}},
		{Component: ComponentFiles, Path: "/keybase/public", Items: []domain.PathItem{}},
		{
			Component: ComponentFilePreview,
			Path:      "/keybase/private/foo/bar.img",
			Meta: &domain.PathItemMetadata{
				Kind:         domain.PathKindFile,
				LastModified: time.UnixMilli(1518029754000),
				Size:         15000,
				LastWriter:   "foobar",
				Progress:     domain.ProgressPending,
			},
		},
	}
}

// SamplesRenderer renders samples with a preview builder
func SamplesRenderer(b *preview.Builder, r preview.TextRenderer, samples []Sample) RenderFunc {
	return func(w io.Writer) error {
		for _, s := range samples {
			if err := renderSample(w, b, r, s); err != nil {
				return err
			}
		}
		return nil
	}
}

func renderSample(w io.Writer, b *preview.Builder, r preview.TextRenderer, s Sample) error {
	switch s.Component {
	case ComponentFiles:
		l, err := b.BuildListing(s.Path, s.Items)
		if err != nil {
			return err
		}
		return r.RenderListing(w, l)
	case ComponentFilePreview:
		if s.Meta == nil {
			return fmt.Errorf("%s sample %s has no metadata", s.Component, s.Path)
		}
		p, err := b.Build(s.Path, *s.Meta)
		if err != nil {
			return err
		}
		return r.Render(w, p)
	}
	return fmt.Errorf("unknown component %q", s.Component)
}

// Default returns a catalog with the built-in stories
func Default(b *preview.Builder, r preview.TextRenderer) (*Catalog, error) {
	c := New()
	samples := RootSamples()
	if err := c.Add(Story{
		Group:   "Files",
		Name:    "Root",
		Samples: samples,
		Render:  SamplesRenderer(b, r, samples),
	}); err != nil {
		return nil, err
	}
	return c, nil
}

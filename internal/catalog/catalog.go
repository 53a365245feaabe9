// Package catalog registers sample renderings of the file browser components
// so they can be inspected by hand.
package catalog

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/goccy/go-yaml"

	"github.com/Ning0612/fspreview/internal/domain"
)

// Sample is a single set of inputs rendered by a story
type Sample struct {
	Component string                   `yaml:"component"`
	Path      string                   `yaml:"path"`
	Meta      *domain.PathItemMetadata `yaml:"meta,omitempty"`
	Items     []domain.PathItem        `yaml:"items"`
}

// RenderFunc renders a story
type RenderFunc func(w io.Writer) error

// Story is a named group of samples
type Story struct {
	Group   string
	Name    string
	Samples []Sample
	Render  RenderFunc
}

// ID returns "Group/Name"
func (s Story) ID() string {
	return s.Group + "/" + s.Name
}

// Catalog is a registry of stories, safe for concurrent use
type Catalog struct {
	mu      sync.RWMutex
	stories map[string]Story
}

// New creates an empty catalog
func New() *Catalog {
	return &Catalog{
		stories: make(map[string]Story),
	}
}

// Add registers a story, replacing any story with the same id
func (c *Catalog) Add(s Story) error {
	if s.Group == "" || s.Name == "" {
		return fmt.Errorf("story needs a group and a name")
	}
	if strings.Contains(s.Group, "/") {
		return fmt.Errorf("story group %q cannot contain '/'", s.Group)
	}
	if s.Render == nil {
		return fmt.Errorf("story %s has no render function", s.ID())
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.stories[s.ID()] = s
	return nil
}

// Stories returns all stories sorted by id
func (c *Catalog) Stories() []Story {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]Story, 0, len(c.stories))
	for _, s := range c.stories {
		result = append(result, s)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID() < result[j].ID()
	})
	return result
}

// Get returns the story with the given id
func (c *Catalog) Get(id string) (Story, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	s, ok := c.stories[id]
	if !ok {
		return Story{}, fmt.Errorf("%w: %s", domain.ErrStoryNotFound, id)
	}
	return s, nil
}

// Render renders a single story
func (c *Catalog) Render(w io.Writer, id string) error {
	s, err := c.Get(id)
	if err != nil {
		return err
	}
	return s.Render(w)
}

// RenderAll renders every story, each under a title line
func (c *Catalog) RenderAll(w io.Writer) error {
	for i, s := range c.Stories() {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "== %s ==\n", s.ID()); err != nil {
			return err
		}
		if err := s.Render(w); err != nil {
			return fmt.Errorf("story %s: %w", s.ID(), err)
		}
	}
	return nil
}

type exportedStory struct {
	ID      string   `yaml:"id"`
	Samples []Sample `yaml:"samples"`
}

// Export writes the ids and sample inputs of all stories as YAML
func (c *Catalog) Export(w io.Writer) error {
	stories := c.Stories()
	out := make([]exportedStory, 0, len(stories))
	for _, s := range stories {
		out = append(out, exportedStory{ID: s.ID(), Samples: s.Samples})
	}

	data, err := yaml.Marshal(out)
	if err != nil {
		return fmt.Errorf("marshal stories: %w", err)
	}
	_, err = w.Write(data)
	return err
}

package preview

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// DefaultWidth is the text width used when TextRenderer.Width is not set
const DefaultWidth = 48

// TextRenderer renders view models as centered plain text
type TextRenderer struct {
	Width int
}

// Render writes the preview pane to w
func (r TextRenderer) Render(w io.Writer, p *FilePreview) error {
	width := r.width()
	ew := &errWriter{w: w}

	ew.line("< Back")
	r.header(ew, p.Header, width)
	ew.line("")
	ew.line(center("["+string(p.Icon)+"]", width))
	ew.line(center(p.Name, width))
	ew.line(center(p.SizeLabel, width))
	for _, btn := range p.Actions {
		ew.line("")
		ew.line(center(buttonLabel(btn), width))
	}

	return ew.err
}

// RenderListing writes a folder listing to w
func (r TextRenderer) RenderListing(w io.Writer, l *Listing) error {
	width := r.width()
	ew := &errWriter{w: w}

	r.header(ew, l.Header, width)
	if len(l.Rows) == 0 {
		ew.line(center("(empty)", width))
		return ew.err
	}

	iconWidth := 0
	for _, row := range l.Rows {
		if n := utf8.RuneCountInString(string(row.Icon)); n > iconWidth {
			iconWidth = n
		}
	}
	for _, row := range l.Rows {
		line := fmt.Sprintf("%-*s  %s", iconWidth, row.Icon, row.Name)
		if row.SizeLabel != "" {
			line = padRight(line, width-utf8.RuneCountInString(row.SizeLabel)) + row.SizeLabel
		}
		ew.line(line)
	}
	return ew.err
}

func (r TextRenderer) width() int {
	if r.Width > 0 {
		return r.Width
	}
	return DefaultWidth
}

func (r TextRenderer) header(ew *errWriter, h Header, width int) {
	rule := strings.Repeat("-", width)
	ew.line(rule)
	ew.line(center(h.Title, width))
	if h.Desc != "" {
		ew.line(center(h.Desc, width))
	}
	ew.line(rule)
}

func buttonLabel(b Button) string {
	if b.Type == ButtonPrimary {
		return "[[ " + b.Label + " ]]"
	}
	return "[ " + b.Label + " ]"
}

func center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return strings.Repeat(" ", (width-n)/2) + s
}

func padRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-n)
}

// errWriter keeps the first write error and skips later writes
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) line(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = io.WriteString(ew.w, s+"\n")
}

// Package render converts article bodies from markdown to HTML.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// DefaultStyle is the chroma style used for fenced code.
const DefaultStyle = "github"

// Renderer turns markdown into HTML in a single pass. Raw HTML in the source
// is omitted since article bodies come from an external API.
// A Renderer is safe for concurrent use.
type Renderer struct {
	md goldmark.Markdown
}

// New returns a Renderer with GFM and syntax highlighting in style.
func New(style string) *Renderer {
	if style == "" {
		style = DefaultStyle
	}
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				highlighting.NewHighlighting(
					highlighting.WithStyle(style),
				),
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
		),
	}
}

// Markdown converts src to HTML.
func (r *Renderer) Markdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// Code renders a highlighted code block for language.
func (r *Renderer) Code(language, code string) (template.HTML, error) {
	fence := "```"
	for strings.Contains(code, fence) {
		fence += "`"
	}
	src := fence + strings.TrimSpace(language) + "\n" + strings.TrimRight(code, "\n") + "\n" + fence + "\n"
	return r.Markdown(src)
}

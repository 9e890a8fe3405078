package render

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownBasics(t *testing.T) {
	r := New("")

	out, err := r.Markdown("## Getting Started\n\nSome **bold** text.\n\n- one\n- two\n")
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(out)))
	require.NoError(t, err)

	assert.Equal(t, "Getting Started", doc.Find("h2").Text())
	id, ok := doc.Find("h2").Attr("id")
	assert.True(t, ok)
	assert.Equal(t, "getting-started", id)
	assert.Equal(t, "bold", doc.Find("strong").Text())
	assert.Equal(t, 2, doc.Find("ul li").Length())
}

func TestMarkdownGFMTable(t *testing.T) {
	out, err := New("").Markdown("| a | b |\n|---|---|\n| 1 | 2 |\n")
	require.NoError(t, err)
	assert.Contains(t, string(out), "<table>")
}

func TestMarkdownDropsRawHTML(t *testing.T) {
	out, err := New("").Markdown("hello <script>alert(1)</script>")
	require.NoError(t, err)
	assert.NotContains(t, string(out), "<script>")
}

func TestMarkdownDeterministic(t *testing.T) {
	r := New("monokai")
	src := "# Title\n\n```go\nfmt.Println(\"hi\")\n```\n"

	first, err := r.Markdown(src)
	require.NoError(t, err)
	second, err := r.Markdown(src)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCodeHighlights(t *testing.T) {
	out, err := New("").Code("go", "package main\n\nfunc main() {}\n")
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(out)))
	require.NoError(t, err)

	pre := doc.Find("pre")
	require.Equal(t, 1, pre.Length())
	assert.Contains(t, pre.Text(), "func main()")
	_, styled := pre.Attr("style")
	assert.True(t, styled, "highlighted blocks carry inline styles")
}

func TestCodeWithEmbeddedFence(t *testing.T) {
	out, err := New("").Code("markdown", "```go\nx := 1\n```")
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(out)))
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Find("pre").Length())
	assert.Contains(t, doc.Find("pre").Text(), "x := 1")
}

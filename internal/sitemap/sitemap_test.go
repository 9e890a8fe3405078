package sitemap

import (
	"bytes"
	"encoding/xml"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/content"
)

func boolPtr(b bool) *bool { return &b }

func TestBuild(t *testing.T) {
	now := time.Date(2026, 10, 18, 15, 0, 0, 0, time.UTC)
	created := content.Timestamp{Time: time.Date(2024, 3, 9, 8, 0, 0, 0, time.UTC)}

	store := content.NewStore(map[string][]content.Article{
		content.ResourceBlogs: {
			{ID: "cloud-migration", CreatedAt: created},
			{ID: "draft", Published: boolPtr(false)},
			{AltID: "65f0c1"},
			{Title: "no identifier"},
		},
		content.ResourceProjects: {
			{ID: "term mail", Published: boolPtr(true)},
		},
	})

	set := Build("https://zach.dev/", store, now)

	var locs []string
	for _, u := range set.URLs {
		locs = append(locs, u.Loc)
	}
	assert.Equal(t, []string{
		"https://zach.dev/",
		"https://zach.dev/blogs",
		"https://zach.dev/contact",
		"https://zach.dev/blogs/cloud-migration",
		"https://zach.dev/blogs/65f0c1",
		"https://zach.dev/projects/term%20mail",
	}, locs)

	assert.Equal(t, "2026-10-18", set.URLs[0].LastMod)
	assert.Equal(t, "1.0", set.URLs[0].Priority)
	assert.Equal(t, "2024-03-09", set.URLs[3].LastMod)
	assert.Equal(t, "2026-10-18", set.URLs[4].LastMod, "missing createdAt falls back to today")
}

func TestBuildEmptyStore(t *testing.T) {
	set := Build("http://localhost:8080", nil, time.Now())
	assert.Len(t, set.URLs, len(StaticRoutes))
}

func TestWrite(t *testing.T) {
	set := Build("https://zach.dev", content.NewStore(map[string][]content.Article{
		content.ResourceBlogs: {{ID: "a"}},
	}), time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC))

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, set))

	out := buf.String()
	assert.Contains(t, out, `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, out, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	assert.Contains(t, out, "<loc>https://zach.dev/blogs/a</loc>")

	var decoded URLSet
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &decoded))
	assert.Len(t, decoded.URLs, 4)
}

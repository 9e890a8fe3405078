// Package sitemap builds the sitemaps.org urlset for the site's static routes
// and every published blog post and project.
package sitemap

import (
	"encoding/xml"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/Zachkp/portfolio/internal/content"
)

const xmlns = "http://www.sitemaps.org/schemas/sitemap/0.9"

const dateLayout = "2006-01-02"

// StaticRoutes are listed before any article.
var StaticRoutes = []string{"/", "/blogs", "/contact"}

// URLSet is the sitemap document.
type URLSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []URL    `xml:"url"`
}

// URL is one sitemap entry.
type URL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// Build lists the static routes and one entry per published article of the
// blogs and projects resources. lastmod is the article's createdAt date, or
// now's date when absent.
func Build(baseURL string, store *content.Store, now time.Time) URLSet {
	base := strings.TrimRight(baseURL, "/")
	today := now.UTC().Format(dateLayout)

	set := URLSet{Xmlns: xmlns}
	for _, route := range StaticRoutes {
		set.URLs = append(set.URLs, URL{
			Loc:        base + route,
			LastMod:    today,
			ChangeFreq: "weekly",
			Priority:   staticPriority(route),
		})
	}

	for _, section := range []struct {
		resource string
		prefix   string
	}{
		{content.ResourceBlogs, "/blogs/"},
		{content.ResourceProjects, "/projects/"},
	} {
		for _, a := range store.All(section.resource) {
			if !a.IsPublished() || a.Key() == "" {
				continue
			}
			set.URLs = append(set.URLs, URL{
				Loc:        base + section.prefix + url.PathEscape(a.Key()),
				LastMod:    a.Date(now).UTC().Format(dateLayout),
				ChangeFreq: "monthly",
				Priority:   "0.7",
			})
		}
	}
	return set
}

func staticPriority(route string) string {
	if route == "/" {
		return "1.0"
	}
	return "0.8"
}

// Write encodes set as an indented XML document.
func Write(w io.Writer, set URLSet) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("writing sitemap header: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return fmt.Errorf("encoding sitemap: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("writing sitemap: %w", err)
	}
	return nil
}

// Package blog holds the listing and detail logic for articles: text and
// category filtering, category derivation, and identifier lookup.
package blog

import (
	"sort"
	"strings"

	"github.com/Zachkp/portfolio/internal/content"
)

// Filter returns the articles matching query and category, in their original
// order. The query is trimmed and lower-cased; an empty query matches every
// article. A non-empty query matches when it is a substring of the title, the
// summary, or any tag, compared case-insensitively. An empty category means no
// category filter; otherwise the article's category must equal it exactly.
// The result is never nil and all is not modified.
func Filter(all []content.Article, query, category string) []content.Article {
	q := normalizeQuery(query)
	out := make([]content.Article, 0, len(all))
	for _, a := range all {
		if matchesCategory(a, category) && matchesText(a, q) {
			out = append(out, a)
		}
	}
	return out
}

// DistinctCategories returns every non-empty category in all, deduplicated and
// sorted. It depends only on all, never on the active filter, so the set of
// category buttons is stable while filtering.
func DistinctCategories(all []content.Article) []string {
	seen := make(map[string]struct{})
	categories := make([]string, 0)
	for _, a := range all {
		if a.Category == "" {
			continue
		}
		if _, ok := seen[a.Category]; ok {
			continue
		}
		seen[a.Category] = struct{}{}
		categories = append(categories, a.Category)
	}
	sort.Strings(categories)
	return categories
}

func normalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

func matchesCategory(a content.Article, category string) bool {
	return category == "" || a.Category == category
}

// matchesText expects an already normalized query. Missing title, summary or
// tags are empty and so never match a non-empty query.
func matchesText(a content.Article, q string) bool {
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(a.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(a.Summary), q) {
		return true
	}
	for _, tag := range a.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

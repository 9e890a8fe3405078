package blog

import (
	"errors"

	"github.com/Zachkp/portfolio/internal/content"
)

// ErrNotFound is returned when no article carries the requested identifier.
var ErrNotFound = errors.New("article not found")

// FindByID returns the first article, in list order, whose ID or alternate ID
// equals id. Records that carry neither are matched on their slug.
func FindByID(all []content.Article, id string) (content.Article, bool) {
	if id == "" {
		return content.Article{}, false
	}
	for _, a := range all {
		if a.ID == id || a.AltID == id || (a.ID == "" && a.AltID == "" && a.Slug == id) {
			return a, true
		}
	}
	return content.Article{}, false
}

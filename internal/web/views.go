package web

import (
	"html/template"
	"net/url"
	"time"

	"github.com/Zachkp/portfolio/internal/blog"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/navstate"
	"github.com/Zachkp/portfolio/internal/render"
)

const displayDate = "January 2, 2006"

// recentBlogCount is how many posts the home page lists.
const recentBlogCount = 3

type articleCard struct {
	Key      string
	Title    string
	Summary  string
	Category string
	Date     string
	Tags     []string
	Href     string
}

type categoryButton struct {
	Name   string
	Active bool
}

// listingView feeds the blog-listing and blog-list templates.
type listingView struct {
	Query        string
	Category     string
	Categories   []categoryButton
	Articles     []articleCard
	Total        int
	Unavailable  bool
	ScrollTarget string
	// RestoreScroll is a vertical offset to return to, 0 for none.
	RestoreScroll int
	// FiltersOOB marks the filter controls for an htmx out-of-band swap.
	FiltersOOB bool
}

type codeBlock struct {
	Title    string
	Language string
	HTML     template.HTML
}

type detailView struct {
	Title        string
	Summary      string
	Category     string
	Date         string
	Tags         []string
	Technologies []string
	Image        string
	Link         string
	GitHub       string
	Body         template.HTML
	Code         []codeBlock
	References   []content.Reference
}

type notice struct {
	Kind string
	Text string
}

func formatDate(a content.Article, now time.Time) string {
	return a.Date(now).Format(displayDate)
}

// blogHref links to a post through the open route so the listing's category
// travels with the visitor.
func blogHref(nav navstate.Synchronizer, a content.Article, category string) string {
	href := "/blogs/" + url.PathEscape(a.Key()) + "/open"
	if q := nav.EncodeReturn(navstate.Return{Category: category}); q != "" {
		href += "?" + q
	}
	return href
}

func projectHref(a content.Article) string {
	return "/projects/" + url.PathEscape(a.Key())
}

func newCard(a content.Article, href string, now time.Time) articleCard {
	return articleCard{
		Key:      a.Key(),
		Title:    a.Title,
		Summary:  a.Summary,
		Category: a.Category,
		Date:     formatDate(a, now),
		Tags:     a.Tags,
		Href:     href,
	}
}

// buildListing filters all by state. Categories always come from all.
func buildListing(nav navstate.Synchronizer, all []content.Article, state navstate.State, unavailable bool, now time.Time) listingView {
	visible := blog.Filter(all, state.Query, state.Category)

	v := listingView{
		Query:       state.Query,
		Category:    state.Category,
		Total:       len(all),
		Unavailable: unavailable,
		Articles:    make([]articleCard, 0, len(visible)),
	}
	for _, name := range blog.DistinctCategories(all) {
		v.Categories = append(v.Categories, categoryButton{Name: name, Active: name == state.Category})
	}
	for _, a := range visible {
		v.Articles = append(v.Articles, newCard(a, blogHref(nav, a, state.Category), now))
	}
	return v
}

// buildDetail renders an article's markdown body and code examples. Render
// failures leave the affected block empty.
func buildDetail(a content.Article, r *render.Renderer, now time.Time) (detailView, error) {
	v := detailView{
		Title:        a.Title,
		Summary:      a.Summary,
		Category:     a.Category,
		Date:         formatDate(a, now),
		Tags:         a.Tags,
		Technologies: a.Technologies,
		Image:        a.Image,
		Link:         a.Link,
		GitHub:       a.GitHub,
		References:   a.References,
	}

	var firstErr error
	if a.Content != "" {
		body, err := r.Markdown(a.Content)
		if err != nil {
			firstErr = err
		}
		v.Body = body
	}
	for _, ex := range a.CodeExamples {
		html, err := r.Code(ex.Language, ex.Code)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		v.Code = append(v.Code, codeBlock{Title: ex.Title, Language: ex.Language, HTML: html})
	}
	return v, firstErr
}

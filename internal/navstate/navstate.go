// Package navstate keeps the blog listing's filter state and the page URL in
// agreement. URL changes (deep links, back/forward) are read with FromURL;
// user actions go through Activate and Clear, and URL renders the address the
// browser history should show for the resulting state.
package navstate

import (
	"net/url"
	"strings"
)

const (
	// DefaultParam is the query parameter holding the active category.
	DefaultParam = "category"
	// DefaultAnchor is the element the listing scrolls to after a deep link.
	DefaultAnchor = "blog-list"
	// QueryParam carries the free-text search. It is never written into the
	// pushed URL, only into full-page redirects (PageURL).
	QueryParam = "q"
	// ScrollParam carries a vertical scroll offset back to the listing.
	ScrollParam = "scroll"
)

// State is the listing's filter input: free-text query and active category.
// An empty Category means no category filter.
type State struct {
	Query    string
	Category string
}

// IsZero reports whether no filter is active.
func (s State) IsZero() bool {
	return s.Query == "" && s.Category == ""
}

// Synchronizer maps State to and from URLs rooted at BasePath.
type Synchronizer struct {
	BasePath string
	Param    string
	Anchor   string
}

// New returns a Synchronizer for basePath with the default parameter and anchor.
func New(basePath string) Synchronizer {
	return Synchronizer{BasePath: basePath, Param: DefaultParam, Anchor: DefaultAnchor}
}

func (s Synchronizer) param() string {
	if s.Param == "" {
		return DefaultParam
	}
	return s.Param
}

// FromURL pulls the category out of values. A present, non-empty category
// becomes active and scroll is true so the list is brought into view. When
// absent, current's category is kept. The query is always kept from current.
func (s Synchronizer) FromURL(values url.Values, current State) (next State, scroll bool) {
	next = current
	if category := values.Get(s.param()); category != "" {
		next.Category = category
		scroll = true
	}
	return next, scroll
}

// Activate applies a category button press. Pressing the active category
// toggles it off and also clears the query; any other category replaces the
// active one and keeps the query.
func Activate(current State, category string) State {
	if category == current.Category {
		return Clear()
	}
	return State{Query: current.Query, Category: category}
}

// Clear resets query and category.
func Clear() State {
	return State{}
}

// URL is the address for state: the bare base path without a category,
// otherwise base?<param>=<escaped category>. Spaces encode as %20.
func (s Synchronizer) URL(state State) string {
	if state.Category == "" {
		return s.BasePath
	}
	return s.BasePath + "?" + s.param() + "=" + escape(state.Category)
}

// PageURL is URL(state) plus the query, for full-page redirects where the
// search box has to come back filled in.
func (s Synchronizer) PageURL(state State) string {
	u := s.URL(state)
	if state.Query == "" {
		return u
	}
	sep := "?"
	if strings.Contains(u, "?") {
		sep = "&"
	}
	return u + sep + QueryParam + "=" + escape(state.Query)
}

// ReturnURL is the listing address for coming back from a detail view.
func (s Synchronizer) ReturnURL(r Return) string {
	u := s.URL(State{Category: r.Category})
	if r.ScrollY <= 0 {
		return u
	}
	sep := "?"
	if strings.Contains(u, "?") {
		sep = "&"
	}
	return u + sep + ScrollParam + "=" + itoa(r.ScrollY)
}

func escape(v string) string {
	return strings.ReplaceAll(url.QueryEscape(v), "+", "%20")
}

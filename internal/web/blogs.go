package web

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/blog"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/logger"
	"github.com/Zachkp/portfolio/internal/navstate"
)

// listing builds the blog listing for state.
func (h *Handler) listing(state navstate.State) listingView {
	return buildListing(
		h.blogs,
		h.deps.Store.All(content.ResourceBlogs),
		state,
		h.deps.Store.Unavailable(content.ResourceBlogs),
		h.deps.Now(),
	)
}

// blogIndex renders the full listing page. A category in the URL activates
// that filter and asks the page to scroll the list into view; a scroll offset
// left by a detail page's back link is restored.
func (h *Handler) blogIndex(c *gin.Context) {
	values := c.Request.URL.Query()
	state, scroll := h.blogs.FromURL(values, navstate.State{Query: values.Get(navstate.QueryParam)})

	view := h.listing(state)
	if scroll {
		view.ScrollTarget = h.blogs.Anchor
	}
	view.RestoreScroll = h.blogs.ReturnFromQuery(values).ScrollY

	c.HTML(http.StatusOK, "blogs.html", h.page(c, "Blog", gin.H{"Listing": view}))
}

// blogList serves search-as-you-type results for the current category. The
// filter controls ride along out of band so category buttons and the clear
// control see the query just typed.
func (h *Handler) blogList(c *gin.Context) {
	state, _ := h.blogs.FromURL(c.Request.URL.Query(), navstate.State{Query: c.Query(navstate.QueryParam)})
	h.respondListing(c, state, "blog-search-results")
}

// blogCategory applies a category button press. Pressing the active category
// clears every filter.
func (h *Handler) blogCategory(c *gin.Context) {
	current := navstate.State{
		Query:    c.PostForm(navstate.QueryParam),
		Category: c.PostForm("active"),
	}
	state := navstate.Activate(current, c.PostForm(navstate.DefaultParam))
	h.respondListing(c, state, "blog-listing")
}

func (h *Handler) blogClear(c *gin.Context) {
	h.respondListing(c, navstate.Clear(), "blog-listing")
}

// respondListing answers an htmx request with the fragment and the URL the
// browser history should show. Other clients are redirected to the full page
// for state, query included.
func (h *Handler) respondListing(c *gin.Context, state navstate.State, fragment string) {
	if !isHTMX(c) {
		c.Redirect(http.StatusSeeOther, h.blogs.PageURL(state))
		return
	}
	view := h.listing(state)
	view.FiltersOOB = fragment == "blog-search-results"
	c.Header("HX-Push-Url", h.blogs.URL(state))
	c.HTML(http.StatusOK, fragment, view)
}

// blogOpen stashes the listing context in a one-shot cookie and forwards to
// the detail page.
func (h *Handler) blogOpen(c *gin.Context) {
	id := c.Param("id")
	ret := h.blogs.ReturnFromQuery(c.Request.URL.Query())
	if !ret.IsZero() {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(navstate.ReturnCookie, h.blogs.EncodeReturn(ret), navstate.ReturnMaxAge, "/blogs", "", false, true)
	}
	c.Redirect(http.StatusSeeOther, "/blogs/"+url.PathEscape(id))
}

// takeReturn reads and deletes the return cookie.
func (h *Handler) takeReturn(c *gin.Context) navstate.Return {
	raw, err := c.Cookie(navstate.ReturnCookie)
	if err != nil {
		return navstate.Return{}
	}
	c.SetCookie(navstate.ReturnCookie, "", -1, "/blogs", "", false, true)
	return h.blogs.DecodeReturn(raw)
}

func (h *Handler) blogDetail(c *gin.Context) {
	ret := h.takeReturn(c)
	h.detail(c, detailRequest{
		resource:  content.ResourceBlogs,
		id:        c.Param("id"),
		backURL:   h.blogs.ReturnURL(ret),
		backLabel: "Back to articles",
		notFound:  "Article not found",
	})
}

func (h *Handler) projectDetail(c *gin.Context) {
	h.detail(c, detailRequest{
		resource:  content.ResourceProjects,
		id:        c.Param("id"),
		backURL:   "/#projects",
		backLabel: "Back to projects",
		notFound:  "Project not found",
	})
}

type detailRequest struct {
	resource  string
	id        string
	backURL   string
	backLabel string
	notFound  string
}

// detail drives a blog.Detail through its states and renders the outcome:
// 200 when found, 404 when the identifier is unknown, 500 on error.
func (h *Handler) detail(c *gin.Context, req detailRequest) {
	d := blog.NewDetail(req.id)
	if err := c.Request.Context().Err(); err != nil {
		d.Fail(err)
	} else {
		d.Resolve(h.deps.Store.All(req.resource))
	}

	base := gin.H{"BackURL": req.backURL, "BackLabel": req.backLabel}

	switch d.Phase() {
	case blog.PhaseFound:
		a, _ := d.Article()
		view, err := buildDetail(a, h.deps.Renderer, h.deps.Now())
		if err != nil {
			h.deps.Logger.Warn("Rendering article content failed",
				logger.String("resource", req.resource),
				logger.String("id", req.id),
				logger.Error(err),
			)
		}
		base["Detail"] = view
		c.HTML(http.StatusOK, "detail.html", h.page(c, a.Title, base))

	case blog.PhaseNotFound:
		base["Message"] = req.notFound
		c.HTML(http.StatusNotFound, "not-found.html", h.page(c, req.notFound, base))

	default:
		h.deps.Logger.Error("Detail view failed",
			logger.String("resource", req.resource),
			logger.String("id", req.id),
			logger.Error(d.Err()),
		)
		base["Message"] = d.Message()
		c.HTML(http.StatusInternalServerError, "error.html", h.page(c, "Something went wrong", base))
	}
}

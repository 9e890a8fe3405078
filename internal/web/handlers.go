package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/logger"
	"github.com/Zachkp/portfolio/internal/theme"
)

// page returns the data every full page needs, merged with extra.
func (h *Handler) page(c *gin.Context, title string, extra gin.H) gin.H {
	data := gin.H{
		"Title":    title,
		"SiteName": h.deps.SiteName,
		"Theme":    string(h.currentTheme(c)),
		"Year":     h.deps.Now().Year(),
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}

func (h *Handler) currentTheme(c *gin.Context) theme.Theme {
	if h.deps.Theme == nil {
		return theme.Default
	}
	t, err := h.deps.Theme.Get(c.Request.Context(), visitorID(c))
	if err != nil {
		h.deps.Logger.Warn("Theme lookup failed", logger.Error(err))
	}
	return t
}

func (h *Handler) home(c *gin.Context) {
	now := h.deps.Now()

	var projects []articleCard
	for _, a := range h.deps.Store.All(content.ResourceProjects) {
		projects = append(projects, newCard(a, projectHref(a), now))
	}

	blogs := h.deps.Store.All(content.ResourceBlogs)
	if len(blogs) > recentBlogCount {
		blogs = blogs[:recentBlogCount]
	}
	recent := make([]articleCard, 0, len(blogs))
	for _, a := range blogs {
		recent = append(recent, newCard(a, blogHref(h.blogs, a, ""), now))
	}

	c.HTML(http.StatusOK, "index.html", h.page(c, "", gin.H{
		"Profile":     h.deps.Profile,
		"Projects":    projects,
		"RecentBlogs": recent,
	}))
}

func (h *Handler) workContent(c *gin.Context) {
	c.HTML(http.StatusOK, "work-content.html", gin.H{"Profile": h.deps.Profile})
}

func (h *Handler) educationContent(c *gin.Context) {
	c.HTML(http.StatusOK, "education-content.html", gin.H{"Profile": h.deps.Profile})
}

// contactData is the view for the contact form. Errors is always a non-nil map.
func contactData(form contact.Submission, fieldErrors map[string]string, n *notice) gin.H {
	if fieldErrors == nil {
		fieldErrors = map[string]string{}
	}
	data := gin.H{
		"Form":   form,
		"Errors": fieldErrors,
	}
	if n != nil {
		data["Notice"] = n
	}
	return data
}

func (h *Handler) contactPage(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", h.page(c, "Contact", contactData(contact.Submission{}, nil, nil)))
}

func (h *Handler) contactForm(c *gin.Context) {
	c.HTML(http.StatusOK, "contact-form.html", contactData(contact.Submission{}, nil, nil))
}

// contactSubmit sends the form once. On failure the form comes back with the
// visitor's input intact and a dismissible notice.
func (h *Handler) contactSubmit(c *gin.Context) {
	var form contact.Submission
	if err := c.ShouldBind(&form); err != nil {
		_ = c.Error(err)
	}

	sub, err := h.deps.Contact.Submit(c.Request.Context(), form)

	var data gin.H
	status := http.StatusOK
	switch {
	case err == nil:
		data = contactData(contact.Submission{}, nil, &notice{Kind: "success", Text: contact.SuccessMessage()})
	case errors.Is(err, contact.ErrValidation):
		status = http.StatusUnprocessableEntity
		data = contactData(sub, contact.FieldErrors(err), &notice{Kind: "error", Text: contact.UserMessage(err)})
	default:
		status = http.StatusBadGateway
		data = contactData(sub, nil, &notice{Kind: "error", Text: contact.UserMessage(err)})
	}

	if isHTMX(c) {
		// htmx only swaps 2xx responses by default.
		c.HTML(http.StatusOK, "contact-form.html", data)
		return
	}
	c.HTML(status, "contact.html", h.page(c, "Contact", data))
}

func (h *Handler) themeToggle(c *gin.Context) {
	next := theme.Default
	if h.deps.Theme != nil {
		t, err := h.deps.Theme.Toggle(c.Request.Context(), visitorID(c))
		if err != nil {
			_ = c.Error(err)
			c.Status(http.StatusInternalServerError)
			return
		}
		next = t
	}

	if isHTMX(c) {
		trigger, _ := json.Marshal(map[string]string{"theme-changed": string(next)})
		c.Header("HX-Trigger", string(trigger))
		c.Status(http.StatusNoContent)
		return
	}

	back := "/"
	if ref := c.Request.Referer(); ref != "" {
		back = ref
	}
	c.Redirect(http.StatusSeeOther, back)
}

type healthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// health reports content sources and preference storage. An empty resource
// is degraded, not unhealthy: the site still renders.
func (h *Handler) health(c *gin.Context) {
	checks := make(map[string]healthCheck)
	overall := "healthy"

	for _, resource := range []string{content.ResourceBlogs, content.ResourceProjects} {
		check := healthCheck{Status: "healthy", Message: string(h.deps.Store.Source(resource))}
		if h.deps.Store.Unavailable(resource) {
			check.Status = "degraded"
			overall = "degraded"
		}
		checks["content_"+resource] = check
	}

	status := http.StatusOK
	if h.deps.Prefs != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.deps.Prefs.Ping(ctx); err != nil {
			checks["prefs"] = healthCheck{Status: "unhealthy", Message: err.Error()}
			overall = "unhealthy"
			status = http.StatusServiceUnavailable
		} else {
			checks["prefs"] = healthCheck{Status: "healthy"}
		}
	}

	c.JSON(status, gin.H{
		"status":  overall,
		"version": h.deps.Version,
		"uptime":  h.deps.Now().Sub(h.startedAt).Round(time.Second).String(),
		"checks":  checks,
	})
}

func (h *Handler) notFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "not-found.html", h.page(c, "Not found", gin.H{
		"Message":   "Page not found",
		"BackURL":   "/",
		"BackLabel": "Back home",
	}))
}

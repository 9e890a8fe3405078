package web

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Zachkp/portfolio/internal/logger"
)

const (
	visitorCookie = "visitor_id"
	visitorKey    = "visitor"
	// visitorMaxAge keeps the visitor cookie for a year.
	visitorMaxAge = 365 * 24 * 60 * 60
)

// LoggerMiddleware logs one line per request with method, path, status,
// duration and client IP.
func LoggerMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		fields := []logger.Field{
			logger.String("method", c.Request.Method),
			logger.String("path", path),
			logger.Int("status", c.Writer.Status()),
			logger.Duration("duration", time.Since(start)),
			logger.String("client_ip", c.ClientIP()),
		}
		if query != "" {
			fields = append(fields, logger.String("query", query))
		}
		if isHTMX(c) {
			fields = append(fields, logger.Bool("htmx", true))
		}

		if len(c.Errors) > 0 {
			fields = append(fields, logger.Strings("errors", c.Errors.Errors()))
			log.Error("HTTP request with errors", fields...)
			return
		}
		if strings.HasPrefix(path, "/static/") || path == "/healthz" || path == "/metrics" {
			log.Debug("HTTP request", fields...)
			return
		}
		log.Info("HTTP request", fields...)
	}
}

// RecoveryMiddleware turns a panic into a logged 500 error page.
func RecoveryMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error("Panic recovered",
					logger.Any("error", err),
					logger.String("path", c.Request.URL.Path),
					logger.String("method", c.Request.Method),
					logger.String("client_ip", c.ClientIP()),
				)
				c.Abort()
				c.HTML(http.StatusInternalServerError, "error.html", gin.H{
					"Title":   "Something went wrong",
					"Message": "An unexpected error occurred. Please try again.",
					"Theme":   "light",
				})
			}
		}()

		c.Next()
	}
}

// VisitorMiddleware gives each browser a random visitor ID cookie so the theme
// preference can be remembered. Static assets are skipped, and no cookie is
// issued when the browser sends Do Not Track.
func VisitorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/static/") ||
			strings.HasPrefix(path, "/favicon") ||
			path == "/healthz" ||
			path == "/metrics" {
			c.Next()
			return
		}

		if id, err := c.Cookie(visitorCookie); err == nil {
			if _, perr := uuid.Parse(id); perr == nil {
				c.Set(visitorKey, id)
				c.Next()
				return
			}
		}

		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		id := uuid.NewString()
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(visitorCookie, id, visitorMaxAge, "/", "", false, true)
		c.Set(visitorKey, id)
		c.Next()
	}
}

// visitorID returns the request's visitor ID, or "" when there is none.
func visitorID(c *gin.Context) string {
	return c.GetString(visitorKey)
}

func isHTMX(c *gin.Context) bool {
	return c.GetHeader("HX-Request") == "true"
}

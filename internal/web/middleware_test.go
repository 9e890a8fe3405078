package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/logger"
)

func TestRecoveryMiddlewareRendersErrorPage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tmpl, err := loadTemplates()
	require.NoError(t, err)

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(RecoveryMiddleware(logger.NewNop()))
	r.GET("/boom", func(*gin.Context) { panic("kaboom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "An unexpected error occurred")
}

func TestVisitorMiddlewareSkipsStatic(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(VisitorMiddleware())
	var seen string
	r.GET("/*path", func(c *gin.Context) {
		seen = visitorID(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/static/css/site.css", nil))
	assert.Empty(t, w.Result().Cookies())
	assert.Empty(t, seen)

	req := httptest.NewRequest(http.MethodGet, "/blogs", nil)
	req.AddCookie(&http.Cookie{Name: visitorCookie, Value: "not-a-uuid"})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Len(t, w.Result().Cookies(), 1, "invalid ids are replaced")
	assert.Equal(t, w.Result().Cookies()[0].Value, seen)
}

package cmd

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/logger"
)

func TestWriteSitemapFromContentAPI(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/blogs":
			_, _ = w.Write([]byte(`[{"id":"b1","title":"First","createdAt":"2024-03-01T00:00:00Z"},{"id":"draft","title":"Draft","published":false}]`))
		case "/api/projects":
			_, _ = w.Write([]byte(`{"projects":[{"_id":"p1","title":"Tool"}]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	cfg := config.DefaultConfig()
	cfg.Content.BaseURL = srv.URL
	cfg.Content.FallbackDir = ""
	cfg.Site.URL = "https://zach.dev/"

	var buf bytes.Buffer
	now := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	require.NoError(t, writeSitemap(context.Background(), cfg, logger.NewNop(), &buf, now))

	out := buf.String()
	assert.Contains(t, out, "<loc>https://zach.dev/</loc>")
	assert.Contains(t, out, "<loc>https://zach.dev/blogs/b1</loc>")
	assert.Contains(t, out, "<lastmod>2024-03-01</lastmod>")
	assert.Contains(t, out, "<loc>https://zach.dev/projects/p1</loc>")
	assert.NotContains(t, out, "draft")
}

func TestWriteSitemapUsesFallback(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "blogs.json"), []byte(`[{"slug":"local-post","title":"Local"}]`), 0o644))

	cfg := config.DefaultConfig()
	cfg.Content.BaseURL = "http://127.0.0.1:1"
	cfg.Content.Timeout = time.Second
	cfg.Content.FallbackDir = dir
	cfg.Content.Resources = []string{"blogs"}

	var buf bytes.Buffer
	require.NoError(t, writeSitemap(context.Background(), cfg, logger.NewNop(), &buf, time.Now()))
	assert.Contains(t, buf.String(), "/blogs/local-post</loc>")
}

func TestLoadContentTimeoutServesFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "blogs.json"), []byte(`[{"id":"b1","title":"Kept"}]`), 0o644))

	cfg := config.DefaultConfig()
	cfg.Content.BaseURL = srv.URL
	cfg.Content.FallbackDir = dir
	cfg.Content.Resources = []string{"blogs"}
	cfg.Content.Timeout = 10 * time.Second
	cfg.Content.LoadTimeout = 200 * time.Millisecond

	store, err := loadContent(context.Background(), cfg, logger.NewNop(), nil)
	require.NoError(t, err)
	assert.Equal(t, content.SourceFallback, store.Source(content.ResourceBlogs))
	assert.Equal(t, "Kept", store.All(content.ResourceBlogs)[0].Title)
}

func TestLoadContentCancelled(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Content.BaseURL = "http://127.0.0.1:1"
	cfg.Content.FallbackDir = ""

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := loadContent(ctx, cfg, logger.NewNop(), nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestInitConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio", "config.yaml")

	require.NoError(t, initConfig(path, false))
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig().Server.Port, cfg.Server.Port)

	assert.Error(t, initConfig(path, false), "existing file is kept")
	assert.NoError(t, initConfig(path, true))
}

func TestVersionCommand(t *testing.T) {
	SetVersionInfo("1.2.3", "abc123", "2025-01-01")
	t.Cleanup(func() { SetVersionInfo("dev", "none", "unknown") })

	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	t.Cleanup(func() { versionCmd.SetOut(nil) })
	versionCmd.Run(versionCmd, nil)

	assert.Equal(t, "portfolio 1.2.3 (commit: abc123, built: 2025-01-01)\n", buf.String())
}

package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"

	"github.com/Zachkp/portfolio/internal/logger"
)

// DefaultResources are the content API resources loaded at startup.
var DefaultResources = []string{"blogs", "projects"}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         8080,
			StaticDir:    "static",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Content: ContentConfig{
			BaseURL:     "http://localhost:5000",
			FallbackDir: filepath.Join("static", "data"),
			Timeout:     10 * time.Second,
			LoadTimeout: 30 * time.Second,
			Resources:   DefaultResources,
		},
		Contact: ContactConfig{
			Timeout: 15 * time.Second,
			SMTP: SMTPConfig{
				Host: "smtp.gmail.com",
				Port: "587",
			},
		},
		Site: SiteConfig{
			Name: "zach.dev",
			URL:  "http://localhost:8080",
		},
		DataDir: "data",
		Log:     logger.Config{Level: "info"},
	}
}

// DefaultConfigPath is where the config file is looked up when --config is not given.
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "portfolio", "config.yaml")
}

package config

import (
	"time"

	"github.com/Zachkp/portfolio/internal/logger"
)

// Config is the top-level site configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server" koanf:"server"`
	Content ContentConfig `yaml:"content" koanf:"content"`
	Contact ContactConfig `yaml:"contact" koanf:"contact"`
	Site    SiteConfig    `yaml:"site" koanf:"site"`
	// DataDir holds the preference database.
	DataDir string        `yaml:"data_dir" koanf:"data_dir"`
	Log     logger.Config `yaml:"log" koanf:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `yaml:"port" koanf:"port"`
	Debug        bool          `yaml:"debug" koanf:"debug"`
	StaticDir    string        `yaml:"static_dir" koanf:"static_dir"`
	ReadTimeout  time.Duration `yaml:"read_timeout" koanf:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout" koanf:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" koanf:"idle_timeout"`
}

// ContentConfig controls where articles come from.
type ContentConfig struct {
	// BaseURL is the content API root; resources are read from BaseURL + /api/<resource>.
	BaseURL string `yaml:"base_url" koanf:"base_url"`
	// FallbackDir holds <resource>.json snapshots used when the API is unavailable.
	FallbackDir string        `yaml:"fallback_dir" koanf:"fallback_dir"`
	Timeout     time.Duration `yaml:"timeout" koanf:"timeout"`
	LoadTimeout time.Duration `yaml:"load_timeout" koanf:"load_timeout"`
	Resources   []string      `yaml:"resources" koanf:"resources"`
}

// ContactConfig selects how contact submissions are delivered.
type ContactConfig struct {
	// Endpoint receives a JSON POST per submission. Takes precedence over SMTP.
	Endpoint string        `yaml:"endpoint" koanf:"endpoint"`
	Timeout  time.Duration `yaml:"timeout" koanf:"timeout"`
	SMTP     SMTPConfig    `yaml:"smtp" koanf:"smtp"`
}

// SMTPConfig holds mail delivery settings.
type SMTPConfig struct {
	Host     string `yaml:"host" koanf:"host"`
	Port     string `yaml:"port" koanf:"port"`
	User     string `yaml:"user" koanf:"user"`
	Password string `yaml:"password" koanf:"password"`
	To       string `yaml:"to" koanf:"to"`
}

// SiteConfig holds values used when building absolute URLs.
type SiteConfig struct {
	Name string `yaml:"name" koanf:"name"`
	URL  string `yaml:"url" koanf:"url"`
	// Profile overrides the embedded profile document.
	Profile string `yaml:"profile" koanf:"profile"`
}

// Package config loads site configuration from defaults, an optional YAML
// file, and environment variables.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/Zachkp/portfolio/internal/logger"
)

// EnvPrefix is the prefix for environment overrides. Nested keys use a double
// underscore: PORTFOLIO_SERVER__PORT -> server.port.
const EnvPrefix = "PORTFOLIO_"

// Load reads .env (if present), then the YAML file at path (if present), then
// PORTFOLIO_* overrides, then the plain variables the site has always honoured
// (PORT, SMTP_*, TO_EMAIL).
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := applyLegacyEnv(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

func applyLegacyEnv(cfg *Config) error {
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Server.Port = port
	}
	if v := os.Getenv("SMTP_HOST"); v != "" {
		cfg.Contact.SMTP.Host = v
	}
	if v := os.Getenv("SMTP_PORT"); v != "" {
		cfg.Contact.SMTP.Port = v
	}
	if v := os.Getenv("SMTP_USER"); v != "" {
		cfg.Contact.SMTP.User = v
	}
	if v := os.Getenv("SMTP_PASS"); v != "" {
		cfg.Contact.SMTP.Password = v
	}
	if v := os.Getenv("TO_EMAIL"); v != "" {
		cfg.Contact.SMTP.To = v
	}
	return nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port %d out of range", c.Server.Port))
	}
	if err := validateHTTPURL("content.base_url", c.Content.BaseURL); err != nil {
		errs = append(errs, err)
	}
	if c.Contact.Endpoint != "" {
		if err := validateHTTPURL("contact.endpoint", c.Contact.Endpoint); err != nil {
			errs = append(errs, err)
		}
	}
	if c.Site.URL != "" {
		if err := validateHTTPURL("site.url", c.Site.URL); err != nil {
			errs = append(errs, err)
		}
	}
	if len(c.Content.Resources) == 0 {
		errs = append(errs, errors.New("content.resources must name at least one resource"))
	}
	if c.DataDir == "" {
		errs = append(errs, errors.New("data_dir is required"))
	}
	if !logger.ValidLevel(c.Log.Level) {
		errs = append(errs, fmt.Errorf("log.level %q: must be one of debug, info, warn, error", c.Log.Level))
	}

	return errors.Join(errs...)
}

func validateHTTPURL(field, raw string) error {
	if raw == "" {
		return fmt.Errorf("%s is required", field)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: invalid url: %w", field, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s: url scheme must be http or https, got %q", field, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%s: url has no host", field)
	}
	return nil
}

package config

import (
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateMetacritic(); err != nil {
		return err
	}
	if err := c.validateCache(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateMetacritic() error {
	if !strings.HasPrefix(c.Metacritic.BaseURL, "https://") && !strings.HasPrefix(c.Metacritic.BaseURL, "http://") {
		return fmt.Errorf("metacritic base_url: %q is not an http(s) URL", c.Metacritic.BaseURL)
	}
	if !strings.HasPrefix(c.Metacritic.SiteOrigin, "https://") && !strings.HasPrefix(c.Metacritic.SiteOrigin, "http://") {
		return fmt.Errorf("metacritic site_origin: %q is not an http(s) URL", c.Metacritic.SiteOrigin)
	}
	if c.Metacritic.RequestTimeout <= 0 {
		return fmt.Errorf("metacritic request_timeout: must be positive, got %d", c.Metacritic.RequestTimeout)
	}
	return nil
}

func (c *Config) validateCache() error {
	if c.Cache.TTLSeconds <= 0 {
		return fmt.Errorf("cache ttl_seconds: must be positive, got %d", c.Cache.TTLSeconds)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json", "auto":
	default:
		return fmt.Errorf("logging format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging level: unsupported value %q", c.Logging.Level)
	}
	return nil
}

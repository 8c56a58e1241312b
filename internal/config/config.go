package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Metacritic contains configuration for the review-aggregation backend.
type Metacritic struct {
	BaseURL         string `toml:"base_url"`
	SiteOrigin      string `toml:"site_origin"`
	UserAgent       string `toml:"user_agent"`
	RequestTimeout  int    `toml:"request_timeout"` // seconds
	DefaultPlatform string `toml:"default_platform"`
}

// Cache contains configuration for the in-memory result cache.
type Cache struct {
	TTLSeconds int `toml:"ttl_seconds"`
}

// Settings contains configuration for the host settings document.
type Settings struct {
	Path string `toml:"path"`
}

// API contains configuration for the optional HTTP surface.
type API struct {
	Bind string `toml:"bind"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"` // console, json, or auto
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for CriticDeck.
type Config struct {
	Metacritic Metacritic `toml:"metacritic"`
	Cache      Cache      `toml:"cache"`
	Settings   Settings   `toml:"settings"`
	API        API        `toml:"api"`
	Logging    Logging    `toml:"logging"`
}

// RequestTimeoutDuration returns the backend request timeout.
func (c *Config) RequestTimeoutDuration() time.Duration {
	return time.Duration(c.Metacritic.RequestTimeout) * time.Second
}

// CacheTTLDuration returns the result cache validity window.
func (c *Config) CacheTTLDuration() time.Duration {
	return time.Duration(c.Cache.TTLSeconds) * time.Second
}

// Sample returns the embedded sample configuration file contents.
func Sample() string {
	return sampleConfig
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/criticdeck/config.toml")
}

// Load locates, parses, and validates a configuration file. When path is
// empty the default location is consulted; a missing file yields defaults.
// The returned resolvedPath and exists report where the file was looked for
// and whether it was found.
func Load(path string) (cfg *Config, resolvedPath string, exists bool, err error) {
	loaded := Default()

	resolvedPath, exists, err = resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&loaded); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := loaded.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := loaded.Validate(); err != nil {
		return nil, "", false, err
	}
	return &loaded, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	return defaultPath, false, nil
}

// normalize trims strings, fills empty fields from defaults, and expands the
// settings path.
func (c *Config) normalize() error {
	defaults := Default()

	c.Metacritic.BaseURL = strings.TrimRight(strings.TrimSpace(c.Metacritic.BaseURL), "/")
	if c.Metacritic.BaseURL == "" {
		c.Metacritic.BaseURL = defaults.Metacritic.BaseURL
	}
	c.Metacritic.SiteOrigin = strings.TrimRight(strings.TrimSpace(c.Metacritic.SiteOrigin), "/")
	if c.Metacritic.SiteOrigin == "" {
		c.Metacritic.SiteOrigin = defaults.Metacritic.SiteOrigin
	}
	c.Metacritic.UserAgent = strings.TrimSpace(c.Metacritic.UserAgent)
	if c.Metacritic.UserAgent == "" {
		c.Metacritic.UserAgent = defaults.Metacritic.UserAgent
	}
	c.Metacritic.DefaultPlatform = strings.TrimSpace(c.Metacritic.DefaultPlatform)
	if c.Metacritic.DefaultPlatform == "" {
		c.Metacritic.DefaultPlatform = defaults.Metacritic.DefaultPlatform
	}

	c.Settings.Path = strings.TrimSpace(c.Settings.Path)
	if c.Settings.Path == "" {
		c.Settings.Path = defaults.Settings.Path
	}
	expanded, err := expandPath(c.Settings.Path)
	if err != nil {
		return err
	}
	c.Settings.Path = expanded

	c.API.Bind = strings.TrimSpace(c.API.Bind)
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaults.Logging.Format
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaults.Logging.Level
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"criticdeck/internal/config"
)

func TestDefaultValues(t *testing.T) {
	cfg := config.Default()
	if cfg.Cache.TTLSeconds != 21600 {
		t.Fatalf("ttl_seconds = %d, want 21600", cfg.Cache.TTLSeconds)
	}
	if cfg.Metacritic.RequestTimeout != 15 {
		t.Fatalf("request_timeout = %d, want 15", cfg.Metacritic.RequestTimeout)
	}
	if cfg.Metacritic.DefaultPlatform != "PC" {
		t.Fatalf("default_platform = %q, want PC", cfg.Metacritic.DefaultPlatform)
	}
	if cfg.Metacritic.BaseURL != "https://backend.metacritic.com" {
		t.Fatalf("base_url = %q", cfg.Metacritic.BaseURL)
	}
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")
	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("exists = true for absent file")
	}
	if resolved == "" {
		t.Fatal("resolved path should not be empty")
	}
	if cfg.CacheTTLDuration() != 6*time.Hour {
		t.Fatalf("ttl = %v, want 6h", cfg.CacheTTLDuration())
	}
}

func TestLoadAppliesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := strings.Join([]string{
		"[metacritic]",
		`base_url = "https://fixture.example.com/"`,
		"request_timeout = 5",
		"",
		"[cache]",
		"ttl_seconds = 60",
		"",
		"[logging]",
		`format = "JSON"`,
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("exists = false for present file")
	}
	if cfg.Metacritic.BaseURL != "https://fixture.example.com" {
		t.Fatalf("base_url = %q, want trailing slash trimmed", cfg.Metacritic.BaseURL)
	}
	if cfg.RequestTimeoutDuration() != 5*time.Second {
		t.Fatalf("timeout = %v, want 5s", cfg.RequestTimeoutDuration())
	}
	if cfg.Cache.TTLSeconds != 60 {
		t.Fatalf("ttl_seconds = %d, want 60", cfg.Cache.TTLSeconds)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("format = %q, want json", cfg.Logging.Format)
	}
	// Untouched sections keep their defaults.
	if cfg.Metacritic.UserAgent == "" || cfg.Settings.Path == "" {
		t.Fatalf("defaults not filled: %#v", cfg)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{name: "zero timeout", content: "[metacritic]\nrequest_timeout = -1\n"},
		{name: "zero ttl", content: "[cache]\nttl_seconds = 0\n"},
		{name: "bad log format", content: "[logging]\nformat = \"yaml\"\n"},
		{name: "bad log level", content: "[logging]\nlevel = \"loud\"\n"},
		{name: "bad base url", content: "[metacritic]\nbase_url = \"ftp://example.com\"\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			if _, _, _, err := config.Load(path); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestSampleParsesAndMatchesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(config.Sample()), 0o644); err != nil {
		t.Fatalf("write sample: %v", err)
	}
	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load(sample) returned error: %v", err)
	}
	defaults := config.Default()
	if cfg.Cache.TTLSeconds != defaults.Cache.TTLSeconds {
		t.Fatalf("sample ttl %d differs from default %d", cfg.Cache.TTLSeconds, defaults.Cache.TTLSeconds)
	}
}

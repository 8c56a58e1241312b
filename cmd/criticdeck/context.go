package main

import (
	"fmt"
	"os"

	"log/slog"

	"criticdeck/internal/config"
	"criticdeck/internal/logging"
	"criticdeck/internal/lookup"
	"criticdeck/internal/metacritic"
)

// commandContext carries flag values and lazily loaded configuration shared
// by all subcommands.
type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	cfg        *config.Config
	configPath string
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag, logLevelFlag: logLevelFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	cfg, path, _, err := config.Load(*c.configFlag)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	c.cfg = cfg
	c.configPath = path
	return cfg, nil
}

func (c *commandContext) newLogger(cfg *config.Config) (*slog.Logger, error) {
	level := cfg.Logging.Level
	if *c.logLevelFlag != "" {
		level = *c.logLevelFlag
	}
	logger, err := logging.New(logging.Options{
		Level:  level,
		Format: cfg.Logging.Format,
		Writer: os.Stderr,
	})
	if err != nil {
		return nil, fmt.Errorf("setup logging: %w", err)
	}
	return logger, nil
}

func (c *commandContext) newEngine(cfg *config.Config, logger *slog.Logger) (*lookup.Engine, error) {
	client, err := metacritic.New(cfg.Metacritic.BaseURL, cfg.Metacritic.UserAgent,
		metacritic.WithTimeout(cfg.RequestTimeoutDuration()))
	if err != nil {
		return nil, fmt.Errorf("create metacritic client: %w", err)
	}
	return lookup.NewEngine(client,
		lookup.WithLogger(logger),
		lookup.WithTTL(cfg.CacheTTLDuration()),
		lookup.WithSiteOrigin(cfg.Metacritic.SiteOrigin))
}

package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"criticdeck/internal/api"
	"criticdeck/internal/settings"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var bind string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the score lookup HTTP API",
		Long: `Run the score lookup HTTP API.

The server exposes GET /api/score for lookups, GET and PUT
/api/settings/{key} for persisted settings, and GET /healthz.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.newLogger(cfg)
			if err != nil {
				return err
			}
			engine, err := ctx.newEngine(cfg, logger)
			if err != nil {
				return err
			}
			store, err := settings.Open(cfg.Settings.Path)
			if err != nil {
				return fmt.Errorf("open settings store: %w", err)
			}

			if bind == "" {
				bind = cfg.API.Bind
			}
			server, err := api.NewServer(bind, engine, store, logger)
			if err != nil {
				return fmt.Errorf("create API server: %w", err)
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := server.Start(runCtx); err != nil {
				return fmt.Errorf("start API server: %w", err)
			}

			<-runCtx.Done()
			logger.Info("shutting down")
			server.Stop()
			return nil
		},
	}

	cmd.Flags().StringVar(&bind, "bind", "", "Listen address (default: configured api.bind)")

	return cmd
}

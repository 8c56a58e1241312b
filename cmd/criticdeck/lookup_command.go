package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"criticdeck/internal/lookup"
)

func newLookupCommand(ctx *commandContext) *cobra.Command {
	var platform string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "lookup <title>",
		Short: "Look up the Metacritic critic score for a game title",
		Long: `Look up the Metacritic critic score for a game title.

The title is matched against Metacritic search results using normalized text
similarity; the platform hint steers both candidate selection and which
platform's score sub-record is returned.

Examples:
  criticdeck lookup "Hades"
  criticdeck lookup "Hades" --platform Switch
  criticdeck lookup "Elden Ring" --json`,
		Args: cobra.ExactArgs(1),
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

			if platform == "" {
				platform = cfg.Metacritic.DefaultPlatform
			}
			result := engine.Lookup(cmd.Context(), args[0], platform)

			if asJSON {
				return writeJSON(cmd, result)
			}
			if !result.Found {
				fmt.Fprintf(cmd.OutOrStdout(), "No score found: %s\n", result.Reason)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderResult(result))
			return nil
		},
	}

	cmd.Flags().StringVarP(&platform, "platform", "p", "", "Platform hint (default: configured default_platform)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the raw lookup result as JSON")

	return cmd
}

func renderResult(result lookup.Result) string {
	rows := [][]string{
		{"Title", result.Title},
		{"Matched", result.MatchedTitle},
		{"Platform", result.Platform},
		{"Score", formatScore(result)},
		{"Sentiment", result.Sentiment},
		{"Release date", result.ReleaseDate},
	}
	if len(result.Platforms) > 0 {
		rows = append(rows, []string{"Platforms", strings.Join(result.Platforms, ", ")})
	}
	if result.URL != "" {
		rows = append(rows, []string{"URL", result.URL})
	}
	return renderTable([]string{"Field", "Value"}, rows, []columnAlignment{alignLeft, alignLeft})
}

func formatScore(result lookup.Result) string {
	if result.Score == nil {
		return "unscored"
	}
	if result.ScoreMax == nil {
		return fmt.Sprintf("%.0f", *result.Score)
	}
	return fmt.Sprintf("%.0f / %.0f", *result.Score, *result.ScoreMax)
}

package main

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"criticdeck/internal/settings"
)

func newSettingCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setting",
		Short: "Read and write persisted settings",
	}
	cmd.AddCommand(newSettingGetCommand(ctx))
	cmd.AddCommand(newSettingSetCommand(ctx))
	cmd.AddCommand(newSettingListCommand(ctx))
	return cmd
}

func (c *commandContext) openStore() (*settings.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	store, err := settings.Open(cfg.Settings.Path)
	if err != nil {
		return nil, fmt.Errorf("open settings store: %w", err)
	}
	return store, nil
}

func newSettingGetCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print a setting value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			value := store.Get(args[0], nil)
			if value == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "null")
				return nil
			}
			return writeJSON(cmd, value)
		},
	}
}

func newSettingSetCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Store a setting value",
		Long: `Store a setting value.

The value is parsed as JSON when possible, so numbers, booleans, and quoted
strings keep their types. Anything that is not valid JSON is stored as a
plain string.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			if err := store.Set(args[0], parseSettingValue(args[1])); err != nil {
				return fmt.Errorf("store setting: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Stored %s\n", args[0])
			return nil
		},
	}
}

func newSettingListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			keys := store.Keys()
			sort.Strings(keys)
			if len(keys) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No settings stored.")
				return nil
			}
			rows := make([][]string, 0, len(keys))
			for _, key := range keys {
				encoded, err := json.Marshal(store.Get(key, nil))
				if err != nil {
					return fmt.Errorf("encode setting %s: %w", key, err)
				}
				rows = append(rows, []string{key, string(encoded)})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Key", "Value"}, rows, []columnAlignment{alignLeft, alignLeft}))
			return nil
		},
	}
}

// parseSettingValue keeps JSON types when the raw string parses, otherwise
// stores the raw string unchanged.
func parseSettingValue(raw string) any {
	var value any
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return raw
	}
	return value
}
